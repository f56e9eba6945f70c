package user

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("user not found")

type (
	// Repository describes the remote user endpoints.
	Repository interface {
		Login(email, password string) (string, error)
		ListUsers(filter QueryFilter) ([]User, int, error)
		GetUser(id string) (User, error)
		CreateUser(nu NewUser) (User, error)
		UpdateUser(id string, uu UpdateUser) (User, error)
		DeleteUser(id string) error
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		users []User
		count int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

// Login authenticates against the API and returns the session token.
// Invalid credentials surface as a ValidationError, never a banner.
func (svc *Service) Login(email, password string) (string, error) {
	email = core.CleanString(email, true /* lower */)
	token, err := svc.repo.Login(email, password)
	if err != nil {
		if core.IsAPIStatus(err, 400) || core.IsAPIStatus(err, 401) {
			return "", core.NewValidationError(errors.New("invalid credentials"))
		}
		return "", err
	}
	return token, nil
}

func (svc *Service) List(filter QueryFilter) ([]User, int, error) {
	filter.Clean()
	key := cache.NewKey(cache.ResUsers, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		users, count, err := svc.repo.ListUsers(filter)
		if err != nil {
			return nil, err
		}
		return page{users: users, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.users, p.count, nil
}

func (svc *Service) Get(id string) (User, error) {
	key := cache.DetailKey(cache.ResUsers, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetUser(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return v.(User), nil
}

func (svc *Service) Create(nu NewUser) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.CreateUser(nu)
	if err != nil {
		return User{}, err
	}
	svc.store.InvalidateFor(cache.MutCreateUser)
	return usr, nil
}

func (svc *Service) Update(id string, uu UpdateUser) (User, error) {
	if err := uu.Validate(); err != nil {
		return User{}, err
	}
	usr, err := svc.repo.UpdateUser(id, uu)
	if err != nil {
		if core.IsNotFound(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateUser)
	return usr, nil
}

// Delete removes a user. A retried delete may hit a 404 for a user the
// first attempt already removed; that counts as success.
func (svc *Service) Delete(id string) error {
	if err := svc.repo.DeleteUser(id); err != nil && !core.IsNotFound(err) {
		return err
	}
	svc.store.InvalidateFor(cache.MutDeleteUser)
	return nil
}
