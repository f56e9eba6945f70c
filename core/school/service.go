package school

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("school not found")

type (
	Repository interface {
		ListSchools(filter QueryFilter) ([]School, int, error)
		GetSchool(id string) (School, error)
		CreateSchool(ns NewSchool) (School, error)
		UpdateSchool(id string, us UpdateSchool) (School, error)
		DeleteSchool(id string) error
		ActivateSchool(id string) (School, error)
		DeactivateSchool(id string) (School, error)
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		schools []School
		count   int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) List(filter QueryFilter) ([]School, int, error) {
	filter.Clean()
	key := cache.NewKey(cache.ResSchools, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		schools, count, err := svc.repo.ListSchools(filter)
		if err != nil {
			return nil, err
		}
		return page{schools: schools, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.schools, p.count, nil
}

func (svc *Service) Get(id string) (School, error) {
	key := cache.DetailKey(cache.ResSchools, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSchool(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return School{}, ErrNotFound
		}
		return School{}, err
	}
	return v.(School), nil
}

func (svc *Service) Create(ns NewSchool) (School, error) {
	if err := ns.Validate(); err != nil {
		return School{}, err
	}
	sch, err := svc.repo.CreateSchool(ns)
	if err != nil {
		return School{}, err
	}
	svc.store.InvalidateFor(cache.MutCreateSchool)
	return sch, nil
}

func (svc *Service) Update(id string, us UpdateSchool) (School, error) {
	if err := us.Validate(); err != nil {
		return School{}, err
	}
	sch, err := svc.repo.UpdateSchool(id, us)
	if err != nil {
		if core.IsNotFound(err) {
			return School{}, ErrNotFound
		}
		return School{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateSchool)
	return sch, nil
}

// Delete removes a school; the server cascades to its users and
// sections. A 404 on a retried delete counts as success.
func (svc *Service) Delete(id string) error {
	if err := svc.repo.DeleteSchool(id); err != nil && !core.IsNotFound(err) {
		return err
	}
	svc.store.InvalidateFor(cache.MutDeleteSchool)
	return nil
}

func (svc *Service) Activate(id string) (School, error) {
	sch, err := svc.repo.ActivateSchool(id)
	if err != nil {
		if core.IsNotFound(err) {
			return School{}, ErrNotFound
		}
		return School{}, err
	}
	svc.store.InvalidateFor(cache.MutActivateSchool)
	return sch, nil
}

func (svc *Service) Deactivate(id string) (School, error) {
	sch, err := svc.repo.DeactivateSchool(id)
	if err != nil {
		if core.IsNotFound(err) {
			return School{}, ErrNotFound
		}
		return School{}, err
	}
	svc.store.InvalidateFor(cache.MutDeactivateSchool)
	return sch, nil
}
