package subject

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("subject not found")

type (
	Repository interface {
		ListSubjects(filter QueryFilter) ([]Subject, int, error)
		GetSubject(id string) (Subject, error)
		CreateSubject(ns NewSubject) (Subject, error)
		UpdateSubject(id string, us UpdateSubject) (Subject, error)
		DeleteSubject(id string) error
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		subjects []Subject
		count    int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) List(filter QueryFilter) ([]Subject, int, error) {
	filter.Clean()
	key := cache.NewKey(cache.ResSubjects, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		subjects, count, err := svc.repo.ListSubjects(filter)
		if err != nil {
			return nil, err
		}
		return page{subjects: subjects, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.subjects, p.count, nil
}

func (svc *Service) Get(id string) (Subject, error) {
	key := cache.DetailKey(cache.ResSubjects, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSubject(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return Subject{}, ErrNotFound
		}
		return Subject{}, err
	}
	return v.(Subject), nil
}

func (svc *Service) Create(ns NewSubject) (Subject, error) {
	if err := ns.Validate(); err != nil {
		return Subject{}, err
	}
	sub, err := svc.repo.CreateSubject(ns)
	if err != nil {
		return Subject{}, err
	}
	svc.store.InvalidateFor(cache.MutCreateSubject)
	return sub, nil
}

func (svc *Service) Update(id string, us UpdateSubject) (Subject, error) {
	if err := us.Validate(); err != nil {
		return Subject{}, err
	}
	sub, err := svc.repo.UpdateSubject(id, us)
	if err != nil {
		if core.IsNotFound(err) {
			return Subject{}, ErrNotFound
		}
		return Subject{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateSubject)
	return sub, nil
}

func (svc *Service) Delete(id string) error {
	if err := svc.repo.DeleteSubject(id); err != nil && !core.IsNotFound(err) {
		return err
	}
	svc.store.InvalidateFor(cache.MutDeleteSubject)
	return nil
}
