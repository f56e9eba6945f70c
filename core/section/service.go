package section

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("section not found")

type (
	Repository interface {
		ListSections(filter QueryFilter) ([]Section, int, error)
		GetSection(id string) (Section, error)
		CreateSection(ns NewSection) (Section, error)
		UpdateSection(id string, us UpdateSection) (Section, error)
		DeleteSection(id string) error
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		sections []Section
		count    int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) List(filter QueryFilter) ([]Section, int, error) {
	filter.Clean()
	key := cache.NewKey(cache.ResSections, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		sections, count, err := svc.repo.ListSections(filter)
		if err != nil {
			return nil, err
		}
		return page{sections: sections, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.sections, p.count, nil
}

func (svc *Service) Get(id string) (Section, error) {
	key := cache.DetailKey(cache.ResSections, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSection(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return Section{}, ErrNotFound
		}
		return Section{}, err
	}
	return v.(Section), nil
}

func (svc *Service) Create(ns NewSection) (Section, error) {
	if err := ns.Validate(); err != nil {
		return Section{}, err
	}
	sec, err := svc.repo.CreateSection(ns)
	if err != nil {
		return Section{}, err
	}
	svc.store.InvalidateFor(cache.MutCreateSection)
	return sec, nil
}

func (svc *Service) Update(id string, us UpdateSection) (Section, error) {
	if err := us.Validate(); err != nil {
		return Section{}, err
	}
	sec, err := svc.repo.UpdateSection(id, us)
	if err != nil {
		if core.IsNotFound(err) {
			return Section{}, ErrNotFound
		}
		return Section{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateSection)
	return sec, nil
}

func (svc *Service) Delete(id string) error {
	if err := svc.repo.DeleteSection(id); err != nil && !core.IsNotFound(err) {
		return err
	}
	svc.store.InvalidateFor(cache.MutDeleteSection)
	return nil
}
