package enrollment

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/section"
)

var (
	ErrNotFound = errors.New("enrollment not found")

	errSectionFull = "section full"
)

type (
	Repository interface {
		ListEnrollments(filter QueryFilter) ([]Enrollment, int, error)
		// ListMyEnrollments scopes to the session's student; the server
		// derives the student from the bearer token.
		ListMyEnrollments(filter QueryFilter) ([]Enrollment, int, error)
		GetEnrollment(id string) (Enrollment, error)
		CreateEnrollment(ne NewEnrollment) (Enrollment, error)
		UpdateEnrollment(id string, ue UpdateEnrollment) (Enrollment, error)
		DeleteEnrollment(id string) error
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		enrollments []Enrollment
		count       int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) list(res string, filter QueryFilter, fetch func() ([]Enrollment, int, error)) ([]Enrollment, int, error) {
	key := cache.NewKey(res, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		enrollments, count, err := fetch()
		if err != nil {
			return nil, err
		}
		return page{enrollments: enrollments, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.enrollments, p.count, nil
}

func (svc *Service) List(filter QueryFilter) ([]Enrollment, int, error) {
	return svc.list(cache.ResEnrollments, filter, func() ([]Enrollment, int, error) {
		return svc.repo.ListEnrollments(filter)
	})
}

func (svc *Service) ListMine(filter QueryFilter) ([]Enrollment, int, error) {
	return svc.list(cache.ResMyEnrollments, filter, func() ([]Enrollment, int, error) {
		return svc.repo.ListMyEnrollments(filter)
	})
}

func (svc *Service) Get(id string) (Enrollment, error) {
	key := cache.DetailKey(cache.ResEnrollments, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetEnrollment(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return Enrollment{}, ErrNotFound
		}
		return Enrollment{}, err
	}
	return v.(Enrollment), nil
}

// Enroll registers a student into a section. A full section is blocked
// here with a clear message before anything is sent; the authoritative
// capacity check still happens server-side.
func (svc *Service) Enroll(ne NewEnrollment, sec section.Section) (Enrollment, error) {
	if err := ne.Validate(); err != nil {
		return Enrollment{}, err
	}
	if sec.IsFull() {
		return Enrollment{}, core.NewValidationError(
			errors.New(errSectionFull),
			core.FieldError{Field: "section_id", Error: errSectionFull},
		)
	}
	enr, err := svc.repo.CreateEnrollment(ne)
	if err != nil {
		return Enrollment{}, err
	}
	svc.store.InvalidateFor(cache.MutCreateEnrollment)
	return enr, nil
}

func (svc *Service) Update(id string, ue UpdateEnrollment) (Enrollment, error) {
	if err := ue.Validate(); err != nil {
		return Enrollment{}, err
	}
	enr, err := svc.repo.UpdateEnrollment(id, ue)
	if err != nil {
		if core.IsNotFound(err) {
			return Enrollment{}, ErrNotFound
		}
		return Enrollment{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateEnrollment)
	return enr, nil
}

// Drop marks the enrollment DROPPED; the section seat frees up server-side.
func (svc *Service) Drop(id string) (Enrollment, error) {
	return svc.Update(id, UpdateEnrollment{Status: StatusDropped})
}

func (svc *Service) Delete(id string) error {
	if err := svc.repo.DeleteEnrollment(id); err != nil && !core.IsNotFound(err) {
		return err
	}
	svc.store.InvalidateFor(cache.MutDeleteEnrollment)
	return nil
}
