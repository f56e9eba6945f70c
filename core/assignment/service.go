package assignment

import (
	"errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Repository interface {
		ListAssignments(filter QueryFilter) ([]Assignment, int, error)
		// ListMyAssignments scopes to the session's user: a professor's
		// authored assignments or a student's assigned work.
		ListMyAssignments(filter QueryFilter) ([]Assignment, int, error)
		GetAssignment(id string) (Assignment, error)
		GetAssignmentWithSubmissions(id string) (WithSubmissions, error)
		CreateAssignment(na NewAssignment) (Assignment, error)
		UpdateAssignment(id string, ua UpdateAssignment) (Assignment, error)
		DeleteAssignment(id string) error
		DuplicateAssignment(id string) (Assignment, error)
		UploadAttachment(id string, up core.Upload) (Assignment, error)
		DownloadAttachment(attachmentID string) (core.File, error)
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		assignments []Assignment
		count       int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) list(res string, filter QueryFilter, fetch func() ([]Assignment, int, error)) ([]Assignment, int, error) {
	filter.Clean()
	key := cache.NewKey(res, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		assignments, count, err := fetch()
		if err != nil {
			return nil, err
		}
		return page{assignments: assignments, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.assignments, p.count, nil
}

func (svc *Service) List(filter QueryFilter) ([]Assignment, int, error) {
	return svc.list(cache.ResAssignments, filter, func() ([]Assignment, int, error) {
		return svc.repo.ListAssignments(filter)
	})
}

func (svc *Service) ListMine(filter QueryFilter) ([]Assignment, int, error) {
	return svc.list(cache.ResMyAssignments, filter, func() ([]Assignment, int, error) {
		return svc.repo.ListMyAssignments(filter)
	})
}

func (svc *Service) Get(id string) (Assignment, error) {
	key := cache.DetailKey(cache.ResAssignments, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetAssignment(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, err
	}
	return v.(Assignment), nil
}

// GetWithSubmissions is the expanded variant for the grading view. It
// shares the submissions resource cache-wise: grading invalidates it.
func (svc *Service) GetWithSubmissions(id string) (WithSubmissions, error) {
	key := cache.DetailKey(cache.ResSubmissions, "assignment:"+id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetAssignmentWithSubmissions(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return WithSubmissions{}, ErrNotFound
		}
		return WithSubmissions{}, err
	}
	return v.(WithSubmissions), nil
}

func (svc *Service) Create(na NewAssignment) (Assignment, error) {
	if err := na.Validate(); err != nil {
		return Assignment{}, err
	}
	asg, err := svc.repo.CreateAssignment(na)
	if err != nil {
		return Assignment{}, err
	}
	svc.store.InvalidateFor(cache.MutCreateAssignment)
	return asg, nil
}

func (svc *Service) Update(id string, ua UpdateAssignment) (Assignment, error) {
	if err := ua.Validate(); err != nil {
		return Assignment{}, err
	}
	asg, err := svc.repo.UpdateAssignment(id, ua)
	if err != nil {
		if core.IsNotFound(err) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateAssignment)
	return asg, nil
}

func (svc *Service) Delete(id string) error {
	if err := svc.repo.DeleteAssignment(id); err != nil && !core.IsNotFound(err) {
		return err
	}
	svc.store.InvalidateFor(cache.MutDeleteAssignment)
	return nil
}

// Duplicate copies the assignment (server-side) within its section.
func (svc *Service) Duplicate(id string) (Assignment, error) {
	asg, err := svc.repo.DuplicateAssignment(id)
	if err != nil {
		if core.IsNotFound(err) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, err
	}
	svc.store.InvalidateFor(cache.MutDuplicateAssignment)
	return asg, nil
}

// UploadAttachment sends the file as multipart form data, not JSON.
func (svc *Service) UploadAttachment(id string, up core.Upload) (Assignment, error) {
	asg, err := svc.repo.UploadAttachment(id, up)
	if err != nil {
		if core.IsNotFound(err) {
			return Assignment{}, ErrNotFound
		}
		return Assignment{}, err
	}
	svc.store.InvalidateFor(cache.MutUpdateAssignment)
	return asg, nil
}

func (svc *Service) DownloadAttachment(attachmentID string) (core.File, error) {
	return svc.repo.DownloadAttachment(attachmentID)
}
