package grading

import (
	"github.com/pkg/errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var ErrNotFound = errors.New("gradebook not found")

type (
	Repository interface {
		GetSectionGradebook(sectionID string) ([]GradeBookEntry, error)
		GetAssignmentSummary(assignmentID string) (GradeSummary, error)
		GetStudentGrades(studentID string) ([]StudentGrade, error)
		// GetMyGrades scopes to the session's student.
		GetMyGrades() ([]StudentGrade, error)
		BulkGradeSubmissions(bg BulkGrade) (BulkResult, error)
		// ExportGrades returns an opaque binary (CSV/XLSX) blob.
		ExportGrades(sectionID, format string) (core.File, error)
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

// Gradebook returns the section's Student x Assignment grid. Without a
// chosen section the query is disabled: it must not fetch, and callers
// render a "pick a section" prompt rather than a spinner or an error.
func (svc *Service) Gradebook(sectionID string) ([]GradeBookEntry, error) {
	if sectionID == "" {
		return nil, cache.ErrDisabled
	}
	key := cache.DetailKey(cache.ResSectionGradebook, sectionID)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSectionGradebook(sectionID)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v.([]GradeBookEntry), nil
}

func (svc *Service) AssignmentSummary(assignmentID string) (GradeSummary, error) {
	if assignmentID == "" {
		return GradeSummary{}, cache.ErrDisabled
	}
	key := cache.DetailKey(cache.ResGradeSummaries, assignmentID)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetAssignmentSummary(assignmentID)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return GradeSummary{}, ErrNotFound
		}
		return GradeSummary{}, err
	}
	return v.(GradeSummary), nil
}

func (svc *Service) StudentGrades(studentID string) ([]StudentGrade, error) {
	if studentID == "" {
		return nil, cache.ErrDisabled
	}
	key := cache.DetailKey(cache.ResStudentGrades, studentID)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetStudentGrades(studentID)
	})
	if err != nil {
		return nil, err
	}
	return v.([]StudentGrade), nil
}

func (svc *Service) MyGrades() ([]StudentGrade, error) {
	key := cache.NewKey(cache.ResMyGrades, nil)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetMyGrades()
	})
	if err != nil {
		return nil, err
	}
	return v.([]StudentGrade), nil
}

// BulkGrade grades a batch of submissions. The batch is not atomic;
// the per-item tally comes back as-is and failed items are left to the
// caller to re-submit explicitly.
func (svc *Service) BulkGrade(bg BulkGrade) (BulkResult, error) {
	if err := bg.Validate(); err != nil {
		return BulkResult{}, err
	}
	res, err := svc.repo.BulkGradeSubmissions(bg)
	if err != nil {
		return BulkResult{}, err
	}
	// even a partial success may have changed every grade view
	svc.store.InvalidateFor(cache.MutBulkGradeSubmissions)
	return res, nil
}

// Export returns the section's grades as an opaque binary blob that the
// caller persists (browser download / file save). It bypasses the cache.
func (svc *Service) Export(sectionID, format string) (core.File, error) {
	if sectionID == "" {
		return core.File{}, cache.ErrDisabled
	}
	f, err := svc.repo.ExportGrades(sectionID, format)
	if err != nil {
		return core.File{}, errors.Wrap(err, "exporting grades")
	}
	return f, nil
}
