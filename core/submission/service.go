package submission

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

var (
	ErrNotFound          = errors.New("submission not found")
	ErrInvalidTransition = errors.New("submission status does not allow this action")
)

type (
	Repository interface {
		ListSubmissions(filter QueryFilter) ([]Submission, int, error)
		GetSubmission(id string) (Submission, error)
		CreateSubmission(ns NewSubmission) (Submission, error)
		UpdateSubmission(id string, us UpdateSubmission) (Submission, error)
		SubmitSubmission(id string) (Submission, error)
		GradeSubmission(id string, g Grade) (Submission, error)
		UploadAttachment(id string, up core.Upload) (Submission, error)
		DownloadAttachment(attachmentID string) (core.File, error)
	}

	Service struct {
		repo  Repository
		store *cache.Store
	}

	page struct {
		submissions []Submission
		count       int
	}
)

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (svc *Service) List(filter QueryFilter) ([]Submission, int, error) {
	key := cache.NewKey(cache.ResSubmissions, filter.Values())
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		submissions, count, err := svc.repo.ListSubmissions(filter)
		if err != nil {
			return nil, err
		}
		return page{submissions: submissions, count: count}, nil
	})
	if err != nil {
		return nil, 0, err
	}
	p := v.(page)
	return p.submissions, p.count, nil
}

func (svc *Service) Get(id string) (Submission, error) {
	key := cache.DetailKey(cache.ResSubmissions, id)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSubmission(id)
	})
	if err != nil {
		if core.IsNotFound(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return v.(Submission), nil
}

// SaveDraft creates a new DRAFT submission.
func (svc *Service) SaveDraft(ns NewSubmission) (Submission, error) {
	if err := ns.Validate(); err != nil {
		return Submission{}, err
	}
	sub, err := svc.repo.CreateSubmission(ns)
	if err != nil {
		return Submission{}, err
	}
	svc.store.InvalidateFor(cache.MutSaveSubmission)
	return sub, nil
}

// Update edits the content of cur. Only DRAFT and RETURNED submissions
// are editable.
func (svc *Service) Update(cur Submission, us UpdateSubmission) (Submission, error) {
	if !IsEditable(cur.Status) {
		return Submission{}, errors.Wrapf(ErrInvalidTransition, "editing a %s submission", cur.Status)
	}
	sub, err := svc.repo.UpdateSubmission(cur.ID, us)
	if err != nil {
		if core.IsNotFound(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	svc.store.InvalidateFor(cache.MutSaveSubmission)
	return sub, nil
}

// Submit moves cur to SUBMITTED. Lateness is derived later from
// submitted_at vs the assignment's due date, not decided here.
func (svc *Service) Submit(cur Submission) (Submission, error) {
	if !CanTransition(cur.Status, StatusSubmitted) {
		return Submission{}, errors.Wrapf(ErrInvalidTransition, "submitting a %s submission", cur.Status)
	}
	sub, err := svc.repo.SubmitSubmission(cur.ID)
	if err != nil {
		if core.IsNotFound(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	svc.store.InvalidateFor(cache.MutSubmitSubmission)
	return sub, nil
}

// GradeOne grades cur, bounded by the assignment's max points. The
// grading target status is GRADED, or RETURNED when g.Return is set.
func (svc *Service) GradeOne(cur Submission, g Grade, maxPoints float64) (Submission, error) {
	target := StatusGraded
	if g.Return {
		target = StatusReturned
	}
	if !CanTransition(cur.Status, target) {
		return Submission{}, errors.Wrapf(ErrInvalidTransition, "grading a %s submission", cur.Status)
	}
	if err := core.TranslateValidationErrors(core.Validate.Struct(g)); err != nil {
		return Submission{}, err
	}
	if g.PointsEarned > maxPoints {
		return Submission{}, core.NewValidationError(nil, core.FieldError{
			Field: "points_earned",
			Error: fmt.Sprintf("cannot exceed the assignment's max points (%g)", maxPoints),
		})
	}
	sub, err := svc.repo.GradeSubmission(cur.ID, g)
	if err != nil {
		if core.IsNotFound(err) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	mut := cache.MutGradeSubmission
	if g.Return {
		mut = cache.MutReturnSubmission
	}
	svc.store.InvalidateFor(mut)
	return sub, nil
}

// UploadAttachment sends the file as multipart form data, not JSON.
func (svc *Service) UploadAttachment(cur Submission, up core.Upload) (Submission, error) {
	if !IsEditable(cur.Status) {
		return Submission{}, errors.Wrapf(ErrInvalidTransition, "attaching to a %s submission", cur.Status)
	}
	sub, err := svc.repo.UploadAttachment(cur.ID, up)
	if err != nil {
		return Submission{}, err
	}
	svc.store.InvalidateFor(cache.MutSaveSubmission)
	return sub, nil
}

// DownloadAttachment returns the raw file; the caller persists it as a
// side effect. Binary responses bypass the cache entirely.
func (svc *Service) DownloadAttachment(attachmentID string) (core.File, error) {
	return svc.repo.DownloadAttachment(attachmentID)
}
