package submission

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/shulehub/shule/cache"
)

type repoMock struct {
	Repository
	graded int
}

func (m *repoMock) GradeSubmission(id string, g Grade) (Submission, error) {
	m.graded++
	status := StatusGraded
	if g.Return {
		status = StatusReturned
	}
	return Submission{ID: id, Status: status}, nil
}

func (m *repoMock) SubmitSubmission(id string) (Submission, error) {
	return Submission{ID: id, Status: StatusSubmitted}, nil
}

func TestGradeOne(t *testing.T) {
	tests := []struct {
		name       string
		cur        Submission
		g          Grade
		wantErr    bool
		wantGraded int
	}{
		{name: "grade submitted", cur: Submission{ID: "1", Status: StatusSubmitted}, g: Grade{PointsEarned: 80}, wantGraded: 1},
		{name: "return submitted", cur: Submission{ID: "1", Status: StatusSubmitted}, g: Grade{Return: true}, wantGraded: 1},
		{name: "grade a draft", cur: Submission{ID: "1", Status: StatusDraft}, g: Grade{PointsEarned: 80}, wantErr: true},
		{name: "regrade a graded submission", cur: Submission{ID: "1", Status: StatusGraded}, g: Grade{PointsEarned: 90}, wantErr: true},
		{name: "return a graded submission", cur: Submission{ID: "1", Status: StatusGraded}, g: Grade{Return: true}, wantErr: true},
		{name: "over max points", cur: Submission{ID: "1", Status: StatusSubmitted}, g: Grade{PointsEarned: 120}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMock)
			svc := NewService(repo, cache.NewStore(time.Minute))

			_, err := svc.GradeOne(tt.cur, tt.g, 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GradeOne() error = %v, wantErr %v", err, tt.wantErr)
			}
			if repo.graded != tt.wantGraded {
				t.Errorf("GradeSubmission ran %d times, want %d", repo.graded, tt.wantGraded)
			}
		})
	}
}

func TestGradeOneRejectionIsTransitionError(t *testing.T) {
	svc := NewService(new(repoMock), cache.NewStore(time.Minute))
	_, err := svc.GradeOne(Submission{ID: "1", Status: StatusGraded}, Grade{Return: true}, 100)
	if errors.Cause(err) != ErrInvalidTransition {
		t.Errorf("GradeOne() error = %v, want %v", err, ErrInvalidTransition)
	}
}
