package restrepos

import (
	"net/url"

	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/grading"
)

type gradingRepository struct {
	c *Client
}

var _ grading.Repository = (*gradingRepository)(nil) // interface compliance check

func NewGradingRepository(c *Client) *gradingRepository {
	return &gradingRepository{c: c}
}

func (repo gradingRepository) GetSectionGradebook(sectionID string) ([]grading.GradeBookEntry, error) {
	var entries []grading.GradeBookEntry
	err := repo.c.get("/sections/"+sectionID+"/gradebook", nil, &entries)
	return entries, err
}

func (repo gradingRepository) GetAssignmentSummary(assignmentID string) (grading.GradeSummary, error) {
	var summary grading.GradeSummary
	err := repo.c.get("/assignments/"+assignmentID+"/grade-summary", nil, &summary)
	return summary, err
}

func (repo gradingRepository) GetStudentGrades(studentID string) ([]grading.StudentGrade, error) {
	var grades []grading.StudentGrade
	err := repo.c.get("/students/"+studentID+"/grades", nil, &grades)
	return grades, err
}

func (repo gradingRepository) GetMyGrades() ([]grading.StudentGrade, error) {
	var grades []grading.StudentGrade
	err := repo.c.get("/grades/my", nil, &grades)
	return grades, err
}

func (repo gradingRepository) BulkGradeSubmissions(bg grading.BulkGrade) (grading.BulkResult, error) {
	var res grading.BulkResult
	err := repo.c.post("/submissions/bulk-grade", bg, &res)
	return res, err
}

func (repo gradingRepository) ExportGrades(sectionID, format string) (core.File, error) {
	params := url.Values{}
	if format != "" {
		params.Set("format", format)
	}
	return repo.c.download("/sections/"+sectionID+"/grades/export", params)
}
