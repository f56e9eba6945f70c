package restrepos

import (
	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/submission"
)

type submissionRepository struct {
	c *Client
}

var _ submission.Repository = (*submissionRepository)(nil) // interface compliance check

func NewSubmissionRepository(c *Client) *submissionRepository {
	return &submissionRepository{c: c}
}

func (repo submissionRepository) ListSubmissions(filter submission.QueryFilter) ([]submission.Submission, int, error) {
	var submissions []submission.Submission
	count, err := repo.c.list("/submissions", filter.Values(), &submissions)
	return submissions, count, err
}

func (repo submissionRepository) GetSubmission(id string) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.c.get("/submissions/"+id, nil, &sub)
	return sub, err
}

func (repo submissionRepository) CreateSubmission(ns submission.NewSubmission) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.c.post("/submissions", ns, &sub)
	return sub, err
}

func (repo submissionRepository) UpdateSubmission(id string, us submission.UpdateSubmission) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.c.patch("/submissions/"+id, us, &sub)
	return sub, err
}

func (repo submissionRepository) SubmitSubmission(id string) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.c.post("/submissions/"+id+"/submit", nil, &sub)
	return sub, err
}

func (repo submissionRepository) GradeSubmission(id string, g submission.Grade) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.c.post("/submissions/"+id+"/grade", g, &sub)
	return sub, err
}

func (repo submissionRepository) UploadAttachment(id string, up core.Upload) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.c.upload("/submissions/"+id+"/attachments", nil, map[string]core.Upload{"file": up}, &sub)
	return sub, err
}

func (repo submissionRepository) DownloadAttachment(attachmentID string) (core.File, error) {
	return repo.c.download("/attachments/"+attachmentID+"/download", nil)
}
