package restrepos

import (
	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/assignment"
)

type assignmentRepository struct {
	c *Client
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(c *Client) *assignmentRepository {
	return &assignmentRepository{c: c}
}

func (repo assignmentRepository) ListAssignments(filter assignment.QueryFilter) ([]assignment.Assignment, int, error) {
	var assignments []assignment.Assignment
	count, err := repo.c.list("/assignments", filter.Values(), &assignments)
	return assignments, count, err
}

func (repo assignmentRepository) ListMyAssignments(filter assignment.QueryFilter) ([]assignment.Assignment, int, error) {
	var assignments []assignment.Assignment
	count, err := repo.c.list("/assignments/my", filter.Values(), &assignments)
	return assignments, count, err
}

func (repo assignmentRepository) GetAssignment(id string) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.c.get("/assignments/"+id, nil, &asg)
	return asg, err
}

func (repo assignmentRepository) GetAssignmentWithSubmissions(id string) (assignment.WithSubmissions, error) {
	var asg assignment.WithSubmissions
	err := repo.c.get("/assignments/"+id+"/submissions", nil, &asg)
	return asg, err
}

func (repo assignmentRepository) CreateAssignment(na assignment.NewAssignment) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.c.post("/assignments", na, &asg)
	return asg, err
}

func (repo assignmentRepository) UpdateAssignment(id string, ua assignment.UpdateAssignment) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.c.patch("/assignments/"+id, ua, &asg)
	return asg, err
}

func (repo assignmentRepository) DeleteAssignment(id string) error {
	return repo.c.del("/assignments/" + id)
}

func (repo assignmentRepository) DuplicateAssignment(id string) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.c.post("/assignments/"+id+"/duplicate", nil, &asg)
	return asg, err
}

func (repo assignmentRepository) UploadAttachment(id string, up core.Upload) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.c.upload("/assignments/"+id+"/attachments", nil, map[string]core.Upload{"file": up}, &asg)
	return asg, err
}

func (repo assignmentRepository) DownloadAttachment(attachmentID string) (core.File, error) {
	return repo.c.download("/attachments/"+attachmentID+"/download", nil)
}
