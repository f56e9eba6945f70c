package restrepos

import (
	"github.com/shulehub/shule/core/subject"
)

type subjectRepository struct {
	c *Client
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(c *Client) *subjectRepository {
	return &subjectRepository{c: c}
}

func (repo subjectRepository) ListSubjects(filter subject.QueryFilter) ([]subject.Subject, int, error) {
	var subjects []subject.Subject
	count, err := repo.c.list("/subjects", filter.Values(), &subjects)
	return subjects, count, err
}

func (repo subjectRepository) GetSubject(id string) (subject.Subject, error) {
	var sub subject.Subject
	err := repo.c.get("/subjects/"+id, nil, &sub)
	return sub, err
}

func (repo subjectRepository) CreateSubject(ns subject.NewSubject) (subject.Subject, error) {
	var sub subject.Subject
	err := repo.c.post("/subjects", ns, &sub)
	return sub, err
}

func (repo subjectRepository) UpdateSubject(id string, us subject.UpdateSubject) (subject.Subject, error) {
	var sub subject.Subject
	err := repo.c.patch("/subjects/"+id, us, &sub)
	return sub, err
}

func (repo subjectRepository) DeleteSubject(id string) error {
	return repo.c.del("/subjects/" + id)
}
