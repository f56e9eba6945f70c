package restrepos

import (
	"github.com/shulehub/shule/core/enrollment"
)

type enrollmentRepository struct {
	c *Client
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(c *Client) *enrollmentRepository {
	return &enrollmentRepository{c: c}
}

func (repo enrollmentRepository) ListEnrollments(filter enrollment.QueryFilter) ([]enrollment.Enrollment, int, error) {
	var enrollments []enrollment.Enrollment
	count, err := repo.c.list("/enrollments", filter.Values(), &enrollments)
	return enrollments, count, err
}

func (repo enrollmentRepository) ListMyEnrollments(filter enrollment.QueryFilter) ([]enrollment.Enrollment, int, error) {
	var enrollments []enrollment.Enrollment
	count, err := repo.c.list("/enrollments/my", filter.Values(), &enrollments)
	return enrollments, count, err
}

func (repo enrollmentRepository) GetEnrollment(id string) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	err := repo.c.get("/enrollments/"+id, nil, &enr)
	return enr, err
}

func (repo enrollmentRepository) CreateEnrollment(ne enrollment.NewEnrollment) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	err := repo.c.post("/enrollments", ne, &enr)
	return enr, err
}

func (repo enrollmentRepository) UpdateEnrollment(id string, ue enrollment.UpdateEnrollment) (enrollment.Enrollment, error) {
	var enr enrollment.Enrollment
	err := repo.c.patch("/enrollments/"+id, ue, &enr)
	return enr, err
}

func (repo enrollmentRepository) DeleteEnrollment(id string) error {
	return repo.c.del("/enrollments/" + id)
}
