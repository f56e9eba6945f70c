package restrepos

import (
	"github.com/shulehub/shule/core/school"
)

type schoolRepository struct {
	c *Client
}

var _ school.Repository = (*schoolRepository)(nil) // interface compliance check

func NewSchoolRepository(c *Client) *schoolRepository {
	return &schoolRepository{c: c}
}

func (repo schoolRepository) ListSchools(filter school.QueryFilter) ([]school.School, int, error) {
	var schools []school.School
	count, err := repo.c.list("/schools", filter.Values(), &schools)
	return schools, count, err
}

func (repo schoolRepository) GetSchool(id string) (school.School, error) {
	var sch school.School
	err := repo.c.get("/schools/"+id, nil, &sch)
	return sch, err
}

func (repo schoolRepository) CreateSchool(ns school.NewSchool) (school.School, error) {
	var sch school.School
	err := repo.c.post("/schools", ns, &sch)
	return sch, err
}

func (repo schoolRepository) UpdateSchool(id string, us school.UpdateSchool) (school.School, error) {
	var sch school.School
	err := repo.c.patch("/schools/"+id, us, &sch)
	return sch, err
}

func (repo schoolRepository) DeleteSchool(id string) error {
	return repo.c.del("/schools/" + id)
}

func (repo schoolRepository) ActivateSchool(id string) (school.School, error) {
	var sch school.School
	err := repo.c.post("/schools/"+id+"/activate", nil, &sch)
	return sch, err
}

func (repo schoolRepository) DeactivateSchool(id string) (school.School, error) {
	var sch school.School
	err := repo.c.post("/schools/"+id+"/deactivate", nil, &sch)
	return sch, err
}
