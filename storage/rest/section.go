package restrepos

import (
	"github.com/shulehub/shule/core/section"
)

type sectionRepository struct {
	c *Client
}

var _ section.Repository = (*sectionRepository)(nil) // interface compliance check

func NewSectionRepository(c *Client) *sectionRepository {
	return &sectionRepository{c: c}
}

func (repo sectionRepository) ListSections(filter section.QueryFilter) ([]section.Section, int, error) {
	var sections []section.Section
	count, err := repo.c.list("/sections", filter.Values(), &sections)
	return sections, count, err
}

func (repo sectionRepository) GetSection(id string) (section.Section, error) {
	var sec section.Section
	err := repo.c.get("/sections/"+id, nil, &sec)
	return sec, err
}

func (repo sectionRepository) CreateSection(ns section.NewSection) (section.Section, error) {
	var sec section.Section
	err := repo.c.post("/sections", ns, &sec)
	return sec, err
}

func (repo sectionRepository) UpdateSection(id string, us section.UpdateSection) (section.Section, error) {
	var sec section.Section
	err := repo.c.patch("/sections/"+id, us, &sec)
	return sec, err
}

func (repo sectionRepository) DeleteSection(id string) error {
	return repo.c.del("/sections/" + id)
}
