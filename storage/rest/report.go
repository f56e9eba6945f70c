package restrepos

import (
	"net/url"

	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/report"
)

type reportRepository struct {
	c *Client
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(c *Client) *reportRepository {
	return &reportRepository{c: c}
}

func (repo reportRepository) GetSystemHealth() (report.SystemHealth, error) {
	var health report.SystemHealth
	err := repo.c.get("/reports/system-health", nil, &health)
	return health, err
}

func (repo reportRepository) GetSchoolOverview(schoolID string) (report.SchoolOverview, error) {
	var overview report.SchoolOverview
	err := repo.c.get("/schools/"+schoolID+"/overview", nil, &overview)
	return overview, err
}

func (repo reportRepository) ExportSchoolReport(schoolID, format string) (core.File, error) {
	params := url.Values{}
	if format != "" {
		params.Set("format", format)
	}
	return repo.c.download("/schools/"+schoolID+"/report/export", params)
}
