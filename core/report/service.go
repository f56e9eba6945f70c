package report

import (
	"github.com/pkg/errors"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

type (
	Repository interface {
		GetSystemHealth() (SystemHealth, error)
		GetSchoolOverview(schoolID string) (SchoolOverview, error)
		// ExportSchoolReport returns an opaque binary (PDF/XLSX) blob.
		ExportSchoolReport(schoolID, format string) (core.File, error)
	}

	Service struct {
		repo  Repository
		store *cache.Store
		conf  *core.Config
	}
)

func NewService(repo Repository, store *cache.Store, conf *core.Config) *Service {
	return &Service{repo: repo, store: store, conf: conf}
}

func (svc *Service) SystemHealth() (SystemHealth, error) {
	key := cache.NewKey(cache.ResSystemHealth, nil)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSystemHealth()
	})
	if err != nil {
		return SystemHealth{}, err
	}
	return v.(SystemHealth), nil
}

// WatchSystemHealth keeps the health read-model fresh on the configured
// interval, independent of user interaction.
func (svc *Service) WatchSystemHealth() (stop func()) {
	key := cache.NewKey(cache.ResSystemHealth, nil)
	return svc.store.Poll(key, svc.conf.HealthPollInterval, func() (interface{}, error) {
		return svc.repo.GetSystemHealth()
	})
}

func (svc *Service) SchoolOverview(schoolID string) (SchoolOverview, error) {
	if schoolID == "" {
		return SchoolOverview{}, cache.ErrDisabled
	}
	key := cache.DetailKey(cache.ResSchoolOverview, schoolID)
	v, err := svc.store.GetOrFetch(key, func() (interface{}, error) {
		return svc.repo.GetSchoolOverview(schoolID)
	})
	if err != nil {
		return SchoolOverview{}, err
	}
	return v.(SchoolOverview), nil
}

func (svc *Service) WatchSchoolOverview(schoolID string) (stop func()) {
	key := cache.DetailKey(cache.ResSchoolOverview, schoolID)
	return svc.store.Poll(key, svc.conf.DashboardPollInterval, func() (interface{}, error) {
		return svc.repo.GetSchoolOverview(schoolID)
	})
}

func (svc *Service) ExportSchoolReport(schoolID, format string) (core.File, error) {
	if schoolID == "" {
		return core.File{}, cache.ErrDisabled
	}
	f, err := svc.repo.ExportSchoolReport(schoolID, format)
	if err != nil {
		return core.File{}, errors.Wrap(err, "exporting school report")
	}
	return f, nil
}
