package report

import (
	"sync"
	"testing"
	"time"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
)

type repoMock struct {
	Repository

	mu        sync.Mutex
	health    int
	overviews int
}

func (m *repoMock) GetSystemHealth() (SystemHealth, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.health++
	return SystemHealth{Status: "ok", ActiveUsers: m.health}, nil
}

func (m *repoMock) GetSchoolOverview(schoolID string) (SchoolOverview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overviews++
	return SchoolOverview{SchoolID: schoolID, Students: 120}, nil
}

func (m *repoMock) healthCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.health
}

func (m *repoMock) overviewCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overviews
}

func testConf() *core.Config {
	return &core.Config{
		HealthPollInterval:    5 * time.Millisecond,
		DashboardPollInterval: 5 * time.Millisecond,
	}
}

func TestWatchSystemHealth(t *testing.T) {
	repo := new(repoMock)
	store := cache.NewStore(time.Minute)
	svc := NewService(repo, store, testConf())

	stop := svc.WatchSystemHealth()
	deadline := time.After(time.Second)
	for repo.healthCalls() < 3 {
		select {
		case <-deadline:
			t.Fatalf("GetSystemHealth ran %d times, want at least 3", repo.healthCalls())
		case <-time.After(time.Millisecond):
		}
	}
	stop()

	// reads after the watch are served from the refreshed entry
	calls := repo.healthCalls()
	time.Sleep(10 * time.Millisecond) // let an in-flight tick land
	hlt, err := svc.SystemHealth()
	if err != nil {
		t.Fatalf("SystemHealth() failed, %v", err)
	}
	if hlt.Status != "ok" {
		t.Errorf("Status = %q, want ok", hlt.Status)
	}
	if got := repo.healthCalls(); got > calls+1 {
		t.Errorf("GetSystemHealth ran %d times after stop, want at most %d", got, calls+1)
	}
}

func TestWatchSchoolOverview(t *testing.T) {
	repo := new(repoMock)
	store := cache.NewStore(time.Minute)
	svc := NewService(repo, store, testConf())

	stop := svc.WatchSchoolOverview("1")
	defer stop()

	deadline := time.After(time.Second)
	for repo.overviewCalls() < 2 {
		select {
		case <-deadline:
			t.Fatalf("GetSchoolOverview ran %d times, want at least 2", repo.overviewCalls())
		case <-time.After(time.Millisecond):
		}
	}

	ovw, err := svc.SchoolOverview("1")
	if err != nil {
		t.Fatalf("SchoolOverview() failed, %v", err)
	}
	if ovw.SchoolID != "1" || ovw.Students != 120 {
		t.Errorf("SchoolOverview() = %+v", ovw)
	}
}
