package main

import (
	"io/fs"
	"testing"
	"time"

	"github.com/shulehub/shule/cache"
	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/grading"
	"github.com/shulehub/shule/core/school"
	"github.com/shulehub/shule/core/subscription"
	"github.com/shulehub/shule/core/user"
)

type userRepoStub struct {
	user.Repository
}

func (userRepoStub) Login(email, password string) (string, error) {
	if password != "s3cret" {
		return "", core.NewAPIError(401, "invalid credentials")
	}
	return "tok-123", nil
}

type schoolRepoStub struct {
	school.Repository
}

func (schoolRepoStub) ListSchools(filter school.QueryFilter) ([]school.School, int, error) {
	return []school.School{
		{ID: "1", Name: "Greenwood High", Subdomain: "greenwood", IsActive: true},
		{ID: "2", Name: "Riverside Academy", Subdomain: "riverside"},
	}, 2, nil
}

func (schoolRepoStub) ActivateSchool(id string) (school.School, error) {
	return school.School{ID: id, Name: "Riverside Academy", IsActive: true}, nil
}

func (schoolRepoStub) DeactivateSchool(id string) (school.School, error) {
	return school.School{ID: id, Name: "Riverside Academy"}, nil
}

type subsRepoStub struct {
	subscription.Repository
	renewed map[string]int
}

func (s *subsRepoStub) ListExpiredSubscriptions(filter subscription.QueryFilter) ([]subscription.Subscription, int, error) {
	return []subscription.Subscription{
		{ID: "10", SchoolID: "1", Plan: subscription.PlanBasic},
		{ID: "11", SchoolID: "2", Plan: subscription.PlanPremium},
	}, 2, nil
}

func (s *subsRepoStub) RenewSubscription(id string, r subscription.Renew) (subscription.Subscription, error) {
	if s.renewed == nil {
		s.renewed = make(map[string]int)
	}
	s.renewed[id] = r.Months
	return subscription.Subscription{ID: id, EndDate: time.Now().AddDate(0, r.Months, 0)}, nil
}

type gradingRepoStub struct {
	grading.Repository
}

func (gradingRepoStub) ExportGrades(sectionID, format string) (core.File, error) {
	return core.File{Name: "grades." + format, ContentType: "text/csv", Data: []byte("student,points\n")}, nil
}

func setup(t *testing.T) (*commandLine, *subsRepoStub) {
	store := cache.NewStore(time.Minute)
	subsRepo := new(subsRepoStub)
	return &commandLine{
		session: core.NewSession(""),
		usrSvc:  user.NewService(userRepoStub{}, store),
		schSvc:  school.NewService(schoolRepoStub{}, store),
		subsSvc: subscription.NewService(subsRepo, store),
		gradSvc: grading.NewService(gradingRepoStub{}, store),
	}, subsRepo
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_login(t *testing.T) {
	var savedToken string
	saveTokenFunc = func(token string) error {
		savedToken = token
		return nil
	}

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no email", args: []string{"login"}, wantErr: errHelp},
		{name: "email but no password", args: []string{"login", "-email", "admin@shule.test"}, wantErr: errHelp},
		{name: "bad credentials", args: []string{"login", "-email", "admin@shule.test"}, extra: extra{pwd: "nope"}, wantErrStr: "invalid credentials"},
		{name: "ok", args: []string{"login", "-email", "admin@shule.test"}, extra: extra{pwd: "s3cret"}},
	}
	for _, tt := range tests {
		args := append([]string{"shulectl"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t)
			savedToken = ""

			err := cli.run(args)
			if err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
				return
			}
			if cli.session.Token() != "tok-123" {
				t.Errorf("session token = %q, want tok-123", cli.session.Token())
			}
			if savedToken != "tok-123" {
				t.Errorf("saved token = %q, want tok-123", savedToken)
			}
		})
	}
}

func Test_commandLine_schools(t *testing.T) {
	tests := []cliTest{
		{name: "list", args: []string{"schools"}},
		{name: "activate", args: []string{"schools", "-activate", "2"}},
		{name: "deactivate", args: []string{"schools", "-deactivate", "2"}},
		{name: "both flags", args: []string{"schools", "-activate", "1", "-deactivate", "2"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"shulectl"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t)
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_renewsubs(t *testing.T) {
	cli, subsRepo := setup(t)
	if err := cli.run([]string{"shulectl", "renewsubs", "-months", "6"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	if len(subsRepo.renewed) != 2 {
		t.Errorf("renewed %d subscriptions, want 2", len(subsRepo.renewed))
	}
	for _, id := range []string{"10", "11"} {
		if subsRepo.renewed[id] != 6 {
			t.Errorf("subscription %s renewed by %d months, want 6", id, subsRepo.renewed[id])
		}
	}
}

func Test_commandLine_exportgrades(t *testing.T) {
	var savedName string
	var savedData []byte
	writeFileFunc = func(name string, data []byte, perm fs.FileMode) error {
		savedName = name
		savedData = data
		return nil
	}

	tests := []cliTest{
		{name: "no section", args: []string{"exportgrades"}, wantErr: errHelp},
		{name: "default name", args: []string{"exportgrades", "-section", "7"}},
		{name: "explicit out", args: []string{"exportgrades", "-section", "7", "-out", "term1.csv"}},
	}
	for _, tt := range tests {
		args := append([]string{"shulectl"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t)
			savedName, savedData = "", nil

			err := cli.run(args)
			if err != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			wantName := "grades.csv"
			if tt.name == "explicit out" {
				wantName = "term1.csv"
			}
			if savedName != wantName {
				t.Errorf("saved file = %q, want %q", savedName, wantName)
			}
			if string(savedData) != "student,points\n" {
				t.Errorf("saved data = %q", savedData)
			}
		})
	}
}
