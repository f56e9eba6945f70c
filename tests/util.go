package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/shulehub/shule/core"
	"github.com/shulehub/shule/core/assignment"
	"github.com/shulehub/shule/core/enrollment"
	"github.com/shulehub/shule/core/section"
	"github.com/shulehub/shule/core/submission"
)

const (
	TestEmail    = "prof@shule.test"
	TestPassword = "s3cret"

	jwtTestSecret = "test-secret"
)

func NewTestConfig(baseURL string) *core.Config {
	return &core.Config{
		Env:                      "TEST",
		Debug:                    true,
		TestMode:                 true,
		AppName:                  "Shule",
		Build:                    "test",
		APIBaseURL:               baseURL,
		HTTPTimeout:              5 * time.Second,
		CacheTTL:                 time.Minute,
		HealthPollInterval:       time.Second,
		DashboardPollInterval:    time.Second,
		SubscriptionPollInterval: time.Second,
	}
}

// FakeAPI is an in-memory rendition of the school API served over
// httptest. Fixtures may be injected directly into the exported maps.
type FakeAPI struct {
	mu   sync.Mutex
	seq  int
	hits map[string]int

	Sections    map[string]section.Section
	Enrollments map[string]enrollment.Enrollment
	Assignments map[string]assignment.Assignment
	Submissions map[string]submission.Submission

	srv *httptest.Server
}

func NewFakeAPI() *FakeAPI {
	api := &FakeAPI{
		hits:        make(map[string]int),
		Sections:    make(map[string]section.Section),
		Enrollments: make(map[string]enrollment.Enrollment),
		Assignments: make(map[string]assignment.Assignment),
		Submissions: make(map[string]submission.Submission),
	}

	e := echo.New()
	e.Use(api.countHits)
	e.POST("/auth/login", api.login)
	e.GET("/sections", api.listSections)
	e.POST("/sections", api.createSection)
	e.GET("/sections/:id", api.getSection)
	e.GET("/enrollments", api.listEnrollments)
	e.POST("/enrollments", api.createEnrollment)
	e.GET("/assignments/:id", api.getAssignment)
	e.POST("/assignments", api.createAssignment)
	e.GET("/submissions/:id", api.getSubmission)
	e.POST("/submissions", api.createSubmission)
	e.POST("/submissions/:id/submit", api.submitSubmission)
	e.POST("/submissions/:id/grade", api.gradeSubmission)

	api.srv = httptest.NewServer(e)
	return api
}

func (api *FakeAPI) URL() string { return api.srv.URL }
func (api *FakeAPI) Close()      { api.srv.Close() }

// Hits returns how many requests hit "METHOD /path" so far; cache tests
// use it to assert that fresh reads never refetch.
func (api *FakeAPI) Hits(methodAndPath string) int {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.hits[methodAndPath]
}

func (api *FakeAPI) countHits(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		api.mu.Lock()
		api.hits[c.Request().Method+" "+c.Request().URL.Path]++
		api.mu.Unlock()
		return next(c)
	}
}

func (api *FakeAPI) nextID() string {
	api.seq++
	return strconv.Itoa(api.seq)
}

func (api *FakeAPI) login(c echo.Context) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return err
	}
	if creds.Email != TestEmail || creds.Password != TestPassword {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	claims := jwt.StandardClaims{
		Subject:   "1",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtTestSecret))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (api *FakeAPI) listSections(c echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	results := make([]section.Section, 0, len(api.Sections))
	for _, sec := range api.Sections {
		results = append(results, sec)
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results, "count": len(results)})
}

func (api *FakeAPI) createSection(c echo.Context) error {
	var ns section.NewSection
	if err := c.Bind(&ns); err != nil {
		return err
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	now := time.Now().UTC()
	sec := section.Section{
		ID:          api.nextID(),
		Name:        ns.Name,
		SubjectID:   ns.SubjectID,
		ProfessorID: ns.ProfessorID,
		StartDate:   ns.StartDate,
		EndDate:     ns.EndDate,
		MaxStudents: ns.MaxStudents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	api.Sections[sec.ID] = sec
	return c.JSON(http.StatusCreated, sec)
}

func (api *FakeAPI) getSection(c echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	sec, ok := api.Sections[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, sec)
}

func (api *FakeAPI) listEnrollments(c echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	sectionID := c.QueryParam("section_id")
	results := make([]enrollment.Enrollment, 0, len(api.Enrollments))
	for _, enr := range api.Enrollments {
		if sectionID != "" && enr.SectionID != sectionID {
			continue
		}
		results = append(results, enr)
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results, "count": len(results)})
}

func (api *FakeAPI) createEnrollment(c echo.Context) error {
	var ne enrollment.NewEnrollment
	if err := c.Bind(&ne); err != nil {
		return err
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	sec, ok := api.Sections[ne.SectionID]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	// authoritative capacity check
	if sec.IsFull() {
		return c.JSON(http.StatusBadRequest, map[string]string{"section_id": "section full"})
	}
	now := time.Now().UTC()
	enr := enrollment.Enrollment{
		ID:             api.nextID(),
		StudentID:      ne.StudentID,
		SectionID:      ne.SectionID,
		Status:         enrollment.StatusEnrolled,
		EnrollmentDate: now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	api.Enrollments[enr.ID] = enr
	sec.EnrollmentCount++
	api.Sections[sec.ID] = sec
	return c.JSON(http.StatusCreated, enr)
}

func (api *FakeAPI) getAssignment(c echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	asg, ok := api.Assignments[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, asg)
}

func (api *FakeAPI) createAssignment(c echo.Context) error {
	var na assignment.NewAssignment
	if err := c.Bind(&na); err != nil {
		return err
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	now := time.Now().UTC()
	asg := assignment.Assignment{
		ID:           api.nextID(),
		SectionID:    na.SectionID,
		Title:        na.Title,
		Description:  na.Description,
		Instructions: na.Instructions,
		Type:         na.Type,
		DueDate:      na.DueDate,
		MaxPoints:    na.MaxPoints,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	api.Assignments[asg.ID] = asg
	return c.JSON(http.StatusCreated, asg)
}

func (api *FakeAPI) getSubmission(c echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	sub, ok := api.Submissions[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, sub)
}

func (api *FakeAPI) createSubmission(c echo.Context) error {
	var ns submission.NewSubmission
	if err := c.Bind(&ns); err != nil {
		return err
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	now := time.Now().UTC()
	sub := submission.Submission{
		ID:           api.nextID(),
		AssignmentID: ns.AssignmentID,
		StudentID:    "1",
		Content:      ns.Content,
		Status:       submission.StatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	api.Submissions[sub.ID] = sub
	return c.JSON(http.StatusCreated, sub)
}

func (api *FakeAPI) submitSubmission(c echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()
	sub, ok := api.Submissions[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	if !submission.CanTransition(sub.Status, submission.StatusSubmitted) {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "cannot submit a " + sub.Status + " submission"})
	}
	sub.Status = submission.StatusSubmitted
	sub.SubmittedAt.SetValid(time.Now().UTC())
	sub.UpdatedAt = time.Now().UTC()
	api.Submissions[sub.ID] = sub
	return c.JSON(http.StatusOK, sub)
}

func (api *FakeAPI) gradeSubmission(c echo.Context) error {
	var g submission.Grade
	if err := c.Bind(&g); err != nil {
		return err
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	sub, ok := api.Submissions[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	target := submission.StatusGraded
	if g.Return {
		target = submission.StatusReturned
	}
	if !submission.CanTransition(sub.Status, target) {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "cannot grade a " + sub.Status + " submission"})
	}
	now := time.Now().UTC()
	sub.Status = target
	sub.PointsEarned.SetValid(g.PointsEarned)
	sub.Feedback = g.Feedback
	sub.GradedAt.SetValid(now)
	sub.GraderID.SetValid("1")
	sub.UpdatedAt = now
	api.Submissions[sub.ID] = sub
	return c.JSON(http.StatusOK, sub)
}

// JSONEqual compares two JSON documents structurally.
func JSONEqual(t *testing.T, b1, b2 []byte) bool {
	t.Helper()
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		t.Fatalf("JSONEqual() failed to unmarshal, %v", err)
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		t.Fatalf("JSONEqual() failed to unmarshal, %v", err)
	}
	return reflect.DeepEqual(j1, j2)
}

// JSONDiff renders a unified diff of two JSON documents for readable
// failure output.
func JSONDiff(t *testing.T, want, got []byte) string {
	t.Helper()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(indentJSON(t, want)),
		B:        difflib.SplitLines(indentJSON(t, got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("JSONDiff() failed, %v", err)
	}
	return diff
}

func indentJSON(t *testing.T, data []byte) string {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("indentJSON() failed to unmarshal, %v", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("indentJSON() failed to marshal, %v", err)
	}
	return string(out) + "\n"
}
