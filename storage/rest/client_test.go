package restrepos

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/shulehub/shule/core"
	logsvc "github.com/shulehub/shule/services/logger"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{APIBaseURL: srv.URL, HTTPTimeout: 5 * time.Second}
	c, err := NewClient(conf, core.StaticToken("tok-123"), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("NewClient() failed, %v", err)
	}
	return c, srv
}

func TestClientHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotReqID string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotReqID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))

	var out map[string]string
	if err := c.get("/ping", nil, &out); err != nil {
		t.Fatalf("get() failed, %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotReqID == "" {
		t.Error("X-Request-ID missing")
	}
}

func TestClientNoTokenOmitsAuthHeader(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	conf := &core.Config{APIBaseURL: srv.URL, HTTPTimeout: 5 * time.Second}
	c, err := NewClient(conf, core.NewSession(""), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("NewClient() failed, %v", err)
	}
	if err := c.get("/ping", nil, nil); err != nil {
		t.Fatalf("get() failed, %v", err)
	}
	if hasAuth {
		t.Error("empty token must not be forwarded as an Authorization header")
	}
}

func TestClientListEnvelope(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("page param = %q, want 2", got)
		}
		_, _ = w.Write([]byte(`{"results": [{"id": "1"}, {"id": "2"}], "count": 42}`))
	}))

	var out []struct {
		ID string `json:"id"`
	}
	params := map[string][]string{"page": {"2"}}
	count, err := c.list("/things", params, &out)
	if err != nil {
		t.Fatalf("list() failed, %v", err)
	}
	if count != 42 {
		t.Errorf("count = %d, want 42", count)
	}
	if len(out) != 2 || out[0].ID != "1" || out[1].ID != "2" {
		t.Errorf("results = %+v", out)
	}
}

func TestClientValidationError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email": "invalid email address", "role": "this field is required"}`))
	}))

	err := c.post("/users", map[string]string{}, nil)
	vErr, ok := errors.Cause(err).(*core.ValidationError)
	if !ok {
		t.Fatalf("error is %T, want *ValidationError", err)
	}
	want := map[string]string{"email": "invalid email address", "role": "this field is required"}
	got := vErr.FieldMap()
	if len(got) != len(want) {
		t.Fatalf("FieldMap() = %v, want %v", got, want)
	}
	for f, msg := range want {
		if got[f] != msg {
			t.Errorf("FieldMap()[%q] = %q, want %q", f, got[f], msg)
		}
	}
}

// A 400 whose only key is "error" is a global message, not a field map.
func TestClientBadRequestWithGlobalError(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "malformed request"}`))
	}))

	err := c.post("/users", map[string]string{}, nil)
	apiErr, ok := errors.Cause(err).(*core.APIError)
	if !ok {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "malformed request" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestClientAPIErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		checkErr func(error) bool
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error": "token expired"}`, wantMsg: "token expired", checkErr: core.IsUnauthorized},
		{name: "not found", status: http.StatusNotFound, body: `{"error": "not found"}`, wantMsg: "not found", checkErr: core.IsNotFound},
		{name: "server error no body", status: http.StatusInternalServerError, wantMsg: "Internal Server Error", checkErr: func(err error) bool { return core.IsAPIStatus(err, 500) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := c.get("/things", nil, nil)
			if !tt.checkErr(err) {
				t.Fatalf("unexpected error %v", err)
			}
			apiErr := errors.Cause(err).(*core.APIError)
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	conf := &core.Config{APIBaseURL: srv.URL, HTTPTimeout: time.Second}
	c, err := NewClient(conf, core.StaticToken(""), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatalf("NewClient() failed, %v", err)
	}
	srv.Close() // connection refused from here on

	err = c.get("/things", nil, nil)
	apiErr, ok := errors.Cause(err).(*core.APIError)
	if !ok {
		t.Fatalf("error is %T, want *APIError", err)
	}
	if apiErr.StatusCode != 0 || apiErr.Message != "network failure" || apiErr.Err == nil {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestClientUpload(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm() failed, %v", err)
		}
		if got := r.FormValue("kind"); got != "attachment" {
			t.Errorf("kind field = %q", got)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile() failed, %v", err)
		}
		defer f.Close()
		if hdr.Filename != "notes.pdf" {
			t.Errorf("Filename = %q", hdr.Filename)
		}
		content, _ := io.ReadAll(f)
		if string(content) != "pdf bytes" {
			t.Errorf("content = %q", content)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "1"})
	}))

	up := core.Upload{Name: "notes.pdf", ContentType: "application/pdf", Content: strings.NewReader("pdf bytes")}
	var out map[string]string
	err := c.upload("/assignments/1/attachments", map[string]string{"kind": "attachment"}, map[string]core.Upload{"file": up}, &out)
	if err != nil {
		t.Fatalf("upload() failed, %v", err)
	}
	if out["id"] != "1" {
		t.Errorf("out = %v", out)
	}
}

func TestClientDownload(t *testing.T) {
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="grades.csv"`)
		_, _ = w.Write([]byte("student,points\nawa,95\n"))
	}))

	f, err := c.download("/sections/1/grades/export", nil)
	if err != nil {
		t.Fatalf("download() failed, %v", err)
	}
	if f.Name != "grades.csv" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.ContentType != "text/csv" {
		t.Errorf("ContentType = %q", f.ContentType)
	}
	if string(f.Data) != "student,points\nawa,95\n" {
		t.Errorf("Data = %q", f.Data)
	}
}

func TestClientDelete(t *testing.T) {
	var gotMethod string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := c.del("/users/1"); err != nil {
		t.Fatalf("del() failed, %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
}
