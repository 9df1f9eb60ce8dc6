package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusjobs/jobboard/internal/stubapi"
	"github.com/campusjobs/jobboard/pkg/logger"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// board is a running stub backend plus one token file per named user.
type board struct {
	t   *testing.T
	url string
	dir string
}

func newBoard(t *testing.T) *board {
	t.Helper()
	store := stubapi.NewStore()
	srv := httptest.NewServer(stubapi.NewRouter(stubapi.Deps{
		Store: store,
		Auth:  stubapi.NewAuthService(store, "cli-secret", time.Hour),
		Log:   zerolog.Nop(),
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(logger.Reset)

	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv("TOKEN_STORE", "file")
	t.Setenv("LOG_LEVEL", "disabled")
	t.Setenv("LOG_PRETTY", "false")
	return &board{t: t, url: srv.URL, dir: t.TempDir()}
}

// as runs one CLI invocation with the session file of user.
func (b *board) as(user string, args ...string) result {
	b.t.Helper()
	b.t.Setenv("TOKEN_FILE", filepath.Join(b.dir, user+".json"))
	logger.Reset()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(""), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func (b *board) ok(user string, args ...string) string {
	b.t.Helper()
	r := b.as(user, args...)
	require.Equal(b.t, 0, r.code, "jobboard %s: %s", strings.Join(args, " "), r.stderr)
	return r.stdout
}

func (b *board) signup(user, role string) {
	b.t.Helper()
	out := b.ok(user, "register", "-name", user, "-email", user+"@example.com", "-password", "secret1", "-role", role)
	require.Contains(b.t, out, "Logged in as "+user+" ("+role+")")
}

func TestRun_Usage(t *testing.T) {
	var stderr bytes.Buffer
	code := run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{}, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "Available commands:")
	assert.Contains(t, stderr.String(), "department-save")

	stderr.Reset()
	code = run(context.Background(), []string{"frobnicate"}, strings.NewReader(""), &bytes.Buffer{}, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
}

func TestRun_SessionSurvivesBetweenRuns(t *testing.T) {
	b := newBoard(t)
	b.signup("ann", "student")

	out := b.ok("ann", "whoami")
	assert.Contains(t, out, "ann <ann@example.com>")
	assert.Contains(t, out, "role: student")

	assert.Equal(t, "Logged out\n", b.ok("ann", "logout"))
	r := b.as("ann", "whoami")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "log in to access this resource")

	out = b.ok("ann", "login", "-email", "ann@example.com", "-password", "secret1")
	assert.Contains(t, out, "Logged in as ann (student)")
}

func TestRun_LoginReadsPasswordFromStdin(t *testing.T) {
	b := newBoard(t)
	b.signup("ann", "student")
	b.ok("ann", "logout")

	t.Setenv("TOKEN_FILE", filepath.Join(b.dir, "ann.json"))
	logger.Reset()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"login", "-email", "ann@example.com"}, strings.NewReader("secret1\n"), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Password: Logged in as ann")
}

func TestRun_FailuresPrintNormalizedMessage(t *testing.T) {
	b := newBoard(t)
	b.signup("ann", "student")

	r := b.as("ann", "login", "-email", "ann@example.com", "-password", "wrong1")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Wrong password\n", r.stderr)
	// The 401 also drops the stored token, so the next run is anonymous.
	assert.Equal(t, 1, b.as("ann", "whoami").code)
	b.ok("ann", "login", "-email", "ann@example.com", "-password", "secret1")

	r = b.as("bob", "register", "-name", "Bob", "-email", "bob@example.com", "-password", "123")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "at least 6 characters")

	r = b.as("ann", "job", "-id", "42")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "Job not found\n", r.stderr)

	r = b.as("ann", "jobs", "-remote", "sometimes")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "-remote must be true or false")
}

func TestRun_RoleGuards(t *testing.T) {
	b := newBoard(t)
	b.signup("ann", "student")

	r := b.as("ann", "job-create", "-title", "x", "-description", "y")
	assert.Equal(t, 1, r.code)
	assert.Equal(t, "access denied: job-create is available to employer accounts only\n", r.stderr)

	r = b.as("nobody", "department")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "log in to access this resource")

	assert.Contains(t, b.ok("nobody", "jobs"), "No postings found")
}

func TestRun_HiringFlow(t *testing.T) {
	b := newBoard(t)
	b.signup("boss", "employer")
	b.signup("ann", "student")

	out := b.ok("boss", "job-create", "-title", "Go intern", "-description", "Build APIs", "-remote", "-spots", "2")
	assert.Equal(t, "Published job 1: Go intern\n", out)
	assert.Contains(t, b.ok("ann", "jobs", "-search", "go", "-remote", "true"), "Go intern")
	assert.Contains(t, b.ok("ann", "job", "-id", "1"), "Spots:     2")

	resume := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF-1.4"), 0o600))
	letter := strings.Repeat("I would like to join your team. ", 3)

	r := b.as("ann", "apply", "-job", "1", "-cover", "short")
	assert.Equal(t, 1, r.code, "cover letter below the minimum is rejected locally")

	out = b.ok("ann", "apply", "-job", "1", "-cover", letter, "-resume", resume)
	assert.Equal(t, "Application 1 submitted for job 1\n", out)

	out = b.ok("ann", "applications")
	assert.Contains(t, out, "Go intern")
	assert.Contains(t, out, "Submitted")

	out = b.ok("boss", "job-applications", "-job", "1")
	assert.Contains(t, out, "/uploads/resumes/")

	out = b.ok("boss", "application", "-id", "1")
	assert.Contains(t, out, b.url+"/uploads/resumes/")

	assert.Equal(t, "Application 1 is now Accepted\n", b.ok("boss", "set-status", "-id", "1", "-status", "accepted"))
	assert.Equal(t, "Not reviewed yet\n", b.ok("ann", "employer-review", "-application", "1"))

	b.ok("boss", "employer-review-create", "-application", "1", "-rating", "4", "-comment", "Solid work")
	assert.Equal(t, "****. Solid work\n", b.ok("ann", "employer-review", "-application", "1"))

	b.ok("ann", "review", "-job", "1", "-rating", "5", "-comment", "Great mentors")
	assert.Contains(t, b.ok("nobody", "reviews", "-job", "1"), "Great mentors")

	r = b.as("ann", "review", "-job", "1", "-rating", "9")
	assert.Equal(t, 1, r.code)
}

func TestRun_DepartmentLifecycle(t *testing.T) {
	b := newBoard(t)
	b.signup("boss", "employer")

	assert.Contains(t, b.ok("boss", "department"), "No department yet")

	r := b.as("boss", "department-save", "-name", "CS", "-phone", "812")
	assert.Equal(t, 1, r.code)

	out := b.ok("boss", "department-save", "-name", "CS", "-phone", "+7 912 345 67 89")
	assert.Contains(t, out, "9123456789")

	out = b.ok("boss", "department-save", "-name", "Computer Science", "-office", "B-204")
	assert.Contains(t, out, "Computer Science")
	assert.Contains(t, b.ok("boss", "department"), "B-204")

	assert.Equal(t, "Department deleted\n", b.ok("boss", "department-delete"))
	assert.Equal(t, "No department to delete\n", b.ok("boss", "department-delete"))
}

func TestRun_ExpiredSessionIsDropped(t *testing.T) {
	b := newBoard(t)
	path := filepath.Join(b.dir, "ann.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"stale"}`), 0o600))

	r := b.as("ann", "whoami")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "log in to access this resource")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "stale")
}

func TestRun_FlagErrorsGoToStderr(t *testing.T) {
	b := newBoard(t)

	r := b.as("nobody", "jobs", "-bogus")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "flag provided but not defined: -bogus")
	assert.Contains(t, r.stderr, "Usage of jobs:")

	r = b.as("nobody", "jobs", "-h")
	assert.Equal(t, 2, r.code)
	assert.Contains(t, r.stderr, "-search")
}

func TestRun_TokenRejectedMidCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/auth/me" {
			_, _ = io.WriteString(w, `{"id":1,"name":"Boss","email":"boss@example.com","role":"employer"}`)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Token revoked"}`)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(logger.Reset)

	path := filepath.Join(t.TempDir(), "boss.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token":"revoked-later"}`), 0o600))
	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv("TOKEN_STORE", "file")
	t.Setenv("TOKEN_FILE", path)
	t.Setenv("LOG_LEVEL", "disabled")
	t.Setenv("LOG_PRETTY", "false")
	logger.Reset()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"department"}, strings.NewReader(""), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Equal(t, "Token revoked\nsession expired, log in again: jobboard login -email you@example.com\n", stderr.String())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "revoked-later")
}
