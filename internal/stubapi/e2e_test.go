package stubapi_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusjobs/jobboard/internal/api"
	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/service"
	"github.com/campusjobs/jobboard/internal/infrastructure/tokenstore"
	"github.com/campusjobs/jobboard/internal/stubapi"
)

// client is one browser-like session against a shared backend.
type client struct {
	tokens  *tokenstore.Memory
	gw      *api.Gateway
	session *service.SessionStore
}

func startBackend(t *testing.T) *httptest.Server {
	t.Helper()
	store := stubapi.NewStore()
	auth := stubapi.NewAuthService(store, "e2e-secret", time.Hour)
	srv := httptest.NewServer(stubapi.NewRouter(stubapi.Deps{Store: store, Auth: auth, Log: zerolog.Nop()}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string, tokens *tokenstore.Memory) *client {
	t.Helper()
	if tokens == nil {
		tokens = tokenstore.NewMemory()
	}
	gw, err := api.New(api.Options{BaseURL: baseURL, Timeout: 5 * time.Second}, tokens, zerolog.Nop())
	require.NoError(t, err)
	return &client{
		tokens:  tokens,
		gw:      gw,
		session: service.NewSessionStore(gw.Auth(), tokens, zerolog.Nop()),
	}
}

func (c *client) register(t *testing.T, name, email string, role domain.Role) {
	t.Helper()
	res := c.session.Register(context.Background(), domain.Registration{
		Name: name, Email: email, Password: "secret1", ConfirmPassword: "secret1", Role: role,
	})
	require.True(t, res.Success, res.Error)
}

func stored(t *testing.T, tokens *tokenstore.Memory) string {
	t.Helper()
	tok, err := tokens.Load(context.Background())
	require.NoError(t, err)
	return tok
}

func TestE2E_RegisterLoginLogout(t *testing.T) {
	srv := startBackend(t)
	c := newClient(t, srv.URL, nil)
	ctx := context.Background()

	assert.Equal(t, service.SessionAnonymous, c.session.Initialize(ctx).State)

	c.register(t, "Ann", "ann@example.com", domain.RoleStudent)
	snap := c.session.Snapshot()
	require.True(t, snap.IsAuthenticated())
	assert.True(t, snap.IsStudent())
	assert.Equal(t, snap.Token, stored(t, c.tokens))

	c.session.Logout(ctx)
	c.session.Logout(ctx)
	assert.False(t, c.session.IsAuthenticated())
	assert.Empty(t, stored(t, c.tokens))

	res := c.session.Login(ctx, "ann@example.com", "secret1")
	require.True(t, res.Success, res.Error)
	assert.Equal(t, "ann@example.com", c.session.User().Email)
}

func TestE2E_WrongPasswordLeavesSessionUntouched(t *testing.T) {
	srv := startBackend(t)
	c := newClient(t, srv.URL, nil)
	ctx := context.Background()
	c.session.Initialize(ctx)
	c.register(t, "Ann", "ann@example.com", domain.RoleStudent)
	before := c.session.Snapshot()

	res := c.session.Login(ctx, "ann@example.com", "nope")
	assert.False(t, res.Success)
	assert.Equal(t, "Wrong password", res.Error)

	after := c.session.Snapshot()
	assert.Equal(t, before.Token, after.Token)
	assert.Equal(t, before.User, after.User)
}

func TestE2E_DuplicateRegistration(t *testing.T) {
	srv := startBackend(t)
	first := newClient(t, srv.URL, nil)
	first.register(t, "Ann", "ann@example.com", domain.RoleStudent)

	second := newClient(t, srv.URL, nil)
	second.session.Initialize(context.Background())
	res := second.session.Register(context.Background(), domain.Registration{
		Name: "Imposter", Email: "ann@example.com", Password: "secret1", Role: domain.RoleStudent,
	})
	assert.False(t, res.Success)
	assert.Equal(t, "A user with email ann@example.com is already registered", res.Error)
	assert.False(t, second.session.IsAuthenticated())
}

func TestE2E_RestoreFromPersistedToken(t *testing.T) {
	srv := startBackend(t)
	first := newClient(t, srv.URL, nil)
	first.register(t, "Boss", "boss@example.com", domain.RoleEmployer)

	// A new process sharing the same slot resumes the session.
	second := newClient(t, srv.URL, first.tokens)
	snap := second.session.Initialize(context.Background())
	assert.Equal(t, service.SessionAuthenticated, snap.State)
	assert.True(t, snap.IsEmployer())
	assert.False(t, snap.Loading)
}

func TestE2E_InvalidPersistedTokenIsDiscarded(t *testing.T) {
	srv := startBackend(t)
	tokens := tokenstore.NewMemory()
	require.NoError(t, tokens.Save(context.Background(), "forged.jwt.value"))

	c := newClient(t, srv.URL, tokens)
	snap := c.session.Initialize(context.Background())
	assert.Equal(t, service.SessionInvalidated, snap.State)
	assert.False(t, snap.IsAuthenticated())
	assert.Empty(t, stored(t, tokens))
}

func TestE2E_UnauthorizedResponseClearsSlot(t *testing.T) {
	srv := startBackend(t)
	c := newClient(t, srv.URL, nil)
	c.register(t, "Ann", "ann@example.com", domain.RoleStudent)
	require.NoError(t, c.tokens.Save(context.Background(), "expired"))

	_, err := c.gw.Applications().List(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsUnauthorized(err))
	assert.Equal(t, "Could not validate credentials", err.Error())
	assert.Empty(t, stored(t, c.tokens))
}

func TestE2E_EmployerDepartmentLifecycle(t *testing.T) {
	srv := startBackend(t)
	c := newClient(t, srv.URL, nil)
	c.register(t, "Boss", "boss@example.com", domain.RoleEmployer)
	ctx := context.Background()
	depts := service.NewDepartmentService(c.gw.Departments(), service.NewValidator())

	mine, err := depts.Mine(ctx)
	require.NoError(t, err)
	assert.Nil(t, mine, "no department yet")

	created, err := depts.Save(ctx, domain.DepartmentInput{Name: "Computer Science", Phone: "+7 (912) 345-67-89"})
	require.NoError(t, err)
	assert.Equal(t, "9123456789", created.Phone)

	updated, err := depts.Save(ctx, domain.DepartmentInput{Name: "CS Department"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "CS Department", updated.Name)

	deleted, err := depts.Delete(ctx)
	require.NoError(t, err)
	assert.True(t, deleted)

	mine, err = depts.Mine(ctx)
	require.NoError(t, err)
	assert.Nil(t, mine)
}

func TestE2E_StudentAppliesWithResume(t *testing.T) {
	srv := startBackend(t)
	ctx := context.Background()

	employer := newClient(t, srv.URL, nil)
	employer.register(t, "Boss", "boss@example.com", domain.RoleEmployer)
	job, err := employer.gw.Jobs().Create(ctx, domain.JobInput{Title: "Go intern", Description: "Build APIs", Remote: true})
	require.NoError(t, err)

	student := newClient(t, srv.URL, nil)
	student.register(t, "Ann", "ann@example.com", domain.RoleStudent)
	apps := service.NewApplicationService(student.gw.Applications(), student.gw.Jobs(), service.NewValidator(), 2, zerolog.Nop())

	app, err := apps.Submit(ctx, service.SubmitInput{
		JobID:       job.ID,
		CoverLetter: strings.Repeat("I enjoy building backend services. ", 3),
		Resume:      &service.Resume{Name: "cv.pdf", Size: 8, Body: strings.NewReader("%PDF-1.4")},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationSubmitted, app.Status)
	assert.True(t, strings.HasPrefix(app.ResumeURL, "/uploads/resumes/"))
	assert.Equal(t, srv.URL+app.ResumeURL, student.gw.Applications().ResumeURL(app.ResumeURL))

	listed, err := apps.ListWithJobs(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Job)
	assert.Equal(t, "Go intern", listed[0].Job.Title)

	// The employer moves it through review and rates the applicant.
	reviewer := service.NewApplicationService(employer.gw.Applications(), employer.gw.Jobs(), service.NewValidator(), 0, zerolog.Nop())
	accepted, err := reviewer.Review(ctx, app.ID, domain.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationAccepted, accepted.Status)

	none, err := employer.gw.EmployerReviews().ForApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = employer.gw.EmployerReviews().Create(ctx, domain.EmployerReviewInput{ApplicationID: app.ID, Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	// A student cannot reach the employer-only listing.
	_, err = student.gw.Applications().ByJob(ctx, job.ID)
	require.Error(t, err)
	assert.Equal(t, 403, api.StatusOf(err))
	assert.NotEmpty(t, stored(t, student.tokens), "403 must not clear the slot")
}

func TestE2E_MissingJobIsNotFound(t *testing.T) {
	srv := startBackend(t)
	c := newClient(t, srv.URL, nil)

	_, err := c.gw.Jobs().Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, "Job not found", err.Error())
}
