package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campusjobs/jobboard/internal/core/domain"
	"github.com/campusjobs/jobboard/internal/core/ports"
)

// SessionState is the lifecycle position of a SessionStore.
type SessionState int

const (
	// SessionLoading covers construction until Initialize has finished.
	SessionLoading SessionState = iota
	// SessionAnonymous means no credential is held.
	SessionAnonymous
	// SessionAuthenticated means a token and its resolved user are held.
	SessionAuthenticated
	// SessionInvalidated means a persisted token failed verification and was discarded.
	SessionInvalidated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	case SessionInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// Session is a point-in-time copy of the store's state.
type Session struct {
	Token   string
	User    *domain.User
	Loading bool
	State   SessionState
}

// IsAuthenticated holds only when both a token and a user are present.
func (s Session) IsAuthenticated() bool { return s.Token != "" && s.User != nil }

func (s Session) IsStudent() bool  { return s.hasRole(domain.RoleStudent) }
func (s Session) IsEmployer() bool { return s.hasRole(domain.RoleEmployer) }
func (s Session) IsAdmin() bool    { return s.hasRole(domain.RoleAdmin) }

func (s Session) hasRole(r domain.Role) bool { return s.User != nil && s.User.Role == r }

// AuthResult is what Login and Register hand back to callers. They branch on
// Success; Error carries the message to display.
type AuthResult struct {
	Success bool
	Error   string
}

var (
	errMissingToken = errors.New("login response did not include an access token")
	errNoUser       = errors.New("token did not resolve to a user")
)

// SessionStore owns "who is using this client right now". Construct one per
// process and pass it to everything that needs it.
//
// Mutations are not serialized against each other: overlapping Login, Logout
// and a gateway-side 401 clear race, and whichever finishes last wins. The
// mutex only keeps individual field updates consistent for readers.
type SessionStore struct {
	api    ports.AuthAPI
	tokens ports.TokenStore
	log    zerolog.Logger

	initOnce sync.Once

	mu      sync.RWMutex
	token   string
	user    *domain.User
	loading bool
	state   SessionState
}

// NewSessionStore returns a store in the loading state. Call Initialize next.
func NewSessionStore(api ports.AuthAPI, tokens ports.TokenStore, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		api:     api,
		tokens:  tokens,
		log:     log,
		loading: true,
		state:   SessionLoading,
	}
}

// Initialize resolves the persisted token into a verified user. It runs its
// body once per store; later calls return the current snapshot.
func (s *SessionStore) Initialize(ctx context.Context) Session {
	s.initOnce.Do(func() { s.initialize(ctx) })
	return s.Snapshot()
}

func (s *SessionStore) initialize(ctx context.Context) {
	stored, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: reading persisted token failed, starting anonymous")
		stored = ""
	}

	if stored == "" {
		s.set("", nil, SessionAnonymous)
		s.log.Debug().Msg("session: no persisted token")
		return
	}

	s.mu.Lock()
	s.token = stored
	s.mu.Unlock()

	user, err := s.api.Me(ctx)
	if err == nil && user == nil {
		err = errNoUser
	}
	if err != nil {
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.log.Warn().Err(clearErr).Msg("session: clearing rejected token failed")
		}
		s.set("", nil, SessionInvalidated)
		s.log.Info().Err(err).Msg("session: persisted token rejected")
		return
	}

	s.set(stored, user, SessionAuthenticated)
	s.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("session: restored")
}

// Login exchanges credentials for a token. On failure the prior state is
// left exactly as it was.
func (s *SessionStore) Login(ctx context.Context, email, password string) AuthResult {
	return s.login(ctx, domain.Credentials{Email: email, Password: password})
}

func (s *SessionStore) login(ctx context.Context, creds domain.Credentials) AuthResult {
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Info().Err(err).Msg("session: login failed")
		return AuthResult{Error: err.Error()}
	}
	if resp == nil || resp.AccessToken == "" || resp.User == nil {
		s.log.Warn().Msg("session: login response incomplete")
		return AuthResult{Error: errMissingToken.Error()}
	}

	if err := s.tokens.Save(ctx, resp.AccessToken); err != nil {
		s.log.Error().Err(err).Msg("session: persisting token failed")
		return AuthResult{Error: "could not save session: " + err.Error()}
	}

	s.set(resp.AccessToken, resp.User, SessionAuthenticated)
	s.log.Info().Int64("user_id", resp.User.ID).Str("role", string(resp.User.Role)).Msg("session: logged in")
	return AuthResult{Success: true}
}

// Register creates the account and then logs in with the submitted
// credentials. An account created without a session is reported as a login
// failure; it is not rolled back.
func (s *SessionStore) Register(ctx context.Context, reg domain.Registration) AuthResult {
	if _, err := s.api.Register(ctx, reg); err != nil {
		s.log.Info().Err(err).Msg("session: registration failed")
		return AuthResult{Error: err.Error()}
	}
	return s.login(ctx, reg.Credentials())
}

// Logout drops the credential everywhere. It cannot fail; a slot that refuses
// to clear is logged and the in-memory state is reset regardless.
func (s *SessionStore) Logout(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session: clearing persisted token failed")
	}
	s.set("", nil, SessionAnonymous)
}

// Snapshot returns a copy of the current state.
func (s *SessionStore) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var user *domain.User
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Session{Token: s.token, User: user, Loading: s.loading, State: s.state}
}

func (s *SessionStore) IsAuthenticated() bool { return s.Snapshot().IsAuthenticated() }
func (s *SessionStore) Loading() bool         { return s.Snapshot().Loading }
func (s *SessionStore) User() *domain.User    { return s.Snapshot().User }
func (s *SessionStore) IsStudent() bool       { return s.Snapshot().IsStudent() }
func (s *SessionStore) IsEmployer() bool      { return s.Snapshot().IsEmployer() }
func (s *SessionStore) IsAdmin() bool         { return s.Snapshot().IsAdmin() }

func (s *SessionStore) set(token string, user *domain.User, state SessionState) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.loading = false
	s.state = state
	s.mu.Unlock()
}
