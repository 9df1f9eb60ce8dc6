package stubapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusjobs/jobboard/internal/core/domain"
)

// bcrypt only looks at the first 72 bytes of a password.
const maxPasswordBytes = 72

// AuthService implements registration, login and bearer token verification.
type AuthService struct {
	store     *Store
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(store *Store, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL, now: time.Now}
}

// Register creates an account. An empty role defaults to student.
func (s *AuthService) Register(_ context.Context, reg domain.Registration) (*domain.User, error) {
	if reg.Email == "" || reg.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := reg.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(truncatePassword(reg.Password)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.store.CreateUser(strings.TrimSpace(reg.Name), strings.TrimSpace(reg.Email), role, hash)
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, hash, err := s.store.UserByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(truncatePassword(password))) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to its user. Any defect in the token,
// including a user that no longer exists, is ErrInvalidCredentials.
func (s *AuthService) Authenticate(_ context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.store.UserByID(id)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, err
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   s.now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}

// truncatePassword cuts p to bcrypt's limit without splitting a rune.
func truncatePassword(p string) string {
	if len(p) <= maxPasswordBytes {
		return p
	}
	p = p[:maxPasswordBytes]
	for !utf8.ValidString(p) {
		p = p[:len(p)-1]
	}
	return p
}
