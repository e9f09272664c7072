package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/portfolio-simple/dto"
	"golang.org/x/crypto/bcrypt"
)

// MsgInvalidCredentials is shown for any failed login, whichever field was wrong
const MsgInvalidCredentials = "Invalid credentials. Try again."

// SessionTTL is how long a login lasts
const SessionTTL = 24 * time.Hour

var (
	ErrMissingPasswordHash  = errors.New("ADMIN_PASSWORD_HASH not set in environment")
	ErrMissingSessionSecret = errors.New("SESSION_SECRET not set in environment")
	ErrInvalidSession       = errors.New("invalid session token")
)

// dummyHash is compared against when the username is wrong, so both paths cost one bcrypt check.
// It is built on first use to keep it off the startup path.
var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func getDummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("portfolio-dummy-password"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// AuthService checks credentials for the single admin identity and signs session tokens
type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

// NewAuthService creates the auth gate from configuration
func NewAuthService(username, passwordHash, secret string) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		now:          time.Now,
	}
}

// Login reports whether username and password match the configured admin.
// The error is only set for configuration problems, never for wrong credentials.
func (s *AuthService) Login(username, password string) (bool, error) {
	if len(s.passwordHash) == 0 {
		return false, ErrMissingPasswordHash
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	hash := s.passwordHash
	if !userOK {
		hash = getDummyHash()
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, fmt.Errorf("invalid ADMIN_PASSWORD_HASH: %w", err)
	}

	return userOK && err == nil, nil
}

// IssueSession signs a session token
func (s *AuthService) IssueSession(session dto.Session) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrMissingSessionSecret
	}

	now := s.now()
	expiresAt := now.Add(SessionTTL)

	claims := dto.SessionClaims{
		LoggedIn: session.LoggedIn,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ParseSession validates a session token and returns the session it carries
func (s *AuthService) ParseSession(tokenString string) (dto.Session, error) {
	if len(s.secret) == 0 {
		return dto.Session{}, ErrMissingSessionSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return dto.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(*dto.SessionClaims)
	if !ok || !token.Valid {
		return dto.Session{}, ErrInvalidSession
	}

	return dto.Session{LoggedIn: claims.LoggedIn}, nil
}
