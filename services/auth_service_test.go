package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/portfolio-simple/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-session-secret"

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService("admin", string(hash), testSecret)
}

func TestLogin(t *testing.T) {
	auth := newTestAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct credentials", "admin", "s3cret", true},
		{"wrong password", "admin", "wrong", false},
		{"unknown user", "root", "s3cret", false},
		{"both wrong", "root", "wrong", false},
		{"username is case sensitive", "Admin", "s3cret", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := auth.Login(tt.username, tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestLoginWithoutPasswordHash(t *testing.T) {
	auth := NewAuthService("admin", "", testSecret)

	ok, err := auth.Login("admin", "anything")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMissingPasswordHash)
}

func TestLoginWithMalformedHash(t *testing.T) {
	auth := NewAuthService("admin", "password", testSecret)

	ok, err := auth.Login("admin", "password")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestSessionRoundTrip(t *testing.T) {
	auth := newTestAuthService(t)

	token, expiresAt, err := auth.IssueSession(dto.Session{LoggedIn: true})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), expiresAt, time.Minute)

	session, err := auth.ParseSession(token)
	require.NoError(t, err)
	assert.True(t, session.LoggedIn)
}

func TestParseSessionRejectsOtherSecret(t *testing.T) {
	auth := newTestAuthService(t)
	other := NewAuthService("admin", "", "another-secret")

	token, _, err := other.IssueSession(dto.Session{LoggedIn: true})
	require.NoError(t, err)

	_, err = auth.ParseSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionRejectsExpiredToken(t *testing.T) {
	auth := newTestAuthService(t)
	issuedAt := time.Now().Add(-48 * time.Hour)
	auth.now = func() time.Time { return issuedAt }

	token, _, err := auth.IssueSession(dto.Session{LoggedIn: true})
	require.NoError(t, err)

	auth.now = time.Now
	_, err = auth.ParseSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionRejectsUnsignedToken(t *testing.T) {
	auth := newTestAuthService(t)

	claims := dto.SessionClaims{
		LoggedIn: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = auth.ParseSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = auth.ParseSession("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestIssueSessionWithoutSecret(t *testing.T) {
	auth := NewAuthService("admin", "", "")

	_, _, err := auth.IssueSession(dto.Session{LoggedIn: true})
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestDummyHashIsBuiltOnce(t *testing.T) {
	first := getDummyHash()
	cost, err := bcrypt.Cost(first)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
	assert.Equal(t, first, getDummyHash())

	// an unknown user is compared against it and fails cleanly
	ok, err := newTestAuthService(t).Login("nobody", "portfolio-dummy-password")
	require.NoError(t, err)
	assert.False(t, ok)
}
