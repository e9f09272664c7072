package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session is the per-client state threaded through each request
type Session struct {
	LoggedIn bool
}

// SessionClaims represents the JWT claims stored in the session cookie
type SessionClaims struct {
	LoggedIn bool `json:"loggedIn"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
