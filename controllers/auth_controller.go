package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/middleware"
	"github.com/portfolio-simple/services"
	"go.uber.org/zap"
)

// AfterLoginPath is where a successful login lands
const AfterLoginPath = "/upload"

// AuthController serves login and logout
type AuthController struct {
	auth         *services.AuthService
	log          *zap.Logger
	secureCookie bool
}

// NewAuthController creates the login/logout handlers
func NewAuthController(auth *services.AuthService, log *zap.Logger, secureCookie bool) *AuthController {
	return &AuthController{
		auth:         auth,
		log:          log,
		secureCookie: secureCookie,
	}
}

// ShowLogin renders the login form
func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Title":    "Login",
		"Username": "",
	})
}

// Login checks the credentials and sets the session cookie
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"Title":    "Login",
			"Username": "",
			"Error":    "Invalid form submission.",
		})
		return
	}

	ok, err := ac.auth.Login(req.Username, req.Password)
	if err != nil {
		ac.log.Error("login unavailable", zap.Error(err))
		_ = c.Error(err)
		renderError(c, http.StatusInternalServerError, "Login is not configured: "+err.Error())
		return
	}
	if !ok {
		ac.log.Warn("failed login attempt", zap.String("client_ip", c.ClientIP()))
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Title":    "Login",
			"Username": req.Username,
			"Error":    services.MsgInvalidCredentials,
		})
		return
	}

	token, expiresAt, err := ac.auth.IssueSession(dto.Session{LoggedIn: true})
	if err != nil {
		ac.log.Error("failed to issue session", zap.Error(err))
		_ = c.Error(err)
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrMissingSessionSecret) {
			renderError(c, status, "Login is not configured: "+err.Error())
			return
		}
		renderError(c, status, "Something went wrong. Please try again.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(time.Until(expiresAt).Seconds()),
		"/",
		"",
		ac.secureCookie,
		true,
	)

	SetFlash(c, "Logged in.")
	c.Redirect(http.StatusFound, AfterLoginPath)
}

// Logout clears the session cookie unconditionally
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", ac.secureCookie, true)
	c.Redirect(http.StatusFound, "/")
}
