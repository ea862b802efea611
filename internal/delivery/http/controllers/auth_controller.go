package controllers

import (
	"log/slog"
	"net/http"
	"time"

	h "eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/delivery/http/middleware"
	"eventmanager/internal/domain"
)

// RegisterRequest is the request body for POST /register.
// is_admin is self-assigned and only advisory unless admin writes are enforced.
type RegisterRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"correct-horse"`
}

// LoginResponse is the response body for POST /login. The session token itself
// travels in the HttpOnly session cookie.
type LoginResponse struct {
	Message  string `json:"message" example:"Login successful"`
	Username string `json:"username" example:"alice"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// WhoAmIResponse is the response body for GET /whoami.
type WhoAmIResponse struct {
	Username string `json:"username" example:"alice"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

type AuthController struct {
	Logger       *slog.Logger
	Service      domain.AuthService
	CookieSecure bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{
		Logger:       logger,
		Service:      svc,
		CookieSecure: cookieSecure,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user with a unique, case-sensitive username. The password is stored salted and hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.APIError "validation error or username already exists"
// @Failure 500 {object} helpers.APIError
// @Router /register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Register(r.Context(), req.Username, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "user")
		return
	}
	h.WriteJSON(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and start a session. The session token is set as an HttpOnly cookie named "session".
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.APIError
// @Failure 401 {object} helpers.APIError "Invalid credentials"
// @Failure 500 {object} helpers.APIError
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, session, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "user")
		return
	}
	http.SetCookie(w, c.sessionCookie(token, session.ExpiresAt))
	h.WriteJSON(w, http.StatusOK, LoginResponse{
		Message:  "Login successful",
		Username: session.Username,
		IsAdmin:  session.IsAdmin,
	})
}

// Logout godoc
// @Summary Log out
// @Description End the current session. Succeeds when no session exists.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.MessageResponse
// @Failure 500 {object} helpers.APIError
// @Router /logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, c.clearedCookie())
	if err := c.Service.Logout(r.Context(), middleware.TokenFromRequest(r)); err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "session")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Logged out")
}

// WhoAmI godoc
// @Summary Current user
// @Description Return the username and admin flag of the logged-in user.
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} controllers.WhoAmIResponse
// @Failure 401 {object} helpers.APIError "Not logged in"
// @Router /whoami [get]
func (c *AuthController) WhoAmI(w http.ResponseWriter, r *http.Request) {
	s, ok := domain.SessionFromContext(r.Context())
	if !ok {
		h.WriteServiceError(c.Logger, w, r, domain.ErrNotAuthenticated, "session")
		return
	}
	h.WriteJSON(w, http.StatusOK, WhoAmIResponse{Username: s.Username, IsAdmin: s.IsAdmin})
}

func (c *AuthController) sessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: c.sameSite(),
	}
}

func (c *AuthController) clearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.CookieSecure,
		SameSite: c.sameSite(),
	}
}

// Cross-site front-ends need SameSite=None, which browsers only accept on Secure cookies.
func (c *AuthController) sameSite() http.SameSite {
	if c.CookieSecure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
