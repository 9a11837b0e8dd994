package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/middleware"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
	"github.com/harshbadhann2/society-home-connect/internal/session"
	"github.com/harshbadhann2/society-home-connect/internal/utils"
)

// SessionService is the session store as seen by the auth endpoints.
type SessionService interface {
	SignIn(ctx context.Context, email, password string) (*session.Session, session.Grant, error)
	Refresh(ctx context.Context, rawRefresh string) (*session.Session, session.Grant, error)
	SignOut(ctx context.Context, sessionID string, userID int64) error
	Register(ctx context.Context, email, password string, metadata map[string]any) (int64, error)
}

// ContextBinder keeps per-session auth contexts in step with sign-in and
// sign-out.
type ContextBinder interface {
	Bootstrap(ctx context.Context, s *session.Session) *auth.Context
	SignOut(sessionID string)
}

// AuthHandler bundles dependencies for the /v1/auth endpoints.
type AuthHandler struct {
	Sessions     SessionService
	Binder       ContextBinder
	CookieSecure bool
	Log          *slog.Logger
}

func NewAuthHandler(sessions SessionService, binder ContextBinder, cookieSecure bool, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{Sessions: sessions, Binder: binder, CookieSecure: cookieSecure, Log: logger}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Role     string `json:"role"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type authResp struct {
	SessionID string       `json:"session_id"`
	Role      auth.Role    `json:"role"`
	User      auth.Profile `json:"user"`
	Access    tokenPart    `json:"access"`
	Refresh   tokenPart    `json:"refresh"`
}

type stateResp struct {
	Status        string       `json:"status"`
	Authenticated bool         `json:"authenticated"`
	Role          auth.Role    `json:"role"`
	User          auth.Profile `json:"user"`
}

func stateBody(st auth.State) stateResp {
	return stateResp{Status: st.Status.String(), Authenticated: st.Authenticated, Role: st.Role, User: st.User}
}

// Login checks credentials, resolves the new session's auth context before
// answering, and returns the token pair (also set as cookies).
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sess, grant, err := h.Sessions.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid email or password"})
		}
		h.Log.Error("sign-in failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "sign-in failed"})
	}

	st := h.Binder.Bootstrap(ctx, sess).Snapshot()
	h.setCookies(c, grant)
	return c.JSON(http.StatusOK, authResp{
		SessionID: sess.ID,
		Role:      st.Role,
		User:      st.User,
		Access:    tokenPart{Token: grant.Access.Token, Expires: grant.Access.Exp},
		Refresh:   tokenPart{Token: grant.Refresh.Raw, Expires: grant.Refresh.Exp},
	})
}

// Refresh rotates the refresh token given in the body or cookie.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)
	raw := strings.TrimSpace(req.RefreshToken)
	if raw == "" {
		if ck, err := c.Cookie(middleware.RefreshCookie); err == nil {
			raw = ck.Value
		}
	}
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	sess, grant, err := h.Sessions.Refresh(ctx, raw)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefresh) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
		}
		h.Log.Error("token refresh failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "refresh failed"})
	}

	h.setCookies(c, grant)
	return c.JSON(http.StatusOK, echo.Map{
		"session_id": sess.ID,
		"access":     tokenPart{Token: grant.Access.Token, Expires: grant.Access.Exp},
		"refresh":    tokenPart{Token: grant.Refresh.Raw, Expires: grant.Refresh.Exp},
	})
}

// Logout revokes the caller's session and resets its auth context. Calling
// it without a session only clears cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sess := middleware.SessionFrom(c); sess != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
		defer cancel()
		if err := h.Sessions.SignOut(ctx, sess.ID, sess.UserID); err != nil {
			h.Log.Error("sign-out failed", "session_id", sess.ID, "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
		}
		h.Binder.SignOut(sess.ID)
	}
	h.clearCookies(c)
	return c.NoContent(http.StatusNoContent)
}

// Me reports the caller's auth state.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, stateBody(middleware.StateFrom(c)))
}

// Register creates an account with a role and display name. Admin only.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	role := auth.Role(strings.TrimSpace(req.Role))
	if role == auth.RoleNone {
		role = auth.DefaultRole
	}
	if !role.Valid() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be admin, staff or resident"})
	}
	meta := map[string]any{"role": string(role)}
	if name := strings.TrimSpace(req.Name); name != "" {
		meta["name"] = name
	}
	if contact := strings.TrimSpace(req.Contact); contact != "" {
		meta["contact"] = contact
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Sessions.Register(ctx, req.Email, req.Password, meta)
	switch {
	case err == nil:
	case errors.Is(err, utils.ErrWeakPassword):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	default:
		h.Log.Error("register failed", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "email": req.Email, "role": role})
}

func (h *AuthHandler) setCookies(c echo.Context, g session.Grant) {
	c.SetCookie(&http.Cookie{
		Name: middleware.AccessCookie, Value: g.Access.Token, Path: "/",
		Expires: g.Access.Exp, HttpOnly: true, Secure: h.CookieSecure, SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name: middleware.RefreshCookie, Value: g.Refresh.Raw, Path: "/v1/auth",
		Expires: g.Refresh.Exp, HttpOnly: true, Secure: h.CookieSecure, SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearCookies(c echo.Context) {
	for name, path := range map[string]string{middleware.AccessCookie: "/", middleware.RefreshCookie: "/v1/auth"} {
		c.SetCookie(&http.Cookie{Name: name, Path: path, MaxAge: -1, HttpOnly: true, Secure: h.CookieSecure})
	}
}
