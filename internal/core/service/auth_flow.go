package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
	"github.com/learnstack/demo-console/internal/metrics"
)

const tokenPreviewLen = 50

// AuthFlow orchestrates the auth console: validate input, dispatch the call,
// update the session holder, redraw the affected regions. Each method is one
// user action.
type AuthFlow struct {
	api      ports.AuthAPI
	sessions *SessionHolder
	view     ports.AuthView
	log      zerolog.Logger
}

func NewAuthFlow(api ports.AuthAPI, sessions *SessionHolder, view ports.AuthView, log zerolog.Logger) *AuthFlow {
	return &AuthFlow{api: api, sessions: sessions, view: view, log: log}
}

// Start mirrors page load: draw the navbar, and refresh the user info when a
// session survived from a previous run.
func (f *AuthFlow) Start(ctx context.Context) {
	f.view.RenderNavbar(f.sessions.Get())
	if f.sessions.Get() != nil {
		f.RefreshUserInfo(ctx)
	}
}

type loginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Login exchanges credentials for a session. On success the session is
// persisted, the navbar redrawn, and the user info refreshed.
func (f *AuthFlow) Login(ctx context.Context, username, password string) {
	if err := check(loginInput{Username: username, Password: password}); err != nil {
		metrics.ValidationsTotal.WithLabelValues("auth").Inc()
		f.view.FormError("login", err.Error())
		return
	}

	session, err := f.api.Login(ctx, username, password)
	if err != nil {
		f.log.Warn().Err(err).Str("username", username).Msg("login failed")
		f.view.FormError("login", messageFor(err, "Login failed"))
		return
	}

	f.sessions.Set(ctx, session)
	f.view.RenderNavbar(session)
	f.RefreshUserInfo(ctx)
	f.view.Flash("Login successful!", true)
}

type registerInput struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// Register creates an account. The session is untouched; the user still has
// to log in afterwards.
func (f *AuthFlow) Register(ctx context.Context, username, password string) {
	if err := check(registerInput{Username: username, Password: password}); err != nil {
		metrics.ValidationsTotal.WithLabelValues("auth").Inc()
		f.view.FormError("register", err.Error())
		return
	}

	if _, err := f.api.Register(ctx, username, password); err != nil {
		f.log.Warn().Err(err).Str("username", username).Msg("registration failed")
		f.view.FormError("register", messageFor(err, "Registration failed"))
		return
	}

	f.view.Flash(fmt.Sprintf("User %s registered successfully! You can now login.", username), true)
}

// Logout clears both storage keys and reverts the navbar and user panel to
// the logged-out rendering.
func (f *AuthFlow) Logout(ctx context.Context) {
	f.sessions.Clear(ctx)
	f.view.RenderNavbar(nil)
	f.view.ClearUserInfo()
	f.view.Flash("Logged out successfully", true)
}

// RefreshUserInfo fetches /api/auth/me with the current token. A 401 means
// the session is no longer valid: the holder self-clears and the view drops
// to logged out, with no distinct error shown.
func (f *AuthFlow) RefreshUserInfo(ctx context.Context) {
	token := f.sessions.Token()
	if token == "" {
		return
	}

	user, err := f.api.Me(ctx, token)
	switch {
	case errors.Is(err, domain.ErrAuthExpired):
		f.log.Debug().Msg("stored token no longer valid, dropping session")
		f.sessions.Clear(ctx)
		f.view.RenderNavbar(nil)
		f.view.ClearUserInfo()
		return
	case err != nil:
		f.log.Error().Err(err).Msg("failed to fetch user info")
		return
	}

	f.sessions.Set(ctx, &domain.Session{Token: token, User: user})
	f.view.RenderUserInfo(user, token)
	f.view.RenderNavbar(f.sessions.Get())
}

// ProbePublic hits the unauthenticated demo endpoint.
func (f *AuthFlow) ProbePublic(ctx context.Context) {
	f.probe(ctx, "/test", false)
}

// ProbeProfile hits the USER-protected demo endpoint.
func (f *AuthFlow) ProbeProfile(ctx context.Context) {
	f.probe(ctx, "/user/profile", true)
}

// ProbeAdmin hits the ADMIN-protected demo endpoint.
func (f *AuthFlow) ProbeAdmin(ctx context.Context) {
	f.probe(ctx, "/admin/dashboard", true)
}

// probe reports the raw status and body of an access-control endpoint. A
// 401/403 here is the demo's point, so it shows as a result, not a logout.
func (f *AuthFlow) probe(ctx context.Context, path string, needsToken bool) {
	var token string
	if needsToken {
		if f.sessions.Get() == nil {
			f.view.Flash("Please login first to access protected endpoints", false)
			return
		}
		token = f.sessions.Token()
	}

	res, err := f.api.Probe(ctx, path, token)
	if err != nil {
		f.view.Flash("Error: "+err.Error(), false)
		return
	}
	f.view.Flash(fmt.Sprintf("GET %s\nStatus: %d\nResponse: %s", path, res.Status, res.Body), res.OK())
}

// ShowToken renders the token panel: truncated preview plus the decoded
// claims. The parse is unverified; the client holds no signing key and only
// displays what the token says about itself.
func (f *AuthFlow) ShowToken() {
	session := f.sessions.Get()
	if session == nil {
		f.view.Flash("Please login first to access protected endpoints", false)
		return
	}

	summary := ports.TokenSummary{Preview: truncateToken(session.Token)}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(session.Token, claims); err != nil {
		f.log.Debug().Err(err).Msg("token is not a parseable JWT")
	} else {
		summary.Claims = claims
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			summary.ExpiresAt = exp.Time
		}
	}

	f.view.RenderToken(summary)
}

func truncateToken(token string) string {
	if len(token) <= tokenPreviewLen {
		return token
	}
	return token[:tokenPreviewLen] + "..."
}
