package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

type stubAuthAPI struct {
	loginSession *domain.Session
	loginErr     error
	meUser       domain.User
	meErr        error
	registerErr  error
	probeResult  ports.ProbeResult
	probeErr     error

	loginCalls    int
	registerCalls int
	meTokens      []string
	probePaths    []string
	probeTokens   []string
}

func (s *stubAuthAPI) Login(_ context.Context, _, _ string) (*domain.Session, error) {
	s.loginCalls++
	return s.loginSession, s.loginErr
}

func (s *stubAuthAPI) Register(_ context.Context, _, _ string) (string, error) {
	s.registerCalls++
	return "User registered successfully", s.registerErr
}

func (s *stubAuthAPI) Me(_ context.Context, token string) (domain.User, error) {
	s.meTokens = append(s.meTokens, token)
	return s.meUser, s.meErr
}

func (s *stubAuthAPI) Probe(_ context.Context, path, token string) (ports.ProbeResult, error) {
	s.probePaths = append(s.probePaths, path)
	s.probeTokens = append(s.probeTokens, token)
	return s.probeResult, s.probeErr
}

type flash struct {
	msg string
	ok  bool
}

type fakeAuthView struct {
	navbars    []*domain.Session
	userInfos  []domain.User
	infoClears int
	tokens     []ports.TokenSummary
	formErrors map[string][]string
	flashes    []flash
}

func newFakeAuthView() *fakeAuthView {
	return &fakeAuthView{formErrors: make(map[string][]string)}
}

func (v *fakeAuthView) RenderNavbar(s *domain.Session) { v.navbars = append(v.navbars, s) }

func (v *fakeAuthView) RenderUserInfo(u domain.User, _ string) { v.userInfos = append(v.userInfos, u) }

func (v *fakeAuthView) ClearUserInfo() { v.infoClears++ }

func (v *fakeAuthView) RenderToken(s ports.TokenSummary) { v.tokens = append(v.tokens, s) }

func (v *fakeAuthView) FormError(form, msg string) {
	v.formErrors[form] = append(v.formErrors[form], msg)
}

func (v *fakeAuthView) Flash(msg string, ok bool) { v.flashes = append(v.flashes, flash{msg, ok}) }

func newAuthFlow(api *stubAuthAPI, store *memStore, view *fakeAuthView) *AuthFlow {
	return NewAuthFlow(api, NewSessionHolder(store, zerolog.Nop()), view, zerolog.Nop())
}

func TestAuthFlow_LoginSuccess(t *testing.T) {
	session := &domain.Session{
		Token: "abc.def.ghi",
		User:  domain.User{Username: "alice", Role: domain.RoleAdmin},
	}
	api := &stubAuthAPI{loginSession: session, meUser: session.User}
	store := &memStore{}
	view := newFakeAuthView()
	flow := newAuthFlow(api, store, view)

	flow.Login(context.Background(), "alice", "secret1")

	if store.session == nil || store.session.Token != "abc.def.ghi" {
		t.Fatalf("persisted token = %+v, want the server-issued one", store.session)
	}
	if len(api.meTokens) != 1 || api.meTokens[0] != "abc.def.ghi" {
		t.Fatalf("user-info call carried %v, want the exact issued token", api.meTokens)
	}
	if len(view.navbars) == 0 || view.navbars[0] == nil || view.navbars[0].User.Username != "alice" {
		t.Fatalf("navbar not rendered logged in: %+v", view.navbars)
	}
	if len(view.flashes) != 1 || view.flashes[0].msg != "Login successful!" || !view.flashes[0].ok {
		t.Fatalf("flashes = %+v", view.flashes)
	}
}

func TestAuthFlow_LoginRejectionShowsServerMessage(t *testing.T) {
	api := &stubAuthAPI{loginErr: &domain.RequestError{Status: 401, Message: "Invalid username or password"}}
	view := newFakeAuthView()
	flow := newAuthFlow(api, &memStore{}, view)

	flow.Login(context.Background(), "alice", "wrong")

	if got := view.formErrors["login"]; len(got) != 1 || got[0] != "Invalid username or password" {
		t.Fatalf("login errors = %v", got)
	}
	if len(view.flashes) != 0 {
		t.Fatalf("no flash expected on failure, got %v", view.flashes)
	}
}

func TestAuthFlow_LoginValidationSkipsNetwork(t *testing.T) {
	api := &stubAuthAPI{}
	view := newFakeAuthView()
	flow := newAuthFlow(api, &memStore{}, view)

	flow.Login(context.Background(), "", "secret1")

	if api.loginCalls != 0 {
		t.Fatalf("invalid input must not reach the network")
	}
	if len(view.formErrors["login"]) != 1 {
		t.Fatalf("expected an inline login error")
	}
}

func TestAuthFlow_RegisterShortPasswordSkipsNetwork(t *testing.T) {
	api := &stubAuthAPI{}
	view := newFakeAuthView()
	flow := newAuthFlow(api, &memStore{}, view)

	flow.Register(context.Background(), "bob", "12345")

	if api.registerCalls != 0 {
		t.Fatalf("short password must not reach the network")
	}
	if got := view.formErrors["register"]; len(got) != 1 || got[0] != "password must be at least 6 characters" {
		t.Fatalf("register errors = %v", got)
	}
}

func TestAuthFlow_StartRefreshesPersistedSession(t *testing.T) {
	persisted := &domain.Session{Token: "stored-token", User: domain.User{Username: "alice", Role: domain.RoleUser}}
	store := &memStore{session: persisted}
	api := &stubAuthAPI{meUser: persisted.User}
	view := newFakeAuthView()

	holder := NewSessionHolder(store, zerolog.Nop())
	if err := holder.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	flow := NewAuthFlow(api, holder, view, zerolog.Nop())

	flow.Start(context.Background())

	if len(api.meTokens) != 1 || api.meTokens[0] != "stored-token" {
		t.Fatalf("startup refresh carried %v, want the persisted token", api.meTokens)
	}
	if len(view.userInfos) != 1 {
		t.Fatalf("user info not rendered after refresh")
	}
}

func TestAuthFlow_ExpiredTokenIsImplicitLogout(t *testing.T) {
	persisted := &domain.Session{Token: "stale", User: domain.User{Username: "alice", Role: domain.RoleUser}}
	store := &memStore{session: persisted}
	api := &stubAuthAPI{meErr: domain.ErrAuthExpired}
	view := newFakeAuthView()

	holder := NewSessionHolder(store, zerolog.Nop())
	if err := holder.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	flow := NewAuthFlow(api, holder, view, zerolog.Nop())

	flow.RefreshUserInfo(context.Background())

	if holder.Get() != nil || store.session != nil {
		t.Fatalf("session must self-clear on auth expiry")
	}
	if len(view.navbars) != 1 || view.navbars[0] != nil {
		t.Fatalf("navbar must revert to logged out, got %+v", view.navbars)
	}
	if view.infoClears != 1 {
		t.Fatalf("user info panel not cleared")
	}
	if len(view.flashes) != 0 {
		t.Fatalf("expiry must not surface as a distinct error, got %v", view.flashes)
	}
}

func TestAuthFlow_LogoutClearsEverything(t *testing.T) {
	persisted := &domain.Session{Token: "t", User: domain.User{Username: "alice", Role: domain.RoleAdmin}}
	store := &memStore{session: persisted}
	view := newFakeAuthView()

	holder := NewSessionHolder(store, zerolog.Nop())
	if err := holder.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	flow := NewAuthFlow(&stubAuthAPI{}, holder, view, zerolog.Nop())

	flow.Logout(context.Background())

	if store.session != nil || store.clears != 1 {
		t.Fatalf("durable storage not cleared on logout")
	}
	if len(view.navbars) != 1 || view.navbars[0] != nil {
		t.Fatalf("navbar must render logged out regardless of prior role")
	}
	if len(view.flashes) != 1 || view.flashes[0].msg != "Logged out successfully" {
		t.Fatalf("flashes = %+v", view.flashes)
	}
}

func TestAuthFlow_ProtectedProbeRequiresLogin(t *testing.T) {
	api := &stubAuthAPI{}
	view := newFakeAuthView()
	flow := newAuthFlow(api, &memStore{}, view)

	flow.ProbeAdmin(context.Background())

	if len(api.probePaths) != 0 {
		t.Fatalf("probe must not fire without a session")
	}
	if len(view.flashes) != 1 || view.flashes[0].ok {
		t.Fatalf("expected the login-first warning, got %v", view.flashes)
	}
}

func TestAuthFlow_ProbeCarriesToken(t *testing.T) {
	store := &memStore{session: &domain.Session{Token: "tok", User: domain.User{Username: "a", Role: domain.RoleUser}}}
	api := &stubAuthAPI{probeResult: ports.ProbeResult{Path: "/user/profile", Status: 200, Body: "ok"}}
	view := newFakeAuthView()

	holder := NewSessionHolder(store, zerolog.Nop())
	if err := holder.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	flow := NewAuthFlow(api, holder, view, zerolog.Nop())

	flow.ProbeProfile(context.Background())

	if len(api.probeTokens) != 1 || api.probeTokens[0] != "tok" {
		t.Fatalf("probe tokens = %v", api.probeTokens)
	}
	if len(view.flashes) != 1 || !view.flashes[0].ok {
		t.Fatalf("expected a success flash, got %v", view.flashes)
	}
}

func TestAuthFlow_ShowTokenDecodesClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice",
		"role": "ADMIN",
		"exp":  exp.Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	store := &memStore{session: &domain.Session{Token: token, User: domain.User{Username: "alice", Role: domain.RoleAdmin}}}
	view := newFakeAuthView()
	holder := NewSessionHolder(store, zerolog.Nop())
	if err := holder.Restore(context.Background()); err != nil {
		t.Fatal(err)
	}
	flow := NewAuthFlow(&stubAuthAPI{}, holder, view, zerolog.Nop())

	flow.ShowToken()

	if len(view.tokens) != 1 {
		t.Fatalf("token panel not rendered")
	}
	summary := view.tokens[0]
	if summary.Claims["sub"] != "alice" {
		t.Fatalf("claims = %v", summary.Claims)
	}
	if !summary.ExpiresAt.Equal(exp) {
		t.Fatalf("ExpiresAt = %v, want %v", summary.ExpiresAt, exp)
	}
	if len(summary.Preview) > 53 {
		t.Fatalf("preview not truncated: %q", summary.Preview)
	}
}
