package console

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// AuthView renders the auth console: navbar line, user-info panel, token
// panel, inline form errors and the transient result banner.
type AuthView struct {
	out    io.Writer
	banner *Banner
}

var _ ports.AuthView = (*AuthView)(nil)

func NewAuthView(out io.Writer, bannerTTL time.Duration) *AuthView {
	return &AuthView{out: out, banner: NewBanner(out, bannerTTL)}
}

func (v *AuthView) RenderNavbar(session *domain.Session) {
	if session == nil {
		fmt.Fprintln(v.out, "-- Not logged in | login <user> <pass> | register <user> <pass> --")
		return
	}
	fmt.Fprintf(v.out, "-- Welcome, %s [%s] | logout --\n", session.User.Username, roleBadge(session.User))
}

func (v *AuthView) RenderUserInfo(user domain.User, token string) {
	fmt.Fprintf(v.out, "Username: %s [%s]\n", user.Username, roleBadge(user))
	fmt.Fprintln(v.out, "Status:   Authenticated")
	fmt.Fprintf(v.out, "Token:    %s\n", truncate(token, 50))
}

func (v *AuthView) ClearUserInfo() {
	fmt.Fprintln(v.out, "Not logged in")
}

func (v *AuthView) RenderToken(summary ports.TokenSummary) {
	fmt.Fprintf(v.out, "Token: %s\n", summary.Preview)
	if len(summary.Claims) > 0 {
		names := make([]string, 0, len(summary.Claims))
		for name := range summary.Claims {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(v.out, "  %-10s %v\n", name, summary.Claims[name])
		}
	}
	if !summary.ExpiresAt.IsZero() {
		fmt.Fprintf(v.out, "Expires: %s\n", summary.ExpiresAt.Local().Format(time.RFC1123))
	}
}

func (v *AuthView) FormError(form, message string) {
	fmt.Fprintf(v.out, "[%s] %s\n", form, message)
}

func (v *AuthView) Flash(message string, ok bool) {
	v.banner.Show(message, ok)
}

// Banner exposes the underlying banner region, mainly for tests.
func (v *AuthView) Banner() *Banner {
	return v.banner
}

// roleBadge mirrors the navbar badge: ADMIN red, everything else USER blue.
// The terminal keeps the label, not the colour.
func roleBadge(user domain.User) string {
	if user.IsAdmin() {
		return domain.RoleAdmin
	}
	if user.Role == "" {
		return domain.RoleUser
	}
	return user.Role
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
