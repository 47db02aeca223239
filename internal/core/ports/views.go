package ports

import (
	"time"

	"github.com/learnstack/demo-console/internal/core/domain"
)

// The view ports are the render targets of the three consoles. A renderer is
// a pure projection: it mutates only the regions it owns and never touches
// session or request state.

// TokenSummary is the decoded, display-only view of the current bearer token.
type TokenSummary struct {
	// Preview is the token truncated for display (first 50 characters).
	Preview string
	Claims  map[string]any
	// ExpiresAt is zero when the token carries no exp claim.
	ExpiresAt time.Time
}

// AuthView owns the navbar, the user-info panel, the token panel, the modal
// error lines and the transient result banner of the auth console.
type AuthView interface {
	// RenderNavbar draws the logged-in or logged-out header. A nil session
	// means logged out.
	RenderNavbar(session *domain.Session)
	RenderUserInfo(user domain.User, token string)
	// ClearUserInfo reverts the user-info panel to its logged-out placeholder.
	ClearUserInfo()
	RenderToken(summary TokenSummary)
	// FormError surfaces a validation or rejection message inline, next to
	// the form that caused it.
	FormError(form, message string)
	// Flash shows a transient result banner that auto-dismisses.
	Flash(message string, ok bool)
}

// CurrencyView owns the status indicator, the currency list, the loading
// marker and the result/error regions of the currency console.
type CurrencyView interface {
	APIStatus(connected bool)
	Currencies(codes []string)
	Loading()
	Result(conversion *domain.Conversion)
	Error(message string)
}

// CatalogView owns the product table, the category list, the stats bar, the
// editor panel and the alert region of the catalog console.
type CatalogView interface {
	Loading()
	RenderProducts(products []domain.Product)
	RenderCategories(categories []string)
	RenderStats(stats domain.CatalogStats)
	// RenderEditor shows the product currently being edited.
	RenderEditor(product *domain.Product)
	// Message shows a transient alert that auto-dismisses.
	Message(text string, ok bool)
	Error(message string)
}

// Confirmer asks the user to confirm a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}
