package ports

import (
	"context"

	"github.com/learnstack/demo-console/internal/core/domain"
)

// ProbeResult is the raw outcome of hitting one of the demo access-control
// endpoints. Probes report status and body verbatim, even on failure.
type ProbeResult struct {
	Path   string
	Status int
	Body   string
}

// OK reports whether the probe got a 2xx response.
func (r ProbeResult) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// AuthAPI is the HTTP contract of the auth demo backend.
type AuthAPI interface {
	// Login exchanges credentials for a session (token plus identity).
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Register creates an account and returns the server's confirmation message.
	Register(ctx context.Context, username, password string) (string, error)
	// Me fetches the identity behind the given bearer token.
	Me(ctx context.Context, token string) (domain.User, error)
	// Probe hits an access-control demo endpoint, with or without a token.
	Probe(ctx context.Context, path, token string) (ProbeResult, error)
}
