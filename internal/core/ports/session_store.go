package ports

import (
	"context"

	"github.com/learnstack/demo-console/internal/core/domain"
)

// SessionStore is the durable client storage behind the session holder.
// Load returns (nil, nil) when no session is persisted; a stored record with
// either the token or the user missing also counts as absent.
type SessionStore interface {
	Load(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
}
