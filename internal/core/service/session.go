package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// SessionHolder owns the in-memory session for the lifetime of the console
// and mirrors every change to durable storage. All mutation happens on the
// command loop, one user action at a time, so there is no locking.
type SessionHolder struct {
	store   ports.SessionStore
	current *domain.Session
	log     zerolog.Logger
}

// NewSessionHolder returns an empty holder backed by store. Call Restore to
// pick up a session persisted by a previous run.
func NewSessionHolder(store ports.SessionStore, log zerolog.Logger) *SessionHolder {
	return &SessionHolder{store: store, log: log}
}

// Restore loads a previously persisted session into memory, if any.
func (h *SessionHolder) Restore(ctx context.Context) error {
	session, err := h.store.Load(ctx)
	if err != nil {
		return err
	}
	h.current = session
	return nil
}

// Get returns the current session, or nil when logged out.
func (h *SessionHolder) Get() *domain.Session {
	return h.current
}

// Token returns the current bearer token, or "" when logged out.
func (h *SessionHolder) Token() string {
	if h.current == nil {
		return ""
	}
	return h.current.Token
}

// Set replaces the session. The in-memory copy is authoritative; a mirror
// failure is logged and does not undo the replacement.
func (h *SessionHolder) Set(ctx context.Context, session *domain.Session) {
	h.current = session
	if err := h.store.Save(ctx, session); err != nil {
		h.log.Error().Err(err).Msg("failed to persist session")
	}
}

// Clear drops both the in-memory session and the persisted mirror.
func (h *SessionHolder) Clear(ctx context.Context) {
	h.current = nil
	if err := h.store.Clear(ctx); err != nil {
		h.log.Error().Err(err).Msg("failed to clear persisted session")
	}
}
