package api

import (
	"context"

	"storefront/internal/domain/repository"
)

// stateTokenSource reads the bearer credential out of the persisted session
// state. Returning an empty string keeps requests anonymous.
type stateTokenSource struct {
	sessions repository.SessionRepository
}

// NewStateTokenSource builds a TokenSource backed by the session state.
func NewStateTokenSource(sessions repository.SessionRepository) TokenSource {
	return &stateTokenSource{sessions: sessions}
}

// Token returns the current credential, or "" when no session is held.
func (s *stateTokenSource) Token(ctx context.Context) string {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return ""
	}

	return session.Token
}
