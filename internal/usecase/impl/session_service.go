package impl

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	repo      repository.SessionRepository
	auth      service.AuthService
	inspector service.TokenInspector
	logger    *slog.Logger

	mu          sync.Mutex
	subscribers []func(*entity.Session)
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	repo repository.SessionRepository,
	auth service.AuthService,
	inspector service.TokenInspector,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		repo:      repo,
		auth:      auth,
		inspector: inspector,
		logger:    logger,
	}
}

// Login authenticates against the auth API and persists the session.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	session, err := srv.auth.Login(ctx, email, password)
	if err != nil {
		srv.logger.Info("Login rejected", slog.String("email", email))

		return nil, errors.Wrap(err, "login failed")
	}

	return srv.store(ctx, session)
}

// Register creates an account and persists the resulting session.
func (srv *sessionService) Register(ctx context.Context, email, password, name string) (*entity.Session, error) {
	session, err := srv.auth.Register(ctx, email, password, name)
	if err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	return srv.store(ctx, session)
}

// Logout clears credential and profile together and broadcasts nil.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.repo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	srv.logger.Info("Signed out")
	srv.broadcast(nil)

	return nil
}

// Current returns the held session, or nil when signed out. An expired
// bearer token is reported but not cleared; the API's rejection of a stale
// credential remains the authoritative signal.
func (srv *sessionService) Current(ctx context.Context) *entity.Session {
	session, err := srv.repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrStateNotFound) {
			srv.logger.Warn("Discarding unreadable session state", slog.Any("error", err))
		}

		return nil
	}

	if srv.inspector != nil && srv.inspector.IsExpired(session.Token) {
		srv.logger.Debug("Held credential is past its expiry claim")
	}

	return session
}

// Subscribe registers fn for session change broadcasts.
func (srv *sessionService) Subscribe(fn func(*entity.Session)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.subscribers = append(srv.subscribers, fn)
}

// store persists the session atomically and broadcasts the change.
func (srv *sessionService) store(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	if err := srv.repo.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.logger.Info("Signed in",
		slog.String("name", session.Profile.Name),
		slog.Bool("is_admin", session.Profile.IsAdmin),
	)
	srv.broadcast(session)

	return session, nil
}

// broadcast fans a session change out to subscribers so dependent views can
// re-derive their state.
func (srv *sessionService) broadcast(session *entity.Session) {
	srv.mu.Lock()
	subscribers := make([]func(*entity.Session), len(srv.subscribers))
	copy(subscribers, srv.subscribers)
	srv.mu.Unlock()

	for _, fn := range subscribers {
		fn(session)
	}
}
