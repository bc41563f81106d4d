package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := &entity.Session{
		Token:   "jwt-token",
		Profile: entity.Profile{Name: "Asha", Email: "asha@example.com"},
	}

	auth := new(mockAuthService)
	auth.On("Login", ctx, "asha@example.com", "secret").Return(session, nil)

	repo := &memorySessionRepository{}
	srv := NewSessionService(repo, auth, &stubTokenInspector{}, discardLogger())

	var broadcasts []*entity.Session
	srv.Subscribe(func(s *entity.Session) {
		broadcasts = append(broadcasts, s)
	})

	got, err := srv.Login(ctx, "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// Credential and profile are persisted together and the change is
	// broadcast to subscribers.
	assert.Equal(t, session, repo.session)
	require.Len(t, broadcasts, 1)
	assert.Equal(t, session, broadcasts[0])
}

func TestSessionService_LoginRejected(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	auth := new(mockAuthService)
	auth.On("Login", ctx, "asha@example.com", "wrong").
		Return(nil, domainerrors.NewAPIError(401, "invalid credentials"))

	repo := &memorySessionRepository{}
	srv := NewSessionService(repo, auth, &stubTokenInspector{}, discardLogger())

	_, err := srv.Login(ctx, "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", domainerrors.UserMessage(err))
	assert.Nil(t, repo.session)
	assert.Nil(t, srv.Current(ctx))
}

func TestSessionService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := &entity.Session{
		Token:   "jwt-token",
		Profile: entity.Profile{Name: "Ravi", Email: "ravi@example.com"},
	}

	auth := new(mockAuthService)
	auth.On("Register", ctx, "ravi@example.com", "secret", "Ravi").Return(session, nil)

	repo := &memorySessionRepository{}
	srv := NewSessionService(repo, auth, &stubTokenInspector{}, discardLogger())

	got, err := srv.Register(ctx, "ravi@example.com", "secret", "Ravi")
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, session, repo.session)
}

func TestSessionService_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := &memorySessionRepository{session: &entity.Session{Token: "jwt-token"}}
	srv := NewSessionService(repo, new(mockAuthService), &stubTokenInspector{}, discardLogger())

	var broadcasts []*entity.Session
	srv.Subscribe(func(s *entity.Session) {
		broadcasts = append(broadcasts, s)
	})

	require.NoError(t, srv.Logout(ctx))

	assert.Nil(t, repo.session)
	assert.Nil(t, srv.Current(ctx))
	require.Len(t, broadcasts, 1)
	assert.Nil(t, broadcasts[0])
}

func TestSessionService_Current(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("signed out", func(t *testing.T) {
		t.Parallel()

		srv := NewSessionService(&memorySessionRepository{}, new(mockAuthService), &stubTokenInspector{}, discardLogger())
		assert.Nil(t, srv.Current(ctx))
	})

	t.Run("unreadable state treated as signed out", func(t *testing.T) {
		t.Parallel()

		repo := &memorySessionRepository{loadErr: errors.New("malformed state")}
		srv := NewSessionService(repo, new(mockAuthService), &stubTokenInspector{}, discardLogger())
		assert.Nil(t, srv.Current(ctx))
	})

	t.Run("expired token is still returned", func(t *testing.T) {
		t.Parallel()

		// Expiry is only reported; the API's rejection stays authoritative.
		session := &entity.Session{Token: "stale"}
		repo := &memorySessionRepository{session: session}
		srv := NewSessionService(repo, new(mockAuthService), &stubTokenInspector{expired: true}, discardLogger())

		assert.Equal(t, session, srv.Current(ctx))
		assert.Equal(t, session, repo.session)
	})
}
