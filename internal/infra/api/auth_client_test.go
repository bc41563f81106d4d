package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthClient_Login(t *testing.T) {
	t.Parallel()

	var payload loginRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"token":"jwt-token","user":{"name":"Asha","email":"asha@example.com","isAdmin":true}}`))
	})

	auth := NewAuthService(newTestClient(t, handler, ""))

	session, err := auth.Login(context.Background(), "asha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", session.Token)
	assert.Equal(t, "Asha", session.Profile.Name)
	assert.True(t, session.Profile.IsAdmin)

	assert.Equal(t, "asha@example.com", payload.Email)
	assert.Equal(t, "secret", payload.Password)
}

func TestAuthClient_LoginRejected(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	auth := NewAuthService(newTestClient(t, handler, ""))

	_, err := auth.Login(context.Background(), "asha@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", domainerrors.UserMessage(err))
}

func TestAuthClient_Register(t *testing.T) {
	t.Parallel()

	var payload registerRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"token":"jwt-token","user":{"name":"Ravi","isAdmin":false}}`))
	})

	auth := NewAuthService(newTestClient(t, handler, ""))

	session, err := auth.Register(context.Background(), "ravi@example.com", "secret", "Ravi")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", session.Profile.Name)
	assert.False(t, session.Profile.IsAdmin)
	assert.Equal(t, "Ravi", payload.Name)
}
