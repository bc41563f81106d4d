package api

import (
	"context"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// authClient implements the AuthService port against the remote API.
type authClient struct {
	client *Client
}

// NewAuthService is the constructor for authClient.
func NewAuthService(client *Client) service.AuthService {
	return &authClient{client: client}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// authResponse matches the auth API's success envelope.
type authResponse struct {
	Token string         `json:"token"`
	User  entity.Profile `json:"user"`
}

// Login exchanges credentials for a session.
func (c *authClient) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	var resp authResponse
	req := loginRequest{Email: email, Password: password}
	if err := c.client.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, errors.Wrap(err, "login")
	}

	return &entity.Session{Token: resp.Token, Profile: resp.User}, nil
}

// Register creates an account and returns the resulting session.
func (c *authClient) Register(ctx context.Context, email, password, name string) (*entity.Session, error) {
	var resp authResponse
	req := registerRequest{Email: email, Password: password, Name: name}
	if err := c.client.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, errors.Wrap(err, "register")
	}

	return &entity.Session{Token: resp.Token, Profile: resp.User}, nil
}
