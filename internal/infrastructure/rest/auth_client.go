package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// AuthClient talks to the auth demo backend.
type AuthClient struct {
	base string
	c    *Client
}

var _ ports.AuthAPI = (*AuthClient)(nil)

// NewAuthClient returns an AuthClient rooted at base (e.g. http://localhost:8080).
func NewAuthClient(base string, log zerolog.Logger) *AuthClient {
	return &AuthClient{base: strings.TrimRight(base, "/"), c: NewClient("auth", log)}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthClient) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	err := a.c.Do(ctx, http.MethodPost, a.base+"/api/auth/login", "", credentials{username, password}, &resp)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		Token: resp.Token,
		User:  domain.User{Username: resp.Username, Role: resp.Role},
	}, nil
}

func (a *AuthClient) Register(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	err := a.c.Do(ctx, http.MethodPost, a.base+"/api/auth/register", "", credentials{username, password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *AuthClient) Me(ctx context.Context, token string) (domain.User, error) {
	var user domain.User
	err := a.c.Do(ctx, http.MethodGet, a.base+"/api/auth/me", token, nil, &user)
	return user, err
}

func (a *AuthClient) Probe(ctx context.Context, path, token string) (ports.ProbeResult, error) {
	status, body, err := a.c.Text(ctx, http.MethodGet, a.base+path, token)
	if err != nil {
		return ports.ProbeResult{}, err
	}
	return ports.ProbeResult{Path: path, Status: status, Body: body}, nil
}
