package supabase

import (
	"context"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoTrue answers signup with either a bare user object or a session wrapping
// one, depending on whether the project requires email confirmation. Both
// shapes are decoded here so callers always get the plain identity back.
type signupResponse struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	User      *models.User `json:"user"`
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	var out signupResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&out).
		SetError(&APIError{}).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fail(resp)
	}

	if out.User != nil {
		return out.User, nil
	}
	return &models.User{
		ID:        out.ID,
		Email:     out.Email,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	}, nil
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*models.User, *models.Session, error) {
	var out tokenResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(credentials{Email: email, Password: password}).
		SetResult(&out).
		SetError(&APIError{}).
		Post("/auth/v1/token")
	if err != nil {
		return nil, nil, err
	}
	if resp.IsError() {
		return nil, nil, fail(resp)
	}

	user := out.User
	session := &models.Session{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	}
	return &user, session, nil
}

// VerifyToken forwards the caller's bearer verbatim. Expired, malformed and
// revoked tokens all come back as the upstream rejection, undistinguished.
func (c *Client) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	var out models.User
	resp, err := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&APIError{}).
		Get("/auth/v1/user")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fail(resp)
	}
	return &out, nil
}
