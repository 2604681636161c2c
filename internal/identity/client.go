package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/logger"
)

// ErrUnauthorized is returned when the users service rejects a bearer token.
var ErrUnauthorized = errors.New("token not recognized by identity service")

// User is the subset of the users service record the directory exposes.
type User struct {
	UserID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// Client talks to the users service, which acts as the identity directory
// and session verifier for the other services.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the users service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// GetByEmail resolves a user by email. Returns nil when the directory has
// no account for that address.
func (c *Client) GetByEmail(ctx context.Context, email string) (*User, error) {
	u := fmt.Sprintf("%s/users/by-email?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("identity lookup failed", "email", email, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var user User
		if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
			return nil, err
		}
		return &user, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

// ResolveToken resolves a bearer token to the owning user id via the users
// service. Returns ErrUnauthorized for unknown, inactive or expired tokens.
func (c *Client) ResolveToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	body, err := json.Marshal(verifyRequest{Token: tokenString})
	if err != nil {
		return uuid.Nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessions/verify", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Errorw("token verification failed", "error", err)
		return uuid.Nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var vr verifyResponse
		if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
			return uuid.Nil, err
		}
		return vr.UserID, nil
	case http.StatusUnauthorized:
		return uuid.Nil, ErrUnauthorized
	default:
		return uuid.Nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}
}
