package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClient_GetByEmail(t *testing.T) {
	known := User{UserID: uuid.New(), Name: "Alice", Email: "alice@example.com"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/by-email", r.URL.Path)

		switch r.URL.Query().Get("email") {
		case known.Email:
			json.NewEncoder(w).Encode(known)
		case "broken@example.com":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		user, err := client.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, known.UserID, user.UserID)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := client.GetByEmail(ctx, "ghost@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ServerError", func(t *testing.T) {
		user, err := client.GetByEmail(ctx, "broken@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	t.Run("EmailIsQueryEscaped", func(t *testing.T) {
		user, err := client.GetByEmail(ctx, "a+b@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestClient_ResolveToken(t *testing.T) {
	userID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sessions/verify", r.URL.Path)

		var req struct {
			Token string `json:"token"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		switch req.Token {
		case "good-token":
			json.NewEncoder(w).Encode(map[string]any{"user_id": userID})
		case "broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	t.Run("ValidToken", func(t *testing.T) {
		got, err := client.ResolveToken(ctx, "good-token")
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		got, err := client.ResolveToken(ctx, "stale-token")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, uuid.Nil, got)
	})

	t.Run("ServerError", func(t *testing.T) {
		got, err := client.ResolveToken(ctx, "broken")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, uuid.Nil, got)
	})
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	_, err := client.GetByEmail(context.Background(), "x@example.com")
	assert.Error(t, err)

	_, err = client.ResolveToken(context.Background(), "tok")
	assert.Error(t, err)
}
