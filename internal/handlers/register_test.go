package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		reqBody       RegisterRequest
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
		rawBody       bool // if true, pass raw body to simulate invalid JSON
	}{
		{
			name:    "success",
			reqBody: RegisterRequest{Name: "John Doe", Email: "john@example.com", Password: "secret123"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "John Doe", "john@example.com", "secret123").
					Return(&models.UserDB{UserID: userID, Name: "John Doe", Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "email already registered",
			reqBody: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "pass"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Alice", "alice@example.com", "pass").
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Email already registered",
		},
		{
			name:    "internal server error",
			reqBody: RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "pass"},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "Bob", "bob@example.com", "pass").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var user models.UserDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
				assert.Equal(t, userID, user.UserID)
				assert.Equal(t, "john@example.com", user.Email)
			}
		})
	}
}
