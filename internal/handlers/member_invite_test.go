package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestInviteMemberHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	householdID := uuid.New()
	inviteeID := uuid.New()

	newRequest := func(body InviteMemberRequest) *http.Request {
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/households/"+householdID.String()+"/members/invite", bytes.NewBuffer(bodyBytes))
		return withRouteParam(withCaller(req, callerID), "householdID", householdID.String())
	}

	tests := []struct {
		name          string
		reqBody       InviteMemberRequest
		mockSetup     func(m *MockMemberInviter)
		expectedCode  int
		expectedError string
	}{
		{
			name:    "success with default role",
			reqBody: InviteMemberRequest{Email: "guest@example.com"},
			mockSetup: func(m *MockMemberInviter) {
				m.EXPECT().
					Invite(gomock.Any(), householdID, callerID, "guest@example.com", "").
					Return(&models.MembershipDB{MemberID: uuid.New(), HouseholdID: householdID, UserID: inviteeID, Role: models.RoleMember}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "explicit administrator role",
			reqBody: InviteMemberRequest{Email: "admin@example.com", Role: models.RoleAdministrator},
			mockSetup: func(m *MockMemberInviter) {
				m.EXPECT().
					Invite(gomock.Any(), householdID, callerID, "admin@example.com", models.RoleAdministrator).
					Return(&models.MembershipDB{MemberID: uuid.New(), HouseholdID: householdID, UserID: inviteeID, Role: models.RoleAdministrator}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "unknown role",
			reqBody:       InviteMemberRequest{Email: "guest@example.com", Role: "janitor"},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid role",
		},
		{
			name:    "household not found",
			reqBody: InviteMemberRequest{Email: "guest@example.com"},
			mockSetup: func(m *MockMemberInviter) {
				m.EXPECT().
					Invite(gomock.Any(), householdID, callerID, "guest@example.com", "").
					Return(nil, services.ErrHouseholdNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Household not found",
		},
		{
			name:    "caller not administrator",
			reqBody: InviteMemberRequest{Email: "guest@example.com"},
			mockSetup: func(m *MockMemberInviter) {
				m.EXPECT().
					Invite(gomock.Any(), householdID, callerID, "guest@example.com", "").
					Return(nil, services.ErrNotAdministrator)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: "Administrator or owner role required",
		},
		{
			name:    "invitee not found",
			reqBody: InviteMemberRequest{Email: "ghost@example.com"},
			mockSetup: func(m *MockMemberInviter) {
				m.EXPECT().
					Invite(gomock.Any(), householdID, callerID, "ghost@example.com", "").
					Return(nil, services.ErrInviteeNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "No account exists for the invited email",
		},
		{
			name:    "already a member",
			reqBody: InviteMemberRequest{Email: "dup@example.com"},
			mockSetup: func(m *MockMemberInviter) {
				m.EXPECT().
					Invite(gomock.Any(), householdID, callerID, "dup@example.com", "").
					Return(nil, services.ErrAlreadyMember)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "User is already a member of this household",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMemberInviter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewInviteMemberHandler(mockSvc)

			rr := httptest.NewRecorder()
			handler(rr, newRequest(tt.reqBody))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}

	t.Run("no caller", func(t *testing.T) {
		handler := NewInviteMemberHandler(NewMockMemberInviter(ctrl))

		bodyBytes, _ := json.Marshal(InviteMemberRequest{Email: "guest@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/households/"+householdID.String()+"/members/invite", bytes.NewBuffer(bodyBytes))
		req = withRouteParam(req, "householdID", householdID.String())

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
