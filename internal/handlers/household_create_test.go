package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/middlewares"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
	"github.com/stretchr/testify/assert"
)

// withCaller stamps an authenticated caller onto the request, the way
// the auth middleware would.
func withCaller(req *http.Request, callerID uuid.UUID) *http.Request {
	return req.WithContext(middlewares.SetCallerToContext(req.Context(), callerID))
}

// withRouteParam injects a chi URL parameter into the request context.
func withRouteParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateHouseholdHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	householdID := uuid.New()

	t.Run("no caller", func(t *testing.T) {
		handler := NewCreateHouseholdHandler(NewMockHouseholdCreator(ctrl))

		bodyBytes, _ := json.Marshal(CreateHouseholdRequest{Name: "Casa"})
		req := httptest.NewRequest(http.MethodPost, "/households", bytes.NewBuffer(bodyBytes))

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockHouseholdCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "Casa", callerID).
			Return(&models.HouseholdDB{HouseholdID: householdID, Name: "Casa", OwnerID: callerID}, nil)

		handler := NewCreateHouseholdHandler(mockSvc)

		bodyBytes, _ := json.Marshal(CreateHouseholdRequest{Name: "Casa"})
		req := withCaller(httptest.NewRequest(http.MethodPost, "/households", bytes.NewBuffer(bodyBytes)), callerID)

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var household models.HouseholdDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &household))
		assert.Equal(t, householdID, household.HouseholdID)
		assert.Equal(t, callerID, household.OwnerID)
	})

	t.Run("name taken", func(t *testing.T) {
		mockSvc := NewMockHouseholdCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "Casa", callerID).
			Return(nil, services.ErrHouseholdNameTaken)

		handler := NewCreateHouseholdHandler(mockSvc)

		bodyBytes, _ := json.Marshal(CreateHouseholdRequest{Name: "Casa"})
		req := withCaller(httptest.NewRequest(http.MethodPost, "/households", bytes.NewBuffer(bodyBytes)), callerID)

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewCreateHouseholdHandler(NewMockHouseholdCreator(ctrl))

		req := withCaller(httptest.NewRequest(http.MethodPost, "/households", bytes.NewBufferString("{invalid json}")), callerID)

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteHouseholdHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	householdID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockHouseholdDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), householdID, callerID).Return(nil)

		handler := NewDeleteHouseholdHandler(mockSvc)

		req := httptest.NewRequest(http.MethodDelete, "/households/"+householdID.String(), nil)
		req = withRouteParam(withCaller(req, callerID), "householdID", householdID.String())

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		mockSvc := NewMockHouseholdDeleter(ctrl)
		mockSvc.EXPECT().Delete(gomock.Any(), householdID, callerID).Return(services.ErrNotOwner)

		handler := NewDeleteHouseholdHandler(mockSvc)

		req := httptest.NewRequest(http.MethodDelete, "/households/"+householdID.String(), nil)
		req = withRouteParam(withCaller(req, callerID), "householdID", householdID.String())

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid household id", func(t *testing.T) {
		handler := NewDeleteHouseholdHandler(NewMockHouseholdDeleter(ctrl))

		req := httptest.NewRequest(http.MethodDelete, "/households/not-a-uuid", nil)
		req = withRouteParam(withCaller(req, callerID), "householdID", "not-a-uuid")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
