package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mmartinpaz/hogares/internal/models"
	"github.com/mmartinpaz/hogares/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	ttl := time.Hour

	tests := []struct {
		name      string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Email: "alice@example.com", PasswordHash: string(hashed)},
		},
		{
			name:      "unknown email",
			email:     "bob@example.com",
			loginPass: password,
			user:      nil,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			email:     "carol@example.com",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: uuid.New(), Email: "carol@example.com", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			email:     "eve@example.com",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockSessions := services.NewMockSessionReader(ctrl)
			mockWriter := services.NewMockSessionWriter(ctrl)
			svc := services.NewAuthService(mockUsers, mockSessions, mockWriter, ttl)

			mockUsers.EXPECT().
				GetByEmail(gomock.Any(), tt.email).
				Return(tt.user, tt.readerErr)

			var saved models.SessionDB
			if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
				gomock.InOrder(
					mockWriter.EXPECT().DeactivateByUser(gomock.Any(), tt.user.UserID).Return(nil),
					mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, session models.SessionDB) error {
							saved = session
							return nil
						}),
				)
			}

			session, err := svc.Login(context.Background(), tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, session.UserID)
				assert.True(t, session.Active)
				assert.NotEmpty(t, session.Token)
				assert.Equal(t, saved.Token, session.Token)
				assert.WithinDuration(t, session.CreatedAt.Add(ttl), session.ExpiresAt, time.Second)
			}
		})
	}
}

func TestAuthService_LoginIssuesDistinctTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &models.UserDB{UserID: uuid.New(), Email: "a@example.com", PasswordHash: string(hashed)}

	mockUsers := services.NewMockUserReader(ctrl)
	mockSessions := services.NewMockSessionReader(ctrl)
	mockWriter := services.NewMockSessionWriter(ctrl)
	svc := services.NewAuthService(mockUsers, mockSessions, mockWriter, time.Hour)

	mockUsers.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil).Times(2)
	mockWriter.EXPECT().DeactivateByUser(gomock.Any(), user.UserID).Return(nil).Times(2)
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.Login(context.Background(), user.Email, password)
	assert.NoError(t, err)
	second, err := svc.Login(context.Background(), user.Email, password)
	assert.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionID := uuid.New()

	t.Run("unknown session", func(t *testing.T) {
		mockSessions := services.NewMockSessionReader(ctrl)
		mockWriter := services.NewMockSessionWriter(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockSessions, mockWriter, time.Hour)

		mockSessions.EXPECT().GetByID(gomock.Any(), sessionID).Return(nil, nil)

		err := svc.Logout(context.Background(), sessionID)
		assert.ErrorIs(t, err, services.ErrSessionNotFound)
	})

	t.Run("existing session deactivated", func(t *testing.T) {
		mockSessions := services.NewMockSessionReader(ctrl)
		mockWriter := services.NewMockSessionWriter(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockSessions, mockWriter, time.Hour)

		mockSessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{SessionID: sessionID, Active: true}, nil)
		mockWriter.EXPECT().Deactivate(gomock.Any(), sessionID).Return(nil)

		err := svc.Logout(context.Background(), sessionID)
		assert.NoError(t, err)
	})

	t.Run("already inactive session still succeeds", func(t *testing.T) {
		mockSessions := services.NewMockSessionReader(ctrl)
		mockWriter := services.NewMockSessionWriter(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockSessions, mockWriter, time.Hour)

		mockSessions.EXPECT().GetByID(gomock.Any(), sessionID).
			Return(&models.SessionDB{SessionID: sessionID, Active: false}, nil)
		mockWriter.EXPECT().Deactivate(gomock.Any(), sessionID).Return(nil)

		err := svc.Logout(context.Background(), sessionID)
		assert.NoError(t, err)
	})
}

func TestAuthService_ResolveToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("active token", func(t *testing.T) {
		mockSessions := services.NewMockSessionReader(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockSessions, services.NewMockSessionWriter(ctrl), time.Hour)

		mockSessions.EXPECT().GetActiveByToken(gomock.Any(), "tok").
			Return(&models.SessionDB{UserID: userID, Active: true}, nil)

		got, err := svc.ResolveToken(context.Background(), "tok")
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockSessions := services.NewMockSessionReader(ctrl)
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), mockSessions, services.NewMockSessionWriter(ctrl), time.Hour)

		mockSessions.EXPECT().GetActiveByToken(gomock.Any(), "bad").Return(nil, nil)

		got, err := svc.ResolveToken(context.Background(), "bad")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.Equal(t, uuid.Nil, got)
	})
}
