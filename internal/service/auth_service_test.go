package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academix/internal/auth"
	apperrors "academix/internal/errors"
	"academix/internal/model"
)

const testSessionSecret = "test-session-secret"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceLogin(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	user := &model.User{
		ID:           "u-1",
		Email:        "ada@example.com",
		Role:         model.RoleStudent,
		PasswordHash: hashPassword(t, "correct-horse"),
	}
	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)
	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Session) bool {
		return s.UserID == "u-1" && s.Token != "" && s.ExpiresAt.After(time.Now())
	})).Return(nil)
	tokenStore.On("StoreSession", mock.Anything, mock.Anything, "u-1", "student", auth.SessionExpiry).Return(nil)

	svc := NewAuthService(users, sessions, sessionService, tokenStore)

	token, got, err := svc.Login(context.Background(), "ada@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	claims, err := sessionService.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "student", claims.Role)

	sessions.AssertExpectations(t)
	tokenStore.AssertExpectations(t)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)

	user := &model.User{
		ID:           "u-1",
		Email:        "ada@example.com",
		PasswordHash: hashPassword(t, "correct-horse"),
	}
	users.On("FindByEmail", mock.Anything, "ada@example.com").Return(user, nil)

	svc := NewAuthService(users, sessions, auth.NewSessionService(testSessionSecret), tokenStore)

	_, _, err := svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(users, new(MockSessionRepository), auth.NewSessionService(testSessionSecret), new(MockTokenStore))

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLogout(t *testing.T) {
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	sessionID, token, err := sessionService.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	tokenStore.On("DeleteSession", mock.Anything, sessionID).Return(nil)
	sessions.On("Delete", mock.Anything, sessionID).Return(nil)

	svc := NewAuthService(new(MockUserRepository), sessions, sessionService, tokenStore)

	require.NoError(t, svc.Logout(context.Background(), token))
	sessions.AssertExpectations(t)
	tokenStore.AssertExpectations(t)
}

func TestAuthServiceLogoutGarbageToken(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), new(MockSessionRepository), auth.NewSessionService(testSessionSecret), new(MockTokenStore))

	err := svc.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
}

func TestAuthServiceCurrentUserHotPath(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	sessionID, token, err := sessionService.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	user := &model.User{ID: "u-1", Role: model.RoleStudent}
	tokenStore.On("GetSession", mock.Anything, sessionID).Return(&auth.SessionRecord{UserID: "u-1", Role: "student"}, nil)
	users.On("FindByID", mock.Anything, "u-1").Return(user, nil)

	svc := NewAuthService(users, sessions, sessionService, tokenStore)

	got, err := svc.CurrentUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user, got)
	// The durable store is never consulted when Redis answers.
	sessions.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
}

func TestAuthServiceCurrentUserRedisMissFallsBackToDB(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	sessionID, token, err := sessionService.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	tokenStore.On("GetSession", mock.Anything, sessionID).Return(nil, errors.New("cache miss"))
	sessions.On("FindByToken", mock.Anything, sessionID).Return(&model.Session{
		Token:     sessionID,
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	// A DB hit re-warms the cache with the remaining TTL.
	tokenStore.On("StoreSession", mock.Anything, sessionID, "u-1", "student", mock.Anything).Return(nil)
	users.On("FindByID", mock.Anything, "u-1").Return(&model.User{ID: "u-1"}, nil)

	svc := NewAuthService(users, sessions, sessionService, tokenStore)

	got, err := svc.CurrentUser(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	tokenStore.AssertExpectations(t)
}

func TestAuthServiceCheckSessionLive(t *testing.T) {
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	sessionID, token, err := sessionService.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	tokenStore.On("GetSession", mock.Anything, sessionID).Return(&auth.SessionRecord{UserID: "u-1", Role: "student"}, nil)

	svc := NewAuthService(new(MockUserRepository), sessions, sessionService, tokenStore)

	require.NoError(t, svc.CheckSession(context.Background(), token))
	sessions.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
}

func TestAuthServiceCheckSessionAfterLogout(t *testing.T) {
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	sessionID, token, err := sessionService.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	// Logout deleted the session from both stores; the token still
	// carries a valid signature and a future expiry.
	tokenStore.On("GetSession", mock.Anything, sessionID).Return(nil, errors.New("cache miss"))
	sessions.On("FindByToken", mock.Anything, sessionID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(new(MockUserRepository), sessions, sessionService, tokenStore)

	err = svc.CheckSession(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
}

func TestAuthServiceCheckSessionGarbageToken(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), new(MockSessionRepository), auth.NewSessionService(testSessionSecret), new(MockTokenStore))

	err := svc.CheckSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
}

func TestAuthServiceCurrentUserRevokedSession(t *testing.T) {
	users := new(MockUserRepository)
	sessions := new(MockSessionRepository)
	tokenStore := new(MockTokenStore)
	sessionService := auth.NewSessionService(testSessionSecret)

	sessionID, token, err := sessionService.GenerateSessionToken("u-1", "student")
	require.NoError(t, err)

	// Valid signature, but the session is gone from both stores.
	tokenStore.On("GetSession", mock.Anything, sessionID).Return(nil, errors.New("cache miss"))
	sessions.On("FindByToken", mock.Anything, sessionID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewAuthService(users, sessions, sessionService, tokenStore)

	_, err = svc.CurrentUser(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
