package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academix/internal/auth"
	apperrors "academix/internal/errors"
	"academix/internal/model"
	"academix/internal/repository"
)

// ErrInvalidCredentials is returned when email or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles the session authentication boundary.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.User, error)
	// CheckSession reports ErrInvalidSession for tokens whose session
	// has been revoked, without loading the user.
	CheckSession(ctx context.Context, token string) error
}

type authService struct {
	users          repository.UserRepository
	sessions       repository.SessionRepository
	sessionService *auth.SessionService
	tokenStore     auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	sessionService *auth.SessionService,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		users:          users,
		sessions:       sessions,
		sessionService: sessionService,
		tokenStore:     tokenStore,
	}
}

// Login verifies credentials and issues a session: a signed cookie token,
// a durable session row, and a hot Redis record.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	sessionID, token, err := s.sessionService.GenerateSessionToken(user.ID, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	session := &model.Session{
		Token:     sessionID,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(auth.SessionExpiry),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, err
	}
	if err := s.tokenStore.StoreSession(ctx, sessionID, user.ID, string(user.Role), auth.SessionExpiry); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the session in both stores. An unparseable token is
// already as logged-out as it gets.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.sessionService.ValidateSessionToken(token)
	if err != nil {
		return apperrors.ErrInvalidSession
	}
	if err := s.tokenStore.DeleteSession(ctx, claims.ID); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// CurrentUser resolves the session token to its user.
func (s *authService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.sessionService.ValidateSessionToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidSession
	}
	if err := s.resolveSession(ctx, claims); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSession
		}
		return nil, err
	}
	return user, nil
}

// CheckSession rejects tokens whose session was revoked. A signed,
// unexpired token is not enough on its own: logout deletes the session
// record, and the guard must see that deletion.
func (s *authService) CheckSession(ctx context.Context, token string) error {
	claims, err := s.sessionService.ValidateSessionToken(token)
	if err != nil {
		return apperrors.ErrInvalidSession
	}
	return s.resolveSession(ctx, claims)
}

// resolveSession confirms the session is still live. Redis answers the
// hot path; on a miss the durable session row decides, and a hit there
// re-warms Redis.
func (s *authService) resolveSession(ctx context.Context, claims *auth.SessionClaims) error {
	if _, err := s.tokenStore.GetSession(ctx, claims.ID); err == nil {
		return nil
	}
	session, err := s.sessions.FindByToken(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrInvalidSession
		}
		return err
	}
	_ = s.tokenStore.StoreSession(ctx, claims.ID, claims.UserID, claims.Role, time.Until(session.ExpiresAt))
	return nil
}
