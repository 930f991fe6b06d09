package service

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tr4cking/admin-api/internal/domain/entity"
	"github.com/tr4cking/admin-api/internal/domain/repository"
	"github.com/tr4cking/admin-api/internal/infrastructure/restclient"
	"github.com/tr4cking/admin-api/pkg/apperror"
	"github.com/tr4cking/admin-api/pkg/utils"
)

// AuthService handles console login against the remote backend. A successful
// login opens a dedicated backend session (cookie jar) for the clerk and
// hands back a console JWT keyed to it.
type AuthService struct {
	authRepo       repository.AuthRepository
	sessions       *SessionStore
	jwtManager     *utils.JWTManager
	backendTimeout time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	authRepo repository.AuthRepository,
	sessions *SessionStore,
	jwtManager *utils.JWTManager,
	backendTimeout time.Duration,
) *AuthService {
	return &AuthService{
		authRepo:       authRepo,
		sessions:       sessions,
		jwtManager:     jwtManager,
		backendTimeout: backendTimeout,
	}
}

// LoginResult carries the minted token and the backend identity.
type LoginResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Login authenticates against the backend and opens a console session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	session, err := restclient.NewSession(s.backendTimeout)
	if err != nil {
		return nil, err
	}
	ctx = restclient.WithSession(ctx, session)

	if err := s.authRepo.Login(ctx, email, password); err != nil {
		appErr := apperror.GetAppError(err)
		if appErr.Code == http.StatusBadRequest || appErr.Code == http.StatusUnauthorized || appErr.Code == http.StatusForbidden {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	user, err := s.authRepo.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.New()
	s.sessions.Put(sessionID, session)

	token, err := s.jwtManager.GenerateAccessToken(sessionID, user.ID, user.Email, user.FullName())
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

// Logout closes the backend session and drops the console session. A failed
// backend logout is logged but the console session ends regardless.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) {
	if err := s.authRepo.Logout(ctx); err != nil {
		log.Printf("Warning: backend logout failed: %v", err)
	}
	s.sessions.Delete(sessionID)
}

// CurrentUser fetches the authenticated identity through the session in ctx.
func (s *AuthService) CurrentUser(ctx context.Context) (*entity.User, error) {
	return s.authRepo.CurrentUser(ctx)
}
