package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/observability"
	"github.com/valbrand/crm-backend/internal/repository"
	"github.com/valbrand/crm-backend/internal/security"
)

const ResetTokenTTL = time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account locked after repeated failed logins")
	ErrAccountInactive    = errors.New("account inactive or suspended")
	ErrInvalidToken       = security.ErrInvalidToken
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("reset token invalid or expired")
)

type LoginResult struct {
	AccessToken string         `json:"access_token"`
	TokenType   string         `json:"token_type"`
	ExpiresIn   int            `json:"expires_in"`
	User        domain.Profile `json:"user"`
}

type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthService struct {
	users   repository.UserRepository
	jwtMgr  *security.JWTManager
	revoked RevocationStore
	lockout *LockoutPolicy
	sender  ResetTokenSender
	logger  *slog.Logger
}

func NewAuthService(users repository.UserRepository, jwtMgr *security.JWTManager, revoked RevocationStore, lockout *LockoutPolicy, sender ResetTokenSender, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:   users,
		jwtMgr:  jwtMgr,
		revoked: revoked,
		lockout: lockout,
		sender:  sender,
		logger:  logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			observability.RecordAuthLogin("invalid_credentials")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if s.lockout.IsLocked(user, time.Now()) {
		observability.RecordAuthLogin("locked")
		return nil, ErrAccountLocked
	}
	if user.Status != domain.UserStatusActive {
		observability.RecordAuthLogin("inactive")
		return nil, ErrAccountInactive
	}

	if !security.VerifyPassword(password, user.PasswordHash) {
		if err := s.lockout.RegisterFailure(user); err != nil {
			// The auth decision stands; only the counter write failed.
			s.logger.ErrorContext(ctx, "record failed login attempt", "user_id", user.ID, "error", err)
		}
		observability.RecordAuthLogin("invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	if err := s.lockout.RegisterSuccess(user); err != nil {
		s.logger.ErrorContext(ctx, "reset login attempts", "user_id", user.ID, "error", err)
	}

	token, err := s.jwtMgr.Sign(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	observability.RecordAuthLogin("success")
	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtMgr.TTL().Seconds()),
		User:        user.Profile(),
	}, nil
}

// Logout always succeeds. With no token supplied there is nothing to revoke
// and the call is an explicit no-op; an unparseable or already-expired token
// needs no revocation entry either.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		observability.RecordAuthLogout("noop")
		return nil
	}
	claims, err := s.jwtMgr.Parse(rawToken)
	if err != nil {
		observability.RecordAuthLogout("noop")
		return nil
	}
	if err := s.revoked.Revoke(ctx, rawToken, claims.RemainingLifetime(time.Now())); err != nil {
		s.logger.ErrorContext(ctx, "revoke token on logout", "error", err)
		observability.RecordAuthLogout("error")
		return nil
	}
	observability.RecordAuthLogout("success")
	return nil
}

// Refresh rotates the caller's token: the old token is revoked for its
// remaining lifetime before the replacement is signed.
func (s *AuthService) Refresh(ctx context.Context, rawToken string) (*TokenResult, error) {
	claims, err := s.checkToken(ctx, rawToken)
	if err != nil {
		observability.RecordAuthRefresh("invalid_token")
		return nil, err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			observability.RecordAuthRefresh("unknown_subject")
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("look up subject: %w", err)
	}
	if user.Status != domain.UserStatusActive {
		observability.RecordAuthRefresh("inactive_subject")
		return nil, ErrInvalidToken
	}

	if err := s.revoked.Revoke(ctx, rawToken, claims.RemainingLifetime(time.Now())); err != nil {
		return nil, fmt.Errorf("revoke old token: %w", err)
	}
	token, err := s.jwtMgr.Sign(user.ID, user.Email, user.RoleID)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	observability.RecordAuthRefresh("success")
	return &TokenResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.jwtMgr.TTL().Seconds()),
	}, nil
}

// ForgotPassword is enumeration-safe: whether or not the address matches an
// account, the caller sees the same outcome.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.ErrorContext(ctx, "look up account for password reset", "error", err)
		}
		return nil
	}

	token, err := security.NewResetToken()
	if err != nil {
		s.logger.ErrorContext(ctx, "generate reset token", "user_id", user.ID, "error", err)
		return nil
	}
	expiresAt := time.Now().Add(ResetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpiresAt = &expiresAt
	if err := s.users.Update(user); err != nil {
		s.logger.ErrorContext(ctx, "store reset token", "user_id", user.ID, "error", err)
		return nil
	}
	if err := s.sender.SendResetToken(ctx, user.Email, token); err != nil {
		s.logger.ErrorContext(ctx, "deliver reset token", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(token, time.Now())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("look up reset token: %w", err)
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}
	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetTokenExpiresAt = nil
	// Courtesy unlock: the holder of a valid reset token owns the account.
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("persist password reset: %w", err)
	}
	return nil
}

// Me runs the same token checks as Refresh but never rotates.
func (s *AuthService) Me(ctx context.Context, rawToken string) (*domain.User, error) {
	claims, err := s.checkToken(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("look up subject: %w", err)
	}
	return user, nil
}

func (s *AuthService) checkToken(ctx context.Context, rawToken string) (*security.Claims, error) {
	if rawToken == "" {
		return nil, ErrInvalidToken
	}
	revoked, err := s.revoked.IsRevoked(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("consult revocation set: %w", err)
	}
	if revoked {
		return nil, ErrInvalidToken
	}
	return s.jwtMgr.Parse(rawToken)
}
