package service

import (
	"fmt"
	"time"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/repository"
)

const (
	MaxLoginAttempts = 5
	LockoutDuration  = 30 * time.Minute
)

// LockoutPolicy tracks per-account failed-attempt counters on the user row.
// An expired lockout window is treated as unlocked, but the counter only
// resets on a successful login.
type LockoutPolicy struct {
	users repository.UserRepository
}

func NewLockoutPolicy(users repository.UserRepository) *LockoutPolicy {
	return &LockoutPolicy{users: users}
}

func (p *LockoutPolicy) IsLocked(user *domain.User, now time.Time) bool {
	return user.LockedUntil != nil && now.Before(*user.LockedUntil)
}

func (p *LockoutPolicy) RegisterFailure(user *domain.User) error {
	user.FailedLoginAttempts++
	if user.FailedLoginAttempts >= MaxLoginAttempts {
		until := time.Now().Add(LockoutDuration)
		user.LockedUntil = &until
	}
	if err := p.users.Update(user); err != nil {
		return fmt.Errorf("persist failed-login state: %w", err)
	}
	return nil
}

func (p *LockoutPolicy) RegisterSuccess(user *domain.User) error {
	now := time.Now()
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastAccessAt = &now
	if err := p.users.Update(user); err != nil {
		return fmt.Errorf("persist successful-login state: %w", err)
	}
	return nil
}
