package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/valbrand/crm-backend/internal/domain"
)

func newUserRepoForTest(t *testing.T) (UserRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate user: %v", err)
	}
	return NewUserRepository(db), db
}

func seedUser(t *testing.T, repo UserRepository, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		FirstName:    "Test",
		Email:        email,
		PasswordHash: "hash",
		RoleID:       1,
		Status:       domain.UserStatusActive,
	}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestUserRepositoryFindByEmail(t *testing.T) {
	repo, _ := newUserRepoForTest(t)
	seedUser(t, repo, "ana@valbrand.com")

	found, err := repo.FindByEmail("ana@valbrand.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.Email != "ana@valbrand.com" {
		t.Fatalf("unexpected user %+v", found)
	}

	if _, err := repo.FindByEmail("missing@valbrand.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepositoryUpdatePersistsClearedFields(t *testing.T) {
	repo, _ := newUserRepoForTest(t)
	u := seedUser(t, repo, "ana@valbrand.com")

	token := "reset-token"
	expiry := time.Now().Add(time.Hour)
	until := time.Now().Add(30 * time.Minute)
	u.ResetToken = &token
	u.ResetTokenExpiresAt = &expiry
	u.FailedLoginAttempts = 5
	u.LockedUntil = &until
	if err := repo.Update(u); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Clearing nullable fields and zeroing the counter must reach the row.
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
	u.FailedLoginAttempts = 0
	u.LockedUntil = nil
	if err := repo.Update(u); err != nil {
		t.Fatalf("update with cleared fields: %v", err)
	}

	stored, err := repo.FindByID(u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.ResetToken != nil || stored.ResetTokenExpiresAt != nil {
		t.Fatalf("expected cleared reset token, got %+v", stored)
	}
	if stored.FailedLoginAttempts != 0 || stored.LockedUntil != nil {
		t.Fatalf("expected cleared lockout state, got %+v", stored)
	}
}

func TestUserRepositoryFindByResetTokenHonorsExpiry(t *testing.T) {
	repo, _ := newUserRepoForTest(t)
	u := seedUser(t, repo, "ana@valbrand.com")

	token := "valid-token"
	expiry := time.Now().Add(time.Hour)
	u.ResetToken = &token
	u.ResetTokenExpiresAt = &expiry
	if err := repo.Update(u); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.FindByResetToken(token, time.Now())
	if err != nil {
		t.Fatalf("find by reset token: %v", err)
	}
	if found.ID != u.ID {
		t.Fatalf("unexpected user %+v", found)
	}

	// After the expiry instant, the same token no longer matches.
	if _, err := repo.FindByResetToken(token, expiry.Add(time.Second)); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for expired token, got %v", err)
	}
	if _, err := repo.FindByResetToken("unknown", time.Now()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown token, got %v", err)
	}
}

func TestUserRepositoryListAndDelete(t *testing.T) {
	repo, _ := newUserRepoForTest(t)
	for i := 0; i < 3; i++ {
		seedUser(t, repo, fmt.Sprintf("user%d@valbrand.com", i))
	}

	users, err := repo.List(0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}

	page, err := repo.List(1, 1)
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 1 {
		t.Fatalf("expected 1 user in page, got %d", len(page))
	}

	if err := repo.Delete(users[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(users[0].ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
