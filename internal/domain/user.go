package domain

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type User struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	FirstName           string     `gorm:"size:100;not null" json:"first_name"`
	LastName            string     `gorm:"size:100" json:"last_name"`
	Email               string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"size:255;not null" json:"-"`
	RoleID              uint       `gorm:"not null" json:"role_id"`
	Phone               string     `gorm:"size:20" json:"phone,omitempty"`
	Position            string     `gorm:"size:100" json:"position,omitempty"`
	Department          string     `gorm:"size:100" json:"department,omitempty"`
	Status              UserStatus `gorm:"size:16;not null;default:ACTIVE" json:"status"`
	FailedLoginAttempts int        `gorm:"not null;default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	ResetToken          *string    `gorm:"size:255;index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	LastAccessAt        *time.Time `json:"last_access_at,omitempty"`
	CreatedBy           *uint      `json:"created_by,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Profile is the public projection returned by /auth/me and the login
// response. It never carries credential or lockout fields.
type Profile struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	RoleID     uint   `json:"role_id"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Position:   u.Position,
		Department: u.Department,
		RoleID:     u.RoleID,
	}
}
