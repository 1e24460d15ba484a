package domain

import "time"

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

type ClientType string

const (
	ClientTypeCompany    ClientType = "COMPANY"
	ClientTypeIndividual ClientType = "INDIVIDUAL"
)

type Client struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	ContactName string       `gorm:"size:100" json:"contact_name,omitempty"`
	Email       string       `gorm:"size:100;index" json:"email,omitempty"`
	Phone       string       `gorm:"size:20" json:"phone,omitempty"`
	Address     string       `gorm:"type:text" json:"address,omitempty"`
	City        string       `gorm:"size:50" json:"city,omitempty"`
	Country     string       `gorm:"size:50" json:"country,omitempty"`
	PostalCode  string       `gorm:"size:20" json:"postal_code,omitempty"`
	TaxID       string       `gorm:"size:20" json:"tax_id,omitempty"`
	Status      ClientStatus `gorm:"size:16;not null;default:ACTIVE" json:"status"`
	Type        ClientType   `gorm:"size:16;not null" json:"type"`
	Notes       string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy   *uint        `json:"created_by,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
