package domain

import "time"

type MoldStatus string

const (
	MoldStatusInDevelopment MoldStatus = "IN_DEVELOPMENT"
	MoldStatusApproved      MoldStatus = "APPROVED"
	MoldStatusInProduction  MoldStatus = "IN_PRODUCTION"
	MoldStatusRetired       MoldStatus = "RETIRED"
)

type Mold struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Code           string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	ProjectID      uint       `gorm:"index;not null" json:"project_id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Category       string     `gorm:"size:50" json:"category,omitempty"`
	Size           string     `gorm:"size:20" json:"size,omitempty"`
	Version        string     `gorm:"size:20;default:1.0" json:"version"`
	Status         MoldStatus `gorm:"size:20;not null;default:IN_DEVELOPMENT" json:"status"`
	Measurements   string     `gorm:"type:text" json:"measurements,omitempty"`
	TechnicalNotes string     `gorm:"type:text" json:"technical_notes,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy      *uint      `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type SampleStatus string

const (
	SampleStatusPlanned    SampleStatus = "PLANNED"
	SampleStatusInProgress SampleStatus = "IN_PROGRESS"
	SampleStatusDelivered  SampleStatus = "DELIVERED"
	SampleStatusApproved   SampleStatus = "APPROVED"
	SampleStatusRejected   SampleStatus = "REJECTED"
)

type Sample struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	Code              string       `gorm:"size:50;uniqueIndex;not null" json:"code"`
	ProjectID         uint         `gorm:"index;not null" json:"project_id"`
	MoldID            *uint        `gorm:"index" json:"mold_id,omitempty"`
	Name              string       `gorm:"size:100;not null" json:"name"`
	Description       string       `gorm:"type:text" json:"description,omitempty"`
	Size              string       `gorm:"size:20" json:"size,omitempty"`
	Color             string       `gorm:"size:50" json:"color,omitempty"`
	Material          string       `gorm:"size:100" json:"material,omitempty"`
	EstimatedDelivery *time.Time   `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time   `json:"actual_delivery,omitempty"`
	Status            SampleStatus `gorm:"size:20;not null;default:PLANNED" json:"status"`
	ClientFeedback    string       `gorm:"type:text" json:"client_feedback,omitempty"`
	InternalFeedback  string       `gorm:"type:text" json:"internal_feedback,omitempty"`
	Cost              float64      `gorm:"type:decimal(10,2)" json:"cost,omitempty"`
	CreatedBy         *uint        `json:"created_by,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
