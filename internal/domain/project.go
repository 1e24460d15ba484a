package domain

import "time"

type ProjectType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Active      bool   `gorm:"not null;default:true" json:"active"`
}

type ProjectStatus string

const (
	ProjectStatusQuote      ProjectStatus = "QUOTE"
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	ProjectStatusPaused     ProjectStatus = "PAUSED"
	ProjectStatusDelivered  ProjectStatus = "DELIVERED"
	ProjectStatusCancelled  ProjectStatus = "CANCELLED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Project struct {
	ID                uint          `gorm:"primaryKey" json:"id"`
	Code              string        `gorm:"size:50;uniqueIndex;not null" json:"code"`
	ClientID          uint          `gorm:"index;not null" json:"client_id"`
	Name              string        `gorm:"size:100;not null" json:"name"`
	ProjectTypeID     uint          `gorm:"not null" json:"project_type_id"`
	Description       string        `gorm:"type:text" json:"description,omitempty"`
	TechnicalSpecs    string        `gorm:"type:text" json:"technical_specs,omitempty"`
	StartDate         *time.Time    `json:"start_date,omitempty"`
	EstimatedDelivery *time.Time    `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time    `json:"actual_delivery,omitempty"`
	FinishedAt        *time.Time    `json:"finished_at,omitempty"`
	Status            ProjectStatus `gorm:"size:20;not null;default:QUOTE" json:"status"`
	Priority          Priority      `gorm:"size:10;not null;default:MEDIUM" json:"priority"`
	ProgressPercent   float64       `gorm:"type:decimal(5,2);default:0" json:"progress_percent"`
	Notes             string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy         *uint         `json:"created_by,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
