package domain

import "time"

type ProductionPlanStatus string

const (
	ProductionPlanStatusPlanned    ProductionPlanStatus = "PLANNED"
	ProductionPlanStatusInProgress ProductionPlanStatus = "IN_PROGRESS"
	ProductionPlanStatusCompleted  ProductionPlanStatus = "COMPLETED"
	ProductionPlanStatusPaused     ProductionPlanStatus = "PAUSED"
	ProductionPlanStatusCancelled  ProductionPlanStatus = "CANCELLED"
)

type ProductionPlan struct {
	ID                uint                 `gorm:"primaryKey" json:"id"`
	Code              string               `gorm:"size:50;uniqueIndex;not null" json:"code"`
	ProjectID         uint                 `gorm:"index;not null" json:"project_id"`
	WorkshopName      string               `gorm:"size:100" json:"workshop_name,omitempty"`
	EstimatedStart    *time.Time           `json:"estimated_start,omitempty"`
	EstimatedEnd      *time.Time           `json:"estimated_end,omitempty"`
	ActualStart       *time.Time           `json:"actual_start,omitempty"`
	ActualEnd         *time.Time           `json:"actual_end,omitempty"`
	Status            ProductionPlanStatus `gorm:"size:20;not null;default:PLANNED" json:"status"`
	QuantityPlanned   int                  `gorm:"not null" json:"quantity_planned"`
	QuantityCompleted int                  `gorm:"not null;default:0" json:"quantity_completed"`
	Priority          Priority             `gorm:"size:10;not null;default:MEDIUM" json:"priority"`
	EstimatedCost     float64              `gorm:"type:decimal(12,2)" json:"estimated_cost,omitempty"`
	ActualCost        float64              `gorm:"type:decimal(12,2)" json:"actual_cost,omitempty"`
	Supervisor        string               `gorm:"size:100" json:"supervisor,omitempty"`
	Notes             string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy         *uint                `json:"created_by,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}
