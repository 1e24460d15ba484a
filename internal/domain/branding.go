package domain

import "time"

type BrandingServiceType string

const (
	BrandingServiceLogo         BrandingServiceType = "LOGO"
	BrandingServiceColorPalette BrandingServiceType = "COLOR_PALETTE"
	BrandingServicePackaging    BrandingServiceType = "PACKAGING"
	BrandingServiceLabels       BrandingServiceType = "LABELS"
	BrandingServiceBrandManual  BrandingServiceType = "BRAND_MANUAL"
	BrandingServiceComplete     BrandingServiceType = "COMPLETE"
	BrandingServiceRedesign     BrandingServiceType = "REDESIGN"
)

type BrandingStatus string

const (
	BrandingStatusBrief          BrandingStatus = "BRIEF"
	BrandingStatusInDesign       BrandingStatus = "IN_DESIGN"
	BrandingStatusInternalReview BrandingStatus = "INTERNAL_REVIEW"
	BrandingStatusClientReview   BrandingStatus = "CLIENT_REVIEW"
	BrandingStatusApproved       BrandingStatus = "APPROVED"
	BrandingStatusFinished       BrandingStatus = "FINISHED"
)

type BrandingProject struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	ProjectID         uint                `gorm:"index;not null" json:"project_id"`
	ServiceType       BrandingServiceType `gorm:"size:20;not null" json:"service_type"`
	ClientBrief       string              `gorm:"type:text" json:"client_brief,omitempty"`
	Objectives        string              `gorm:"type:text" json:"objectives,omitempty"`
	TargetAudience    string              `gorm:"type:text" json:"target_audience,omitempty"`
	Competitors       string              `gorm:"type:text" json:"competitors,omitempty"`
	VisualReferences  string              `gorm:"type:text" json:"visual_references,omitempty"`
	StartDate         *time.Time          `json:"start_date,omitempty"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time          `json:"actual_delivery,omitempty"`
	Status            BrandingStatus      `gorm:"size:20;not null;default:BRIEF" json:"status"`
	RevisionCount     int                 `gorm:"not null;default:0" json:"revision_count"`
	RevisionsIncluded int                 `gorm:"not null;default:3" json:"revisions_included"`
	ClientFeedback    string              `gorm:"type:text" json:"client_feedback,omitempty"`
	InternalNotes     string              `gorm:"type:text" json:"internal_notes,omitempty"`
	DesignLead        string              `gorm:"size:100" json:"design_lead,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}
