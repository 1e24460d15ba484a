package domain

import "time"

type EcommercePlatform string

const (
	EcommercePlatformShopify     EcommercePlatform = "SHOPIFY"
	EcommercePlatformWooCommerce EcommercePlatform = "WOOCOMMERCE"
	EcommercePlatformMagento     EcommercePlatform = "MAGENTO"
	EcommercePlatformPrestaShop  EcommercePlatform = "PRESTASHOP"
	EcommercePlatformOther       EcommercePlatform = "OTHER"
)

type EcommerceStatus string

const (
	EcommerceStatusPlanning    EcommerceStatus = "PLANNING"
	EcommerceStatusDesign      EcommerceStatus = "DESIGN"
	EcommerceStatusDevelopment EcommerceStatus = "DEVELOPMENT"
	EcommerceStatusContent     EcommerceStatus = "CONTENT"
	EcommerceStatusTesting     EcommerceStatus = "TESTING"
	EcommerceStatusTraining    EcommerceStatus = "TRAINING"
	EcommerceStatusPublished   EcommerceStatus = "PUBLISHED"
	EcommerceStatusMaintenance EcommerceStatus = "MAINTENANCE"
)

type EcommerceProject struct {
	ID                   uint              `gorm:"primaryKey" json:"id"`
	ProjectID            uint              `gorm:"index;not null" json:"project_id"`
	StoreName            string            `gorm:"size:200" json:"store_name,omitempty"`
	StoreURL             string            `gorm:"size:255" json:"store_url,omitempty"`
	PrimaryDomain        string            `gorm:"size:255" json:"primary_domain,omitempty"`
	Platform             EcommercePlatform `gorm:"size:20;not null" json:"platform"`
	HostingPlan          string            `gorm:"size:100" json:"hosting_plan,omitempty"`
	RequiredFeatures     string            `gorm:"type:text" json:"required_features,omitempty"`
	EstimatedProducts    int               `json:"estimated_products,omitempty"`
	PaymentMethods       string            `gorm:"type:text" json:"payment_methods,omitempty"`
	ShippingMethods      string            `gorm:"type:text" json:"shipping_methods,omitempty"`
	EstimatedLaunch      *time.Time        `json:"estimated_launch,omitempty"`
	ActualLaunch         *time.Time        `json:"actual_launch,omitempty"`
	Status               EcommerceStatus   `gorm:"size:20;not null;default:PLANNING" json:"status"`
	SSLConfigured        bool              `gorm:"not null;default:false" json:"ssl_configured"`
	AnalyticsConfigured  bool              `gorm:"not null;default:false" json:"analytics_configured"`
	SEOConfigured        bool              `gorm:"not null;default:false" json:"seo_configured"`
	Notes                string            `gorm:"type:text" json:"notes,omitempty"`
	DevelopmentLead      string            `gorm:"size:100" json:"development_lead,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}
