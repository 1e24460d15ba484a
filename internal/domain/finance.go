package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusIssued    InvoiceStatus = "ISSUED"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

type Invoice struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Number        string        `gorm:"size:50;uniqueIndex;not null" json:"number"`
	ProjectID     uint          `gorm:"index;not null" json:"project_id"`
	Series        string        `gorm:"size:20" json:"series,omitempty"`
	IssuedOn      time.Time     `gorm:"not null" json:"issued_on"`
	DueOn         *time.Time    `json:"due_on,omitempty"`
	PaidOn        *time.Time    `json:"paid_on,omitempty"`
	Subtotal      float64       `gorm:"type:decimal(18,2);not null" json:"subtotal"`
	Discount      float64       `gorm:"type:decimal(18,2);default:0" json:"discount"`
	Taxes         float64       `gorm:"type:decimal(18,2);not null" json:"taxes"`
	Total         float64       `gorm:"type:decimal(18,2);not null" json:"total"`
	Currency      string        `gorm:"size:3;default:MXN" json:"currency"`
	ExchangeRate  float64       `gorm:"type:decimal(18,4);default:1" json:"exchange_rate"`
	Status        InvoiceStatus `gorm:"size:20;not null;default:DRAFT" json:"status"`
	PaymentMethod string        `gorm:"size:50" json:"payment_method,omitempty"`
	PaymentTerms  string        `gorm:"size:255" json:"payment_terms,omitempty"`
	Notes         string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy     *uint         `json:"created_by,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Number        string    `gorm:"size:50;uniqueIndex;not null" json:"number"`
	InvoiceID     uint      `gorm:"index;not null" json:"invoice_id"`
	Amount        float64   `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaidOn        time.Time `gorm:"not null" json:"paid_on"`
	PaymentMethod string    `gorm:"size:50;not null" json:"payment_method"`
	Reference     string    `gorm:"size:100" json:"reference,omitempty"`
	Bank          string    `gorm:"size:100" json:"bank,omitempty"`
	Account       string    `gorm:"size:100" json:"account,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy    *uint     `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Expense struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Number        string    `gorm:"size:50;uniqueIndex;not null" json:"number"`
	ProjectID     *uint     `gorm:"index" json:"project_id,omitempty"`
	Concept       string    `gorm:"size:255;not null" json:"concept"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	Amount        float64   `gorm:"type:decimal(18,2);not null" json:"amount"`
	Currency      string    `gorm:"size:3;default:MXN" json:"currency"`
	SpentOn       time.Time `gorm:"not null" json:"spent_on"`
	Category      string    `gorm:"size:100;not null" json:"category"`
	Vendor        string    `gorm:"size:100" json:"vendor,omitempty"`
	PaymentMethod string    `gorm:"size:50" json:"payment_method,omitempty"`
	Deductible    bool      `gorm:"not null;default:true" json:"deductible"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy    *uint     `json:"recorded_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
