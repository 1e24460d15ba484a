package domain

import "time"

// AuditLog is immutable once written; rows are only ever removed by the
// age-based cleanup operation.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Endpoint    string    `gorm:"size:255;index;not null" json:"endpoint"`
	Method      string    `gorm:"size:10;not null" json:"method"`
	APIKey      string    `gorm:"size:128;index;not null" json:"api_key"`
	RequestBody *string   `gorm:"type:text" json:"request_body,omitempty"`
	QueryParams *string   `gorm:"type:text" json:"query_params,omitempty"`
	UserAgent   *string   `gorm:"size:512" json:"user_agent,omitempty"`
	IPAddress   *string   `gorm:"size:64" json:"ip_address,omitempty"`
	StatusCode  int       `json:"status_code"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
}
