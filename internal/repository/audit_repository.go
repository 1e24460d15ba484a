package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/observability"

	"gorm.io/gorm"
)

var ErrAuditLogNotFound = errors.New("audit log not found")

type AuditLogFilter struct {
	Endpoint string
	Method   string
	APIKey   string
	DateFrom *time.Time
	DateTo   *time.Time
	Skip     int
	Limit    int
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type AuditLogStats struct {
	TotalRequests    int64            `json:"total_requests"`
	UniqueEndpoints  int64            `json:"unique_endpoints"`
	MethodCounts     map[string]int64 `json:"methods_count"`
	StatusCodeCounts map[string]int64 `json:"status_codes_count"`
	RequestsByDay    []DailyCount     `json:"requests_by_day"`
}

type AuditLogRepository interface {
	Create(log *domain.AuditLog) error
	FindByID(id uint) (*domain.AuditLog, error)
	List(filter AuditLogFilter) ([]domain.AuditLog, error)
	Stats(dateFrom, dateTo *time.Time) (*AuditLogStats, error)
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type GormAuditLogRepository struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Create runs on a fresh gorm session so an audit write never joins, commits
// or rolls back whatever transaction served the request being audited.
func (r *GormAuditLogRepository) Create(log *domain.AuditLog) error {
	err := r.db.Session(&gorm.Session{NewDB: true}).Create(log).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), "audit_log", "create", "success")
	return nil
}

func (r *GormAuditLogRepository) FindByID(id uint) (*domain.AuditLog, error) {
	var log domain.AuditLog
	err := r.db.First(&log, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), "audit_log", "find_by_id", "not_found")
			return nil, ErrAuditLogNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "find_by_id", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "audit_log", "find_by_id", "success")
	return &log, nil
}

func (r *GormAuditLogRepository) List(filter AuditLogFilter) ([]domain.AuditLog, error) {
	query := r.applyFilter(r.db.Model(&domain.AuditLog{}), filter.DateFrom, filter.DateTo)
	if filter.Endpoint != "" {
		query = query.Where("LOWER(endpoint) LIKE LOWER(?)", "%"+filter.Endpoint+"%")
	}
	if filter.Method != "" {
		query = query.Where("method = ?", filter.Method)
	}
	if filter.APIKey != "" {
		query = query.Where("api_key = ?", filter.APIKey)
	}

	var logs []domain.AuditLog
	err := query.Order("timestamp DESC").Order("id DESC").
		Offset(filter.Skip).Limit(filter.Limit).
		Find(&logs).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "list", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), "audit_log", "list", "success")
	return logs, nil
}

func (r *GormAuditLogRepository) Stats(dateFrom, dateTo *time.Time) (*AuditLogStats, error) {
	stats := &AuditLogStats{
		MethodCounts:     map[string]int64{},
		StatusCodeCounts: map[string]int64{},
		RequestsByDay:    []DailyCount{},
	}

	base := r.applyFilter(r.db.Model(&domain.AuditLog{}), dateFrom, dateTo)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalRequests).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "stats", "error")
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Distinct("endpoint").Count(&stats.UniqueEndpoints).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "stats", "error")
		return nil, err
	}

	type groupCount struct {
		Key   string
		Count int64
	}
	var methodRows []groupCount
	err := base.Session(&gorm.Session{}).
		Select("method AS key, COUNT(id) AS count").
		Group("method").
		Scan(&methodRows).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "stats", "error")
		return nil, err
	}
	for _, row := range methodRows {
		stats.MethodCounts[row.Key] = row.Count
	}

	type statusCount struct {
		Status int
		Count  int64
	}
	var statusRows []statusCount
	err = base.Session(&gorm.Session{}).
		Select("status_code AS status, COUNT(id) AS count").
		Group("status_code").
		Scan(&statusRows).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "stats", "error")
		return nil, err
	}
	for _, row := range statusRows {
		stats.StatusCodeCounts[strconv.Itoa(row.Status)] = row.Count
	}

	type dayCount struct {
		Day   string
		Count int64
	}
	var dayRows []dayCount
	err = base.Session(&gorm.Session{}).
		Select("DATE(timestamp) AS day, COUNT(id) AS count").
		Group("DATE(timestamp)").
		Order("DATE(timestamp)").
		Scan(&dayRows).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "stats", "error")
		return nil, err
	}
	for _, row := range dayRows {
		stats.RequestsByDay = append(stats.RequestsByDay, DailyCount{Date: row.Day, Count: row.Count})
	}

	observability.RecordRepositoryOperation(context.Background(), "audit_log", "stats", "success")
	return stats, nil
}

func (r *GormAuditLogRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("timestamp < ?", cutoff).Delete(&domain.AuditLog{})
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), "audit_log", "delete_older_than", "error")
		return 0, res.Error
	}
	observability.RecordRepositoryOperation(context.Background(), "audit_log", "delete_older_than", "success")
	return res.RowsAffected, nil
}

func (r *GormAuditLogRepository) applyFilter(query *gorm.DB, dateFrom, dateTo *time.Time) *gorm.DB {
	if dateFrom != nil {
		query = query.Where("timestamp >= ?", *dateFrom)
	}
	if dateTo != nil {
		query = query.Where("timestamp <= ?", *dateTo)
	}
	return query
}
