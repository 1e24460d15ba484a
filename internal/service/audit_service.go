package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/valbrand/crm-backend/internal/domain"
	"github.com/valbrand/crm-backend/internal/repository"
)

var ErrAuditLogNotFound = repository.ErrAuditLogNotFound

type AuditService struct {
	logs repository.AuditLogRepository
}

func NewAuditService(logs repository.AuditLogRepository) *AuditService {
	return &AuditService{logs: logs}
}

func (s *AuditService) Record(entry *domain.AuditLog) error {
	return s.logs.Create(entry)
}

func (s *AuditService) List(filter repository.AuditLogFilter) ([]domain.AuditLog, error) {
	if filter.Limit <= 0 {
		filter.Limit = repository.DefaultLimit
	}
	if filter.Limit > repository.MaxLimit {
		filter.Limit = repository.MaxLimit
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.logs.List(filter)
}

func (s *AuditService) Get(id uint) (*domain.AuditLog, error) {
	return s.logs.FindByID(id)
}

func (s *AuditService) Stats(dateFrom, dateTo *time.Time) (*repository.AuditLogStats, error) {
	return s.logs.Stats(dateFrom, dateTo)
}

// Cleanup irreversibly deletes records older than retainDays and reports how
// many rows went away.
func (s *AuditService) Cleanup(retainDays int) (int64, time.Time, error) {
	if retainDays < 1 {
		return 0, time.Time{}, errors.New("days_to_keep must be at least 1")
	}
	cutoff := time.Now().AddDate(0, 0, -retainDays)
	deleted, err := s.logs.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, cutoff, fmt.Errorf("delete audit logs before %s: %w", cutoff.Format("2006-01-02"), err)
	}
	return deleted, cutoff, nil
}
