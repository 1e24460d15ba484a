package repository

import (
	"context"
	"errors"

	"github.com/valbrand/crm-backend/internal/observability"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// CRUDRepository serves the catalog entities (clients, projects, molds,
// plans, invoices, ...) whose persistence needs are identical. The entity
// name only feeds the per-operation metrics.
type CRUDRepository[T any] struct {
	db     *gorm.DB
	entity string
}

func NewCRUDRepository[T any](db *gorm.DB, entity string) *CRUDRepository[T] {
	return &CRUDRepository[T]{db: db, entity: entity}
}

func (r *CRUDRepository[T]) List(req PageRequest) (PageResult[T], error) {
	req = normalizePageRequest(req)
	result := PageResult[T]{Items: []T{}, Skip: req.Skip, Limit: req.Limit}

	var model T
	if err := r.db.Model(&model).Count(&result.Total).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), r.entity, "list", "error")
		return result, err
	}
	err := r.db.Order("id").Offset(req.Skip).Limit(req.Limit).Find(&result.Items).Error
	if err != nil {
		observability.RecordRepositoryOperation(context.Background(), r.entity, "list", "error")
		return result, err
	}
	observability.RecordRepositoryOperation(context.Background(), r.entity, "list", "success")
	return result, nil
}

func (r *CRUDRepository[T]) Get(id uint) (*T, error) {
	var record T
	err := r.db.First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			observability.RecordRepositoryOperation(context.Background(), r.entity, "get", "not_found")
			return nil, ErrNotFound
		}
		observability.RecordRepositoryOperation(context.Background(), r.entity, "get", "error")
		return nil, err
	}
	observability.RecordRepositoryOperation(context.Background(), r.entity, "get", "success")
	return &record, nil
}

func (r *CRUDRepository[T]) Create(record *T) error {
	if err := r.db.Create(record).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), r.entity, "create", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), r.entity, "create", "success")
	return nil
}

func (r *CRUDRepository[T]) Save(record *T) error {
	if err := r.db.Save(record).Error; err != nil {
		observability.RecordRepositoryOperation(context.Background(), r.entity, "save", "error")
		return err
	}
	observability.RecordRepositoryOperation(context.Background(), r.entity, "save", "success")
	return nil
}

func (r *CRUDRepository[T]) Delete(id uint) error {
	var model T
	res := r.db.Delete(&model, id)
	if res.Error != nil {
		observability.RecordRepositoryOperation(context.Background(), r.entity, "delete", "error")
		return res.Error
	}
	if res.RowsAffected == 0 {
		observability.RecordRepositoryOperation(context.Background(), r.entity, "delete", "not_found")
		return ErrNotFound
	}
	observability.RecordRepositoryOperation(context.Background(), r.entity, "delete", "success")
	return nil
}
