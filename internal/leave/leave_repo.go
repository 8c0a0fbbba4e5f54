package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *Leave) error
	HasOverlap(ctx context.Context, employeeID int64, from, to time.Time) (bool, error)
	ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]Leave, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// HasOverlap menganggap rejected tidak menghalangi pengajuan baru.
func (r *repository) HasOverlap(ctx context.Context, employeeID int64, from, to time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ? AND status <> ? AND date_from <= ? AND date_to >= ?",
			employeeID, StatusRejected, to, from).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]Leave, int64, error) {
	q := r.db.WithContext(ctx).Model(&Leave{}).Where("employee_id = ?", employeeID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Leave
	err := q.Order("date_from DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
