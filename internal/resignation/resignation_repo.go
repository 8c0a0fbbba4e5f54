package resignation

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *Resignation) error
	HasPending(ctx context.Context, employeeID int64) (bool, error)
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

func (r *repository) Create(ctx context.Context, res *Resignation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *repository) HasPending(ctx context.Context, employeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Resignation{}).
		Where("employee_id = ? AND status = ?", employeeID, "pending").
		Count(&count).Error
	return count > 0, err
}
