package overtime

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListTypes(ctx context.Context) ([]OvertimeType, error)
	FindType(ctx context.Context, id int64) (*OvertimeType, error)
	Create(ctx context.Context, o *Overtime) error
	ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]Overtime, int64, error)
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

func (r *repository) ListTypes(ctx context.Context) ([]OvertimeType, error) {
	var types []OvertimeType
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *repository) FindType(ctx context.Context, id int64) (*OvertimeType, error) {
	var t OvertimeType
	err := r.db.WithContext(ctx).First(&t, "id = ? AND active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, o *Overtime) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]Overtime, int64, error) {
	q := r.db.WithContext(ctx).Model(&Overtime{}).Where("employee_id = ?", employeeID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Overtime
	err := q.Preload("OvertimeType").
		Order("start_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
