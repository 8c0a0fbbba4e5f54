package company

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*Company, error)
	FindDefault(ctx context.Context) (*Company, error)
	UpdateLocation(ctx context.Context, id int64, lat, lon float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindDefault(ctx context.Context) (*Company, error) {
	var c Company
	err := r.db.WithContext(ctx).Order("id ASC").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpdateLocation(ctx context.Context, id int64, lat, lon float64) error {
	return r.db.WithContext(ctx).
		Model(&Company{}).
		Where("id = ?", id).
		Updates(map[string]any{"latitude": lat, "longitude": lon}).Error
}
