package elearning

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Slide, int64, error)
	FindByID(ctx context.Context, id int64) (*Slide, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, limit, offset int) ([]Slide, int64, error) {
	q := r.db.WithContext(ctx).Model(&Slide{}).Where("active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Slide
	err := q.Order("sequence ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Slide, error) {
	var s Slide
	err := r.db.WithContext(ctx).First(&s, "id = ? AND active = ?", id, true).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
