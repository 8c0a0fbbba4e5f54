package employee

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByUserID(ctx context.Context, userID int64) (*Employee, error)
	FindUserRef(ctx context.Context, userID int64) (*UserRef, error)
	DefaultCompanyID(ctx context.Context) (int64, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindByUserID(ctx context.Context, userID int64) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		First(&e, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindUserRef(ctx context.Context, userID int64) (*UserRef, error) {
	var u UserRef
	err := r.db.WithContext(ctx).First(&u, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) DefaultCompanyID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Table("companies").
		Select("id").
		Order("id ASC").
		Limit(1).
		Scan(&id).Error
	return id, err
}
