package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository

	// LockEmployee menahan advisory lock per employee sampai transaksi
	// selesai, menutup race dua toggle paralel untuk employee yang sama.
	LockEmployee(ctx context.Context, employeeID int64) error

	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id int64) (*Attendance, error)

	// FindOpen sengaja tidak dibatasi hari: check-in yang melewati tengah
	// malam tetap harus bisa ditutup keesokan harinya.
	FindOpen(ctx context.Context, employeeID int64) (*Attendance, error)
	ListBetween(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error)
	CloseRecord(ctx context.Context, id int64, checkOut time.Time, workingHours string) (int64, error)
	List(ctx context.Context, employeeID int64, start, end *time.Time, limit, offset int) ([]Attendance, int64, error)
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

func (r *repository) LockEmployee(ctx context.Context, employeeID int64) error {
	return r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", employeeID).Error
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindOpen(ctx context.Context, employeeID int64) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND check_out IS NULL", employeeID).
		Order("check_in DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListBetween(ctx context.Context, employeeID int64, start, end time.Time) ([]Attendance, error) {
	var list []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND check_in >= ? AND check_in < ?", employeeID, start, end).
		Order("check_in ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CloseRecord hanya menutup record yang masih terbuka; rows affected 0
// berarti record sudah keburu ditutup proses lain.
func (r *repository) CloseRecord(ctx context.Context, id int64, checkOut time.Time, workingHours string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("id = ? AND check_out IS NULL", id).
		Updates(map[string]any{
			"check_out":     checkOut,
			"working_hours": workingHours,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) List(ctx context.Context, employeeID int64, start, end *time.Time, limit, offset int) ([]Attendance, int64, error) {
	q := r.db.WithContext(ctx).Model(&Attendance{})
	if employeeID > 0 {
		q = q.Where("employee_id = ?", employeeID)
	}
	if start != nil {
		q = q.Where("check_in >= ?", *start)
	}
	if end != nil {
		q = q.Where("check_in < ?", *end)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []Attendance
	err := q.Order("check_in DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
