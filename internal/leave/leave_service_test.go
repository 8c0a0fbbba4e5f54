package leave

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/IonixCH/hris-api/internal/employee"
	employeeerrors "github.com/IonixCH/hris-api/internal/employee/errors"
	leaveerrors "github.com/IonixCH/hris-api/internal/leave/errors"
	"github.com/IonixCH/hris-api/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

type fakeLeaveRepo struct {
	leaves []*Leave
	nextID int64
}

func (f *fakeLeaveRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeLeaveRepo) Create(ctx context.Context, l *Leave) error {
	f.nextID++
	l.ID = f.nextID
	clone := *l
	f.leaves = append(f.leaves, &clone)
	return nil
}

func (f *fakeLeaveRepo) HasOverlap(ctx context.Context, employeeID int64, from, to time.Time) (bool, error) {
	for _, l := range f.leaves {
		if l.EmployeeID != employeeID || l.Status == StatusRejected {
			continue
		}
		if !l.DateFrom.After(to) && !l.DateTo.Before(from) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]Leave, int64, error) {
	var out []Leave
	for _, l := range f.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeService struct {
	emp *employee.Employee
}

func (f *fakeEmployeeService) EnsureForUser(ctx context.Context, userID int64) (*employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeService) EnsureForUserTx(ctx context.Context, tx *gorm.DB, userID int64) (*employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	return f.emp, nil
}

func (f *fakeEmployeeService) GetByUserID(ctx context.Context, userID int64) (*employee.Employee, error) {
	if f.emp == nil {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func TestCreateLeaveSuccess(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeLeaveRepo{}
	svc := NewService(db, repo, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	resp, err := svc.Create(context.Background(), 42, CreateRequest{
		LeaveType: "annual",
		DateFrom:  "2025-02-03",
		DateTo:    "2025-02-05",
		Reason:    "family matters",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLeaveOverlapConflict(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeLeaveRepo{}
	repo.leaves = append(repo.leaves, &Leave{
		ID: 1, EmployeeID: 7, LeaveType: "annual",
		DateFrom: mustDate(t, "2025-02-04"), DateTo: mustDate(t, "2025-02-06"),
		Status: StatusPending,
	})
	svc := NewService(db, repo, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	_, err := svc.Create(context.Background(), 42, CreateRequest{
		LeaveType: "annual",
		DateFrom:  "2025-02-03",
		DateTo:    "2025-02-05",
	})
	assert.ErrorIs(t, err, leaveerrors.ErrOverlappingLeave)
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	assert.Len(t, repo.leaves, 1)
}

func TestCreateLeaveRejectedDoesNotBlock(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeLeaveRepo{nextID: 1}
	repo.leaves = append(repo.leaves, &Leave{
		ID: 1, EmployeeID: 7, LeaveType: "annual",
		DateFrom: mustDate(t, "2025-02-04"), DateTo: mustDate(t, "2025-02-06"),
		Status: StatusRejected,
	})
	svc := NewService(db, repo, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	_, err := svc.Create(context.Background(), 42, CreateRequest{
		LeaveType: "annual",
		DateFrom:  "2025-02-03",
		DateTo:    "2025-02-05",
	})
	require.NoError(t, err)
}

func TestCreateLeaveInvalidRange(t *testing.T) {
	svc := NewService(nil, &fakeLeaveRepo{}, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	cases := []CreateRequest{
		{LeaveType: "annual", DateFrom: "03-02-2025", DateTo: "2025-02-05"},
		{LeaveType: "annual", DateFrom: "2025-02-05", DateTo: "2025-02-03"},
		{LeaveType: "annual", DateFrom: "2025-02-03", DateTo: "bukan tanggal"},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), 42, req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}
