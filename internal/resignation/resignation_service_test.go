package resignation

import (
	"context"
	"net/http"
	"testing"

	"github.com/IonixCH/hris-api/internal/employee"
	employeeerrors "github.com/IonixCH/hris-api/internal/employee/errors"
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

type fakeResignationRepo struct {
	pending bool
	created []*Resignation
}

func (f *fakeResignationRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeResignationRepo) Create(ctx context.Context, r *Resignation) error {
	r.ID = int64(len(f.created) + 1)
	f.created = append(f.created, r)
	return nil
}

func (f *fakeResignationRepo) HasPending(ctx context.Context, employeeID int64) (bool, error) {
	return f.pending, nil
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

func TestSubmitResignationSuccess(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeResignationRepo{}
	svc := NewService(db, repo, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	resp, err := svc.Submit(context.Background(), 42, SubmitRequest{
		EffectiveDate: "2100-01-01",
		Reason:        "pindah kota",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Len(t, repo.created, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitResignationPendingBlocks(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeResignationRepo{pending: true}
	svc := NewService(db, repo, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	_, err := svc.Submit(context.Background(), 42, SubmitRequest{EffectiveDate: "2100-01-01"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	assert.Empty(t, repo.created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitResignationPastDateRejected(t *testing.T) {
	svc := NewService(nil, &fakeResignationRepo{}, &fakeEmployeeService{emp: &employee.Employee{ID: 7, UserID: 42}})

	for _, date := range []string{"2020-01-01", "01-01-2100", "besok"} {
		_, err := svc.Submit(context.Background(), 42, SubmitRequest{EffectiveDate: date})
		assert.ErrorIs(t, err, ErrInvalidEffectiveDate, date)
	}
}
