package auth

import (
	"context"
	"errors"
	"testing"

	autherrors "github.com/IonixCH/hris-api/internal/auth/errors"
	"github.com/IonixCH/hris-api/internal/employee"
	employeeerrors "github.com/IonixCH/hris-api/internal/employee/errors"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

type fakeAuthRepo struct {
	users     map[int64]*User
	createErr error
	updated   map[int64]string
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: map[int64]*User{}, updated: map[int64]string{}}
}

func (f *fakeAuthRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeAuthRepo) Create(ctx context.Context, u *User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = int64(len(f.users) + 1)
	f.users[u.ID] = u
	return nil
}

func (f *fakeAuthRepo) FindByID(ctx context.Context, id int64) (*User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) FindByIdentity(ctx context.Context, identity string) (*User, error) {
	for _, u := range f.users {
		if u.Login == identity || u.Email == identity {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepo) UpdatePassword(ctx context.Context, id int64, hashed string) error {
	f.updated[id] = hashed
	return nil
}

type fakeEmployeeService struct {
	employees map[int64]*employee.Employee
	ensureErr error
}

func (f *fakeEmployeeService) EnsureForUser(ctx context.Context, userID int64) (*employee.Employee, error) {
	if f.ensureErr != nil {
		return nil, f.ensureErr
	}
	if e, ok := f.employees[userID]; ok {
		return e, nil
	}
	e := &employee.Employee{ID: userID + 100, UserID: userID, Name: "Auto Provisioned"}
	if f.employees == nil {
		f.employees = map[int64]*employee.Employee{}
	}
	f.employees[userID] = e
	return e, nil
}

func (f *fakeEmployeeService) EnsureForUserTx(ctx context.Context, tx *gorm.DB, userID int64) (*employee.Employee, error) {
	return f.EnsureForUser(ctx, userID)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64) (*employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

func (f *fakeEmployeeService) GetByUserID(ctx context.Context, userID int64) (*employee.Employee, error) {
	if e, ok := f.employees[userID]; ok {
		return e, nil
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

func seedUser(t *testing.T, repo *fakeAuthRepo, login, password string) *User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &User{
		ID:       int64(len(repo.users) + 1),
		Login:    login,
		Email:    login + "@example.com",
		Name:     "Test User",
		Password: string(hashed),
		Active:   true,
	}
	repo.users[u.ID] = u
	return u
}

func TestLoginStoresSessionAndReturnsToken(t *testing.T) {
	repo := newFakeAuthRepo()
	user := seedUser(t, repo, "budi", "rahasia123")
	sessions := session.NewMemoryStore(session.DefaultTTL)

	svc := NewService(nil, repo, &fakeEmployeeService{}, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionToken)

	gotID, ok := sessions.GetUserID(context.Background(), resp.SessionToken)
	assert.True(t, ok)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, "budi", resp.Username)
	assert.NotZero(t, resp.EmployeeID)
}

func TestLoginAcceptsEmailAsIdentity(t *testing.T) {
	repo := newFakeAuthRepo()
	seedUser(t, repo, "budi", "rahasia123")
	sessions := session.NewMemoryStore(session.DefaultTTL)

	svc := NewService(nil, repo, &fakeEmployeeService{}, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: "budi@example.com", Password: "rahasia123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestLoginWrongPasswordRejected(t *testing.T) {
	repo := newFakeAuthRepo()
	seedUser(t, repo, "budi", "rahasia123")
	sessions := session.NewMemoryStore(session.DefaultTTL)

	svc := NewService(nil, repo, &fakeEmployeeService{}, sessions)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "salah"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	assert.Zero(t, sessions.Count(context.Background()))
}

func TestLoginUnknownUserRejected(t *testing.T) {
	repo := newFakeAuthRepo()
	sessions := session.NewMemoryStore(session.DefaultTTL)

	svc := NewService(nil, repo, &fakeEmployeeService{}, sessions)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "apa saja"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccountRejected(t *testing.T) {
	repo := newFakeAuthRepo()
	u := seedUser(t, repo, "budi", "rahasia123")
	u.Active = false
	sessions := session.NewMemoryStore(session.DefaultTTL)

	svc := NewService(nil, repo, &fakeEmployeeService{}, sessions)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "rahasia123"})
	assert.ErrorIs(t, err, autherrors.ErrAccountDisabled)
}

func TestLogoutRemovesSession(t *testing.T) {
	repo := newFakeAuthRepo()
	seedUser(t, repo, "budi", "rahasia123")
	sessions := session.NewMemoryStore(session.DefaultTTL)

	svc := NewService(nil, repo, &fakeEmployeeService{}, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "budi", Password: "rahasia123"})
	require.NoError(t, err)

	svc.Logout(context.Background(), resp.SessionToken)

	_, ok := sessions.GetUserID(context.Background(), resp.SessionToken)
	assert.False(t, ok)

	// Logout ulang dengan token yang sama tidak boleh error
	svc.Logout(context.Background(), resp.SessionToken)
}

func TestRegisterCreatesUserAndEmployee(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := newFakeAuthRepo()
	sessions := session.NewMemoryStore(session.DefaultTTL)
	svc := NewService(db, repo, &fakeEmployeeService{}, sessions)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "siti",
		Email:    "siti@example.com",
		Password: "rahasia123",
		Name:     "Siti Aminah",
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.UserID)
	assert.NotZero(t, resp.EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateMapsToConflict(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeAuthRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_login"}
	sessions := session.NewMemoryStore(session.DefaultTTL)
	svc := NewService(db, repo, &fakeEmployeeService{}, sessions)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "siti",
		Email:    "siti@example.com",
		Password: "rahasia123",
		Name:     "Siti Aminah",
	})
	assert.ErrorIs(t, err, autherrors.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRollsBackUserWhenProvisioningFails(t *testing.T) {
	db, mock := newGormMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := newFakeAuthRepo()
	sessions := session.NewMemoryStore(session.DefaultTTL)
	svc := NewService(db, repo, &fakeEmployeeService{ensureErr: employeeerrors.ErrNoCompanyConfigured}, sessions)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "siti",
		Email:    "siti@example.com",
		Password: "rahasia123",
		Name:     "Siti Aminah",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrNoCompanyConfigured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterPasswordMismatchRejected(t *testing.T) {
	svc := NewService(nil, newFakeAuthRepo(), &fakeEmployeeService{}, session.NewMemoryStore(session.DefaultTTL))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username:        "siti",
		Email:           "siti@example.com",
		Password:        "rahasia123",
		ConfirmPassword: "beda",
		Name:            "Siti Aminah",
	})
	assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	repo := newFakeAuthRepo()
	u := seedUser(t, repo, "budi", "rahasia123")
	svc := NewService(nil, repo, &fakeEmployeeService{}, session.NewMemoryStore(session.DefaultTTL))

	err := svc.ChangePassword(context.Background(), u.ID, ChangePasswordRequest{
		CurrentPassword: "salah",
		NewPassword:     "barubanget",
	})
	assert.ErrorIs(t, err, autherrors.ErrWrongCurrentPassword)
	assert.Empty(t, repo.updated)

	err = svc.ChangePassword(context.Background(), u.ID, ChangePasswordRequest{
		CurrentPassword: "rahasia123",
		NewPassword:     "barubanget",
	})
	require.NoError(t, err)
	require.Contains(t, repo.updated, u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.updated[u.ID]), []byte("barubanget")))
}

func TestMapRegisterErrorPassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	assert.Equal(t, boom, mapRegisterError(boom))
}
