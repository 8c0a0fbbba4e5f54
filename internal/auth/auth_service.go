package auth

import (
	"context"
	"errors"
	"time"

	autherrors "github.com/IonixCH/hris-api/internal/auth/errors"
	"github.com/IonixCH/hris-api/internal/employee"
	employeeerrors "github.com/IonixCH/hris-api/internal/employee/errors"
	"github.com/IonixCH/hris-api/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, token string)
	Profile(ctx context.Context, userID int64) (*ProfileResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	employeeSvc employee.Service
	sessions    session.Store
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employeeSvc employee.Service, sessions session.Store) Service {
	return &service{
		db:          db,
		repo:        repo,
		employeeSvc: employeeSvc,
		sessions:    sessions,
		logger:      zap.L().Named("auth.service"),
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	identity := req.Identity()
	if identity == "" {
		return nil, autherrors.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, autherrors.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, autherrors.ErrAccountDisabled
	}

	// User lama yang belum punya record employee dibuatkan di sini,
	// supaya endpoint attendance langsung bisa dipakai setelah login.
	emp, err := s.employeeSvc.EnsureForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	s.sessions.Store(ctx, token, user.ID)

	s.logger.Info("user logged in",
		zap.Int64("user_id", user.ID),
		zap.String("login", user.Login),
	)

	resp := &LoginResponse{
		UserID:       user.ID,
		Username:     user.Login,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		SessionToken: token,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		DepartmentID: emp.DepartmentID,
	}
	if emp.Department != nil {
		resp.DepartmentName = emp.Department.Name
	}
	return resp, nil
}

func (s *service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	s.sessions.Remove(ctx, token)
}

func (s *service) Profile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	resp := &ProfileResponse{
		UserID:   user.ID,
		Username: user.Login,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
	}

	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		// Profil tetap dikembalikan walau employee belum diprovision
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return resp, nil
		}
		return nil, err
	}

	resp.EmployeeID = emp.ID
	resp.EmployeeName = emp.Name
	resp.DepartmentID = emp.DepartmentID
	if emp.Department != nil {
		resp.DepartmentName = emp.Department.Name
	}
	if emp.JobTitle != nil {
		resp.JobTitle = *emp.JobTitle
	}
	return resp, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return nil, autherrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Login:    req.Username,
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
		Phone:    req.Phone,
		Active:   true,
	}

	// User dan employee dibuat dalam satu transaksi: kalau provisioning
	// gagal, row user ikut batal dan register bisa diulang dengan username
	// yang sama.
	var emp *employee.Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}

		e, err := s.employeeSvc.EnsureForUserTx(ctx, tx, user.ID)
		if err != nil {
			return err
		}
		emp = e
		return nil
	})
	if err != nil {
		return nil, mapRegisterError(err)
	}

	s.logger.Info("user registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("employee_id", emp.ID),
	)

	return &RegisterResponse{
		UserID:     user.ID,
		Username:   user.Login,
		Name:       user.Name,
		Email:      user.Email,
		Phone:      user.Phone,
		EmployeeID: emp.ID,
		CreatedAt:  user.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, string(hashed))
}
