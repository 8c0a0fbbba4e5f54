package resignation

import (
	"context"
	"net/http"
	"time"

	"github.com/IonixCH/hris-api/internal/employee"
	"github.com/IonixCH/hris-api/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateFormat = "2006-01-02"

var (
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective date, expected YYYY-MM-DD in the future",
		http.StatusBadRequest,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeConflict,
		"A pending resignation already exists",
		http.StatusBadRequest,
	)
)

type SubmitRequest struct {
	EffectiveDate string `json:"effective_date" binding:"required"`
	Reason        string `json:"reason"`
}

type ResignationResponse struct {
	ID            int64  `json:"id"`
	EffectiveDate string `json:"effective_date"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"`
}

type Service interface {
	Submit(ctx context.Context, userID int64, req SubmitRequest) (*ResignationResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	employeeSvc employee.Service
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, employeeSvc employee.Service) Service {
	return &service{
		db:          db,
		repo:        repo,
		employeeSvc: employeeSvc,
		logger:      zap.L().Named("resignation.service"),
	}
}

func (s *service) Submit(ctx context.Context, userID int64, req SubmitRequest) (*ResignationResponse, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	effective, err := time.Parse(dateFormat, req.EffectiveDate)
	if err != nil || effective.Before(time.Now().Truncate(24*time.Hour)) {
		return nil, ErrInvalidEffectiveDate
	}

	res := &Resignation{
		EmployeeID:    emp.ID,
		EffectiveDate: effective,
		Reason:        req.Reason,
		Status:        "pending",
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		pending, err := qtx.HasPending(ctx, emp.ID)
		if err != nil {
			return err
		}
		if pending {
			return ErrAlreadySubmitted
		}
		return qtx.Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("resignation submitted",
		zap.Int64("employee_id", emp.ID),
		zap.String("effective_date", req.EffectiveDate),
	)

	return &ResignationResponse{
		ID:            res.ID,
		EffectiveDate: res.EffectiveDate.Format(dateFormat),
		Reason:        res.Reason,
		Status:        res.Status,
	}, nil
}
