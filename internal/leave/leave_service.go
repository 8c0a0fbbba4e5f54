package leave

import (
	"context"
	"time"

	"github.com/IonixCH/hris-api/internal/employee"
	leaveerrors "github.com/IonixCH/hris-api/internal/leave/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateFormat = "2006-01-02"

type Service interface {
	Create(ctx context.Context, userID int64, req CreateRequest) (*LeaveResponse, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]LeaveResponse, int64, error)
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
		logger:      zap.L().Named("leave.service"),
	}
}

func (s *service) Create(ctx context.Context, userID int64, req CreateRequest) (*LeaveResponse, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, err := time.Parse(dateFormat, req.DateFrom)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateRange
	}
	to, err := time.Parse(dateFormat, req.DateTo)
	if err != nil {
		return nil, leaveerrors.ErrInvalidDateRange
	}
	if to.Before(from) {
		return nil, leaveerrors.ErrInvalidDateRange
	}

	l := &Leave{
		EmployeeID: emp.ID,
		LeaveType:  req.LeaveType,
		DateFrom:   from,
		DateTo:     to,
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	// Pemeriksaan overlap dan insert satu transaksi supaya dua pengajuan
	// paralel tidak sama-sama lolos.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		overlap, err := qtx.HasOverlap(ctx, emp.ID, from, to)
		if err != nil {
			return err
		}
		if overlap {
			return leaveerrors.ErrOverlappingLeave
		}
		return qtx.Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("leave requested",
		zap.Int64("employee_id", emp.ID),
		zap.String("leave_type", l.LeaveType),
		zap.String("date_from", req.DateFrom),
		zap.String("date_to", req.DateTo),
	)

	resp := toResponse(l)
	return &resp, nil
}

func (s *service) List(ctx context.Context, userID int64, limit, offset int) ([]LeaveResponse, int64, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	leaves, total, err := s.repo.ListByEmployee(ctx, emp.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]LeaveResponse, 0, len(leaves))
	for i := range leaves {
		out = append(out, toResponse(&leaves[i]))
	}
	return out, total, nil
}

func toResponse(l *Leave) LeaveResponse {
	days := int(l.DateTo.Sub(l.DateFrom).Hours()/24) + 1
	return LeaveResponse{
		ID:        l.ID,
		LeaveType: l.LeaveType,
		DateFrom:  l.DateFrom.Format(dateFormat),
		DateTo:    l.DateTo.Format(dateFormat),
		Reason:    l.Reason,
		Status:    l.Status,
		Days:      days,
	}
}
