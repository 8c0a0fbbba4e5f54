package overtime

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/IonixCH/hris-api/internal/employee"
	overtimeerrors "github.com/IonixCH/hris-api/internal/overtime/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Input jam lembur dari client dikirim naive dalam WIB.
var wib = time.FixedZone("WIB", 7*3600)

const timeInputFormat = "2006-01-02 15:04"

type Service interface {
	ListTypes(ctx context.Context) ([]OvertimeTypeResponse, error)
	Submit(ctx context.Context, userID int64, req SubmitRequest) (*OvertimeResponse, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]OvertimeResponse, int64, error)
}

type service struct {
	repo        Repository
	employeeSvc employee.Service
	logger      *zap.Logger
}

func NewService(repo Repository, employeeSvc employee.Service) Service {
	return &service{
		repo:        repo,
		employeeSvc: employeeSvc,
		logger:      zap.L().Named("overtime.service"),
	}
}

// defaultTypes dipakai saat tabel master belum diisi, supaya mobile client
// tetap bisa menampilkan pilihan.
var defaultTypes = []OvertimeTypeResponse{
	{ID: 1, Name: "Weekday Overtime", RateMultiplier: 1.5},
	{ID: 2, Name: "Weekend Overtime", RateMultiplier: 2.0},
	{ID: 3, Name: "Public Holiday Overtime", RateMultiplier: 3.0},
}

func (s *service) ListTypes(ctx context.Context) ([]OvertimeTypeResponse, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return defaultTypes, nil
	}

	out := make([]OvertimeTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, OvertimeTypeResponse{
			ID:             t.ID,
			Name:           t.Name,
			RateMultiplier: t.RateMultiplier,
		})
	}
	return out, nil
}

func (s *service) Submit(ctx context.Context, userID int64, req SubmitRequest) (*OvertimeResponse, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(timeInputFormat, req.StartAt, wib)
	if err != nil {
		return nil, overtimeerrors.ErrInvalidTimeRange
	}
	end, err := time.ParseInLocation(timeInputFormat, req.EndAt, wib)
	if err != nil {
		return nil, overtimeerrors.ErrInvalidTimeRange
	}
	if !end.After(start) {
		return nil, overtimeerrors.ErrInvalidTimeRange
	}

	ot, err := s.repo.FindType(ctx, req.OvertimeTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, overtimeerrors.ErrTypeNotFound
		}
		return nil, err
	}

	duration := math.Round(end.Sub(start).Hours()*100) / 100

	o := &Overtime{
		EmployeeID:     emp.ID,
		OvertimeTypeID: ot.ID,
		StartAt:        start.UTC(),
		EndAt:          end.UTC(),
		DurationHours:  duration,
		Reason:         req.Reason,
		Status:         "pending",
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("overtime submitted",
		zap.Int64("employee_id", emp.ID),
		zap.Int64("overtime_type_id", ot.ID),
		zap.Float64("duration_hours", duration),
	)

	return &OvertimeResponse{
		ID:            o.ID,
		TypeName:      ot.Name,
		StartAt:       start.Format(timeInputFormat),
		EndAt:         end.Format(timeInputFormat),
		DurationHours: duration,
		Reason:        o.Reason,
		Status:        o.Status,
	}, nil
}

func (s *service) List(ctx context.Context, userID int64, limit, offset int) ([]OvertimeResponse, int64, error) {
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

	list, total, err := s.repo.ListByEmployee(ctx, emp.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]OvertimeResponse, 0, len(list))
	for i := range list {
		o := &list[i]
		resp := OvertimeResponse{
			ID:            o.ID,
			StartAt:       o.StartAt.In(wib).Format(timeInputFormat),
			EndAt:         o.EndAt.In(wib).Format(timeInputFormat),
			DurationHours: o.DurationHours,
			Reason:        o.Reason,
			Status:        o.Status,
		}
		if o.OvertimeType != nil {
			resp.TypeName = o.OvertimeType.Name
		}
		out = append(out, resp)
	}
	return out, total, nil
}
