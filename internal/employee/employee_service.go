package employee

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	employeeerrors "github.com/IonixCH/hris-api/internal/employee/errors"
	"github.com/IonixCH/hris-api/internal/events"
	"github.com/IonixCH/hris-api/internal/messaging/kafka"
	"github.com/IonixCH/hris-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// EnsureForUser mengembalikan employee milik user, membuatnya dulu kalau
	// belum ada. Pembuatan + outbox event jalan dalam satu transaksi.
	EnsureForUser(ctx context.Context, userID int64) (*Employee, error)
	// EnsureForUserTx sama seperti EnsureForUser tetapi menumpang transaksi
	// pemanggil. Register memakainya supaya user dan employee jadi atau
	// batal bersama-sama.
	EnsureForUserTx(ctx context.Context, tx *gorm.DB, userID int64) (*Employee, error)
	GetByID(ctx context.Context, id int64) (*Employee, error)
	GetByUserID(ctx context.Context, userID int64) (*Employee, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		logger:     zap.L().Named("employee.service"),
	}
}

func (s *service) EnsureForUser(ctx context.Context, userID int64) (*Employee, error) {
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var created *Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, err := s.EnsureForUserTx(ctx, tx, userID)
		if err != nil {
			return err
		}
		created = e
		return nil
	})
	if err != nil {
		s.logger.Error("ensure employee failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	if created != nil && created.CreatedAt.After(time.Now().Add(-time.Minute)) {
		s.logger.Info("employee auto-created",
			zap.Int64("employee_id", created.ID),
			zap.Int64("user_id", userID),
		)
	}
	return created, nil
}

func (s *service) EnsureForUserTx(ctx context.Context, tx *gorm.DB, userID int64) (*Employee, error) {
	qtx := s.repo.WithTx(tx)

	// Re-check di dalam transaksi: login paralel bisa sudah membuatnya
	if e, err := qtx.FindByUserID(ctx, userID); err == nil {
		return e, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := qtx.FindUserRef(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrUserNotFound
		}
		return nil, err
	}

	companyID, err := qtx.DefaultCompanyID(ctx)
	if err != nil {
		return nil, err
	}
	if companyID == 0 {
		return nil, employeeerrors.ErrNoCompanyConfigured
	}

	e := &Employee{
		Name:      user.Name,
		UserID:    user.ID,
		WorkEmail: user.Email,
		WorkPhone: user.Phone,
		CompanyID: companyID,
		Active:    true,
	}
	if err := qtx.Create(ctx, e); err != nil {
		return nil, err
	}

	if err := s.enqueueCreatedEvent(ctx, tx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Employee, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *service) GetByUserID(ctx context.Context, userID int64) (*Employee, error) {
	e, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, tx *gorm.DB, e *Employee) error {
	if s.outboxRepo == nil {
		return nil
	}

	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  "employee.created",
		EmployeeID: e.ID,
		UserID:     e.UserID,
		Name:       e.Name,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(e.ID, 10),
		EventType:     "employee.created",
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
