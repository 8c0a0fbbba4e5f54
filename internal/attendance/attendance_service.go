package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	attendanceerrors "github.com/IonixCH/hris-api/internal/attendance/errors"
	"github.com/IonixCH/hris-api/internal/company"
	"github.com/IonixCH/hris-api/internal/employee"
	"github.com/IonixCH/hris-api/internal/events"
	"github.com/IonixCH/hris-api/internal/messaging/kafka"
	"github.com/IonixCH/hris-api/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// wib dipakai untuk batas hari dan presentasi jam; penyimpanan tetap UTC.
var wib = time.FixedZone("WIB", 7*3600)

const (
	// DefaultRadiusMeters sengaja longgar; batasi lewat ATTENDANCE_RADIUS_M.
	DefaultRadiusMeters = 100000.0

	lateHour   = 10
	lateMinute = 30

	timeFormat = "03:04 PM"
	dateFormat = "2006-01-02"
)

type Service interface {
	// Toggle menjalankan state machine satu-siklus-per-hari: belum ada record
	// hari ini berarti check-in, ada record terbuka berarti check-out, siklus
	// lengkap berarti conflict.
	Toggle(ctx context.Context, userID int64, req ToggleRequest) (*ToggleResponse, error)
	CheckIn(ctx context.Context, userID int64, req ToggleRequest) (*ToggleResponse, error)
	CheckOut(ctx context.Context, userID int64, req ToggleRequest) (*ToggleResponse, error)
	Status(ctx context.Context, employeeID int64) (*StatusResponse, error)
	Dashboard(ctx context.Context, userID int64) (*DashboardResponse, error)
	History(ctx context.Context, userID int64, limit, offset int) ([]RecordResponse, int64, error)
	List(ctx context.Context, filter ListFilter) ([]RecordResponse, int64, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	employeeSvc  employee.Service
	companySvc   company.Service
	outboxRepo   kafka.OutboxRepository
	radiusMeters float64
	now          func() time.Time
	sf           singleflight.Group
	logger       *zap.Logger
}

type Option func(*service)

// WithClock mengganti sumber waktu, dipakai di test.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithRadius(meters float64) Option {
	return func(s *service) {
		if meters > 0 {
			s.radiusMeters = meters
		}
	}
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employeeSvc employee.Service,
	companySvc company.Service,
	outboxRepo kafka.OutboxRepository,
	opts ...Option,
) Service {
	s := &service{
		db:           db,
		repo:         repo,
		employeeSvc:  employeeSvc,
		companySvc:   companySvc,
		outboxRepo:   outboxRepo,
		radiusMeters: DefaultRadiusMeters,
		now:          time.Now,
		logger:       zap.L().Named("attendance.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// dayBoundsWIB mengembalikan rentang [start, end) hari berjalan WIB dalam UTC.
func dayBoundsWIB(now time.Time) (time.Time, time.Time) {
	local := now.In(wib)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, wib)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}

func formatWorkingHours(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func formatClock(t time.Time) string {
	return t.In(wib).Format(timeFormat)
}

func isLate(checkIn time.Time) bool {
	local := checkIn.In(wib)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), lateHour, lateMinute, 0, 0, wib)
	return local.After(cutoff)
}

// validateLocation memvalidasi precondition lalu menghitung jarak ke kantor.
// Gagal di sini tidak boleh meninggalkan side effect apa pun.
func (s *service) validateLocation(ctx context.Context, req ToggleRequest) (lat, lon, distanceMeters float64, err error) {
	latVal, latOK := req.Latitude.Float64()
	lonVal, lonOK := req.Longitude.Float64()
	if req.Latitude.String() == "" || req.Longitude.String() == "" {
		return 0, 0, 0, attendanceerrors.ErrGPSRequired
	}
	if !latOK || !lonOK {
		return 0, 0, 0, attendanceerrors.ErrInvalidCoordinates
	}
	if latVal < -90 || latVal > 90 || lonVal < -180 || lonVal > 180 {
		return 0, 0, 0, attendanceerrors.ErrInvalidCoordinates
	}
	if req.CameraImage == "" {
		return 0, 0, 0, attendanceerrors.ErrPhotoRequired
	}

	office, err := s.companySvc.GetOfficeLocation(ctx, 0)
	if err != nil {
		return 0, 0, 0, err
	}

	distance := haversineMeters(latVal, lonVal, office.Latitude, office.Longitude)
	if distance > s.radiusMeters {
		return 0, 0, 0, attendanceerrors.OutsideRadius(distance/1000, s.radiusMeters/1000)
	}
	return latVal, lonVal, distance, nil
}

func (s *service) Toggle(ctx context.Context, userID int64, req ToggleRequest) (*ToggleResponse, error) {
	return s.toggle(ctx, userID, req, "")
}

func (s *service) CheckIn(ctx context.Context, userID int64, req ToggleRequest) (*ToggleResponse, error) {
	return s.toggle(ctx, userID, req, "check_in")
}

func (s *service) CheckOut(ctx context.Context, userID int64, req ToggleRequest) (*ToggleResponse, error) {
	return s.toggle(ctx, userID, req, "check_out")
}

// toggle menjalankan seluruh keputusan dalam satu transaksi. Advisory lock
// per employee diambil lebih dulu supaya dua request paralel tidak sama-sama
// lolos pemeriksaan "belum ada record hari ini".
func (s *service) toggle(ctx context.Context, userID int64, req ToggleRequest, want string) (*ToggleResponse, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lat, lon, distance, err := s.validateLocation(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	dayStart, dayEnd := dayBoundsWIB(now)

	var resp *ToggleResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if err := qtx.LockEmployee(ctx, emp.ID); err != nil {
			return err
		}

		// Siklus terbuka dicari tanpa batas hari: check-in yang lewat tengah
		// malam tetap ditutup, bukan malah membuka siklus baru.
		open, err := qtx.FindOpen(ctx, emp.ID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if open != nil {
			if want == "check_in" {
				return attendanceerrors.ErrAlreadyCheckedIn
			}
			return s.doCheckOut(ctx, tx, qtx, open, now, distance, &resp)
		}

		if want == "check_out" {
			return attendanceerrors.ErrNoOpenCheckIn
		}

		today, err := qtx.ListBetween(ctx, emp.ID, dayStart, dayEnd)
		if err != nil {
			return err
		}
		if len(today) > 0 {
			return attendanceerrors.ErrCycleComplete
		}

		return s.doCheckIn(ctx, tx, qtx, emp.ID, req, lat, lon, now, distance, &resp)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *service) doCheckIn(
	ctx context.Context,
	tx *gorm.DB,
	qtx Repository,
	employeeID int64,
	req ToggleRequest,
	lat, lon float64,
	now time.Time,
	distance float64,
	out **ToggleResponse,
) error {
	a := &Attendance{
		EmployeeID:   employeeID,
		CheckIn:      now,
		WorkingHours: "00:00:00",
		Latitude:     strconv.FormatFloat(lat, 'f', -1, 64),
		Longitude:    strconv.FormatFloat(lon, 'f', -1, 64),
		SelfiePhoto:  req.CameraImage,
		Notes:        req.Notes,
	}
	if err := qtx.Create(ctx, a); err != nil {
		return err
	}

	if err := s.enqueueActivityEvent(ctx, tx, events.AttendanceCheckedIn, a, ""); err != nil {
		return err
	}

	s.logger.Info("employee checked in",
		zap.Int64("employee_id", employeeID),
		zap.Int64("attendance_id", a.ID),
		zap.Float64("distance_m", distance),
	)

	*out = &ToggleResponse{
		Action:             "check_in",
		AttendanceID:       a.ID,
		IsCheckedIn:        true,
		CheckInTime:        formatClock(now),
		DistanceFromOffice: fmt.Sprintf("%.2f km", distance/1000),
		IsLate:             isLate(now),
	}
	return nil
}

func (s *service) doCheckOut(
	ctx context.Context,
	tx *gorm.DB,
	qtx Repository,
	open *Attendance,
	now time.Time,
	distance float64,
	out **ToggleResponse,
) error {
	workingHours := formatWorkingHours(now.Sub(open.CheckIn))

	affected, err := qtx.CloseRecord(ctx, open.ID, now, workingHours)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Sudah ditutup request lain di sela pemeriksaan
		return attendanceerrors.ErrCycleComplete
	}

	if err := s.enqueueActivityEvent(ctx, tx, events.AttendanceCheckedOut, open, workingHours); err != nil {
		return err
	}

	s.logger.Info("employee checked out",
		zap.Int64("employee_id", open.EmployeeID),
		zap.Int64("attendance_id", open.ID),
		zap.String("working_hours", workingHours),
	)

	*out = &ToggleResponse{
		Action:             "check_out",
		AttendanceID:       open.ID,
		IsCheckedIn:        false,
		CheckInTime:        formatClock(open.CheckIn),
		CheckOutTime:       formatClock(now),
		WorkingHours:       workingHours,
		DistanceFromOffice: fmt.Sprintf("%.2f km", distance/1000),
		IsLate:             isLate(open.CheckIn),
	}
	return nil
}

func (s *service) enqueueActivityEvent(ctx context.Context, tx *gorm.DB, eventType string, a *Attendance, workingHours string) error {
	if s.outboxRepo == nil {
		return nil
	}

	payload, err := json.Marshal(events.AttendanceActivityEvent{
		EventType:    eventType,
		AttendanceID: a.ID,
		EmployeeID:   a.EmployeeID,
		WorkingHours: workingHours,
		OccurredAt:   s.now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   strconv.FormatInt(a.ID, 10),
		EventType:     eventType,
		Topic:         events.AttendanceActivityTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) Status(ctx context.Context, employeeID int64) (*StatusResponse, error) {
	emp, err := s.employeeSvc.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayBoundsWIB(s.now().UTC())
	today, err := s.repo.ListBetween(ctx, emp.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	resp := &StatusResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
	}
	for i := range today {
		a := &today[i]
		resp.AttendanceID = a.ID
		resp.CheckInTime = formatClock(a.CheckIn)
		if a.CheckOut == nil {
			resp.IsCheckedIn = true
			resp.CheckOutTime = ""
			resp.WorkingHours = ""
		} else {
			resp.IsCheckedIn = false
			resp.CheckOutTime = formatClock(*a.CheckOut)
			resp.WorkingHours = a.WorkingHours
		}
	}
	return resp, nil
}

// Dashboard di-singleflight per employee karena mobile client melakukan
// polling dan query bulanannya tidak murah.
func (s *service) Dashboard(ctx context.Context, userID int64) (*DashboardResponse, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	v, err, _ := s.sf.Do(strconv.FormatInt(emp.ID, 10), func() (any, error) {
		return s.buildDashboard(ctx, emp)
	})
	if err != nil {
		return nil, err
	}
	return v.(*DashboardResponse), nil
}

func (s *service) buildDashboard(ctx context.Context, emp *employee.Employee) (*DashboardResponse, error) {
	today, err := s.Status(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(wib)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, wib)

	records, err := s.repo.ListBetween(ctx, emp.ID, monthStart.UTC(), now.UTC())
	if err != nil {
		return nil, err
	}

	presentDays := map[string]bool{}
	lateDays := map[string]bool{}
	for i := range records {
		day := records[i].CheckIn.In(wib).Format(dateFormat)
		presentDays[day] = true
		if isLate(records[i].CheckIn) {
			lateDays[day] = true
		}
	}

	// Hari kerja dihitung sejak employee terdaftar, bukan sejak awal bulan,
	// supaya karyawan baru tidak langsung dicatat bolos.
	countFrom := monthStart
	if created := emp.CreatedAt.In(wib); created.After(countFrom) {
		countFrom = time.Date(created.Year(), created.Month(), created.Day(), 0, 0, 0, 0, wib)
	}
	workingDays := 0
	for d := countFrom; !d.After(now); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			workingDays++
		}
	}

	absent := workingDays - len(presentDays)
	if absent < 0 {
		absent = 0
	}

	return &DashboardResponse{
		UserInfo: UserInfo{
			Name:  emp.Name,
			Email: emp.WorkEmail,
		},
		Today: *today,
		Monthly: MonthlySummary{
			Month:       now.Format("2006-01"),
			PresentDays: len(presentDays),
			LateDays:    len(lateDays),
			AbsentDays:  absent,
			WorkingDays: workingDays,
		},
	}, nil
}

func (s *service) History(ctx context.Context, userID int64, limit, offset int) ([]RecordResponse, int64, error) {
	emp, err := s.employeeSvc.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	// Riwayat default 30 hari terakhir
	from := s.now().In(wib).AddDate(0, 0, -30).Format(dateFormat)
	return s.List(ctx, ListFilter{EmployeeID: emp.ID, From: from, Limit: limit, Offset: offset})
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]RecordResponse, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	var start, end *time.Time
	if filter.From != "" {
		t, err := time.ParseInLocation(dateFormat, filter.From, wib)
		if err != nil {
			return nil, 0, attendanceerrors.ErrInvalidDateFilter
		}
		u := t.UTC()
		start = &u
	}
	if filter.To != "" {
		t, err := time.ParseInLocation(dateFormat, filter.To, wib)
		if err != nil {
			return nil, 0, attendanceerrors.ErrInvalidDateFilter
		}
		u := t.AddDate(0, 0, 1).UTC()
		end = &u
	}

	records, total, err := s.repo.List(ctx, filter.EmployeeID, start, end, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]RecordResponse, 0, len(records))
	for i := range records {
		a := &records[i]
		rec := RecordResponse{
			AttendanceID: a.ID,
			Date:         a.CheckIn.In(wib).Format(dateFormat),
			CheckInTime:  formatClock(a.CheckIn),
			WorkingHours: a.WorkingHours,
			Status:       "Present",
			IsLate:       isLate(a.CheckIn),
			Notes:        a.Notes,
		}
		if rec.IsLate {
			rec.Status = "Late"
		}
		if a.CheckOut != nil {
			rec.CheckOutTime = formatClock(*a.CheckOut)
		}
		out = append(out, rec)
	}
	return out, total, nil
}
