package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IonixCH/hris-api/internal/attendance"
	attendanceerrors "github.com/IonixCH/hris-api/internal/attendance/errors"
	"github.com/IonixCH/hris-api/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	toggleFn    func(ctx context.Context, userID int64, req attendance.ToggleRequest) (*attendance.ToggleResponse, error)
	statusFn    func(ctx context.Context, employeeID int64) (*attendance.StatusResponse, error)
	dashboardFn func(ctx context.Context, userID int64) (*attendance.DashboardResponse, error)
}

func (f *fakeService) Toggle(ctx context.Context, userID int64, req attendance.ToggleRequest) (*attendance.ToggleResponse, error) {
	return f.toggleFn(ctx, userID, req)
}

func (f *fakeService) CheckIn(ctx context.Context, userID int64, req attendance.ToggleRequest) (*attendance.ToggleResponse, error) {
	return f.toggleFn(ctx, userID, req)
}

func (f *fakeService) CheckOut(ctx context.Context, userID int64, req attendance.ToggleRequest) (*attendance.ToggleResponse, error) {
	return f.toggleFn(ctx, userID, req)
}

func (f *fakeService) Status(ctx context.Context, employeeID int64) (*attendance.StatusResponse, error) {
	return f.statusFn(ctx, employeeID)
}

func (f *fakeService) Dashboard(ctx context.Context, userID int64) (*attendance.DashboardResponse, error) {
	return f.dashboardFn(ctx, userID)
}

func (f *fakeService) History(ctx context.Context, userID int64, limit, offset int) ([]attendance.RecordResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeService) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, int64, error) {
	return nil, 0, nil
}

func TestHandler_ToggleCheckIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		toggleFn: func(ctx context.Context, userID int64, req attendance.ToggleRequest) (*attendance.ToggleResponse, error) {
			assert.EqualValues(t, 42, userID)
			return &attendance.ToggleResponse{
				Action:             "check_in",
				AttendanceID:       1,
				IsCheckedIn:        true,
				CheckInTime:        "09:00 AM",
				DistanceFromOffice: "0.00 km",
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", int64(42))
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/toggle",
		strings.NewReader(`{"latitude": -6.969182, "longitude": 107.629251, "camera_image": "foto"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Toggle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Check-in successful")
	assert.Contains(t, w.Body.String(), `"timestamp"`)
}

func TestHandler_ToggleCycleViolationEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		toggleFn: func(ctx context.Context, userID int64, req attendance.ToggleRequest) (*attendance.ToggleResponse, error) {
			return nil, attendanceerrors.ErrCycleComplete
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", int64(42))
	c.Request = httptest.NewRequest(http.MethodPost, "/attendance/toggle", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Toggle(c)

	// Pelanggaran siklus dan geofence sama-sama turun sebagai 400
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "Attendance cycle already completed for today")
}

func TestCycleAndGeofenceErrorsMapToBadRequest(t *testing.T) {
	for _, err := range []error{
		attendanceerrors.ErrCycleComplete,
		attendanceerrors.ErrAlreadyCheckedIn,
		attendanceerrors.ErrNoOpenCheckIn,
		attendanceerrors.OutsideRadius(3.0, 2.0),
	} {
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status, err.Error())
	}
}

func TestHandler_StatusRejectsBadEmployeeID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := attendance.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "employee_id", Value: "abc"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/status/abc", nil)

	h.Status(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DashboardOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		dashboardFn: func(ctx context.Context, userID int64) (*attendance.DashboardResponse, error) {
			return &attendance.DashboardResponse{
				UserInfo: attendance.UserInfo{Name: "Budi Santoso", Email: "budi@example.com"},
				Today:    attendance.StatusResponse{IsCheckedIn: true, CheckInTime: "09:00 AM"},
				Monthly:  attendance.MonthlySummary{Month: "2025-01", PresentDays: 10, WorkingDays: 12},
			}, nil
		},
	}
	h := attendance.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id", int64(42))
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/dashboard", nil)

	h.Dashboard(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_info"`)
	assert.Contains(t, w.Body.String(), `"email":"budi@example.com"`)
	assert.Contains(t, w.Body.String(), `"current_status"`)
	assert.Contains(t, w.Body.String(), `"monthly_summary"`)
	assert.Contains(t, w.Body.String(), `"present_days":10`)
}
