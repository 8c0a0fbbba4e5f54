package attendanceerrors

import (
	"fmt"
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
)

var (
	ErrGPSRequired = apperror.New(
		apperror.CodeInvalidInput,
		"GPS location is required for attendance",
		http.StatusBadRequest,
	)
	ErrInvalidCoordinates = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid GPS coordinates",
		http.StatusBadRequest,
	)
	ErrPhotoRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Camera photo is required for attendance",
		http.StatusBadRequest,
	)
	// Pelanggaran siklus dilaporkan 400: client memperlakukannya sebagai
	// input yang salah untuk hari ini, bukan resource conflict.
	ErrCycleComplete = apperror.New(
		apperror.CodeConflict,
		"Attendance cycle already completed for today",
		http.StatusBadRequest,
	)
	ErrNoOpenCheckIn = apperror.New(
		apperror.CodeConflict,
		"No open check-in found for today",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Already checked in, please check out first",
		http.StatusBadRequest,
	)
	ErrInvalidDateFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date filter, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
)

// OutsideRadius dibuat per request karena pesannya memuat jarak aktual.
// Pelanggaran geofence masuk keluarga validasi lokasi, jadi 400.
func OutsideRadius(distanceKm, maxKm float64) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("You are %.2f km away from the office. Maximum allowed distance is %.1f km", distanceKm, maxKm),
		http.StatusBadRequest,
	)
}
