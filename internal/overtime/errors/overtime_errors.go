package overtimeerrors

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
)

var (
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid overtime time range, expected YYYY-MM-DD HH:MM with start before end",
		http.StatusBadRequest,
	)
	ErrTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Overtime type not found",
		http.StatusNotFound,
	)
)
