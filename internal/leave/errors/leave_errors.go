package leaveerrors

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave date range, expected YYYY-MM-DD with date_from <= date_to",
		http.StatusBadRequest,
	)
	ErrOverlappingLeave = apperror.New(
		apperror.CodeConflict,
		"Leave request overlaps an existing request",
		http.StatusBadRequest,
	)
)
