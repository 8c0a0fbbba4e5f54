package employeeerrors

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrNoCompanyConfigured = apperror.New(
		apperror.CodeInternalError,
		"no company configured",
		http.StatusInternalServerError,
	)
)
