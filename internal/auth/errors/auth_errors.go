package autherrors

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrAccountDisabled = apperror.New(
		apperror.CodeForbidden,
		"Account is disabled",
		http.StatusForbidden,
	)
	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Username or email already registered",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Password confirmation does not match",
		http.StatusBadRequest,
	)
	ErrWrongCurrentPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Current password is incorrect",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
)
