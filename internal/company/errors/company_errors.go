package companyerrors

import (
	"net/http"

	"github.com/IonixCH/hris-api/internal/shared/apperror"
)

var (
	ErrCoordinatesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"latitude and longitude are required",
		http.StatusBadRequest,
	)
	ErrInvalidLatitude = apperror.New(
		apperror.CodeInvalidInput,
		"invalid latitude range (-90 to 90)",
		http.StatusBadRequest,
	)
	ErrInvalidLongitude = apperror.New(
		apperror.CodeInvalidInput,
		"invalid longitude range (-180 to 180)",
		http.StatusBadRequest,
	)
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"company not found",
		http.StatusNotFound,
	)
)
