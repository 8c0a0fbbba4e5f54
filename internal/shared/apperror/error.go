package apperror

import "fmt"

// AppError membawa pesan yang aman ditampilkan ke client plus status HTTP
// tujuannya. Error lain yang sampai ke handler diperlakukan sebagai internal.
type AppError struct {
	Code       string // kode mesin, lihat codes.go
	Message    string // pesan untuk client
	HTTPStatus int
	Err        error // error asal, opsional
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap membuat errors.Is/As tembus ke error asal.
func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap membungkus error asal sambil menentukan bentuk HTTP-nya.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
