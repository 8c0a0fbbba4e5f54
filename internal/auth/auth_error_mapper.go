package auth

import (
	"errors"

	autherrors "github.com/IonixCH/hris-api/internal/auth/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRegisterError menerjemahkan pelanggaran unique constraint (login/email)
// menjadi error conflict yang aman ditampilkan ke client.
func mapRegisterError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrUserAlreadyExists
	}
	return err
}
