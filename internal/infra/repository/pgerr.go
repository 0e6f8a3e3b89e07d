package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/braider-booking/internal/httperr"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"

	activeSlotIndex = "ux_bookings_active_slot"
)

func pgCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// IsUniqueViolation reconhece violação de índice único.
func IsUniqueViolation(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == pgUniqueViolation && (constraint == "" || name == constraint)
}

func IsExclusionConflict(err error) bool {
	code, _ := pgCode(err)
	return code == pgExclusionViolation
}

// mapNotFound traduz ErrRecordNotFound; demais erros viram StorageFailure.
func mapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.Newf(httperr.CodeNotFound, "%s não encontrado", what)
	}
	return httperr.Storage(err)
}
