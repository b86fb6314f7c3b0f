package repositories

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err comes from a unique index collision,
// either as a raw postgres error or as gorm's translated sentinel.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isUUID guards lookups on uuid columns; postgres rejects malformed ids
// with a syntax error instead of returning no rows.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
