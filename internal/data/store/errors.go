package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
)

// MapError maps driver and ORM failures onto the academics error codes.
// Constraint failures keep the driver error as their cause and its text as
// their message. Context errors pass through untouched.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *academics.Error
	if errors.As(err, &existing) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return academics.Wrap(academics.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return academics.ConstraintViolation(op, err.Error(), err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505", "23503", "23502", "23514":
			// unique / foreign key / not null / check violations
			return academics.ConstraintViolation(op, pgErr.Message, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint failed"),
		strings.Contains(msg, "foreign key constraint failed"),
		strings.Contains(msg, "not null constraint failed"),
		strings.Contains(msg, "check constraint failed"),
		strings.Contains(msg, "duplicate key"):
		return academics.ConstraintViolation(op, err.Error(), err)
	default:
		return academics.Wrap(academics.CodeInternal, op, err)
	}
}
