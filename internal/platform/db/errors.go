package db

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a mutation was blocked by an existing foreign
	// reference (the row is still in use).
	ErrConflict = errors.New("conflict: resource is referenced")

	// ErrBadReference indicates a write named a related resource that does
	// not exist (a dangling foreign key in the input).
	ErrBadReference = errors.New("referenced resource does not exist")
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for foreign_key_violation.
const foreignKeyViolation = "23503"

// ValidationError reports a missing or malformed input field. It is
// caller-facing: no write is attempted once validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid constructs a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Classify maps driver-level errors onto the typed taxonomy: no rows becomes
// ErrNotFound, a foreign-key violation becomes ErrConflict, and everything
// else passes through unchanged as a storage failure. Use it on reads and
// deletes, where a 23503 means some other row still points here.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w (%s)", ErrConflict, pgErr.ConstraintName)
	}
	return err
}

// ClassifyInput is Classify for inserts and updates. On a write, a 23503
// means the caller supplied a dangling reference (equipment pointing at a
// missing room, a billed treatment id that does not exist), which is the
// caller's fault, not an in-use conflict.
func ClassifyInput(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w (%s)", ErrBadReference, pgErr.ConstraintName)
	}
	return err
}

// HTTPError translates a classified error into an echo HTTP error:
// ValidationError -> 400, ErrNotFound -> 404, ErrConflict -> 409, anything
// else -> 500 with the message preserved.
func HTTPError(err error) *echo.HTTPError {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, ErrBadReference):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid reference: related resource does not exist")
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "cannot complete: resource is in use")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
