package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error is the domain error carried from services up to the handler layer.
// Messages usually holds a single entry; validation failures carry one entry
// per violated field.
type Error struct {
	Status   int
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// New builds an Error with a single message.
func New(status int, format string, args ...any) *Error {
	return &Error{Status: status, Messages: []string{fmt.Sprintf(format, args...)}}
}

// NotFound signals that no row matched the requested key.
func NotFound(format string, args ...any) *Error {
	return New(http.StatusNotFound, format, args...)
}

// Unauthorized is returned by every failing auth gate. The gates do not
// distinguish "not logged in" from "forbidden" at the status level.
func Unauthorized() *Error {
	return New(http.StatusUnauthorized, "Unauthorized")
}

// BadRequest signals a malformed or inconsistent request.
func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

// Validation carries one message per violated field.
func Validation(messages []string) *Error {
	return &Error{Status: http.StatusBadRequest, Messages: messages}
}

// FromBinding flattens a gin binding error into a per-field violation list.
// Non-validator errors (malformed JSON, wrong types) become a single message.
func FromBinding(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed validation: %s", fe.Field(), fe.Tag()))
		}
		return Validation(msgs)
	}
	return BadRequest("invalid request body: %s", err.Error())
}

// FromDB translates storage rejections. Constraint violations (uniqueness,
// not-null, foreign key, check) surface as 400s carrying the Postgres message;
// anything else propagates unchanged for the handler layer to treat as a 500.
func FromDB(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", "23503", "23502", "23514", "22P02":
			return New(http.StatusBadRequest, "%s", pgErr.Message)
		}
	}
	return err
}

// Status reports the HTTP status for err, defaulting to 500 for anything that
// is not a domain Error.
func Status(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
