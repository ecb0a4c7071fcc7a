package services

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// Kind classifies a service failure so controllers can pick a status code
// without parsing messages.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindConflict
	KindInvalidInput
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Message: msg} }
func InvalidInput(msg string) *Error { return &Error{Kind: KindInvalidInput, Message: msg} }

// KindOf returns the kind of err, or 0 when err is not a service error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// HTTPStatus maps a service error to its response code. Unknown errors are
// treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// asConflict re-classifies a unique-key violation surfaced at commit time as
// a domain Conflict. The store's uniqueness constraint is the final arbiter
// for one-rating-per-transaction, one-report-per-(reporter,listing) and
// one-wishlist-entry-per-(user,listing).
func asConflict(err error, msg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict(msg)
	}
	return err
}
