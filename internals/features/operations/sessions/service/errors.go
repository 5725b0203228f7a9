// file: internals/features/operations/sessions/service/errors.go
package service

import (
	"errors"
	"fmt"
)

/* =========================
   Taxonomía de errores
   ========================= */

type ErrorKind string

const (
	KindValidation          ErrorKind = "VALIDATION_ERROR"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindResourceUnavailable ErrorKind = "RESOURCE_UNAVAILABLE"
	KindUnexpected          ErrorKind = "UNEXPECTED"
)

// Error es el error tipado del motor de asignación. Validation,
// not-found y resource-unavailable son locales y no reintentables;
// el caller los resuelve fila a fila.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Unavailablef(format string, args ...interface{}) *Error {
	return &Error{Kind: KindResourceUnavailable, Msg: fmt.Sprintf(format, args...)}
}

func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Msg: "unexpected error", Err: err}
}

// KindOf clasifica cualquier error; lo que no sea *Error es UNEXPECTED.
func KindOf(err error) ErrorKind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnexpected
}
