// Package errors provides the JSON error type returned across the routing context
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a routing context error. Code follows http status codes so the
// management layer can surface it without translation.
type Error struct {
	Id     string `json:"id"`
	Code   int32  `json:"code"`
	Detail string `json:"detail"`
	Status string `json:"status"`
}

func (e *Error) Error() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New generates a custom error.
func New(id, detail string, code int32) error {
	return &Error{
		Id:     id,
		Code:   code,
		Detail: detail,
		Status: http.StatusText(int(code)),
	}
}

// Parse tries to parse a JSON string into an error. If that
// fails, it will set the given string as the error detail.
func Parse(err string) *Error {
	e := new(Error)
	errr := json.Unmarshal([]byte(err), e)
	if errr != nil {
		e.Detail = err
	}
	return e
}

// FromError returns the *Error held by err, or parses its message.
// A nil err yields nil.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	if verr, ok := err.(*Error); ok && verr != nil {
		return verr
	}
	return Parse(err.Error())
}

// Equal reports whether two errors carry the same code.
func Equal(err1 error, err2 error) bool {
	verr1, ok1 := err1.(*Error)
	verr2, ok2 := err2.(*Error)

	if ok1 != ok2 {
		return false
	}

	if !ok1 {
		return err1 == err2
	}

	return verr1.Code == verr2.Code
}

// BadRequest generates a 400 error.
func BadRequest(id, format string, a ...interface{}) error {
	return newf(id, 400, format, a...)
}

// NotFound generates a 404 error.
func NotFound(id, format string, a ...interface{}) error {
	return newf(id, 404, format, a...)
}

// MethodNotAllowed generates a 405 error.
func MethodNotAllowed(id, format string, a ...interface{}) error {
	return newf(id, 405, format, a...)
}

// Conflict generates a 409 error.
func Conflict(id, format string, a ...interface{}) error {
	return newf(id, 409, format, a...)
}

// InternalServerError generates a 500 error.
func InternalServerError(id, format string, a ...interface{}) error {
	return newf(id, 500, format, a...)
}

func newf(id string, code int32, format string, a ...interface{}) error {
	return &Error{
		Id:     id,
		Code:   code,
		Detail: fmt.Sprintf(format, a...),
		Status: http.StatusText(int(code)),
	}
}
