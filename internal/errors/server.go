package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

const defaultErrorMessage = "something went wrong"

var (
	ErrNotFound           = errors.New("file not found")
	ErrForbidden          = errors.New("forbidden")
	ErrMethodNotSupported = errors.New("unsupported method")
)

// ServerError is used to return custom error codes to client.
type ServerError struct {
	Code    int
	Message string
	cause   error
}

func NewServerError[T ~int](code T, msg string, err error) *ServerError {
	return &ServerError{
		Code:    int(code),
		Message: msg,
		cause:   err,
	}
}

func (s *ServerError) Error() string {
	return fmt.Sprintf("%s: %v", s.Message, s.cause)
}

func (s *ServerError) Unwrap() error {
	return s.cause
}

// IsServerFault reports whether code means the server failed, not the client.
// 501 is the answer to a method the client should not have used.
func IsServerFault(code int) bool {
	return code >= http.StatusInternalServerError && code != http.StatusNotImplemented
}

func GetServerErrorCode(err error) int {
	code, _, _ := ProcessServerError(err)
	return code
}

// ProcessServerError tries to retrieve from given error it's code, message and some details.
// For example, that fields can be used to build error response for client.
func ProcessServerError(err error) (code int, msg string, details string) {
	if errHTTP := new(echo.HTTPError); errors.As(err, &errHTTP) {
		return errHTTP.Code, fmt.Sprint(errHTTP.Message), errHTTP.Error()
	}

	if errSrv := new(ServerError); errors.As(err, &errSrv) {
		return errSrv.Code, errSrv.Message, errSrv.Error()
	}

	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound, ErrNotFound.Error(), err.Error()
	case errors.Is(err, ErrForbidden), errors.Is(err, fs.ErrPermission):
		return http.StatusForbidden, ErrForbidden.Error(), err.Error()
	case errors.Is(err, ErrMethodNotSupported):
		return http.StatusNotImplemented, ErrMethodNotSupported.Error(), err.Error()
	}

	return http.StatusInternalServerError, defaultErrorMessage, err.Error()
}
