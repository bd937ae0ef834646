package errhandler

import (
	"github.com/zestagio/dev-server/pkg/pointer"
)

// Page is the data of the error page template.
type Page struct {
	Code    int
	Message string
	Details *string
}

var ResponseBuilder = func(code int, msg string, details string) any {
	return Page{
		Code:    code,
		Message: msg,
		Details: pointer.PtrWithZeroAsNil(details),
	}
}
