package errors

import "net/http"

var ErrDuplicateEmail = &Exception{
	Message:    "email already registered",
	StatusCode: http.StatusBadRequest,
}
