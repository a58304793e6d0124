package errors

import "net/http"

var ErrCredentialsRequired = &Exception{
	Message:    "email and password are required",
	StatusCode: http.StatusBadRequest,
}
