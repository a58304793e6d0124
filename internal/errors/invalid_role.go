package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "role must be user or support",
	StatusCode: http.StatusBadRequest,
}
