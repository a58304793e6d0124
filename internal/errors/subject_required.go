package errors

import "net/http"

var ErrSubjectRequired = &Exception{
	Message:    "subject is required",
	StatusCode: http.StatusBadRequest,
}
