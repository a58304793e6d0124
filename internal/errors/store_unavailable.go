package errors

import "net/http"

var ErrStoreUnavailable = &Exception{
	Message:    "store unavailable",
	StatusCode: http.StatusInternalServerError,
}
