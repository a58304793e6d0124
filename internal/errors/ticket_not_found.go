package errors

import "net/http"

var ErrTicketNotFound = &Exception{
	Message:    "ticket not found",
	StatusCode: http.StatusNotFound,
}
