package queue

// TransientError marks a pop failure that does not invalidate the
// connection, such as a server error reply. Consumers keep the connection
// and retry after a short pause instead of redialing.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}
