package repository

import (
	"fmt"

	apperrors "ticket-desk.com/ticket-desk/internal/errors"
)

// wrapStore classifies a backend failure that escaped a unit-of-work. The
// transaction has already been rolled back by the time this runs.
func wrapStore(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
}
