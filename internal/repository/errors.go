package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is wrapped by every "x not found" error in this package.
	ErrNotFound = errors.New("not found")
	// ErrStaleStatus means a conditional status update matched no row
	// because another request moved the record first.
	ErrStaleStatus = errors.New("record status changed concurrently")
	// ErrDuplicateAppointment means the patient already holds an active
	// appointment in the specialty on that date.
	ErrDuplicateAppointment = errors.New("patient already booked this specialty on that date")
	// ErrNotPayable means money was captured for an appointment that had
	// already left the payable states. The payment is kept as paid and
	// flagged for refund.
	ErrNotPayable = errors.New("appointment no longer accepts payment")
)

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// translate maps gorm.ErrRecordNotFound to a typed not-found error.
func translate(entity string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return err
}
