package service

import (
	"errors"
	"fmt"

	"hospital-booking/internal/scheduling"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrForbidden           = errors.New("access denied")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidTransition   = errors.New("appointment is not in a state that allows this action")
	ErrDuplicateBooking    = errors.New("you already have an appointment in this specialty on that date")
	ErrDependencyExists    = errors.New("record is still referenced and cannot be deleted")
	ErrScheduleOverlap     = errors.New("schedule overlaps an existing shift of the doctor or room")
	ErrExaminationRequired = errors.New("examination must be recorded before completing the appointment")
	ErrNotPaid             = errors.New("appointment has not been paid")
	ErrNoDoctorAvailable   = scheduling.ErrNoDoctorAvailable
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
