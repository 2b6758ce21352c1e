package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-booking/internal/models"
	"hospital-booking/internal/repository"

	log "github.com/sirupsen/logrus"
)

const expiryBatchSize = 100

// ExpiryWorker cancels bookings that were never verified or paid in time,
// releasing their slot in the doctor's load.
type ExpiryWorker struct {
	appointments AppointmentStore
	codes        VerificationCodes
	notifier     Notifier
	timeout      time.Duration
	interval     time.Duration
	now          func() time.Time
}

func NewExpiryWorker(appointments AppointmentStore, codes VerificationCodes, notifier Notifier, timeout, interval time.Duration) *ExpiryWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ExpiryWorker{
		appointments: appointments,
		codes:        codes,
		notifier:     notifier,
		timeout:      timeout,
		interval:     interval,
		now:          time.Now,
	}
}

// Start runs the sweep on every tick until ctx is cancelled.
func (w *ExpiryWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithField("interval", w.interval).Info("Expiry worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Expiry worker stopped")
			return
		case <-ticker.C:
			if n, err := w.Sweep(ctx); err != nil {
				log.WithError(err).Error("Expiry sweep failed")
			} else if n > 0 {
				log.WithField("cancelled", n).Info("Expired appointments cancelled")
			}
		}
	}
}

// Sweep cancels one batch of stale appointments and returns how many were
// cancelled.
func (w *ExpiryWorker) Sweep(ctx context.Context) (int, error) {
	stale := []string{models.StatusPending, models.StatusWaitingPayment}
	appts, err := w.appointments.ListStale(ctx, stale, w.now().Add(-w.timeout), expiryBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale appointments: %w", err)
	}

	cancelled := 0
	for _, appt := range appts {
		err := w.appointments.TransitionStatus(ctx, appt.ID, stale, models.StatusCancelled, map[string]interface{}{
			"cancelled_at":  w.now(),
			"cancel_reason": "expired: not verified or paid in time",
		})
		if errors.Is(err, repository.ErrStaleStatus) {
			continue
		}
		if err != nil {
			log.WithField("appointment_id", appt.ID).WithError(err).Error("Failed to expire appointment")
			continue
		}
		cancelled++

		if err := w.codes.Revoke(ctx, appt.ID); err != nil {
			log.WithField("appointment_id", appt.ID).WithError(err).Warn("Failed to revoke verification code")
		}
		w.notifier.Notify(ctx, appt.Patient.UserID, models.NotifyCancellation, "Appointment expired",
			fmt.Sprintf("Appointment #%d was cancelled because it was not verified or paid in time.", appt.ID),
			appointmentLink(appt.ID))
	}
	return cancelled, nil
}
