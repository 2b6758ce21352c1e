package repository

import (
	"context"
	"testing"
	"time"

	"hospital-booking/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	paidAt := time.Date(2026, 11, 1, 10, 15, 0, 0, time.Local)
	res := PaymentResult{BankCode: "NCB", TransactionNo: "14000001", ResponseCode: "00", PaidAt: paidAt}

	setup := func(t *testing.T) (clinic, *PaymentRepository, *models.Appointment, *models.Payment) {
		c := newClinic(t)
		appt, err := c.reserve(t, nil)
		require.NoError(t, err)
		require.NoError(t, c.repo.TransitionStatus(ctx, appt.ID,
			[]string{models.StatusPending}, models.StatusWaitingPayment, nil))

		payment := &models.Payment{AppointmentID: appt.ID, TxnRef: "HB-1", Amount: 150000, Status: models.PaymentStatusPending}
		require.NoError(t, c.db.Omit("Appointment").Create(payment).Error)
		return c, NewPaymentRepo(c.db), appt, payment
	}

	reload := func(t *testing.T, c clinic, apptID, paymentID uint) (models.Appointment, models.Payment) {
		var a models.Appointment
		var p models.Payment
		require.NoError(t, c.db.First(&a, apptID).Error)
		require.NoError(t, c.db.First(&p, paymentID).Error)
		return a, p
	}

	t.Run("confirms the appointment", func(t *testing.T) {
		c, repo, appt, payment := setup(t)

		require.NoError(t, repo.MarkPaid(ctx, payment.ID, res))

		a, p := reload(t, c, appt.ID, payment.ID)
		assert.Equal(t, models.StatusConfirmed, a.Status)
		assert.Equal(t, models.PaymentPaid, a.PaymentStatus)
		assert.Equal(t, models.PaymentStatusPaid, p.Status)
		assert.Equal(t, "14000001", p.TransactionNo)
		assert.False(t, p.RefundPending)

		assert.ErrorIs(t, repo.MarkPaid(ctx, payment.ID, res), ErrStaleStatus)
	})

	t.Run("appointment expired first", func(t *testing.T) {
		c, repo, appt, payment := setup(t)
		require.NoError(t, c.repo.TransitionStatus(ctx, appt.ID,
			[]string{models.StatusWaitingPayment}, models.StatusCancelled, nil))

		assert.ErrorIs(t, repo.MarkPaid(ctx, payment.ID, res), ErrNotPayable)

		a, p := reload(t, c, appt.ID, payment.ID)
		assert.Equal(t, models.StatusCancelled, a.Status)
		assert.Equal(t, models.PaymentUnpaid, a.PaymentStatus)
		assert.Equal(t, models.PaymentStatusPaid, p.Status)
		assert.True(t, p.RefundPending)
		require.NotNil(t, p.PaidAt)

		// a replayed callback does not flag it twice
		assert.ErrorIs(t, repo.MarkPaid(ctx, payment.ID, res), ErrStaleStatus)
	})

	t.Run("unknown payment", func(t *testing.T) {
		_, repo, _, _ := setup(t)
		assert.ErrorIs(t, repo.MarkPaid(ctx, 999, res), ErrNotFound)
	})

	t.Run("failed attempt cannot be paid", func(t *testing.T) {
		c, repo, appt, payment := setup(t)
		require.NoError(t, repo.MarkFailed(ctx, payment.ID, "24"))

		assert.ErrorIs(t, repo.MarkPaid(ctx, payment.ID, res), ErrStaleStatus)
		a, _ := reload(t, c, appt.ID, payment.ID)
		assert.Equal(t, models.StatusWaitingPayment, a.Status)
	})
}
