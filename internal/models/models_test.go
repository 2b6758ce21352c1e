package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{StatusPending, StatusWaitingPayment},
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusWaitingPayment, StatusConfirmed},
		{StatusWaitingPayment, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]string{
		{StatusPending, StatusCompleted},
		{StatusWaitingPayment, StatusCompleted},
		{StatusCancelled, StatusConfirmed},
		{StatusCompleted, StatusCancelled},
		{StatusConfirmed, StatusPending},
		{"unknown", StatusConfirmed},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestIsFinal(t *testing.T) {
	assert.True(t, IsFinal(StatusCancelled))
	assert.True(t, IsFinal(StatusCompleted))
	assert.False(t, IsFinal(StatusPending))
	assert.False(t, IsFinal(StatusConfirmed))
}
