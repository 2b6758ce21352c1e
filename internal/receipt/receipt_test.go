package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 VND", FormatVND(0))
	assert.Equal(t, "999 VND", FormatVND(999))
	assert.Equal(t, "150,000 VND", FormatVND(150000))
	assert.Equal(t, "1,234,567 VND", FormatVND(1234567))
	assert.Equal(t, "-5,000 VND", FormatVND(-5000))
}

func TestRender(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.Local)
	out, err := Render(Data{
		AppointmentID: 42,
		TxnRef:        "f1e2d3",
		PatientName:   "Nguyen Van A",
		PatientEmail:  "a@example.com",
		Specialty:     "Cardiology",
		DoctorName:    "Dr. Tran",
		Room:          "C-101",
		Date:          day,
		QueueNumber:   3,
		EstimatedTime: day.Add(8*time.Hour + 40*time.Minute),
		Amount:        150000,
		PaidAt:        day.Add(7 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
