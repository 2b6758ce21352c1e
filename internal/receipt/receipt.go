// Package receipt renders payment receipts as PDF.
package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Data is everything printed on a receipt.
type Data struct {
	AppointmentID uint
	TxnRef        string
	TransactionNo string
	PatientName   string
	PatientEmail  string
	Specialty     string
	Service       string
	DoctorName    string
	Room          string
	Date          time.Time
	QueueNumber   int
	EstimatedTime time.Time
	Amount        int64
	PaidAt        time.Time
}

// FormatVND renders an amount as "150,000 VND".
func FormatVND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out) + " VND"
	}
	return string(out) + " VND"
}

// Render builds the PDF and returns its bytes.
func Render(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetTitle(fmt.Sprintf("Receipt #%d", d.AppointmentID), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 70, 140)
	pdf.CellFormat(0, 10, "Hospital Appointment Booking", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Payment Receipt", "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	addDetail(pdf, "Appointment", fmt.Sprintf("#%d", d.AppointmentID))
	addDetail(pdf, "Transaction ref", d.TxnRef)
	if d.TransactionNo != "" {
		addDetail(pdf, "Gateway txn no", d.TransactionNo)
	}
	addDetail(pdf, "Patient", d.PatientName)
	addDetail(pdf, "Email", d.PatientEmail)
	addDetail(pdf, "Specialty", d.Specialty)
	if d.Service != "" {
		addDetail(pdf, "Service", d.Service)
	}
	addDetail(pdf, "Doctor", d.DoctorName)
	addDetail(pdf, "Room", d.Room)
	addDetail(pdf, "Date", d.Date.Format("02/01/2006"))
	addDetail(pdf, "Queue number", fmt.Sprintf("%d", d.QueueNumber))
	addDetail(pdf, "Estimated time", d.EstimatedTime.Format("15:04"))
	if !d.PaidAt.IsZero() {
		addDetail(pdf, "Paid at", d.PaidAt.Format("02/01/2006 15:04"))
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Total: "+FormatVND(d.Amount), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, "Please arrive 15 minutes before the estimated time and bring this receipt.", "", "L", false)
	pdf.SetY(pdf.GetY() + 8)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(45, 8, label, "1", 0, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, value, "1", 1, "", false, 0, "")
}
