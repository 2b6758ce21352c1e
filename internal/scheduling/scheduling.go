// Package scheduling assigns doctors, rooms, queue numbers and estimated
// visit times to incoming appointment requests.
//
// The functions here are pure. The repository runs them inside one
// transaction that holds the (specialty, date) queue counter lock, so the
// candidate loads they see cannot change underneath them.
package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DefaultSlot is the time budget per queue position.
const DefaultSlot = 20 * time.Minute

var (
	ErrNoDoctorAvailable = errors.New("no doctor available for this specialty on the selected date")
	ErrInvalidClock      = errors.New("invalid clock value, expected HH:MM")
)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (a trailing ":SS" is accepted and ignored).
func ParseClock(s string) (Clock, error) {
	var layout string
	switch len(s) {
	case 5:
		layout = "15:04"
	case 8:
		layout = "15:04:05"
	default:
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// On places the clock on the calendar day of date, in date's location.
func (c Clock) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, date.Location())
}

// Candidate is a doctor scheduled for the requested specialty and date,
// together with the appointments already booked against that doctor.
type Candidate struct {
	DoctorID   uint
	ScheduleID uint
	RoomID     uint
	ShiftStart Clock
	ShiftEnd   Clock
	Load       int
}

// Assignment is the outcome of a reservation.
type Assignment struct {
	Candidate
	QueueNumber   int
	EstimatedTime time.Time
}

// Capacity is the number of slots that fit in a shift.
func Capacity(start, end Clock, slot time.Duration) int {
	if slot <= 0 {
		return 0
	}
	span := time.Duration(end.Minutes()-start.Minutes()) * time.Minute
	if span <= 0 {
		return 0
	}
	return int(span / slot)
}

// PickLeastLoaded returns the candidate with the fewest booked appointments.
// Ties go to the earlier shift, then the lower doctor ID. Candidates whose
// shift is already full are skipped.
func PickLeastLoaded(cands []Candidate, slot time.Duration) (Candidate, error) {
	open := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Load < Capacity(c.ShiftStart, c.ShiftEnd, slot) {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return Candidate{}, ErrNoDoctorAvailable
	}

	sort.SliceStable(open, func(i, j int) bool {
		a, b := open[i], open[j]
		if a.Load != b.Load {
			return a.Load < b.Load
		}
		if a.ShiftStart.Minutes() != b.ShiftStart.Minutes() {
			return a.ShiftStart.Minutes() < b.ShiftStart.Minutes()
		}
		return a.DoctorID < b.DoctorID
	})
	return open[0], nil
}

// NextQueueNumber returns the queue number following currentMax.
func NextQueueNumber(currentMax int) int {
	if currentMax < 0 {
		currentMax = 0
	}
	return currentMax + 1
}

// EstimateVisitTime is shiftStart + (queue-1) * slot on the given date.
func EstimateVisitTime(date time.Time, shiftStart Clock, queue int, slot time.Duration) time.Time {
	if queue < 1 {
		queue = 1
	}
	return shiftStart.On(date).Add(time.Duration(queue-1) * slot)
}

// Assign runs the whole heuristic over an already loaded candidate set.
func Assign(date time.Time, cands []Candidate, currentMax int, slot time.Duration) (Assignment, error) {
	picked, err := PickLeastLoaded(cands, slot)
	if err != nil {
		return Assignment{}, err
	}
	queue := NextQueueNumber(currentMax)
	return Assignment{
		Candidate:     picked,
		QueueNumber:   queue,
		EstimatedTime: EstimateVisitTime(date, picked.ShiftStart, queue, slot),
	}, nil
}
