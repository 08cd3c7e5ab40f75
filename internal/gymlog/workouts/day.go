package workouts

import (
	"github.com/shopspring/decimal"

	"github.com/2beens/gymlog/internal/caldate"
)

type StrengthEntry struct {
	ID           int64
	ExerciseID   int64
	ExerciseName string
	MuscleGroup  string
	Sets         int
	Reps         int
	Weight       decimal.Decimal
}

// Volume is sets * reps * weight. It is always derived, never stored.
func (e StrengthEntry) Volume() decimal.Decimal {
	return decimal.NewFromInt(int64(e.Sets) * int64(e.Reps)).Mul(e.Weight)
}

func (e StrengthEntry) TotalReps() int {
	return e.Sets * e.Reps
}

type CardioEntry struct {
	ID             int64
	CardioTypeID   int64
	CardioTypeName string
	Minutes        int
	// Distance is invalid (null) when it was never recorded.
	Distance decimal.NullDecimal
}

// DayWorkout is everything logged by one user on one calendar date.
// Entries only exist as part of it.
type DayWorkout struct {
	ID            int64
	OwnerID       int64
	Date          caldate.Date
	Notes         string
	Entries       []StrengthEntry
	CardioEntries []CardioEntry
}

type DayTotals struct {
	Weight        decimal.Decimal
	Reps          int
	CardioMinutes int
}

func EmptyDay(ownerID int64, date caldate.Date) DayWorkout {
	return DayWorkout{
		OwnerID:       ownerID,
		Date:          date,
		Entries:       []StrengthEntry{},
		CardioEntries: []CardioEntry{},
	}
}

// HasEntries reports whether the day counts as a workout day. Notes alone do not.
func (d DayWorkout) HasEntries() bool {
	return len(d.Entries) > 0 || len(d.CardioEntries) > 0
}

func (d DayWorkout) Totals() DayTotals {
	totals := DayTotals{Weight: decimal.Zero}
	for _, e := range d.Entries {
		totals.Weight = totals.Weight.Add(e.Volume())
		totals.Reps += e.TotalReps()
	}
	for _, c := range d.CardioEntries {
		totals.CardioMinutes += c.Minutes
	}
	return totals
}
