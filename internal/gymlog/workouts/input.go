package workouts

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/2beens/gymlog/internal/caldate"
)

const (
	MaxNotesLength = 10000
	maxCount       = 100000
)

// MaxDecimal is the largest weight or distance that fits NUMERIC(7,2).
var MaxDecimal = decimal.RequireFromString("99999.99")

// counts past these bounds keep only their side; IntPart would wrap beyond int64
var (
	countCeil  = decimal.NewFromInt(maxCount + 1)
	countFloor = countCeil.Neg()
)

// FlexDecimal accepts a JSON number or a numeric string. Decoding never fails;
// anything unparseable is left invalid and coerced later.
type FlexDecimal struct {
	Value decimal.Decimal
	Valid bool
}

func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	*f = FlexDecimal{}

	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	f.Value = d
	f.Valid = true
	return nil
}

func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(f.Value.String()), nil
}

func NewFlexDecimal(s string) FlexDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return FlexDecimal{}
	}
	return FlexDecimal{Value: d, Valid: true}
}

// FlexInt is the integer counterpart of FlexDecimal. Fractions are truncated.
type FlexInt struct {
	Value int64
	Valid bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var d FlexDecimal
	_ = d.UnmarshalJSON(data)
	*f = FlexInt{}
	if !d.Valid {
		return nil
	}

	f.Valid = true
	switch v := d.Value.Truncate(0); {
	case v.GreaterThan(countCeil):
		f.Value = countCeil.IntPart()
	case v.LessThan(countFloor):
		f.Value = countFloor.IntPart()
	default:
		f.Value = v.IntPart()
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func NewFlexInt(v int64) FlexInt {
	return FlexInt{Value: v, Valid: true}
}

type StrengthInput struct {
	ExerciseID *int64      `json:"exercise_id"`
	Sets       FlexInt     `json:"sets"`
	Reps       FlexInt     `json:"reps"`
	Weight     FlexDecimal `json:"weight"`
}

type CardioInput struct {
	CardioTypeID *int64      `json:"cardio_type_id"`
	Minutes      FlexInt     `json:"minutes"`
	Distance     FlexDecimal `json:"distance"`
}

// SaveDayRequest is the full desired state of one date.
type SaveDayRequest struct {
	Date          string          `json:"date"`
	Notes         string          `json:"notes"`
	Entries       []StrengthInput `json:"entries"`
	CardioEntries []CardioInput   `json:"cardio_entries"`
}

type StrengthDraft struct {
	ExerciseID int64
	Sets       int
	Reps       int
	Weight     decimal.Decimal
}

type CardioDraft struct {
	CardioTypeID int64
	Minutes      int
	Distance     decimal.NullDecimal
}

// DayDraft is a coerced SaveDayRequest, ready to be resolved and persisted.
type DayDraft struct {
	Date          caldate.Date
	Notes         string
	Entries       []StrengthDraft
	CardioEntries []CardioDraft
	// entries dropped because they carried no catalog reference at all
	DroppedNoRef int
}

func (d DayDraft) Empty() bool {
	return len(d.Entries) == 0 && len(d.CardioEntries) == 0 && strings.TrimSpace(d.Notes) == ""
}

func (d DayDraft) ExerciseIDs() []int64 {
	return uniqueIDs(len(d.Entries), func(i int) int64 { return d.Entries[i].ExerciseID })
}

func (d DayDraft) CardioTypeIDs() []int64 {
	return uniqueIDs(len(d.CardioEntries), func(i int) int64 { return d.CardioEntries[i].CardioTypeID })
}

// Normalize parses the date and coerces every entry:
//   - sets, reps and minutes become integers >= 1
//   - weight becomes a decimal >= 0 with 2 places, 0 when unparseable
//   - distance becomes a decimal >= 0 with 2 places, null when absent or unparseable
//   - entries without a reference are dropped
func (r SaveDayRequest) Normalize() (DayDraft, error) {
	date, err := caldate.Parse(r.Date)
	if err != nil {
		return DayDraft{}, &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}

	if utf8.RuneCountInString(r.Notes) > MaxNotesLength {
		return DayDraft{}, &ValidationError{Field: "notes", Reason: "too long"}
	}

	draft := DayDraft{
		Date:          date,
		Notes:         r.Notes,
		Entries:       []StrengthDraft{},
		CardioEntries: []CardioDraft{},
	}

	for _, e := range r.Entries {
		if e.ExerciseID == nil {
			draft.DroppedNoRef++
			continue
		}
		sets, err := positiveCount("sets", e.Sets)
		if err != nil {
			return DayDraft{}, err
		}
		reps, err := positiveCount("reps", e.Reps)
		if err != nil {
			return DayDraft{}, err
		}
		weight, err := nonNegativeDecimal("weight", e.Weight)
		if err != nil {
			return DayDraft{}, err
		}
		draft.Entries = append(draft.Entries, StrengthDraft{
			ExerciseID: *e.ExerciseID,
			Sets:       sets,
			Reps:       reps,
			Weight:     weight,
		})
	}

	for _, c := range r.CardioEntries {
		if c.CardioTypeID == nil {
			draft.DroppedNoRef++
			continue
		}
		minutes, err := positiveCount("minutes", c.Minutes)
		if err != nil {
			return DayDraft{}, err
		}
		distance := decimal.NullDecimal{}
		if c.Distance.Valid {
			d, err := nonNegativeDecimal("distance", c.Distance)
			if err != nil {
				return DayDraft{}, err
			}
			distance = decimal.NewNullDecimal(d)
		}
		draft.CardioEntries = append(draft.CardioEntries, CardioDraft{
			CardioTypeID: *c.CardioTypeID,
			Minutes:      minutes,
			Distance:     distance,
		})
	}

	return draft, nil
}

func positiveCount(field string, v FlexInt) (int, error) {
	if !v.Valid || v.Value < 1 {
		return 1, nil
	}
	if v.Value > maxCount {
		return 0, &ValidationError{Field: field, Reason: "too large"}
	}
	return int(v.Value), nil
}

func nonNegativeDecimal(field string, v FlexDecimal) (decimal.Decimal, error) {
	if !v.Valid || v.Value.IsNegative() {
		return decimal.Zero, nil
	}
	rounded := v.Value.Round(2)
	if rounded.GreaterThan(MaxDecimal) {
		return decimal.Zero, &ValidationError{Field: field, Reason: "exceeds " + MaxDecimal.StringFixed(2)}
	}
	return rounded, nil
}

func uniqueIDs(n int, at func(i int) int64) []int64 {
	seen := make(map[int64]struct{}, n)
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		id := at(i)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
