package gymclient

import (
	"github.com/shopspring/decimal"

	"github.com/2beens/gymlog/internal/caldate"
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type Exercise struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
}

type CardioType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StrengthEntry struct {
	ID           int64           `json:"id"`
	ExerciseID   int64           `json:"exercise_id"`
	ExerciseName string          `json:"exercise_name"`
	MuscleGroup  string          `json:"muscle_group"`
	Sets         int             `json:"sets"`
	Reps         int             `json:"reps"`
	Weight       decimal.Decimal `json:"weight"`
	TotalWeight  decimal.Decimal `json:"total_weight"`
}

type CardioEntry struct {
	ID           int64               `json:"id"`
	CardioTypeID int64               `json:"cardio_type_id"`
	CardioType   CardioType          `json:"cardio_type"`
	Minutes      int                 `json:"minutes"`
	Distance     decimal.NullDecimal `json:"distance"`
}

// Day is the canonical state of one date as persisted by the server.
type Day struct {
	Date                  caldate.Date    `json:"date"`
	Notes                 string          `json:"notes"`
	Entries               []StrengthEntry `json:"entries"`
	CardioEntries         []CardioEntry   `json:"cardio_entries"`
	DayTotalWeight        decimal.Decimal `json:"day_total_weight"`
	DayTotalReps          int             `json:"day_total_reps"`
	DayTotalCardioMinutes int             `json:"day_total_cardio_minutes"`
}

type StrengthInput struct {
	ExerciseID *int64          `json:"exercise_id"`
	Sets       int             `json:"sets"`
	Reps       int             `json:"reps"`
	Weight     decimal.Decimal `json:"weight"`
}

type CardioInput struct {
	CardioTypeID *int64              `json:"cardio_type_id"`
	Minutes      int                 `json:"minutes"`
	Distance     decimal.NullDecimal `json:"distance"`
}

// DayInput is the full desired state of a date. Saving it replaces whatever
// the server holds for that date.
type DayInput struct {
	Date          string          `json:"date"`
	Notes         string          `json:"notes"`
	Entries       []StrengthInput `json:"entries"`
	CardioEntries []CardioInput   `json:"cardio_entries"`
}

type MonthDay struct {
	Date                  caldate.Date    `json:"date"`
	DayTotalWeight        decimal.Decimal `json:"day_total_weight"`
	DayTotalReps          int             `json:"day_total_reps"`
	DayTotalCardioMinutes int             `json:"day_total_cardio_minutes"`
}

type Month struct {
	Year                    int             `json:"year"`
	Month                   int             `json:"month"`
	DaysWithWorkouts        []caldate.Date  `json:"days_with_workouts"`
	Days                    []MonthDay      `json:"days"`
	MonthTotalWeight        decimal.Decimal `json:"month_total_weight"`
	MonthTotalReps          int             `json:"month_total_reps"`
	MonthTotalCardioMinutes int             `json:"month_total_cardio_minutes"`
}

type Overall struct {
	TotalWorkouts int             `json:"total_workouts"`
	TotalWeight   decimal.Decimal `json:"total_weight"`
	TotalReps     int             `json:"total_reps"`
}

type MuscleGroupTotals struct {
	MuscleGroup string          `json:"muscle_group"`
	TotalSets   int             `json:"total_sets"`
	TotalWeight decimal.Decimal `json:"total_weight"`
}

type CardioOverall struct {
	TotalMinutes  int                 `json:"total_minutes"`
	TotalDistance decimal.NullDecimal `json:"total_distance"`
}

type CardioTypeTotals struct {
	CardioType    string              `json:"cardio_type"`
	TotalMinutes  int                 `json:"total_minutes"`
	TotalDistance decimal.NullDecimal `json:"total_distance"`
}

type Analytics struct {
	Overall       Overall             `json:"overall"`
	ByMuscleGroup []MuscleGroupTotals `json:"by_muscle_group"`
	CardioOverall CardioOverall       `json:"cardio_overall"`
	ByCardioType  []CardioTypeTotals  `json:"by_cardio_type"`
}

type HistoryPoint struct {
	Date            caldate.Date    `json:"date"`
	TotalVolume     decimal.Decimal `json:"total_volume"`
	TotalReps       int             `json:"total_reps"`
	AvgWeightPerRep decimal.Decimal `json:"avg_weight_per_rep"`
}

type ExerciseHistory struct {
	Exercise Exercise       `json:"exercise"`
	Points   []HistoryPoint `json:"points"`
}
