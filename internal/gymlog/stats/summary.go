package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/internal/gymlog/catalog"
	"github.com/2beens/gymlog/internal/gymlog/workouts"
)

type MonthDay struct {
	Date   caldate.Date
	Totals workouts.DayTotals
}

// MonthSummary is the calendar view of one month. Only days with at least
// one strength or cardio entry are part of it.
type MonthSummary struct {
	Year               int
	Month              time.Month
	Days               []MonthDay
	TotalWeight        decimal.Decimal
	TotalReps          int
	TotalCardioMinutes int
}

// WorkoutDays is the set form of Days, for membership checks.
func (s MonthSummary) WorkoutDays() map[caldate.Date]struct{} {
	set := make(map[caldate.Date]struct{}, len(s.Days))
	for _, d := range s.Days {
		set[d.Date] = struct{}{}
	}
	return set
}

func BuildMonthSummary(year int, month time.Month, days []workouts.DayWorkout) MonthSummary {
	summary := MonthSummary{
		Year:        year,
		Month:       month,
		Days:        []MonthDay{},
		TotalWeight: decimal.Zero,
	}

	for _, day := range days {
		if !day.Date.InMonth(year, month) || !day.HasEntries() {
			continue
		}
		totals := day.Totals()
		summary.Days = append(summary.Days, MonthDay{Date: day.Date, Totals: totals})
		summary.TotalWeight = summary.TotalWeight.Add(totals.Weight)
		summary.TotalReps += totals.Reps
		summary.TotalCardioMinutes += totals.CardioMinutes
	}

	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Date.Before(summary.Days[j].Date)
	})

	return summary
}

type MuscleGroupStats struct {
	MuscleGroup string
	TotalSets   int
	TotalWeight decimal.Decimal
}

type CardioTypeStats struct {
	CardioType   string
	TotalMinutes int
	// TotalDistance stays null until an entry of this type records a distance.
	TotalDistance decimal.NullDecimal
}

type OverallStats struct {
	TotalWorkouts int
	TotalWeight   decimal.Decimal
	TotalReps     int
}

type CardioOverallStats struct {
	TotalMinutes  int
	TotalDistance decimal.NullDecimal
}

type AnalyticsSummary struct {
	Overall       OverallStats
	ByMuscleGroup []MuscleGroupStats
	CardioOverall CardioOverallStats
	ByCardioType  []CardioTypeStats
}

// BuildAnalyticsSummary aggregates every given day in a single pass.
// Groups come out sorted by name.
func BuildAnalyticsSummary(days []workouts.DayWorkout) AnalyticsSummary {
	summary := AnalyticsSummary{
		Overall:       OverallStats{TotalWeight: decimal.Zero},
		ByMuscleGroup: []MuscleGroupStats{},
		ByCardioType:  []CardioTypeStats{},
	}

	muscleGroups := map[string]*MuscleGroupStats{}
	cardioTypes := map[string]*CardioTypeStats{}
	workoutDates := map[caldate.Date]struct{}{}

	for _, day := range days {
		if day.HasEntries() {
			workoutDates[day.Date] = struct{}{}
		}

		for _, e := range day.Entries {
			group, ok := muscleGroups[e.MuscleGroup]
			if !ok {
				group = &MuscleGroupStats{MuscleGroup: e.MuscleGroup, TotalWeight: decimal.Zero}
				muscleGroups[e.MuscleGroup] = group
			}
			volume := e.Volume()
			group.TotalSets += e.Sets
			group.TotalWeight = group.TotalWeight.Add(volume)

			summary.Overall.TotalWeight = summary.Overall.TotalWeight.Add(volume)
			summary.Overall.TotalReps += e.TotalReps()
		}

		for _, c := range day.CardioEntries {
			cardioType, ok := cardioTypes[c.CardioTypeName]
			if !ok {
				cardioType = &CardioTypeStats{CardioType: c.CardioTypeName}
				cardioTypes[c.CardioTypeName] = cardioType
			}
			cardioType.TotalMinutes += c.Minutes
			cardioType.TotalDistance = addNullDecimal(cardioType.TotalDistance, c.Distance)

			summary.CardioOverall.TotalMinutes += c.Minutes
			summary.CardioOverall.TotalDistance = addNullDecimal(summary.CardioOverall.TotalDistance, c.Distance)
		}
	}

	summary.Overall.TotalWorkouts = len(workoutDates)

	for _, group := range muscleGroups {
		summary.ByMuscleGroup = append(summary.ByMuscleGroup, *group)
	}
	sort.Slice(summary.ByMuscleGroup, func(i, j int) bool {
		return summary.ByMuscleGroup[i].MuscleGroup < summary.ByMuscleGroup[j].MuscleGroup
	})

	for _, cardioType := range cardioTypes {
		summary.ByCardioType = append(summary.ByCardioType, *cardioType)
	}
	sort.Slice(summary.ByCardioType, func(i, j int) bool {
		return summary.ByCardioType[i].CardioType < summary.ByCardioType[j].CardioType
	})

	return summary
}

type HistoryPoint struct {
	Date        caldate.Date
	TotalVolume decimal.Decimal
	TotalReps   int
}

// AvgWeightPerRep is volume / reps, or 0 when there are no reps.
func (p HistoryPoint) AvgWeightPerRep() decimal.Decimal {
	if p.TotalReps == 0 {
		return decimal.Zero
	}
	return p.TotalVolume.Div(decimal.NewFromInt(int64(p.TotalReps)))
}

type ExerciseHistory struct {
	Exercise catalog.Exercise
	Points   []HistoryPoint
}

// BuildExerciseHistory sums all entries of the exercise per date. Dates
// without the exercise produce no point.
func BuildExerciseHistory(exercise catalog.Exercise, days []workouts.DayWorkout) ExerciseHistory {
	history := ExerciseHistory{
		Exercise: exercise,
		Points:   []HistoryPoint{},
	}

	byDate := map[caldate.Date]*HistoryPoint{}
	for _, day := range days {
		for _, e := range day.Entries {
			if e.ExerciseID != exercise.ID {
				continue
			}
			point, ok := byDate[day.Date]
			if !ok {
				point = &HistoryPoint{Date: day.Date, TotalVolume: decimal.Zero}
				byDate[day.Date] = point
			}
			point.TotalVolume = point.TotalVolume.Add(e.Volume())
			point.TotalReps += e.TotalReps()
		}
	}

	for _, point := range byDate {
		history.Points = append(history.Points, *point)
	}
	sort.Slice(history.Points, func(i, j int) bool {
		return history.Points[i].Date.Before(history.Points[j].Date)
	})

	return history
}

func addNullDecimal(sum, d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return sum
	}
	if !sum.Valid {
		return decimal.NewNullDecimal(d.Decimal)
	}
	return decimal.NewNullDecimal(sum.Decimal.Add(d.Decimal))
}
