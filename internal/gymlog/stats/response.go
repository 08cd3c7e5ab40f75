package stats

import (
	"github.com/shopspring/decimal"

	"github.com/2beens/gymlog/internal/gymlog/catalog"
)

type MonthDayResponse struct {
	Date                  string `json:"date"`
	DayTotalWeight        string `json:"day_total_weight"`
	DayTotalReps          int    `json:"day_total_reps"`
	DayTotalCardioMinutes int    `json:"day_total_cardio_minutes"`
}

type MonthResponse struct {
	Year                    int                `json:"year"`
	Month                   int                `json:"month"`
	DaysWithWorkouts        []string           `json:"days_with_workouts"`
	Days                    []MonthDayResponse `json:"days"`
	MonthTotalWeight        string             `json:"month_total_weight"`
	MonthTotalReps          int                `json:"month_total_reps"`
	MonthTotalCardioMinutes int                `json:"month_total_cardio_minutes"`
}

func NewMonthResponse(summary MonthSummary) MonthResponse {
	resp := MonthResponse{
		Year:                    summary.Year,
		Month:                   int(summary.Month),
		DaysWithWorkouts:        make([]string, 0, len(summary.Days)),
		Days:                    make([]MonthDayResponse, 0, len(summary.Days)),
		MonthTotalWeight:        summary.TotalWeight.StringFixed(2),
		MonthTotalReps:          summary.TotalReps,
		MonthTotalCardioMinutes: summary.TotalCardioMinutes,
	}
	for _, d := range summary.Days {
		resp.DaysWithWorkouts = append(resp.DaysWithWorkouts, d.Date.String())
		resp.Days = append(resp.Days, MonthDayResponse{
			Date:                  d.Date.String(),
			DayTotalWeight:        d.Totals.Weight.StringFixed(2),
			DayTotalReps:          d.Totals.Reps,
			DayTotalCardioMinutes: d.Totals.CardioMinutes,
		})
	}
	return resp
}

type OverallResponse struct {
	TotalWorkouts int    `json:"total_workouts"`
	TotalWeight   string `json:"total_weight"`
	TotalReps     int    `json:"total_reps"`
}

type MuscleGroupResponse struct {
	MuscleGroup string `json:"muscle_group"`
	TotalSets   int    `json:"total_sets"`
	TotalWeight string `json:"total_weight"`
}

type CardioOverallResponse struct {
	TotalMinutes  int     `json:"total_minutes"`
	TotalDistance *string `json:"total_distance"`
}

type CardioTypeResponse struct {
	CardioType    string  `json:"cardio_type"`
	TotalMinutes  int     `json:"total_minutes"`
	TotalDistance *string `json:"total_distance"`
}

type AnalyticsResponse struct {
	Overall       OverallResponse       `json:"overall"`
	ByMuscleGroup []MuscleGroupResponse `json:"by_muscle_group"`
	CardioOverall CardioOverallResponse `json:"cardio_overall"`
	ByCardioType  []CardioTypeResponse  `json:"by_cardio_type"`
}

func NewAnalyticsResponse(summary AnalyticsSummary) AnalyticsResponse {
	resp := AnalyticsResponse{
		Overall: OverallResponse{
			TotalWorkouts: summary.Overall.TotalWorkouts,
			TotalWeight:   summary.Overall.TotalWeight.StringFixed(2),
			TotalReps:     summary.Overall.TotalReps,
		},
		ByMuscleGroup: make([]MuscleGroupResponse, 0, len(summary.ByMuscleGroup)),
		CardioOverall: CardioOverallResponse{
			TotalMinutes:  summary.CardioOverall.TotalMinutes,
			TotalDistance: fixedOrNil(summary.CardioOverall.TotalDistance),
		},
		ByCardioType: make([]CardioTypeResponse, 0, len(summary.ByCardioType)),
	}
	for _, g := range summary.ByMuscleGroup {
		resp.ByMuscleGroup = append(resp.ByMuscleGroup, MuscleGroupResponse{
			MuscleGroup: g.MuscleGroup,
			TotalSets:   g.TotalSets,
			TotalWeight: g.TotalWeight.StringFixed(2),
		})
	}
	for _, c := range summary.ByCardioType {
		resp.ByCardioType = append(resp.ByCardioType, CardioTypeResponse{
			CardioType:    c.CardioType,
			TotalMinutes:  c.TotalMinutes,
			TotalDistance: fixedOrNil(c.TotalDistance),
		})
	}
	return resp
}

type HistoryPointResponse struct {
	Date            string `json:"date"`
	TotalVolume     string `json:"total_volume"`
	TotalReps       int    `json:"total_reps"`
	AvgWeightPerRep string `json:"avg_weight_per_rep"`
}

type ExerciseHistoryResponse struct {
	Exercise catalog.Exercise       `json:"exercise"`
	Points   []HistoryPointResponse `json:"points"`
}

func NewExerciseHistoryResponse(history ExerciseHistory) ExerciseHistoryResponse {
	resp := ExerciseHistoryResponse{
		Exercise: history.Exercise,
		Points:   make([]HistoryPointResponse, 0, len(history.Points)),
	}
	for _, p := range history.Points {
		resp.Points = append(resp.Points, HistoryPointResponse{
			Date:            p.Date.String(),
			TotalVolume:     p.TotalVolume.StringFixed(2),
			TotalReps:       p.TotalReps,
			AvgWeightPerRep: p.AvgWeightPerRep().StringFixed(2),
		})
	}
	return resp
}

func fixedOrNil(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
