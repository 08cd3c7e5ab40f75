package workouts

type StrengthEntryResponse struct {
	ID           int64  `json:"id"`
	ExerciseID   int64  `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	MuscleGroup  string `json:"muscle_group"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Weight       string `json:"weight"`
	TotalWeight  string `json:"total_weight"`
}

type CardioTypeRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CardioEntryResponse struct {
	ID           int64         `json:"id"`
	CardioTypeID int64         `json:"cardio_type_id"`
	CardioType   CardioTypeRef `json:"cardio_type"`
	Minutes      int           `json:"minutes"`
	Distance     *string       `json:"distance"`
}

// DayResponse is the canonical wire shape of a day. Decimals are strings with 2 places.
type DayResponse struct {
	Date                  string                  `json:"date"`
	Notes                 string                  `json:"notes"`
	Entries               []StrengthEntryResponse `json:"entries"`
	CardioEntries         []CardioEntryResponse   `json:"cardio_entries"`
	DayTotalWeight        string                  `json:"day_total_weight"`
	DayTotalReps          int                     `json:"day_total_reps"`
	DayTotalCardioMinutes int                     `json:"day_total_cardio_minutes"`
}

func NewDayResponse(day DayWorkout) DayResponse {
	totals := day.Totals()
	resp := DayResponse{
		Date:                  day.Date.String(),
		Notes:                 day.Notes,
		Entries:               make([]StrengthEntryResponse, 0, len(day.Entries)),
		CardioEntries:         make([]CardioEntryResponse, 0, len(day.CardioEntries)),
		DayTotalWeight:        totals.Weight.StringFixed(2),
		DayTotalReps:          totals.Reps,
		DayTotalCardioMinutes: totals.CardioMinutes,
	}

	for _, e := range day.Entries {
		resp.Entries = append(resp.Entries, StrengthEntryResponse{
			ID:           e.ID,
			ExerciseID:   e.ExerciseID,
			ExerciseName: e.ExerciseName,
			MuscleGroup:  e.MuscleGroup,
			Sets:         e.Sets,
			Reps:         e.Reps,
			Weight:       e.Weight.StringFixed(2),
			TotalWeight:  e.Volume().StringFixed(2),
		})
	}

	for _, c := range day.CardioEntries {
		var distance *string
		if c.Distance.Valid {
			d := c.Distance.Decimal.StringFixed(2)
			distance = &d
		}
		resp.CardioEntries = append(resp.CardioEntries, CardioEntryResponse{
			ID:           c.ID,
			CardioTypeID: c.CardioTypeID,
			CardioType: CardioTypeRef{
				ID:   c.CardioTypeID,
				Name: c.CardioTypeName,
			},
			Minutes:  c.Minutes,
			Distance: distance,
		})
	}

	return resp
}
