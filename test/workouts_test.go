//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/pkg/gymclient"
)

func (s *IntegrationTestSuite) TestWorkouts_DayLifecycle() {
	t := s.T()
	ctx := context.Background()
	c := s.registeredClient(ctx, "lifter")

	squat, err := c.CreateExercise(ctx, "Squat", "Legs")
	require.NoError(t, err)
	assert.Equal(t, "legs", squat.MuscleGroup)
	bench, err := c.CreateExercise(ctx, "Bench Press", "chest")
	require.NoError(t, err)
	running, err := c.CreateCardioType(ctx, "Running")
	require.NoError(t, err)

	_, err = c.CreateExercise(ctx, "squat", "legs")
	var apiErr *gymclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "already have an exercise")

	date := caldate.MustParse("2025-03-10")
	empty, err := c.Day(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, empty.Entries)
	assert.Empty(t, empty.CardioEntries)

	day, created, err := c.SaveDay(ctx, gymclient.DayInput{
		Date:  "2025-03-10",
		Notes: "legs and chest",
		Entries: []gymclient.StrengthInput{
			{ExerciseID: &squat.ID, Sets: 5, Reps: 5, Weight: decimal.RequireFromString("100")},
			{ExerciseID: &bench.ID, Sets: 3, Reps: 8, Weight: decimal.RequireFromString("62.5")},
		},
		CardioEntries: []gymclient.CardioInput{
			{CardioTypeID: &running.ID, Minutes: 20, Distance: decimal.NewNullDecimal(decimal.RequireFromString("4.5"))},
		},
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, day.Entries, 2)
	assert.Equal(t, "Squat", day.Entries[0].ExerciseName)
	assert.True(t, decimal.RequireFromString("2500").Equal(day.Entries[0].TotalWeight))
	assert.True(t, decimal.RequireFromString("4000").Equal(day.DayTotalWeight))
	assert.Equal(t, 49, day.DayTotalReps)
	assert.Equal(t, 20, day.DayTotalCardioMinutes)

	// same state read back by a client with a cold cache
	fresh := s.newClient(gymclient.WithToken(c.Token()))
	readBack, err := fresh.Day(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "legs and chest", readBack.Notes)
	assert.Len(t, readBack.Entries, 2)
	require.Len(t, readBack.CardioEntries, 1)
	assert.Equal(t, "Running", readBack.CardioEntries[0].CardioType.Name)

	// the same payload again changes nothing and duplicates nothing
	sameAgain := gymclient.DayInput{
		Date:  "2025-04-11",
		Notes: "bench only",
		Entries: []gymclient.StrengthInput{
			{ExerciseID: &bench.ID, Sets: 3, Reps: 10, Weight: decimal.RequireFromString("135.5")},
		},
	}
	first, created, err := c.SaveDay(ctx, sameAgain)
	require.NoError(t, err)
	assert.True(t, created)
	second, created, err := c.SaveDay(ctx, sameAgain)
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, second.Entries, 1)
	assert.Equal(t, "4065", second.DayTotalWeight.String())
	assert.True(t, first.DayTotalWeight.Equal(second.DayTotalWeight))
	assert.Equal(t, first.DayTotalReps, second.DayTotalReps)
	readBack, err = fresh.Day(ctx, caldate.MustParse("2025-04-11"))
	require.NoError(t, err)
	assert.Len(t, readBack.Entries, 1)
	assert.Equal(t, "bench only", readBack.Notes)

	day, created, err = c.SaveDay(ctx, gymclient.DayInput{
		Date:    "2025-03-10",
		Entries: []gymclient.StrengthInput{{ExerciseID: &bench.ID, Sets: 1, Reps: 1, Weight: decimal.RequireFromString("80")}},
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, day.Entries, 1)
	assert.Empty(t, day.CardioEntries)
	assert.Empty(t, day.Notes)

	// clearing the day removes it from the month index
	day, _, err = c.SaveDay(ctx, gymclient.DayInput{Date: "2025-03-10"})
	require.NoError(t, err)
	assert.Empty(t, day.Entries)

	month, err := fresh.Month(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.Empty(t, month.DaysWithWorkouts)
}

func (s *IntegrationTestSuite) TestWorkouts_Validation() {
	t := s.T()
	ctx := context.Background()
	c := s.registeredClient(ctx, "validator")

	bench, err := c.CreateExercise(ctx, "Bench Press", "chest")
	require.NoError(t, err)

	_, _, err = c.SaveDay(ctx, gymclient.DayInput{Date: "2025-02-30"})
	assert.ErrorIs(t, err, caldate.ErrInvalidDate)

	_, _, err = c.SaveDay(ctx, gymclient.DayInput{
		Date:    "2025-03-11",
		Entries: []gymclient.StrengthInput{{ExerciseID: &bench.ID, Sets: 3, Reps: 5, Weight: decimal.RequireFromString("100000")}},
	})
	var apiErr *gymclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "weight", apiErr.Field)

	// unknown references are dropped, the rest is kept
	unknown := bench.ID + 1000
	day, _, err := c.SaveDay(ctx, gymclient.DayInput{
		Date: "2025-03-11",
		Entries: []gymclient.StrengthInput{
			{ExerciseID: &unknown, Sets: 3, Reps: 5},
			{ExerciseID: &bench.ID, Sets: 0, Reps: 5},
		},
	})
	require.NoError(t, err)
	require.Len(t, day.Entries, 1)
	assert.Equal(t, 1, day.Entries[0].Sets)
}

func (s *IntegrationTestSuite) TestWorkouts_MonthAnalyticsHistory() {
	t := s.T()
	ctx := context.Background()
	c := s.registeredClient(ctx, "tracker")

	squat, err := c.CreateExercise(ctx, "Squat", "legs")
	require.NoError(t, err)
	bench, err := c.CreateExercise(ctx, "Bench Press", "chest")
	require.NoError(t, err)
	rowing, err := c.CreateCardioType(ctx, "Rowing")
	require.NoError(t, err)

	saves := []gymclient.DayInput{
		{
			Date:    "2025-03-03",
			Entries: []gymclient.StrengthInput{{ExerciseID: &squat.ID, Sets: 3, Reps: 5, Weight: decimal.RequireFromString("100")}},
		},
		{
			Date:          "2025-03-20",
			Entries:       []gymclient.StrengthInput{{ExerciseID: &bench.ID, Sets: 4, Reps: 10, Weight: decimal.RequireFromString("50")}},
			CardioEntries: []gymclient.CardioInput{{CardioTypeID: &rowing.ID, Minutes: 15, Distance: decimal.NewNullDecimal(decimal.RequireFromString("3"))}},
		},
		{
			Date:  "2025-03-25",
			Notes: "rest, sore knees",
		},
		{
			Date:    "2025-04-01",
			Entries: []gymclient.StrengthInput{{ExerciseID: &squat.ID, Sets: 5, Reps: 5, Weight: decimal.RequireFromString("110")}},
		},
	}
	for _, in := range saves {
		_, _, err := c.SaveDay(ctx, in)
		require.NoError(t, err)
	}

	march, err := c.Month(ctx, 2025, time.March)
	require.NoError(t, err)
	require.Len(t, march.DaysWithWorkouts, 2)
	assert.Equal(t, "2025-03-03", march.DaysWithWorkouts[0].String())
	assert.Equal(t, "2025-03-20", march.DaysWithWorkouts[1].String())
	assert.True(t, decimal.RequireFromString("3500").Equal(march.MonthTotalWeight))
	assert.Equal(t, 55, march.MonthTotalReps)
	assert.Equal(t, 15, march.MonthTotalCardioMinutes)

	analytics, err := c.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, analytics.Overall.TotalWorkouts)
	assert.True(t, decimal.RequireFromString("6250").Equal(analytics.Overall.TotalWeight))
	assert.Equal(t, 80, analytics.Overall.TotalReps)
	assert.Len(t, analytics.ByMuscleGroup, 2)
	assert.Equal(t, 15, analytics.CardioOverall.TotalMinutes)

	history, err := c.ExerciseHistory(ctx, squat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Squat", history.Exercise.Name)
	require.Len(t, history.Points, 2)
	assert.Equal(t, "2025-03-03", history.Points[0].Date.String())
	assert.True(t, decimal.RequireFromString("100").Equal(history.Points[0].AvgWeightPerRep))
	assert.True(t, decimal.RequireFromString("2750").Equal(history.Points[1].TotalVolume))

	// a save makes the cached month and analytics stale, the client refetches them
	_, _, err = c.SaveDay(ctx, gymclient.DayInput{
		Date:    "2025-03-28",
		Entries: []gymclient.StrengthInput{{ExerciseID: &bench.ID, Sets: 1, Reps: 10, Weight: decimal.RequireFromString("50")}},
	})
	require.NoError(t, err)

	march, err = c.Month(ctx, 2025, time.March)
	require.NoError(t, err)
	assert.Len(t, march.DaysWithWorkouts, 3)
	analytics, err = c.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, analytics.Overall.TotalWorkouts)

	_, err = c.Month(ctx, 2031, time.January)
	var apiErr *gymclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func (s *IntegrationTestSuite) TestWorkouts_UsersAreIsolated() {
	t := s.T()
	ctx := context.Background()

	alice := s.registeredClient(ctx, "alice")
	bob := s.registeredClient(ctx, "bob")

	aliceSquat, err := alice.CreateExercise(ctx, "Squat", "legs")
	require.NoError(t, err)
	_, _, err = alice.SaveDay(ctx, gymclient.DayInput{
		Date:    "2025-05-05",
		Entries: []gymclient.StrengthInput{{ExerciseID: &aliceSquat.ID, Sets: 3, Reps: 5, Weight: decimal.RequireFromString("90")}},
	})
	require.NoError(t, err)

	bobsExercises, err := bob.Exercises(ctx)
	require.NoError(t, err)
	assert.Empty(t, bobsExercises)

	bobsDay, err := bob.Day(ctx, caldate.MustParse("2025-05-05"))
	require.NoError(t, err)
	assert.Empty(t, bobsDay.Entries)

	// bob cannot log alice's exercise
	day, _, err := bob.SaveDay(ctx, gymclient.DayInput{
		Date:    "2025-05-05",
		Entries: []gymclient.StrengthInput{{ExerciseID: &aliceSquat.ID, Sets: 3, Reps: 5}},
	})
	require.NoError(t, err)
	assert.Empty(t, day.Entries)

	bobsAnalytics, err := bob.Analytics(ctx)
	require.NoError(t, err)
	assert.Zero(t, bobsAnalytics.Overall.TotalWorkouts)

	aliceDay, err := alice.Day(ctx, caldate.MustParse("2025-05-05"))
	require.NoError(t, err)
	assert.Len(t, aliceDay.Entries, 1)
}
