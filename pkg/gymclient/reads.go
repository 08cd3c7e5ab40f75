package gymclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/2beens/gymlog/internal/cache"
	"github.com/2beens/gymlog/internal/caldate"
)

func (c *Client) Exercises(ctx context.Context) ([]Exercise, error) {
	var exercises []Exercise
	if err := c.cachedGet(ctx, "exercises", "/exercises/", nil, &exercises, cache.ExercisesTag()); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (c *Client) CardioTypes(ctx context.Context) ([]CardioType, error) {
	var cardioTypes []CardioType
	if err := c.cachedGet(ctx, "cardio-types", "/cardio-types/", nil, &cardioTypes, cache.CardioTypesTag()); err != nil {
		return nil, err
	}
	return cardioTypes, nil
}

func (c *Client) Day(ctx context.Context, date caldate.Date) (*Day, error) {
	var day Day
	err := c.cachedGet(
		ctx,
		dayKey(date),
		"/workouts/day/",
		url.Values{"date": {date.String()}},
		&day,
		cache.DayTag(date),
	)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (c *Client) Month(ctx context.Context, year int, month time.Month) (*Month, error) {
	var m Month
	err := c.cachedGet(
		ctx,
		fmt.Sprintf("month/%04d-%02d", year, int(month)),
		"/workouts/month/",
		url.Values{
			"year":  {strconv.Itoa(year)},
			"month": {strconv.Itoa(int(month))},
		},
		&m,
		cache.MonthTag(year, month),
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *Client) Analytics(ctx context.Context) (*Analytics, error) {
	var a Analytics
	if err := c.cachedGet(ctx, "analytics", "/analytics/summary/", nil, &a, cache.AnalyticsTag()); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) ExerciseHistory(ctx context.Context, exerciseID int64) (*ExerciseHistory, error) {
	var h ExerciseHistory
	err := c.cachedGet(
		ctx,
		"exercise-history/"+strconv.FormatInt(exerciseID, 10),
		"/analytics/exercise-history/",
		url.Values{"exercise_id": {strconv.FormatInt(exerciseID, 10)}},
		&h,
		cache.ExerciseHistoryTag(exerciseID),
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func dayKey(date caldate.Date) string {
	return "day/" + date.String()
}
