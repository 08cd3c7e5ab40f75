package gymclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2beens/gymlog/internal/cache"
	"github.com/2beens/gymlog/internal/caldate"
)

func (c *Client) CreateExercise(ctx context.Context, name, muscleGroup string) (*Exercise, error) {
	var ex Exercise
	_, err := c.doJSON(ctx, http.MethodPost, "/exercises/", nil, map[string]string{
		"name":         name,
		"muscle_group": muscleGroup,
	}, &ex)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, cache.CreateExerciseTags()...)
	return &ex, nil
}

func (c *Client) CreateCardioType(ctx context.Context, name string) (*CardioType, error) {
	var ct CardioType
	_, err := c.doJSON(ctx, http.MethodPost, "/cardio-types/", nil, map[string]string{
		"name": name,
	}, &ct)
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx, cache.CreateCardioTypeTags()...)
	return &ct, nil
}

// SaveDay replaces the server state of input.Date with input and returns the
// canonical day. Entries without a catalog reference are not sent. Saves of
// the same date run one at a time; a waiting save returns ErrSuperseded when
// a newer save of that date was issued and did not give up on its context.
func (c *Client) SaveDay(ctx context.Context, input DayInput) (*Day, bool, error) {
	date, err := caldate.Parse(input.Date)
	if err != nil {
		return nil, false, err
	}
	input.Date = date.String()
	input = withoutDanglingRefs(input)

	release, err := c.saves.acquire(ctx, input.Date)
	if err != nil {
		return nil, false, err
	}
	defer release()

	raw, status, err := c.do(ctx, http.MethodPost, "/workouts/day/", nil, input)
	if err != nil {
		return nil, false, err
	}

	tags := cache.SaveDayTags(date)
	if c.historyOnSave {
		for _, id := range exerciseIDs(input) {
			tags = append(tags, cache.ExerciseHistoryTag(id))
		}
	}
	c.invalidate(ctx, tags...)
	gen, _ := c.cache.Generation(ctx, cache.DayTag(date))

	var day Day
	if err := json.Unmarshal(raw, &day); err != nil {
		return nil, false, fmt.Errorf("decode saved day: %w", err)
	}
	c.store(ctx, dayKey(date), raw, gen)

	return &day, status == http.StatusCreated, nil
}

func withoutDanglingRefs(input DayInput) DayInput {
	entries := make([]StrengthInput, 0, len(input.Entries))
	for _, e := range input.Entries {
		if e.ExerciseID != nil {
			entries = append(entries, e)
		}
	}
	cardio := make([]CardioInput, 0, len(input.CardioEntries))
	for _, e := range input.CardioEntries {
		if e.CardioTypeID != nil {
			cardio = append(cardio, e)
		}
	}
	input.Entries = entries
	input.CardioEntries = cardio
	return input
}

func exerciseIDs(input DayInput) []int64 {
	seen := make(map[int64]bool, len(input.Entries))
	ids := make([]int64, 0, len(input.Entries))
	for _, e := range input.Entries {
		if !seen[*e.ExerciseID] {
			seen[*e.ExerciseID] = true
			ids = append(ids, *e.ExerciseID)
		}
	}
	return ids
}
