package cache

import (
	"fmt"
	"time"

	"github.com/2beens/gymlog/internal/caldate"
)

type Tag string

func ExercisesTag() Tag {
	return "exercises"
}

func CardioTypesTag() Tag {
	return "cardio-types"
}

func DayTag(date caldate.Date) Tag {
	return Tag("day:" + date.String())
}

func MonthTag(year int, month time.Month) Tag {
	return Tag(fmt.Sprintf("month:%04d-%02d", year, int(month)))
}

func AnalyticsTag() Tag {
	return "analytics"
}

func ExerciseHistoryTag(exerciseID int64) Tag {
	return Tag(fmt.Sprintf("exercise-history:%d", exerciseID))
}

func CreateExerciseTags() []Tag {
	return []Tag{ExercisesTag()}
}

func CreateCardioTypeTags() []Tag {
	return []Tag{CardioTypesTag()}
}

// SaveDayTags lists what a day save makes stale. The month is taken from the
// saved date itself. Exercise history is not listed, history views
// may lag behind a save until their own entry expires or is refreshed.
func SaveDayTags(date caldate.Date) []Tag {
	return []Tag{
		DayTag(date),
		MonthTag(date.Year, date.Month),
		AnalyticsTag(),
	}
}
