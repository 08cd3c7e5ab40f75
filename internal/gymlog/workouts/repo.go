package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/caldate"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
)

type ReplaceResult struct {
	DayID   int64
	Created bool
	// Deleted is set when the day ended up with nothing in it and its row was removed.
	Deleted bool
}

// DayFilter narrows ListDays. Zero value means all days of the owner.
type DayFilter struct {
	From *caldate.Date
	To   *caldate.Date
	// ExerciseID keeps only strength entries of that exercise and skips cardio.
	ExerciseID *int64
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ReplaceDay makes the stored day equal to the draft, in a single transaction:
// upsert the day row, drop all its entries and insert the draft ones.
func (r *Repo) ReplaceDay(ctx context.Context, ownerID int64, draft DayDraft) (_ *ReplaceResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.replaceDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("date", draft.Date.String()),
		attribute.Int("entries", len(draft.Entries)),
		attribute.Int("cardio_entries", len(draft.CardioEntries)),
	)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Errorf("replace day %s rollback: %s", draft.Date, rbErr)
			}
		}
	}()

	result := &ReplaceResult{}
	if err := tx.QueryRow(
		ctx,
		`INSERT INTO workout_day (owner_id, day, notes, updated_at)
			VALUES ($1, $2, $3, now())
			ON CONFLICT (owner_id, day) DO UPDATE SET notes = EXCLUDED.notes, updated_at = now()
			RETURNING id, (xmax = 0);`,
		ownerID, draft.Date.Time(), draft.Notes,
	).Scan(&result.DayID, &result.Created); err != nil {
		return nil, fmt.Errorf("upsert day: %w", err)
	}

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM strength_entry WHERE workout_day_id = $1;`, result.DayID)
	batch.Queue(`DELETE FROM cardio_entry WHERE workout_day_id = $1;`, result.DayID)
	for i, e := range draft.Entries {
		batch.Queue(
			`INSERT INTO strength_entry (workout_day_id, exercise_id, position, sets, reps, weight)
				VALUES ($1, $2, $3, $4, $5, $6::numeric);`,
			result.DayID, e.ExerciseID, i, e.Sets, e.Reps, e.Weight.StringFixed(2),
		)
	}
	for i, c := range draft.CardioEntries {
		batch.Queue(
			`INSERT INTO cardio_entry (workout_day_id, cardio_type_id, position, minutes, distance)
				VALUES ($1, $2, $3, $4, $5::numeric);`,
			result.DayID, c.CardioTypeID, i, c.Minutes, nullDecimalParam(c.Distance),
		)
	}
	if draft.Empty() {
		batch.Queue(`DELETE FROM workout_day WHERE id = $1;`, result.DayID)
		result.Deleted = true
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("replace entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	span.SetAttributes(
		attribute.Int64("day.id", result.DayID),
		attribute.Bool("day.created", result.Created),
		attribute.Bool("day.deleted", result.Deleted),
	)
	return result, nil
}

func (r *Repo) GetDay(ctx context.Context, ownerID int64, date caldate.Date) (_ *DayWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	days, err := r.ListDays(ctx, ownerID, DayFilter{From: &date, To: &date})
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrDayNotFound
	}

	return &days[0], nil
}

// ListDays loads the owner's days with their entries, ordered by date.
func (r *Repo) ListDays(ctx context.Context, ownerID int64, filter DayFilter) (_ []DayWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	dayWhere, args := filter.where(ownerID)

	rows, err := r.db.Query(
		ctx,
		`SELECT wd.id, wd.day, wd.notes FROM workout_day wd WHERE `+dayWhere+` ORDER BY wd.day;`,
		args...,
	)
	if err != nil {
		return nil, err
	}

	var days []DayWorkout
	dayIndex := map[int64]int{}
	for rows.Next() {
		var (
			id    int64
			day   time.Time
			notes string
		)
		if err := rows.Scan(&id, &day, &notes); err != nil {
			rows.Close()
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		d := EmptyDay(ownerID, caldate.FromTime(day))
		d.ID = id
		d.Notes = notes
		dayIndex[id] = len(days)
		days = append(days, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return []DayWorkout{}, nil
	}

	strengthQuery := `SELECT se.workout_day_id, se.id, se.exercise_id, e.name, e.muscle_group, se.sets, se.reps, se.weight::text
		FROM strength_entry se
		JOIN exercise e ON e.id = se.exercise_id
		JOIN workout_day wd ON wd.id = se.workout_day_id
		WHERE ` + dayWhere
	strengthArgs := args
	if filter.ExerciseID != nil {
		strengthArgs = append(append([]any{}, args...), *filter.ExerciseID)
		strengthQuery += fmt.Sprintf(" AND se.exercise_id = $%d", len(strengthArgs))
	}
	strengthQuery += " ORDER BY wd.day, se.position, se.id;"

	if err := r.scanEntries(ctx, strengthQuery, strengthArgs, func(rows pgx.Rows) error {
		var (
			dayID     int64
			e         StrengthEntry
			weightStr string
		)
		if err := rows.Scan(&dayID, &e.ID, &e.ExerciseID, &e.ExerciseName, &e.MuscleGroup, &e.Sets, &e.Reps, &weightStr); err != nil {
			return err
		}
		weight, err := decimal.NewFromString(weightStr)
		if err != nil {
			return fmt.Errorf("parse weight %q: %w", weightStr, err)
		}
		e.Weight = weight
		idx := dayIndex[dayID]
		days[idx].Entries = append(days[idx].Entries, e)
		return nil
	}); err != nil {
		return nil, err
	}

	if filter.ExerciseID == nil {
		cardioQuery := `SELECT ce.workout_day_id, ce.id, ce.cardio_type_id, ct.name, ce.minutes, ce.distance::text
			FROM cardio_entry ce
			JOIN cardio_type ct ON ct.id = ce.cardio_type_id
			JOIN workout_day wd ON wd.id = ce.workout_day_id
			WHERE ` + dayWhere + ` ORDER BY wd.day, ce.position, ce.id;`
		if err := r.scanEntries(ctx, cardioQuery, args, func(rows pgx.Rows) error {
			var (
				dayID       int64
				c           CardioEntry
				distanceStr *string
			)
			if err := rows.Scan(&dayID, &c.ID, &c.CardioTypeID, &c.CardioTypeName, &c.Minutes, &distanceStr); err != nil {
				return err
			}
			if distanceStr != nil {
				distance, err := decimal.NewFromString(*distanceStr)
				if err != nil {
					return fmt.Errorf("parse distance %q: %w", *distanceStr, err)
				}
				c.Distance = decimal.NewNullDecimal(distance)
			}
			idx := dayIndex[dayID]
			days[idx].CardioEntries = append(days[idx].CardioEntries, c)
			return nil
		}); err != nil {
			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("days.count", len(days)))
	return days, nil
}

func (r *Repo) scanEntries(ctx context.Context, query string, args []any, scan func(rows pgx.Rows) error) error {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("rows scan: %w", err)
		}
	}
	return rows.Err()
}

func (f DayFilter) where(ownerID int64) (string, []any) {
	conditions := []string{"wd.owner_id = $1"}
	args := []any{ownerID}
	if f.From != nil {
		args = append(args, f.From.Time())
		conditions = append(conditions, fmt.Sprintf("wd.day >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, f.To.Time())
		conditions = append(conditions, fmt.Sprintf("wd.day <= $%d", len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

func nullDecimalParam(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}
