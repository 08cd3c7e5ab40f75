package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListExercises(ctx context.Context, ownerID int64) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name, muscle_group
			FROM exercise
			WHERE owner_id = $1 OR owner_id IS NULL
			ORDER BY name, id;`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))
	return exercises, nil
}

// AddExercise inserts the exercise unless the owner already has one with the
// same name, compared case-insensitively. The check and the insert are one
// statement but not serialized, so concurrent creates may still both succeed.
func (r *Repo) AddExercise(ctx context.Context, ownerID int64, ex NewExercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.addExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (owner_id, name, muscle_group)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM exercise WHERE owner_id = $1 AND lower(name) = lower($2)
			)
			RETURNING id;`,
		ownerID, ex.Name, ex.MuscleGroup,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int64("exercise.id", id))
	return &Exercise{
		ID:          id,
		OwnerID:     &ownerID,
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
	}, nil
}

// GetExercise returns the exercise if the owner can see it (owned or shared).
func (r *Repo) GetExercise(ctx context.Context, ownerID, id int64) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name, muscle_group
			FROM exercise
			WHERE id = $2 AND (owner_id = $1 OR owner_id IS NULL);`,
		ownerID, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrExerciseNotFound
	}

	return &exercises[0], nil
}

// ResolveExercises returns the subset of ids visible to the owner.
func (r *Repo) ResolveExercises(ctx context.Context, ownerID int64, ids []int64) (_ map[int64]Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.resolveExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	resolved := map[int64]Exercise{}
	if len(ids) == 0 {
		return resolved, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name, muscle_group
			FROM exercise
			WHERE id = ANY($2) AND (owner_id = $1 OR owner_id IS NULL);`,
		ownerID, ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises, err := scanExercises(rows)
	if err != nil {
		return nil, err
	}
	for _, e := range exercises {
		resolved[e.ID] = e
	}

	return resolved, nil
}

func (r *Repo) ListCardioTypes(ctx context.Context, ownerID int64) (_ []CardioType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listCardioTypes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name FROM cardio_type WHERE owner_id = $1 ORDER BY name, id;`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCardioTypes(rows)
}

func (r *Repo) AddCardioType(ctx context.Context, ownerID int64, ct NewCardioType) (_ *CardioType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.addCardioType")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_type (owner_id, name)
			SELECT $1, $2
			WHERE NOT EXISTS (
				SELECT 1 FROM cardio_type WHERE owner_id = $1 AND lower(name) = lower($2)
			)
			RETURNING id;`,
		ownerID, ct.Name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pkg.IsUniqueViolationError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int64("cardio_type.id", id))
	return &CardioType{
		ID:      id,
		OwnerID: ownerID,
		Name:    ct.Name,
	}, nil
}

// ResolveCardioTypes returns the subset of ids owned by the owner.
func (r *Repo) ResolveCardioTypes(ctx context.Context, ownerID int64, ids []int64) (_ map[int64]CardioType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.resolveCardioTypes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("ids.count", len(ids)))

	resolved := map[int64]CardioType{}
	if len(ids) == 0 {
		return resolved, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, name FROM cardio_type WHERE owner_id = $1 AND id = ANY($2);`,
		ownerID, ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cardioTypes, err := scanCardioTypes(rows)
	if err != nil {
		return nil, err
	}
	for _, ct := range cardioTypes {
		resolved[ct.ID] = ct
	}

	return resolved, nil
}

func scanExercises(rows pgx.Rows) ([]Exercise, error) {
	exercises := []Exercise{}
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Name, &e.MuscleGroup); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

func scanCardioTypes(rows pgx.Rows) ([]CardioType, error) {
	cardioTypes := []CardioType{}
	for rows.Next() {
		var ct CardioType
		if err := rows.Scan(&ct.ID, &ct.OwnerID, &ct.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		cardioTypes = append(cardioTypes, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cardioTypes, nil
}
