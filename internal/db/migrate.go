package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema of the gymlog database. A NULL exercise owner means a shared exercise.
// Weights and distances are NUMERIC(7,2), so at most 99999.99.
const Schema = `
CREATE TABLE IF NOT EXISTS app_user (
	id				BIGSERIAL PRIMARY KEY,
	username		TEXT NOT NULL UNIQUE,
	email			TEXT,
	password_hash	TEXT NOT NULL,
	created_at		TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_app_user_email ON app_user (lower(email)) WHERE email IS NOT NULL AND email <> '';

CREATE TABLE IF NOT EXISTS exercise (
	id				BIGSERIAL PRIMARY KEY,
	owner_id		BIGINT REFERENCES app_user(id) ON DELETE CASCADE,
	name			TEXT NOT NULL,
	muscle_group	TEXT NOT NULL,
	created_at		TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_exercise_owner ON exercise(owner_id);

CREATE TABLE IF NOT EXISTS cardio_type (
	id				BIGSERIAL PRIMARY KEY,
	owner_id		BIGINT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
	name			TEXT NOT NULL,
	created_at		TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (owner_id, name)
);

CREATE TABLE IF NOT EXISTS workout_day (
	id				BIGSERIAL PRIMARY KEY,
	owner_id		BIGINT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
	day				DATE NOT NULL,
	notes			TEXT NOT NULL DEFAULT '',
	updated_at		TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (owner_id, day)
);

CREATE TABLE IF NOT EXISTS strength_entry (
	id				BIGSERIAL PRIMARY KEY,
	workout_day_id	BIGINT NOT NULL REFERENCES workout_day(id) ON DELETE CASCADE,
	exercise_id		BIGINT NOT NULL REFERENCES exercise(id) ON DELETE CASCADE,
	position		INT NOT NULL,
	sets			INT NOT NULL CHECK (sets >= 1),
	reps			INT NOT NULL CHECK (reps >= 1),
	weight			NUMERIC(7,2) NOT NULL DEFAULT 0 CHECK (weight >= 0)
);

CREATE INDEX IF NOT EXISTS idx_strength_entry_day ON strength_entry(workout_day_id);
CREATE INDEX IF NOT EXISTS idx_strength_entry_exercise ON strength_entry(exercise_id);

CREATE TABLE IF NOT EXISTS cardio_entry (
	id				BIGSERIAL PRIMARY KEY,
	workout_day_id	BIGINT NOT NULL REFERENCES workout_day(id) ON DELETE CASCADE,
	cardio_type_id	BIGINT NOT NULL REFERENCES cardio_type(id) ON DELETE CASCADE,
	position		INT NOT NULL,
	minutes			INT NOT NULL CHECK (minutes >= 1),
	distance		NUMERIC(7,2) CHECK (distance IS NULL OR distance >= 0)
);

CREATE INDEX IF NOT EXISTS idx_cardio_entry_day ON cardio_entry(workout_day_id);
`

// Migrate ensures tables exist, all or nothing. Call once at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, Schema)
		return err
	})
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
