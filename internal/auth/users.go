package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"-"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

func (r *UsersRepo) Create(ctx context.Context, username, email, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.createUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var emailParam *string
	if e := strings.TrimSpace(email); e != "" {
		emailParam = &e
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO app_user (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		username, emailParam, passwordHash,
	).Scan(&user.ID, &user.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int64("user.id", user.ID))
	return user, nil
}

func (r *UsersRepo) ByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.userByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.queryUser(ctx, `WHERE username = $1`, username)
}

func (r *UsersRepo) ByID(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.auth.userByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return r.queryUser(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) queryUser(ctx context.Context, where string, arg any) (*User, error) {
	var (
		user  User
		email *string
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, username, email, password_hash, created_at FROM app_user `+where+`;`,
		arg,
	).Scan(&user.ID, &user.Username, &email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if email != nil {
		user.Email = *email
	}
	return &user, nil
}
