package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=auth_test

const (
	DefaultTTL        = 24 * 7 * time.Hour
	MinPasswordLength = 6
	sessionKeyPrefix  = "gymlog-session||"
	sessionsSetKey    = "gymlog-sessions"
)

var (
	ErrInvalidCredentials = errors.New("wrong credentials")
	ErrUsernameEmpty      = errors.New("username empty")
	ErrPasswordEmpty      = errors.New("password empty")
	ErrPasswordTooShort   = fmt.Errorf("password shorter than %d characters", MinPasswordLength)
)

type usersRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (*User, error)
	ByUsername(ctx context.Context, username string) (*User, error)
	ByID(ctx context.Context, id int64) (*User, error)
}

func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

type Service struct {
	users       usersRepo
	tokens      *Tokens
	redisClient *redis.Client
	ttl         time.Duration
	// injectable for tests
	NewSessionID func() string
	Now          func() time.Time
}

func NewService(
	users usersRepo,
	tokens *Tokens,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:        users,
		tokens:       tokens,
		redisClient:  redisClient,
		ttl:          ttl,
		NewSessionID: uuid.NewString,
		Now:          time.Now,
	}
}

// Register creates the user and logs them in right away.
func (as *Service) Register(ctx context.Context, username, email, password string) (_ *User, _ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, "", ErrUsernameEmpty
	}
	if password == "" {
		return nil, "", ErrPasswordEmpty
	}
	if len([]rune(password)) < MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := as.users.Create(ctx, username, strings.TrimSpace(email), passwordHash)
	if err != nil {
		return nil, "", err
	}

	token, err := as.startSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (as *Service) Login(ctx context.Context, username, password string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if username == "" {
		return "", ErrUsernameEmpty
	}
	if password == "" {
		return "", ErrPasswordEmpty
	}

	user, err := as.users.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", username)
		return "", ErrInvalidCredentials
	}

	return as.startSession(ctx, user.ID)
}

func (as *Service) startSession(ctx context.Context, userID int64) (string, error) {
	now := as.Now()
	sessionID := as.NewSessionID()

	token, err := as.tokens.Issue(userID, sessionID, now)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if err := as.redisClient.Set(ctx, SessionKey(sessionID), now.Unix(), as.ttl).Err(); err != nil {
		return "", err
	}

	// add session to the set scanned by the cleaner
	if err := as.redisClient.SAdd(ctx, sessionsSetKey, sessionID).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session behind the token. False means there was no live session.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	claims, err := as.tokens.Parse(token)
	if err != nil {
		return false, err
	}

	deleted, err := as.redisClient.Del(ctx, SessionKey(claims.SessionID)).Result()
	if err != nil {
		return false, err
	}

	if err := as.redisClient.SRem(ctx, sessionsSetKey, claims.SessionID).Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (as *Service) User(ctx context.Context, userID int64) (*User, error) {
	return as.users.ByID(ctx, userID)
}

// ScanAndClean runs through all sessions, checks their age, and removes the old ones.
func (as *Service) ScanAndClean(ctx context.Context) {
	sessionIDs, err := as.redisClient.SMembers(ctx, sessionsSetKey).Result()
	if err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionIDs) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionIDs))
	var toRemove []string
	for _, sessionID := range sessionIDs {
		createdAtUnixStr, err := as.redisClient.Get(ctx, SessionKey(sessionID)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// expired on its own, only the set member is left
				toRemove = append(toRemove, sessionID)
				continue
			}
			log.Errorf("=> auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
		if err != nil {
			log.Errorf("=> auth service, scan and clean session %s: %s", sessionID, err)
			continue
		}

		if as.Now().Sub(time.Unix(createdAtUnix, 0)) > as.ttl {
			toRemove = append(toRemove, sessionID)
		}
	}

	for _, sessionID := range toRemove {
		if err := as.redisClient.Del(ctx, SessionKey(sessionID)).Err(); err != nil {
			log.Errorf("=> auth service, clean session %s: %s", sessionID, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, sessionsSetKey, sessionID).Err(); err != nil {
			log.Errorf("=> auth service, clean session %s: %s", sessionID, err)
			continue
		}
	}

	log.Debugf("=> auth service, scan and clean removed %d sessions", len(toRemove))
}

// RunCleaner calls ScanAndClean every interval until ctx is done.
func (as *Service) RunCleaner(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			as.ScanAndClean(ctx)
		}
	}
}
