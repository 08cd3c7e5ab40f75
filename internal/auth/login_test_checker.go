package auth

import "context"

// LoginTestChecker is a Checker over a fixed token to user id map, for wiring tests.
type LoginTestChecker struct {
	LoggedSessions map[string]int64
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]int64{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (int64, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, ErrSessionExpired
	}
	return userID, nil
}
