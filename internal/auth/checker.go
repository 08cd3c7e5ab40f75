package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves a bearer token to the id of a logged in user.
type Checker interface {
	UserID(ctx context.Context, token string) (int64, error)
}
