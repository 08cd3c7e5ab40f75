//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/pkg/gymclient"
)

const testPassword = "integration-pass"

func isUnauthorized(err error) bool {
	return errors.Is(err, gymclient.ErrUnauthorized)
}

func (s *IntegrationTestSuite) newClient(opts ...gymclient.Option) *gymclient.Client {
	c, err := gymclient.New(serverEndpoint, opts...)
	require.NoError(s.T(), err)
	return c
}

// registeredClient returns a client already holding a session of a new user.
func (s *IntegrationTestSuite) registeredClient(ctx context.Context, username string, opts ...gymclient.Option) *gymclient.Client {
	c := s.newClient(opts...)
	_, err := c.Register(ctx, username, username+"@example.com", testPassword)
	require.NoError(s.T(), err)
	return c
}
