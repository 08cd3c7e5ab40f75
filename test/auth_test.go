//go:build integration_test || all_tests

package test

import (
	"context"
	"errors"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymlog/pkg/gymclient"
)

func (s *IntegrationTestSuite) TestAuth_RegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := s.newClient()

	_, err := c.Me(ctx)
	assert.True(t, isUnauthorized(err))

	user, err := c.Register(ctx, "serj", "serj@example.com", testPassword)
	require.NoError(t, err)
	assert.Equal(t, "serj", user.Username)
	assert.NotEmpty(t, c.Token())

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	_, err = s.newClient().Register(ctx, "serj", "", testPassword)
	var apiErr *gymclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "username taken")

	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, c.Token())
	_, err = c.Me(ctx)
	assert.True(t, isUnauthorized(err))

	other := s.newClient()
	err = other.Login(ctx, "serj", "wrong-password")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Empty(t, other.Token())

	require.NoError(t, other.Login(ctx, "serj", testPassword))
	me, err = other.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "serj", me.Username)
}

func (s *IntegrationTestSuite) TestAuth_LogoutInvalidatesOnlyThatSession() {
	t := s.T()
	ctx := context.Background()

	first := s.registeredClient(ctx, "multi")
	second := s.newClient()
	require.NoError(t, second.Login(ctx, "multi", testPassword))

	require.NoError(t, first.Logout(ctx))

	_, err := second.Me(ctx)
	assert.NoError(t, err)

	// logging out twice is not an error for the client
	stale := s.newClient(gymclient.WithToken(first.Token()))
	assert.NoError(t, stale.Logout(ctx))
}
