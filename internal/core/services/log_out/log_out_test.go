package logout

import (
	"context"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSessionDeleted(t *testing.T) {
	// Setup ---
	sessions := owner.NewTestSessionRepository()
	err := sessions.Create(
		context.Background(),
		owner.SessionToken("test-token"),
		c.NewEmail("test@test.com"),
		time.Hour,
	)
	require.NoError(t, err)
	service := New(logging.NewFakeLogger(), sessions)

	// Exercise ---
	_, err = service.Run(context.Background(), Input{Token: owner.SessionToken("test-token")})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Len(sessions.Sessions, 0)
}

func TestUnknownTokenIsNoop(t *testing.T) {
	// Setup ---
	sessions := owner.NewTestSessionRepository()
	service := New(logging.NewFakeLogger(), sessions)

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Token: owner.SessionToken("unknown")})

	// Verify ---
	require.Nil(t, err)
}
