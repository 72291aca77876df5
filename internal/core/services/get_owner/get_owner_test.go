package getowner

import (
	"context"
	c "reemind/internal/core/domain/common"
	"reemind/internal/core/domain/logging"
	"reemind/internal/core/domain/owner"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOwnerReturned(t *testing.T) {
	// Setup ---
	owners := owner.NewTestRepository()
	created, err := owners.Upsert(context.Background(), owner.UpsertInput{
		Email: c.NewEmail("test@test.com"),
		Now:   time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	service := New(logging.NewFakeLogger(), owners)

	// Exercise ---
	result, err := service.Run(context.Background(), Input{Email: c.NewEmail("test@test.com")})

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.Equal(created, result.Owner)
}

func TestUnknownOwner(t *testing.T) {
	// Setup ---
	service := New(logging.NewFakeLogger(), owner.NewTestRepository())

	// Exercise ---
	_, err := service.Run(context.Background(), Input{Email: c.NewEmail("unknown@test.com")})

	// Verify ---
	require.ErrorIs(t, err, owner.ErrOwnerDoesNotExist)
}
