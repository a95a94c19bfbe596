package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystream/txengine/internal/amount"
	"github.com/paystream/txengine/internal/models"
)

func TestUnknownID(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	ok, err := s.Contains(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	state, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestInsertAndEvolve(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	deposit := models.TransactionState{Status: models.StatusDeposit, Amount: amount.One}
	require.NoError(t, s.Insert(ctx, 7, deposit))

	ok, err := s.Contains(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	state, err := s.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, deposit, *state)

	// Insert on the same id carries the lifecycle forward in place.
	disputed := models.TransactionState{Status: models.StatusDepositInDispute, Amount: amount.One}
	require.NoError(t, s.Insert(ctx, 7, disputed))

	state, err = s.Get(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, disputed, *state)
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, 1, models.TransactionState{Status: models.StatusDeposit, Amount: amount.One}))

	state, err := s.Get(ctx, 1)
	require.NoError(t, err)
	state.Status = models.StatusChargedBack

	fresh, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeposit, fresh.Status)
}
