package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystream/txengine/internal/account"
	"github.com/paystream/txengine/internal/amount"
	"github.com/paystream/txengine/internal/hub"
	"github.com/paystream/txengine/internal/models"
)

func TestFromResultAccepted(t *testing.T) {
	value, err := amount.Parse("12.5")
	require.NoError(t, err)

	ev := FromResult(hub.Result{
		Client: 3,
		Action: models.Action{Type: models.Deposit, Tx: 9, Amount: value},
	})

	assert.NotEmpty(t, ev.EventID)
	assert.EqualValues(t, 3, ev.Client)
	assert.Equal(t, "deposit", ev.Type)
	assert.EqualValues(t, 9, ev.Tx)
	assert.Equal(t, "12.5", ev.Amount)
	assert.True(t, ev.Accepted)
	assert.Empty(t, ev.Reason)
	assert.False(t, ev.OccurredAt.IsZero())
}

func TestFromResultRejected(t *testing.T) {
	ev := FromResult(hub.Result{
		Client: 1,
		Action: models.Action{Type: models.Dispute, Tx: 4},
		Err:    account.ErrInvalidTransactionID,
	})

	assert.Equal(t, "dispute", ev.Type)
	assert.Empty(t, ev.Amount, "lifecycle actions carry no amount")
	assert.False(t, ev.Accepted)
	assert.Equal(t, "invalid transaction id", ev.Reason)
}

func TestEventIDsAreUnique(t *testing.T) {
	r := hub.Result{Action: models.Action{Type: models.Resolve, Tx: 1}}
	assert.NotEqual(t, FromResult(r).EventID, FromResult(r).EventID)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, Nop{}.Publish("any", struct{}{}))
}
