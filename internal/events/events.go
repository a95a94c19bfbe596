// Package events defines the processing events the engine can emit for
// external observers. Event emission is pure observability and never feeds
// back into account state.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/paystream/txengine/internal/hub"
	"github.com/paystream/txengine/internal/interfaces"
	"github.com/paystream/txengine/internal/models"
)

// ActionSettled reports the final outcome of one executed action, accepted
// or rejected.
type ActionSettled struct {
	EventID    string    `json:"event_id"`
	Client     uint16    `json:"client"`
	Type       string    `json:"type"`
	Tx         uint32    `json:"tx"`
	Amount     string    `json:"amount,omitempty"`
	Accepted   bool      `json:"accepted"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FromResult builds the settlement event for one hub result.
func FromResult(r hub.Result) ActionSettled {
	ev := ActionSettled{
		EventID:    uuid.New().String(),
		Client:     uint16(r.Client),
		Type:       r.Action.Type.String(),
		Tx:         uint32(r.Action.Tx),
		Accepted:   r.Err == nil,
		OccurredAt: time.Now().UTC(),
	}
	if r.Action.Type == models.Deposit || r.Action.Type == models.Withdrawal {
		ev.Amount = r.Action.Amount.String()
	}
	if r.Err != nil {
		ev.Reason = r.Err.Error()
	}
	return ev
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(topic string, event any) error { return nil }

var _ interfaces.EventPublisher = Nop{}
