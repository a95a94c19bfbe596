// Package hub owns every client account and routes actions to them. Each
// account lives behind exactly one worker goroutine fed by a bounded channel,
// so actions for one client apply strictly in arrival order while different
// clients execute fully in parallel, with no shared account state and no
// locks around balances.
package hub

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/paystream/txengine/internal/account"
	"github.com/paystream/txengine/internal/interfaces"
	"github.com/paystream/txengine/internal/models"
)

// ErrClosed rejects dispatches after Summarize has started draining.
var ErrClosed = errors.New("hub: already summarized")

// DefaultQueueSize bounds each worker's action queue when no explicit size is
// given. A full queue blocks the producer, which is the backpressure.
const DefaultQueueSize = 16

// LedgerFactory connects the ledger backing a new client's account. Swapping
// storage backends is a matter of passing a different factory.
type LedgerFactory func(client models.ClientID) (interfaces.Ledger, error)

// Result is the outcome of one executed action. Err is nil for accepted
// actions and one of the account rejection kinds (or a *account.LedgerFault)
// otherwise.
type Result struct {
	Client models.ClientID
	Action models.Action
	Err    error
}

// ResultFunc observes action outcomes. It is invoked from worker goroutines
// and must be safe for concurrent use. The hub itself decides no policy:
// logging, publishing or retrying is entirely the observer's business.
type ResultFunc func(Result)

// ClientSnapshot pairs a client id with its final balances.
type ClientSnapshot struct {
	Client   models.ClientID
	Snapshot account.Snapshot
}

type worker struct {
	actions chan models.Action
	done    chan account.Snapshot
}

// Hub is the account directory. Workers are created lazily on first sight of
// a ClientID and live until Summarize drains them.
type Hub struct {
	factory   LedgerFactory
	queueSize int
	onResult  ResultFunc

	mu      sync.Mutex
	closed  bool
	workers map[models.ClientID]*worker
}

// New creates a hub. queueSize <= 0 selects DefaultQueueSize; onResult may be
// nil when nobody cares about per-action outcomes.
func New(factory LedgerFactory, queueSize int, onResult ResultFunc) *Hub {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Hub{
		factory:   factory,
		queueSize: queueSize,
		onResult:  onResult,
		workers:   make(map[models.ClientID]*worker),
	}
}

// Dispatch queues one action for its client's worker, creating the worker on
// first sight. Blocks while the worker's queue is full, so a slow account
// throttles its producer instead of buffering without bound. Safe for
// concurrent callers. A ledger connection failure is local to this action;
// the next action for the same client will retry the factory.
func (h *Hub) Dispatch(ctx context.Context, client models.ClientID, action models.Action) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	w, ok := h.workers[client]
	if !ok {
		ledger, err := h.factory(client)
		if err != nil {
			h.mu.Unlock()
			return fmt.Errorf("connect ledger for client %d: %w", client, err)
		}
		w = &worker{
			actions: make(chan models.Action, h.queueSize),
			done:    make(chan account.Snapshot, 1),
		}
		h.workers[client] = w
		go h.run(client, account.New(ledger), w)
	}
	h.mu.Unlock()

	select {
	case w.actions <- action:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run applies the client's actions one by one until the queue is closed,
// then reports the final snapshot. The account is touched by this goroutine
// only.
func (h *Hub) run(client models.ClientID, acc *account.Account, w *worker) {
	for action := range w.actions {
		err := acc.Execute(context.Background(), action)
		if h.onResult != nil {
			h.onResult(Result{Client: client, Action: action, Err: err})
		}
	}
	w.done <- acc.Snapshot()
}

// Summarize closes every worker's queue, waits for each to drain and exit,
// and returns the final snapshots in ascending client order. No action is
// dropped: everything dispatched before Summarize is applied before its
// account is read. The hub accepts no dispatches afterwards.
func (h *Hub) Summarize() []ClientSnapshot {
	h.mu.Lock()
	h.closed = true
	workers := h.workers
	h.workers = nil
	h.mu.Unlock()

	clients := make([]models.ClientID, 0, len(workers))
	for client, w := range workers {
		close(w.actions)
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })

	snapshots := make([]ClientSnapshot, 0, len(clients))
	for _, client := range clients {
		snapshots = append(snapshots, ClientSnapshot{
			Client:   client,
			Snapshot: <-workers[client].done,
		})
	}
	return snapshots
}
