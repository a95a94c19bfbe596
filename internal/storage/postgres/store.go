package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver

	"github.com/paystream/txengine/internal/amount"
	"github.com/paystream/txengine/internal/interfaces"
	"github.com/paystream/txengine/internal/models"
)

// Store persists one account's transaction ledger in PostgreSQL. Rows are
// keyed by (client_id, tx_id) so every client can use its own Store against
// the same table. Amounts are stored as the raw scaled integer.
type Store struct {
	db     *sql.DB
	client models.ClientID
}

// Open connects to PostgreSQL and verifies the connection.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the ledger table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const query = `CREATE TABLE IF NOT EXISTS ledger_transactions (
		client_id  INTEGER     NOT NULL,
		tx_id      BIGINT      NOT NULL,
		status     TEXT        NOT NULL,
		amount     BIGINT      NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (client_id, tx_id)
	)`

	_, err := db.ExecContext(ctx, query)
	return err
}

// NewStore returns the ledger view for one client.
func NewStore(db *sql.DB, client models.ClientID) *Store {
	return &Store{
		db:     db,
		client: client,
	}
}

func (s *Store) Contains(ctx context.Context, id models.TransactionID) (bool, error) {
	const query = `SELECT 1 FROM ledger_transactions WHERE client_id = $1 AND tx_id = $2 LIMIT 1`

	var one int
	err := s.db.QueryRowContext(ctx, query, s.client, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Get(ctx context.Context, id models.TransactionID) (*models.TransactionState, error) {
	const query = `SELECT status, amount FROM ledger_transactions WHERE client_id = $1 AND tx_id = $2`

	var (
		status string
		scaled int64
	)
	err := s.db.QueryRowContext(ctx, query, s.client, id).Scan(&status, &scaled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	st, err := statusFromString(status)
	if err != nil {
		return nil, err
	}
	return &models.TransactionState{
		Status: st,
		Amount: amount.Amount(scaled),
	}, nil
}

// Insert writes the state for the given transaction id, replacing any prior
// state. The upsert carries the dispute lifecycle forward in place.
func (s *Store) Insert(ctx context.Context, id models.TransactionID, state models.TransactionState) error {
	const query = `INSERT INTO ledger_transactions (client_id, tx_id, status, amount)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (client_id, tx_id)
	DO UPDATE SET status = EXCLUDED.status, amount = EXCLUDED.amount, updated_at = NOW()`

	_, err := s.db.ExecContext(ctx, query, s.client, id, state.Status.String(), int64(state.Amount))
	return err
}

func statusFromString(s string) (models.TxStatus, error) {
	switch s {
	case "deposit":
		return models.StatusDeposit, nil
	case "withdrawal":
		return models.StatusWithdrawal, nil
	case "deposit_in_dispute":
		return models.StatusDepositInDispute, nil
	case "charged_back":
		return models.StatusChargedBack, nil
	default:
		return 0, fmt.Errorf("unknown transaction status %q", s)
	}
}

// Compile-time check: ensure Store implements the Ledger interface
var _ interfaces.Ledger = (*Store)(nil)
