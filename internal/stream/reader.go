// Package stream bridges the engine's text interfaces: it parses the
// line-oriented action format into typed actions and renders the final
// summary table. The core never sees raw text or malformed input.
package stream

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/paystream/txengine/internal/amount"
	"github.com/paystream/txengine/internal/hub"
	"github.com/paystream/txengine/internal/models"
)

// ErrMalformed marks a record that does not parse. Such records are skipped,
// never forwarded.
var ErrMalformed = errors.New("malformed record")

// ParseLine converts one record of the "type, client, tx, amount" format
// into a routed action. Whitespace around fields and trailing commas are
// tolerated; the amount column must be present for deposit/withdrawal and
// absent for the dispute-lifecycle types. Client and transaction ids must
// fit uint16 and uint32 respectively.
func ParseLine(line string) (models.ClientID, models.Action, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) < 3 {
		return 0, models.Action{}, ErrMalformed
	}

	client64, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return 0, models.Action{}, ErrMalformed
	}
	tx64, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return 0, models.Action{}, ErrMalformed
	}
	client := models.ClientID(client64)
	action := models.Action{Tx: models.TransactionID(tx64)}

	switch fields[0] {
	case "deposit", "withdrawal":
		if len(fields) != 4 {
			return 0, models.Action{}, ErrMalformed
		}
		value, err := amount.Parse(fields[3])
		if err != nil {
			return 0, models.Action{}, ErrMalformed
		}
		action.Amount = value
		if fields[0] == "deposit" {
			action.Type = models.Deposit
		} else {
			action.Type = models.Withdrawal
		}
	case "dispute", "resolve", "chargeback":
		if len(fields) != 3 {
			return 0, models.Action{}, ErrMalformed
		}
		switch fields[0] {
		case "dispute":
			action.Type = models.Dispute
		case "resolve":
			action.Type = models.Resolve
		default:
			action.Type = models.Chargeback
		}
	default:
		return 0, models.Action{}, ErrMalformed
	}
	return client, action, nil
}

// Process reads records line by line and dispatches every well-formed
// action. The header line, blank lines and malformed records are skipped
// silently (logged at debug level). A refused dispatch, such as a ledger
// connection failure for one client, is logged and does not stop the run.
func Process(ctx context.Context, r io.Reader, h *hub.Hub, log *logrus.Logger) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		client, action, err := ParseLine(text)
		if err != nil {
			log.WithField("line", line).Debug("record skipped")
			continue
		}
		if err := h.Dispatch(ctx, client, action); err != nil {
			if ctx.Err() != nil {
				return err
			}
			log.WithError(err).WithFields(logrus.Fields{
				"line":   line,
				"client": client,
			}).Warn("action refused")
		}
	}
	return scanner.Err()
}
