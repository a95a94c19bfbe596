package stream

import (
	"fmt"
	"io"

	"github.com/paystream/txengine/internal/hub"
)

// WriteSummary renders the final account table, one row per client in the
// order the snapshots were collected (ascending client id), with amounts in
// canonical decimal form.
func WriteSummary(w io.Writer, snapshots []hub.ClientSnapshot) error {
	if _, err := io.WriteString(w, "client,available,held,total,locked\n"); err != nil {
		return err
	}
	for _, s := range snapshots {
		_, err := fmt.Fprintf(w, "%d,%s,%s,%s,%t\n",
			s.Client, s.Snapshot.Available, s.Snapshot.Held, s.Snapshot.Total, s.Snapshot.Locked)
		if err != nil {
			return err
		}
	}
	return nil
}
