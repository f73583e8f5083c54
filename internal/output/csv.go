// Package output is the external-serializer boundary of spec.md §6: it
// renders the engine's per-client snapshots to the external tabular
// format. Like internal/ingest, it is a thin shim the spec keeps out of
// the core, implemented here for completeness.
//
// Grounded on original_source/src/csv.rs's OutputCsvTransaction
// (field order: client,available,held,total,locked) and its
// TryFrom<ClientState> overflow handling (a snapshot whose total
// overflows is dropped, not written; here that drop happens in
// internal/actor, so this package writes every snapshot it is given).
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"txnengine/internal/actor"
	"txnengine/internal/pkg/logging"
)

var header = []string{"client", "available", "held", "total", "locked"}

// WriteSnapshots renders snapshots to w as CSV with a header row, amounts
// at four fractional digits. Snapshot order is unspecified by the spec
// and preserved as given.
func WriteSnapshots(w io.Writer, snapshots []actor.Snapshot) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, snap := range snapshots {
		row := []string{
			strconv.Itoa(int(snap.Client)),
			snap.Available.String(),
			snap.Held.String(),
			snap.Total.String(),
			boolString(snap.Locked),
		}
		if err := writer.Write(row); err != nil {
			logging.Error("failed to write snapshot row", err, map[string]interface{}{"client": snap.Client})
			return err
		}
	}

	return writer.Error()
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
