// Package ingest is the external-parser boundary of spec.md §6: it is
// explicitly out of the engine's core scope (a "thin shim"), but this is a
// complete repo, so it is implemented here rather than left as a stub.
//
// Grounded on original_source/src/csv.rs (InputRecord, the amount-presence
// validation rules) and main.rs's csv_async reader configuration
// (headers present, fields trimmed), translated from csv_async/serde to
// stdlib encoding/csv.
package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"txnengine/internal/engineerr"
	"txnengine/internal/event"
	"txnengine/internal/money"
	"txnengine/internal/pkg/logging"
)

var errEmptyAmount = errors.New("amount field is empty")

// Stream decodes r as a header-having CSV (type,client,tx,amount) and
// returns a channel of successfully-validated events. Malformed or
// semantically invalid rows are logged and skipped — the stream never
// stops because of one bad row (spec.md §6/§7). The channel is closed
// once r is exhausted.
func Stream(r io.Reader) <-chan event.Event {
	out := make(chan event.Event)

	go func() {
		defer close(out)

		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		header, err := reader.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			logging.Warn("failed to read header row", map[string]interface{}{"error": err.Error()})
			return
		}
		_ = header // header names aren't validated; position is what matters

		for {
			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				logging.Warn("dropping malformed row", map[string]interface{}{"error": engineerr.NewParseError(err.Error()).Error()})
				continue
			}

			ev, err := decodeRecord(record)
			if err != nil {
				logging.Warn("dropping invalid record", map[string]interface{}{"error": err.Error()})
				continue
			}
			out <- ev
		}
	}()

	return out
}

func decodeRecord(record []string) (event.Event, error) {
	if len(record) < 3 {
		return event.Event{}, engineerr.NewParseError("expected at least 3 fields (type, client, tx)")
	}

	kind := strings.ToLower(strings.TrimSpace(record[0]))
	client, err := parseUint16(record[1])
	if err != nil {
		return event.Event{}, engineerr.NewParseError("bad client id: " + err.Error())
	}
	id, err := parseUint32(record[2])
	if err != nil {
		return event.Event{}, engineerr.NewParseError("bad event id: " + err.Error())
	}

	var rawAmount string
	if len(record) > 3 {
		rawAmount = strings.TrimSpace(record[3])
	}

	switch kind {
	case "deposit":
		amount, err := parseAmount(rawAmount)
		if err != nil {
			return event.Event{}, engineerr.NewInvalidRecord("deposit must have a positive amount: " + err.Error())
		}
		return event.NewDeposit(client, id, amount), nil
	case "withdrawal":
		amount, err := parseAmount(rawAmount)
		if err != nil {
			return event.Event{}, engineerr.NewInvalidRecord("withdrawal must have a positive amount: " + err.Error())
		}
		return event.NewWithdrawal(client, id, amount), nil
	case "dispute":
		return event.NewDispute(client, id), nil
	case "resolve":
		return event.NewResolve(client, id), nil
	case "chargeback":
		return event.NewChargeback(client, id), nil
	default:
		return event.Event{}, engineerr.NewParseError("unknown event type: " + kind)
	}
}

func parseAmount(raw string) (money.Amount, error) {
	if raw == "" {
		return money.Amount{}, errEmptyAmount
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return money.Amount{}, err
	}
	return money.NewAmount(d)
}

func parseUint16(raw string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func parseUint32(raw string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
