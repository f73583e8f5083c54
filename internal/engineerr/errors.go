// Package engineerr defines the error taxonomy of the payment engine:
// a fixed set of recoverable error kinds, each carrying a stable code and a
// human-readable message. Modeled on the teacher's APIError (code+message
// constructors per kind), with the HTTP status field dropped since this
// core has no HTTP boundary — callers recover locally and log, they don't
// translate errors into responses.
package engineerr

import "fmt"

// Kind identifies one of the seven error categories from the spec.
type Kind string

const (
	KindParseError        Kind = "PARSE_ERROR"
	KindInvalidRecord     Kind = "INVALID_RECORD"
	KindDuplicateID       Kind = "DUPLICATE_ID"
	KindInsufficientFunds Kind = "INSUFFICIENT_FUNDS"
	KindOverflow          Kind = "OVERFLOW"
	KindSnapshotOverflow  Kind = "SNAPSHOT_OVERFLOW"
	KindInternal          Kind = "INTERNAL"
)

// EngineError is the common shape for every recoverable error the engine
// produces. It satisfies error and is comparable by Kind via errors.Is
// through Is().
type EngineError struct {
	Kind    Kind
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is(err, engineerr.Overflow) match any EngineError of the
// same Kind, regardless of message.
func (e *EngineError) Is(target error) bool {
	other, ok := target.(*EngineError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newErr(kind Kind, format string, args ...interface{}) *EngineError {
	return &EngineError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Sentinel values for errors.Is comparisons that don't need a formatted
// message (see EngineError.Is).
var (
	Overflow          = &EngineError{Kind: KindOverflow, Message: "arithmetic overflow"}
	InsufficientFunds = &EngineError{Kind: KindInsufficientFunds, Message: "insufficient funds"}
	DuplicateID       = &EngineError{Kind: KindDuplicateID, Message: "duplicate id"}
)

// NewParseError reports a malformed input record.
func NewParseError(reason string) *EngineError {
	return newErr(KindParseError, "malformed record: %s", reason)
}

// NewInvalidRecord reports a structurally decodable record that violates
// an event precondition (missing amount, non-positive amount, amount
// present on a control event).
func NewInvalidRecord(reason string) *EngineError {
	return newErr(KindInvalidRecord, "invalid record: %s", reason)
}

// NewDuplicateID reports an event id already present in a deposit index.
func NewDuplicateID(id uint32) *EngineError {
	return newErr(KindDuplicateID, "event id %d already present in deposit index", id)
}

// NewInsufficientFunds reports a withdrawal or dispute that would drive
// available below zero.
func NewInsufficientFunds(id uint32) *EngineError {
	return newErr(KindInsufficientFunds, "insufficient available balance for event %d", id)
}

// NewOverflow reports checked arithmetic that failed.
func NewOverflow(id uint32) *EngineError {
	return newErr(KindOverflow, "checked arithmetic overflow on event %d", id)
}

// NewSnapshotOverflow reports available+held overflowing at snapshot time.
func NewSnapshotOverflow(client uint16) *EngineError {
	return newErr(KindSnapshotOverflow, "total overflow for client %d at snapshot", client)
}

// NewInternal reports a channel-closed or snapshot-receive failure.
func NewInternal(reason string) *EngineError {
	return newErr(KindInternal, "internal error: %s", reason)
}
