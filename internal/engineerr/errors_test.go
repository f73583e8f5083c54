package engineerr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"txnengine/internal/engineerr"
)

func TestIsMatchesByKindNotMessage(t *testing.T) {
	err := engineerr.NewOverflow(42)
	assert.True(t, errors.Is(err, engineerr.Overflow))
	assert.False(t, errors.Is(err, engineerr.InsufficientFunds))
}

func TestIsMatchesDuplicateID(t *testing.T) {
	err := engineerr.NewDuplicateID(7)
	assert.True(t, errors.Is(err, engineerr.DuplicateID))
}

func TestErrorMessageIncludesKind(t *testing.T) {
	err := engineerr.NewInsufficientFunds(3)
	assert.Contains(t, err.Error(), "INSUFFICIENT_FUNDS")
}
