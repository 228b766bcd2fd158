package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	require.Equal(t, OutcomeSuccess, Outcome(nil))
	require.Equal(t, OutcomeError, Outcome(errors.New("boom")))
}
