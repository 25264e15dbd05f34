package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	rec.DispatchOutcome(OutcomeAssigned)
	rec.DispatchOutcome(OutcomeAssigned)
	rec.DispatchOutcome(OutcomeUnassigned)
	rec.AcceptResult(AcceptConflict, "manual")
	rec.Transition("complete")
	rec.ClassifierFallback("timeout")
	rec.CandidateSkipped("missing_location")

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.dispatches.WithLabelValues(OutcomeAssigned)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.dispatches.WithLabelValues(OutcomeUnassigned)))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.accepts.WithLabelValues(AcceptConflict, "manual")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.transitions.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.classifierFallbacks.WithLabelValues("timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.skippedCandidates.WithLabelValues("missing_location")))
}

func TestNewPromRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	require.NoError(t, err)
	second, err := NewPromRecorder(reg)
	require.NoError(t, err)

	first.DispatchOutcome(OutcomeAssignedFallback)
	second.DispatchOutcome(OutcomeAssignedFallback)

	assert.Equal(t, 2.0, testutil.ToFloat64(first.dispatches.WithLabelValues(OutcomeAssignedFallback)))
}
