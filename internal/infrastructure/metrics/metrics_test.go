package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorsRegistered(t *testing.T) {
	SuggestionOutcomes.WithLabelValues("accepted").Inc()
	ScheduleAssignments.WithLabelValues("conflict").Inc()
	RoutingRequests.WithLabelValues("fallback").Inc()

	assert.GreaterOrEqual(t, testutil.ToFloat64(SuggestionOutcomes.WithLabelValues("accepted")), 1.0)

	families, err := Registry.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["dispatch_suggestion_outcomes_total"])
	assert.True(t, names["schedule_assignments_total"])
	assert.True(t, names["routing_requests_total"])
}
