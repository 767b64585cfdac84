package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadStatus_IsTerminal(t *testing.T) {
	terminal := map[LeadStatus]bool{
		LeadStatusPending:           false,
		LeadStatusWaiting:           false,
		LeadStatusCallbackScheduled: false,
		LeadStatusInterested:        true,
		LeadStatusNotInterested:     true,
		LeadStatusCancelled:         true,
	}

	for status, want := range terminal {
		assert.Equal(t, want, status.IsTerminal(), "status %s", status)
	}

	assert.False(t, LeadStatus("bogus").IsTerminal(), "invalid status is not terminal")
}

func TestLeadStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from    LeadStatus
		allowed []LeadStatus
	}{
		{
			from: LeadStatusPending,
			allowed: []LeadStatus{
				LeadStatusWaiting, LeadStatusInterested, LeadStatusNotInterested,
				LeadStatusCallbackScheduled, LeadStatusCancelled,
			},
		},
		{
			from: LeadStatusWaiting,
			allowed: []LeadStatus{
				LeadStatusInterested, LeadStatusNotInterested,
				LeadStatusCallbackScheduled, LeadStatusCancelled,
			},
		},
		{
			from: LeadStatusCallbackScheduled,
			allowed: []LeadStatus{
				LeadStatusInterested, LeadStatusNotInterested, LeadStatusCancelled,
			},
		},
		{from: LeadStatusInterested, allowed: []LeadStatus{}},
		{from: LeadStatusNotInterested, allowed: []LeadStatus{}},
		{from: LeadStatusCancelled, allowed: []LeadStatus{}},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.ElementsMatch(t, tt.allowed, tt.from.AllowedTransitions())
		})
	}
}

// CanTransitionTo must agree with AllowedTransitions for every pair of
// statuses, including pairs absent from the table.
func TestLeadStatus_CanTransitionTo_MatchesAllowedSet(t *testing.T) {
	for _, from := range AllLeadStatuses() {
		allowed := make(map[LeadStatus]bool)
		for _, to := range from.AllowedTransitions() {
			allowed[to] = true
		}
		for _, to := range AllLeadStatuses() {
			assert.Equal(t, allowed[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

// Reverting to pending is never legal from any other status.
func TestLeadStatus_PendingIsForwardOnly(t *testing.T) {
	for _, from := range AllLeadStatuses() {
		assert.False(t, from.CanTransitionTo(LeadStatusPending), "from %s", from)
	}
}

func TestLeadStatus_AllowedTransitionsReturnsCopy(t *testing.T) {
	first := LeadStatusWaiting.AllowedTransitions()
	require.NotEmpty(t, first)
	first[0] = LeadStatusPending

	second := LeadStatusWaiting.AllowedTransitions()
	assert.NotContains(t, second, LeadStatusPending)
}
