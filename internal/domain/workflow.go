package domain

// leadTransitions is the single source of truth for the lead workflow.
// Both AllowedTransitions and CanTransitionTo read from it, so the set of
// states offered to callers can never drift from the set of states the
// apply path accepts. A status with no entry is terminal. Reverting to
// pending is forward-only by construction: pending appears in no allowed
// set.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusPending: {
		LeadStatusWaiting,
		LeadStatusInterested,
		LeadStatusNotInterested,
		LeadStatusCallbackScheduled,
		LeadStatusCancelled,
	},
	LeadStatusWaiting: {
		LeadStatusInterested,
		LeadStatusNotInterested,
		LeadStatusCallbackScheduled,
		LeadStatusCancelled,
	},
	LeadStatusCallbackScheduled: {
		LeadStatusInterested,
		LeadStatusNotInterested,
		LeadStatusCancelled,
	},
}

// IsTerminal reports whether no transition originates from s.
func (s LeadStatus) IsTerminal() bool {
	return s.IsValid() && len(leadTransitions[s]) == 0
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The result is a copy; mutating it does not affect the workflow table.
// Terminal and invalid statuses yield an empty set.
func (s LeadStatus) AllowedTransitions() []LeadStatus {
	allowed := leadTransitions[s]
	out := make([]LeadStatus, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransitionTo reports whether the transition s -> target is legal.
func (s LeadStatus) CanTransitionTo(target LeadStatus) bool {
	for _, t := range leadTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}
