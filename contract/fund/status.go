package fund

// transitions is the only place that knows which status moves are legal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusFinalized},
	StatusApproved:  {StatusClaimed},
	StatusFinalized: {StatusClaimed},
}

// CanTransition reports whether a proposal may move from s to next.
// Example payload: fund.StatusPending.CanTransition(fund.StatusApproved)
func (s Status) CanTransition(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	for _, to := range transitions[s] {
		if to == next {
			return true
		}
	}
	return false
}
