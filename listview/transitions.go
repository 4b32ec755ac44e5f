package listview

// Transition is one allowed status move. RequiresReason forces a non-empty
// operator-supplied reason before the request is issued.
type Transition struct {
	To             string
	RequiresReason bool
}

// TransitionTable maps each status to the moves allowed out of it. Features
// derive their visible actions from the table instead of switching on status
// literals.
type TransitionTable map[string][]Transition

// Allowed returns the transitions available from a status.
func (t TransitionTable) Allowed(from string) []Transition {
	return t[from]
}

// Can reports whether from may move to to.
func (t TransitionTable) Can(from, to string) bool {
	for _, tr := range t[from] {
		if tr.To == to {
			return true
		}
	}
	return false
}

// RequiresReason reports whether any transition into to demands a reason.
// It is keyed on the target because the current status may not be loaded
// (for example a persisted selection from an earlier session).
func (t TransitionTable) RequiresReason(to string) bool {
	for _, trs := range t {
		for _, tr := range trs {
			if tr.To == to && tr.RequiresReason {
				return true
			}
		}
	}
	return false
}
