package survey

// Phase is the controller's exclusive activity state.
type Phase int

const (
	PhaseAnswering     Phase = iota // Accepting input
	PhaseTransitioning              // Waiting out the pacing delay before auto-advance
	PhaseSubmitting                 // Submission request outstanding
	PhaseDone                       // Submitted and navigated to the result
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseSubmitting:
		return "submitting"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// State is the survey's position in its lifecycle:
//
//	Answering -> ReadyToSubmit -> Submitting -> Done
//	                   ^               |
//	                   +--- failure ---+
type State int

const (
	StateAnswering State = iota
	StateReadyToSubmit
	StateSubmitting
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAnswering:
		return "answering"
	case StateReadyToSubmit:
		return "ready"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	}
	return "unknown"
}
