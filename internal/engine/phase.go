package engine

// GamePhase represents the current phase of the table's gesture state machine.
type GamePhase int

const (
	PhaseIdle     GamePhase = iota // no drag in progress
	PhaseDragging                  // a card is in flight
	PhaseWon                       // all foundations complete
)

var phaseNames = map[GamePhase]string{
	PhaseIdle:     "Idle",
	PhaseDragging: "Dragging",
	PhaseWon:      "Won",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
