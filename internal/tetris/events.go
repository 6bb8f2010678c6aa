package tetris

// Phase is the session state machine position.
type Phase int

const (
	// PhaseSpawned: a fresh piece was just created. Behaves like falling.
	PhaseSpawned Phase = iota
	// PhaseFalling: the active piece has moved at least once since spawning.
	PhaseFalling
	// PhaseLocked: lock processing is under way (transient).
	PhaseLocked
	// PhaseGameOver: a piece locked above the top edge (transient).
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "spawned"
	case PhaseFalling:
		return "falling"
	case PhaseLocked:
		return "locked"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind identifies what happened during an operation.
type EventKind int

const (
	EventSpawned EventKind = iota
	EventLocked
	EventLinesCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event describes one state transition. Fields not relevant to Kind are zero.
type Event struct {
	Kind   EventKind
	Shape  string // spawned or locked piece
	Lines  int    // rows removed (EventLinesCleared) or total lines (EventGameOver)
	Pieces int    // pieces locked so far (EventGameOver)
	Score  int    // score after the event
	Game   int    // 1-based game number within the session
}

// Result reports the outcome of one Session operation.
type Result struct {
	Moved    bool // the active piece changed position or orientation
	Locked   bool // the piece settled into the board
	Cleared  int  // rows removed by this operation
	GameOver bool // the lock ended the game and the board was reset
	Events   []Event
}

// Stats are the running counters of the current game.
type Stats struct {
	Score  int
	Lines  int
	Pieces int
	Game   int
}
