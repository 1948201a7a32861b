package chess

// Owner is the player a wall, cell or turn belongs to.
// Main and Opponent are signed so that switching sides is a negation.
type Owner int8

const (
	Free     Owner = 0
	Main     Owner = 1
	Opponent Owner = -1
)

func (o Owner) String() string {
	switch o {
	case Main:
		return "Main"
	case Opponent:
		return "Opponent"
	}
	return "Free"
}

func (o Owner) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Other returns the opposite side. Free stays Free.
func (o Owner) Other() Owner { return -o }

// Outcome is the final result of a game.
type Outcome int8

const (
	Undecided Outcome = iota
	MainWin
	OpponentWin
	Draw
)

func (o Outcome) String() string {
	switch o {
	case MainWin:
		return "MainWin"
	case OpponentWin:
		return "OpponentWin"
	case Draw:
		return "Draw"
	}
	return "Undecided"
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

func outcomeOf(mainScore, opponentScore int) Outcome {
	switch {
	case mainScore > opponentScore:
		return MainWin
	case mainScore < opponentScore:
		return OpponentWin
	default:
		return Draw
	}
}
