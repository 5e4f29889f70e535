package components

import "github.com/yohamta/donburi"

// Phase is the capture state of the current round.
type Phase int

const (
	PhaseRoaming    Phase = iota // a rat is on the field
	PhaseCaptured                // the rat was just caught
	PhaseRespawning              // waiting for the next rat
)

func (p Phase) String() string {
	switch p {
	case PhaseRoaming:
		return "roaming"
	case PhaseCaptured:
		return "captured"
	case PhaseRespawning:
		return "respawning"
	}
	return "unknown"
}

// GameStateData is the score and level progression singleton.
type GameStateData struct {
	Level        int
	Score        int
	HighScore    int
	RatSpeed     float64
	RatsPerLevel int
	Phase        Phase
}

var GameState = donburi.NewComponentType[GameStateData]()
