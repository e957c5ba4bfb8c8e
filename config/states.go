package config

// StateID identifies a player state
type StateID int

const (
	StateNone StateID = iota
	Grounded
	Airborne
	Boosted
	GameOver
)

func (s StateID) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	case Boosted:
		return "Boosted"
	case GameOver:
		return "GameOver"
	default:
		return "None"
	}
}
