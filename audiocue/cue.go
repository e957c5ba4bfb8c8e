package audiocue

// CueID names a foreground sound cue that ducks the background loop
type CueID int

const (
	CueNone CueID = iota
	CueLoss
	CueScoreBump
)

func (c CueID) String() string {
	switch c {
	case CueLoss:
		return "loss"
	case CueScoreBump:
		return "score_bump"
	default:
		return "none"
	}
}
