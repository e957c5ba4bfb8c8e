package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	// ActionPress is held while the pointer, a touch or a jump key is down
	ActionPress
	ActionConfirm // Keyboard stand-in for tapping the play again prompt
	ActionMute
	ActionDebug
	ActionCount // Must be last - used for array sizing
)
