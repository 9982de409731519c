package config

// StateID identifies a fighter state in the action state machine.
type StateID int

const (
	StateNone StateID = -1

	// Grounded movement
	Idle StateID = iota - 1
	StartWalk
	Turn
	Walk
	Dash
	DashTurn
	Run
	RunTurn
	StopRun
	Crouch
	JumpSquat
	Land
	SoftLand

	// Aerial movement
	Jump
	NeutralFall
	LedgeGrab
	AirDodge
	Helpless

	// Grounded attacks
	Jab
	ForwardTilt
	UpTilt
	DownTilt

	// Aerial attacks
	NeutralAir
	ForwardAir
	BackAir
	UpAir
	DownAir

	// Hit reaction
	HitStop
	Launch
	Tumble

	StateCount // Must be last - used for array sizing
)

var stateNames = [StateCount]string{
	Idle:        "Idle",
	StartWalk:   "StartWalk",
	Turn:        "Turn",
	Walk:        "Walk",
	Dash:        "Dash",
	DashTurn:    "DashTurn",
	Run:         "Run",
	RunTurn:     "RunTurn",
	StopRun:     "StopRun",
	Crouch:      "Crouch",
	JumpSquat:   "JumpSquat",
	Land:        "Land",
	SoftLand:    "SoftLand",
	Jump:        "Jump",
	NeutralFall: "NeutralFall",
	LedgeGrab:   "LedgeGrab",
	AirDodge:    "AirDodge",
	Helpless:    "Helpless",
	Jab:         "Jab",
	ForwardTilt: "ForwardTilt",
	UpTilt:      "UpTilt",
	DownTilt:    "DownTilt",
	NeutralAir:  "NeutralAir",
	ForwardAir:  "ForwardAir",
	BackAir:     "BackAir",
	UpAir:       "UpAir",
	DownAir:     "DownAir",
	HitStop:     "HitStop",
	Launch:      "Launch",
	Tumble:      "Tumble",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "None"
	}
	return stateNames[s]
}

// Valid reports whether s names a real state.
func (s StateID) Valid() bool {
	return s >= 0 && s < StateCount
}

// Aerial reports whether the state is one the fighter only occupies off the
// ground.
func (s StateID) Aerial() bool {
	switch s {
	case Jump, NeutralFall, AirDodge, Helpless,
		NeutralAir, ForwardAir, BackAir, UpAir, DownAir,
		Launch, Tumble:
		return true
	}
	return false
}

// ParseState returns the state with the given name.
func ParseState(name string) (StateID, bool) {
	for i, n := range stateNames {
		if n == name {
			return StateID(i), true
		}
	}
	return StateNone, false
}
