// Package config holds the simulation's closed enumerations and the tuning
// values read by the state machine hooks and physics systems. Values are
// package-level so hooks can read them without threading a context through
// every call; they may only be replaced between ticks.
package config

// PhysicsConfig contains the global physics constants shared by every fighter.
type PhysicsConfig struct {
	// Multiplier on a fighter's gravity while fast-falling
	FastFallMultiplier float64 `yaml:"fast_fall_multiplier"`

	// Fraction of horizontal speed removed per tick
	GroundDecay float64 `yaml:"ground_decay"`
	AirDecay    float64 `yaml:"air_decay"`

	// Speeds below this magnitude snap to zero
	SnapThreshold float64 `yaml:"snap_threshold"`

	// Collision
	CollisionEpsilon   float64 `yaml:"collision_epsilon"`    // Extra push out of a surface after correction
	GroundSensorLength float64 `yaml:"ground_sensor_length"` // Length of the downward grounded probe
	LedgeGrabRadius    float64 `yaml:"ledge_grab_radius"`    // Max distance from a ledge point to grab it
	LedgeRegrabTicks   int     `yaml:"ledge_regrab_ticks"`   // Ticks after letting go before the next grab
}

// SpeedProfile contains the per-character movement constants.
type SpeedProfile struct {
	// Grounded
	WalkAccel float64 `yaml:"walk_accel"`
	WalkMax   float64 `yaml:"walk_max"`
	DashSpeed float64 `yaml:"dash_speed"` // Impulse applied on dash entry
	DashMax   float64 `yaml:"dash_max"`
	RunAccel  float64 `yaml:"run_accel"`
	RunMax    float64 `yaml:"run_max"`

	// Aerial
	AirAccel           float64 `yaml:"air_accel"`
	AirMax             float64 `yaml:"air_max"`
	JumpVelocity       float64 `yaml:"jump_velocity"`
	ShortHopVelocity   float64 `yaml:"short_hop_velocity"`
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"`
	MaxJumps           int     `yaml:"max_jumps"`
	AirDodgeSpeed      float64 `yaml:"air_dodge_speed"`

	// Fall
	Gravity          float64 `yaml:"gravity"`
	TerminalFall     float64 `yaml:"terminal_fall"`
	FastFallTerminal float64 `yaml:"fast_fall_terminal"`

	// Environment collision box dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FrameData contains state durations in ticks. A zero value leaves the state
// without a frame length.
type FrameData struct {
	StartWalk int `yaml:"start_walk"`
	Turn      int `yaml:"turn"`
	Dash      int `yaml:"dash"`
	DashTurn  int `yaml:"dash_turn"`
	RunTurn   int `yaml:"run_turn"`
	StopRun   int `yaml:"stop_run"`
	JumpSquat int `yaml:"jump_squat"`
	Land      int `yaml:"land"`
	SoftLand  int `yaml:"soft_land"`
	AirDodge  int `yaml:"air_dodge"`
	Launch    int `yaml:"launch"`

	Jab         int `yaml:"jab"`
	ForwardTilt int `yaml:"forward_tilt"`
	UpTilt      int `yaml:"up_tilt"`
	DownTilt    int `yaml:"down_tilt"`
	NeutralAir  int `yaml:"neutral_air"`
	ForwardAir  int `yaml:"forward_air"`
	BackAir     int `yaml:"back_air"`
	UpAir       int `yaml:"up_air"`
	DownAir     int `yaml:"down_air"`
}

// CombatConfig contains hit reaction constants.
type CombatConfig struct {
	HitStopPerDamage float64 `yaml:"hit_stop_per_damage"` // Hitstop ticks per point of damage
	MinHitStop       int     `yaml:"min_hit_stop"`
	MaxHitStop       int     `yaml:"max_hit_stop"`
	HitStunPerSpeed  float64 `yaml:"hit_stun_per_speed"` // Hitstun ticks per unit of launch speed
	TumbleSpeed      float64 `yaml:"tumble_speed"`       // Launch speed at which a hit tumbles
	LaunchDecay      float64 `yaml:"launch_decay"`       // Launch speed removed per tick
}

// SimConfig contains simulation loop settings.
type SimConfig struct {
	TickRate         int  `yaml:"tick_rate"`          // Ticks per second
	PoolCapacity     int  `yaml:"pool_capacity"`      // Slots per per-tick pool
	MaxPlayers       int  `yaml:"max_players"`        // Players per match
	InputHistorySize int  `yaml:"input_history_size"` // Initial input history capacity per player
	FrameLogEnabled  bool `yaml:"frame_log_enabled"`
}

// InputConfig contains the thresholds used to turn analog axes into events.
type InputConfig struct {
	AxisDeadzone      float64 `yaml:"axis_deadzone"`       // Axes inside this magnitude read as zero
	TurnThreshold     float64 `yaml:"turn_threshold"`      // Reverse deflection that triggers a turn
	DashThreshold     float64 `yaml:"dash_threshold"`      // Deflection reached in one tick that dashes
	CrouchThreshold   float64 `yaml:"crouch_threshold"`    // Downward deflection that crouches
	FastFallThreshold float64 `yaml:"fast_fall_threshold"` // Downward deflection that fast-falls
}

// Global configuration instances
var Physics PhysicsConfig
var Player SpeedProfile
var Frames FrameData
var Combat CombatConfig
var Sim SimConfig
var Input InputConfig

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Physics = PhysicsConfig{
		FastFallMultiplier: 1.6,

		GroundDecay:   0.12,
		AirDecay:      0.02,
		SnapThreshold: 0.05,

		CollisionEpsilon:   0.1,
		GroundSensorLength: 2.0,
		LedgeGrabRadius:    14.0,
		LedgeRegrabTicks:   30,
	}

	Player = SpeedProfile{
		WalkAccel: 0.35,
		WalkMax:   3.0,
		DashSpeed: 5.0,
		DashMax:   5.5,
		RunAccel:  0.4,
		RunMax:    5.5,

		AirAccel:           0.25,
		AirMax:             3.5,
		JumpVelocity:       11.5,
		ShortHopVelocity:   7.5,
		DoubleJumpVelocity: 10.5,
		MaxJumps:           2,
		AirDodgeSpeed:      8.0,

		Gravity:          0.55,
		TerminalFall:     9.0,
		FastFallTerminal: 14.0,

		Width:  30,
		Height: 60,
	}

	Frames = FrameData{
		StartWalk: 5,
		Turn:      6,
		Dash:      12,
		DashTurn:  4,
		RunTurn:   10,
		StopRun:   8,
		JumpSquat: 4,
		Land:      4,
		SoftLand:  2,
		AirDodge:  24,
		Launch:    12,

		Jab:         12,
		ForwardTilt: 22,
		UpTilt:      20,
		DownTilt:    16,
		NeutralAir:  24,
		ForwardAir:  30,
		BackAir:     26,
		UpAir:       24,
		DownAir:     32,
	}

	Combat = CombatConfig{
		HitStopPerDamage: 0.4,
		MinHitStop:       3,
		MaxHitStop:       20,
		HitStunPerSpeed:  2.5,
		TumbleSpeed:      9.0,
		LaunchDecay:      0.5,
	}

	Sim = SimConfig{
		TickRate:         60,
		PoolCapacity:     64,
		MaxPlayers:       4,
		InputHistorySize: 3600, // one minute at 60 Hz
		FrameLogEnabled:  false,
	}

	Input = InputConfig{
		AxisDeadzone:      0.25,
		TurnThreshold:     0.5,
		DashThreshold:     0.8,
		CrouchThreshold:   0.6,
		FastFallThreshold: 0.7,
	}
}
