package traffic

// Stage is the combined state of both signal heads. Only one axis is ever
// mid-cycle, so a single stage replaces a pair of per-axis phases and rules
// out combinations such as both axes green.
type Stage uint8

const (
	StageXGreen  Stage = iota // X green, Z red
	StageXYellow              // X yellow, Z red
	StageZGreen               // Z green, X red
	StageZYellow              // Z yellow, X red
)

// String returns a short stage name.
func (s Stage) String() string {
	switch s {
	case StageXGreen:
		return "X-green"
	case StageXYellow:
		return "X-yellow"
	case StageZGreen:
		return "Z-green"
	case StageZYellow:
		return "Z-yellow"
	default:
		return "unknown"
	}
}

// TrafficLight is the two-phase signal controller of the intersection.
// It advances only through Update, once per tick.
type TrafficLight struct {
	timer          int
	switchInterval int
	yellowDuration int
	stage          Stage
}

// NewTrafficLight creates a light with X green and Z red.
// switchInterval is how many ticks a green holds, yellowDuration how many a yellow holds.
func NewTrafficLight(switchInterval, yellowDuration int) *TrafficLight {
	return &TrafficLight{
		switchInterval: switchInterval,
		yellowDuration: yellowDuration,
		stage:          StageXGreen,
	}
}

// Update advances the light by one tick.
//
// While green, the timer counts to switchInterval and the green axis turns
// yellow. While yellow, it counts to yellowDuration and the handoff completes:
// the yellow axis turns red and the other axis turns green. The timer resets
// on every stage change.
func (l *TrafficLight) Update() {
	l.timer++

	if l.Transitioning() {
		if l.timer >= l.yellowDuration {
			l.timer = 0
			if l.stage == StageXYellow {
				l.stage = StageZGreen
			} else {
				l.stage = StageXGreen
			}
		}
		return
	}

	if l.timer >= l.switchInterval {
		l.timer = 0
		if l.stage == StageXGreen {
			l.stage = StageXYellow
		} else {
			l.stage = StageZYellow
		}
	}
}

// Stage returns the combined signal stage.
func (l *TrafficLight) Stage() Stage {
	return l.stage
}

// Phase returns the signal shown to the given axis.
func (l *TrafficLight) Phase(a Axis) Phase {
	if a == AxisX {
		return l.XPhase()
	}
	return l.ZPhase()
}

// XPhase returns the X-axis signal.
func (l *TrafficLight) XPhase() Phase {
	switch l.stage {
	case StageXGreen:
		return PhaseGreen
	case StageXYellow:
		return PhaseYellow
	default:
		return PhaseRed
	}
}

// ZPhase returns the Z-axis signal.
func (l *TrafficLight) ZPhase() Phase {
	switch l.stage {
	case StageZGreen:
		return PhaseGreen
	case StageZYellow:
		return PhaseYellow
	default:
		return PhaseRed
	}
}

// Timer returns the ticks elapsed since the last stage change.
func (l *TrafficLight) Timer() int {
	return l.timer
}

// Transitioning reports whether a yellow-to-red handoff is counting down.
func (l *TrafficLight) Transitioning() bool {
	return l.stage == StageXYellow || l.stage == StageZYellow
}

// SwitchInterval returns the ticks a green phase holds.
func (l *TrafficLight) SwitchInterval() int {
	return l.switchInterval
}

// YellowDuration returns the ticks a yellow phase holds.
func (l *TrafficLight) YellowDuration() int {
	return l.yellowDuration
}

// CycleLength returns the ticks needed to return to the initial stage.
func (l *TrafficLight) CycleLength() int {
	return 2*l.switchInterval + 2*l.yellowDuration
}

// Valid reports whether the per-axis phases are a legal combination:
// at most one axis is non-red, and a yellow axis always faces a red one.
// A false result means a logic defect, never bad input.
func (l *TrafficLight) Valid() bool {
	x, z := l.XPhase(), l.ZPhase()
	if x != PhaseRed && z != PhaseRed {
		return false
	}
	if x == PhaseRed && z == PhaseRed {
		return false
	}
	return l.Transitioning() == (x == PhaseYellow || z == PhaseYellow)
}
