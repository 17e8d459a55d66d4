package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightInitialState(t *testing.T) {
	l := NewTrafficLight(180, 60)

	assert.Equal(t, PhaseGreen, l.XPhase())
	assert.Equal(t, PhaseRed, l.ZPhase())
	assert.Equal(t, 0, l.Timer())
	assert.False(t, l.Transitioning())
	assert.True(t, l.Valid())
}

func TestLightStageSequence(t *testing.T) {
	l := NewTrafficLight(180, 60)

	// tick at which each stage change happens, and the phases right after it
	changes := []struct {
		tick int
		x, z Phase
	}{
		{180, PhaseYellow, PhaseRed},
		{240, PhaseRed, PhaseGreen},
		{420, PhaseRed, PhaseYellow},
		{480, PhaseGreen, PhaseRed},
	}

	tick := 0
	for _, c := range changes {
		for tick < c.tick-1 {
			l.Update()
			tick++
		}
		before := l.Stage()
		l.Update()
		tick++

		require.NotEqual(t, before, l.Stage(), "expected a stage change at tick %d", c.tick)
		assert.Equal(t, c.x, l.XPhase(), "x phase at tick %d", c.tick)
		assert.Equal(t, c.z, l.ZPhase(), "z phase at tick %d", c.tick)
		assert.Equal(t, 0, l.Timer(), "timer should reset at tick %d", c.tick)
	}
}

func TestLightFullCycleLength(t *testing.T) {
	tests := []struct {
		name           string
		switchInterval int
		yellowDuration int
	}{
		{"reference", 180, 60},
		{"short", 5, 2},
		{"minimal", 1, 1},
		{"long yellow", 10, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewTrafficLight(tc.switchInterval, tc.yellowDuration)
			cycle := 2*tc.switchInterval + 2*tc.yellowDuration
			require.Equal(t, cycle, l.CycleLength())

			for i := 0; i < cycle; i++ {
				l.Update()
				if i < cycle-1 && l.Stage() == StageXGreen && l.Timer() == 0 {
					t.Fatalf("returned to X-green early at tick %d", i+1)
				}
			}

			assert.Equal(t, StageXGreen, l.Stage())
			assert.Equal(t, 0, l.Timer())
			assert.False(t, l.Transitioning())
		})
	}
}

func TestLightReferenceCycleIs480Ticks(t *testing.T) {
	l := NewTrafficLight(180, 60)
	for i := 0; i < 480; i++ {
		l.Update()
	}
	assert.Equal(t, PhaseGreen, l.XPhase())
	assert.Equal(t, PhaseRed, l.ZPhase())
	assert.Equal(t, 0, l.Timer())
}

func TestLightInvariantOverManyCycles(t *testing.T) {
	l := NewTrafficLight(7, 3)

	for i := 0; i < 10*l.CycleLength(); i++ {
		l.Update()

		x, z := l.XPhase(), l.ZPhase()
		if x == PhaseGreen && z == PhaseGreen {
			t.Fatalf("both axes green at tick %d", i+1)
		}
		if x == PhaseYellow && z == PhaseYellow {
			t.Fatalf("both axes yellow at tick %d", i+1)
		}
		if !l.Valid() {
			t.Fatalf("invalid light state %v at tick %d", l.Stage(), i+1)
		}
		if l.Transitioning() != (x == PhaseYellow || z == PhaseYellow) {
			t.Fatalf("transitioning flag out of sync at tick %d", i+1)
		}
		if l.Timer() < 0 {
			t.Fatalf("negative timer at tick %d", i+1)
		}
	}
}

func TestLightPhaseByAxis(t *testing.T) {
	l := NewTrafficLight(1, 1)
	l.Update() // X yellow

	assert.Equal(t, l.XPhase(), l.Phase(AxisX))
	assert.Equal(t, l.ZPhase(), l.Phase(AxisZ))
	assert.Equal(t, PhaseYellow, l.Phase(AxisX))
	assert.True(t, l.Transitioning())
}
