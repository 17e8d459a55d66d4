package headless

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/traffic"
)

func TestRunDefaultConfigIsClean(t *testing.T) {
	r := NewRunner(config.DefaultTrafficConfig(), nil)
	report := r.Run(7, Options{Ticks: 4800})

	assert.Empty(t, report.Violations)
	assert.Equal(t, int64(7), report.Seed)
	assert.Equal(t, 40, report.PhaseChanges, "4 stage changes per 480-tick cycle")
	assert.Positive(t, report.Spawned)
	assert.Equal(t, report.Spawned-report.Removed, report.FinalActive)
	assert.LessOrEqual(t, report.PeakActive, 12)
	assert.Len(t, report.ID, 36)
}

func TestRunRushStaysClean(t *testing.T) {
	cfg := config.DefaultTrafficConfig()
	config.ApplyPreset(&cfg, config.PresetRush)

	for seed := int64(1); seed <= 3; seed++ {
		report := NewRunner(cfg, nil).Run(seed, Options{Ticks: 6000})
		assert.Empty(t, report.Violations, "seed %d", seed)
		assert.LessOrEqual(t, report.PeakActive, 24)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	r := NewRunner(config.DefaultTrafficConfig(), nil)
	a := r.Run(99, Options{Ticks: 3000})
	b := r.Run(99, Options{Ticks: 3000})

	assert.NotEqual(t, a.ID, b.ID, "every run gets its own id")
	a.ID, b.ID = "", ""
	assert.Equal(t, a, b)
}

func TestRunFixedPresetSpawnsNothing(t *testing.T) {
	cfg := config.DefaultTrafficConfig()
	config.ApplyPreset(&cfg, config.PresetFixed)

	report := NewRunner(cfg, nil).Run(1, Options{Ticks: 1000})
	assert.Zero(t, report.Spawned)
	assert.Zero(t, report.PeakActive)
	assert.Equal(t, 0, report.StopTicks[traffic.StopRed])
}

func TestRunLogsSnapshots(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	NewRunner(config.DefaultTrafficConfig(), logger).Run(3, Options{Ticks: 100, Every: 50})

	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("snapshot")))
	assert.Contains(t, out, "run finished")
	assert.NotContains(t, out, "vehicle spawned", "debug events stay hidden at info")
}

func vehicleAt(id uint64, dir traffic.Direction, x, z float64) traffic.VehicleSnapshot {
	return traffic.VehicleSnapshot{
		ID:        id,
		Direction: dir,
		Axis:      dir.Axis(),
		Position:  traffic.Vec3{X: x, Y: 2, Z: z},
	}
}

func TestCheckFindsViolations(t *testing.T) {
	cfg := config.DefaultTrafficConfig()
	cfg.Spawn.MaxVehicles = 2
	r := NewRunner(cfg, nil)
	sim := traffic.NewSimulation(cfg)

	red := traffic.LightSnapshot{X: traffic.PhaseRed, Z: traffic.PhaseGreen}

	tests := []struct {
		name string
		prev []traffic.VehicleSnapshot
		next []traffic.VehicleSnapshot
		want []string
	}{
		{
			name: "moved on red inside the zone",
			prev: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosX, -5, -2)},
			next: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosX, -4.8, -2)},
			want: []string{KindRed},
		},
		{
			name: "moved on red before the zone",
			prev: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosX, -15, -2)},
			next: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosX, -14.8, -2)},
		},
		{
			name: "stopped on red",
			prev: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosX, -5, -2)},
			next: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosX, -5, -2)},
		},
		{
			name: "z axis moves on its green",
			prev: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosZ, 2, -5)},
			next: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirPosZ, 2, -4.8)},
		},
		{
			name: "outside the world",
			next: []traffic.VehicleSnapshot{vehicleAt(1, traffic.DirNegX, -50, 2)},
			want: []string{KindBounds},
		},
		{
			name: "over the cap",
			next: []traffic.VehicleSnapshot{
				vehicleAt(1, traffic.DirPosX, -20, -2),
				vehicleAt(2, traffic.DirNegX, 20, 2),
				vehicleAt(3, traffic.DirPosZ, 2, -20),
			},
			want: []string{KindCap},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := traffic.Snapshot{Tick: 1, Light: red, Vehicles: tt.prev}
			next := traffic.Snapshot{Tick: 2, Light: red, Vehicles: tt.next}

			got := r.check(sim, prev, next)
			kinds := make([]string, 0, len(got))
			for _, v := range got {
				kinds = append(kinds, v.Kind)
				assert.Equal(t, uint64(2), v.Tick)
			}
			if len(tt.want) == 0 {
				assert.Empty(t, kinds)
			} else {
				assert.Equal(t, tt.want, kinds)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	reports := []Report{
		{Ticks: 100, Spawned: 4, Removed: 3, PeakActive: 2, PhaseChanges: 1,
			StopTicks: map[traffic.StopReason]int{traffic.StopRed: 10, traffic.StopCarAhead: 2}},
		{Ticks: 100, Spawned: 6, Removed: 5, PeakActive: 5, PhaseChanges: 1,
			StopTicks:  map[traffic.StopReason]int{traffic.StopRed: 5, traffic.StopYellow: 3},
			Violations: []Violation{{Tick: 9, Kind: KindCap}}},
	}

	s := Summarize(reports)
	require.Equal(t, 2, s.Runs)
	assert.Equal(t, 200, s.Ticks)
	assert.Equal(t, 10, s.Spawned)
	assert.Equal(t, 8, s.Removed)
	assert.Equal(t, 5, s.PeakActive)
	assert.Equal(t, 2, s.PhaseChanges)
	assert.Equal(t, 1, s.Violations)
	assert.Equal(t, map[traffic.StopReason]int{
		traffic.StopRed:      15,
		traffic.StopYellow:   3,
		traffic.StopCarAhead: 2,
	}, s.StopTicks)
	assert.InDelta(t, 2.0, s.MeanStopTicks(), 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Runs)
	assert.Zero(t, s.MeanStopTicks())
}
