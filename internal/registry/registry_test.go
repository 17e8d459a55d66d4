package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossroads/internal/core"
)

type stubScene struct {
	id    string
	ticks uint64
}

func (s *stubScene) ID() string                   { return s.id }
func (s *stubScene) Title() string                { return "Stub " + s.id }
func (s *stubScene) Reset(cfg core.RuntimeConfig) { s.ticks = 0 }
func (s *stubScene) Render(dst *core.Screen)      {}
func (s *stubScene) State() core.SceneState       { return core.SceneState{Tick: s.ticks} }

func (s *stubScene) Step(in core.InputFrame) core.StepResult {
	s.ticks++
	return core.StepResult{State: s.State(), Advanced: true}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Scene { return &stubScene{id: "stub_b"} })
	Register("stub_a", func() Scene { return &stubScene{id: "stub_a"} })
	t.Cleanup(func() {
		unregister("stub_a")
		unregister("stub_b")
	})

	assert.True(t, Exists("stub_a"))
	assert.False(t, Exists("stub_c"))

	scene, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", scene.ID())

	// Every Create returns a fresh instance
	scene.Step(core.NewInputFrame())
	other, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), other.State().Tick)

	list := List()
	require.Len(t, list, 2)
	assert.Equal(t, SceneInfo{ID: "stub_a", Title: "Stub stub_a"}, list[0])
	assert.Equal(t, "stub_b", list[1].ID)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown scene "missing"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Scene { return &stubScene{id: "stub_dup"} })
	t.Cleanup(func() { unregister("stub_dup") })

	assert.Panics(t, func() {
		Register("stub_dup", func() Scene { return &stubScene{id: "stub_dup"} })
	})
}
