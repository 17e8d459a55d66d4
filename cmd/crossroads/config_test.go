package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-crossroads/internal/config"
)

func setFlags(t *testing.T, cfgPath, preset string) {
	t.Helper()
	oldConfig, oldPreset := flagConfig, flagPreset
	flagConfig, flagPreset = cfgPath, preset
	t.Cleanup(func() { flagConfig, flagPreset = oldConfig, oldPreset })
}

func TestConfigPrintsResolvedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intersection.yaml")
	require.NoError(t, os.WriteFile(path, []byte("light:\n  switch_interval: 240\n"), 0o600))
	setFlags(t, path, string(config.PresetRush))

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runConfig(cmd, nil))

	got, err := config.Parse(out.Bytes())
	require.NoError(t, err)

	want := config.DefaultTrafficConfig()
	want.Light.SwitchInterval = 240
	config.ApplyPreset(&want, config.PresetRush)
	assert.Equal(t, want, got)
}

func TestConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  half_extent: 0\n"), 0o600))
	setFlags(t, path, "")

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	assert.Error(t, runConfig(cmd, nil))
	assert.Empty(t, out.String())
}
