package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(t *testing.T) {
	window, player, physics, camera, level, audio := *C, Player, Physics, Camera, Level, Audio
	t.Cleanup(func() {
		*C = window
		Player = player
		Physics = physics
		Camera = camera
		Level = level
		Audio = audio
	})
}

func TestLoadOverrides(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("player:\n  jumpSpeed: 20\nlevel:\n  endOfMap: 6000\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, LoadOverrides(path))

	assert.Equal(t, 20.0, Player.JumpSpeed)
	assert.Equal(t, 8.0, Player.MoveSpeed, "untouched keys keep defaults")
	assert.Equal(t, 6000.0, Level.EndOfMap)
	assert.Equal(t, -100.0, Level.DeathY)
	assert.Equal(t, 900, C.Width)
}

func TestLoadOverridesCameraAndAudio(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte("camera:\n  viewportWidth: 640\naudio:\n  sampleRate: 48000\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	require.NoError(t, LoadOverrides(path))

	assert.Equal(t, 640.0, Camera.ViewportWidth)
	assert.Equal(t, float64(C.Height), Camera.ViewportHeight)
	assert.Equal(t, 48000, Audio.SampleRate)
	assert.Equal(t, 0.5, Audio.DefaultMusicVol)
}

func TestSnapshotRestoresCameraAndAudio(t *testing.T) {
	camera, audio := Camera, Audio

	t.Run("override", func(t *testing.T) {
		snapshot(t)
		Camera.ViewportWidth = 1
		Audio.SampleRate = 1
	})

	assert.Equal(t, camera, Camera)
	assert.Equal(t, audio, Audio)
}

func TestLoadOverridesErrors(t *testing.T) {
	snapshot(t)

	err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: [1, 2"), 0o644))
	assert.Error(t, LoadOverrides(path))
	assert.Equal(t, 18.0, Player.JumpSpeed)
}
