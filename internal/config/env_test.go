package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, path, "no file to load")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("YOLO_TEST_FROM_FILE=file\nYOLO_TEST_PRESET=file\n"), 0o600))
	t.Setenv("YOLO_TEST_PRESET", "process")
	t.Setenv("YOLO_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("YOLO_TEST_FROM_FILE"))

	path, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", path)
	assert.Equal(t, "file", os.Getenv("YOLO_TEST_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("YOLO_TEST_PRESET"), "process environment wins")
}

func TestEnvReader(t *testing.T) {
	t.Setenv("YOLO_INT", "42")
	t.Setenv("YOLO_BAD_INT", "forty")
	t.Setenv("YOLO_BOOL", "false")
	t.Setenv("YOLO_DURATION", "90s")
	t.Setenv("YOLO_DELAYS", "20s, 60s,,180s")
	t.Setenv("YOLO_LIST", " a ,b,, c ")
	t.Setenv("YOLO_BLANK", "   ")

	r := &envReader{}
	assert.Equal(t, 42, r.int("YOLO_INT", 1))
	assert.Equal(t, 7, r.int("YOLO_MISSING", 7))
	assert.False(t, r.bool("YOLO_BOOL", true))
	assert.Equal(t, 90*time.Second, r.duration("YOLO_DURATION", time.Second))
	assert.Equal(t, []time.Duration{20 * time.Second, time.Minute, 3 * time.Minute}, r.durations("YOLO_DELAYS", nil))
	assert.Equal(t, []string{"a", "b", "c"}, r.list("YOLO_LIST"))
	assert.Equal(t, "fallback", r.string("YOLO_BLANK", "fallback"))
	require.NoError(t, r.err())

	assert.Equal(t, 3, r.int("YOLO_BAD_INT", 3))
	err := r.err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YOLO_BAD_INT")
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)

	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err, "go.mod should exist in project root")
}
