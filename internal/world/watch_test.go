package world

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, NewDefault().Save(path))

	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Changed())

	// unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	require.NoError(t, NewDefault().Save(path))

	assert.Eventually(t, w.Changed, 5*time.Second, 10*time.Millisecond, "no change event for scene file")
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "scene.json"))
	assert.ErrorContains(t, err, "watch scene")
}
