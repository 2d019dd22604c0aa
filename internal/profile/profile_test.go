package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	stop, err := Start("")
	require.NoError(t, err)
	assert.NoError(t, stop())
	assert.NoError(t, WriteHeap(""))
}

func TestProfiles(t *testing.T) {
	dir := t.TempDir()
	cpuPath := filepath.Join(dir, "cpuprofile")
	memPath := filepath.Join(dir, "memprofile")

	stop, err := Start(cpuPath)
	require.NoError(t, err)
	require.NoError(t, stop())
	require.NoError(t, WriteHeap(memPath))

	for _, path := range []string{cpuPath, memPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), path)
	}
}

func TestBadPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "profile")

	_, err := Start(missing)
	assert.ErrorContains(t, err, "could not create cpu profile")
	assert.ErrorContains(t, WriteHeap(missing), "could not create memory profile")
}
