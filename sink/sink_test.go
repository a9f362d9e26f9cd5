package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o644))

	out := File{Path: path}
	require.NoError(t, out.Set("updates_found", "true"))
	require.NoError(t, out.Set("broken", "false"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\nupdates_found=true\nbroken=false\n", string(data))
}

func TestFile_CreatesMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")

	require.NoError(t, File{Path: path}.Set("updates_found", "false"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "updates_found=false\n", string(data))
}

func TestFile_RejectsInvalidPair(t *testing.T) {
	out := File{Path: filepath.Join(t.TempDir(), "out")}

	assert.Error(t, out.Set("a=b", "c"))
	assert.Error(t, out.Set("key", "multi\nline"))
}

func TestFile_UnwritablePath(t *testing.T) {
	out := File{Path: filepath.Join(t.TempDir(), "missing-dir", "out")}

	err := out.Set("updates_found", "true")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{"GITHUB_OUTPUT": "/tmp/gh-out"}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, File{Path: "/tmp/gh-out"}, FromEnv(getenv, "GITHUB_OUTPUT"))
	assert.Nil(t, FromEnv(getenv, "OTHER_OUTPUT"))
	assert.Nil(t, FromEnv(getenv, ""))
}
