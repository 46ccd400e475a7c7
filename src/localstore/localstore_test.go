package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestList(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "backup-b", "dump.sql"), "CREATE TABLE t;")
	writeFile(t, filepath.Join(root, "backup-a", "static", "site.css"), "body {}")
	writeFile(t, filepath.Join(root, "backup-a", "static", "app.js"), "x")
	writeFile(t, filepath.Join(root, ".hidden", "ignored"), "x")
	writeFile(t, filepath.Join(root, "stray-file"), "not a folder")

	fetches, err := List(root)
	require.NoError(t, err)
	require.Len(t, fetches, 2)

	assert.Equal(t, "backup-a", fetches[0].Container)
	assert.Equal(t, 2, fetches[0].Files)
	assert.True(t, fetches[0].HasStatic)
	assert.False(t, fetches[0].HasDump)

	assert.Equal(t, "backup-b", fetches[1].Container)
	assert.Equal(t, 1, fetches[1].Files)
	assert.True(t, fetches[1].HasDump)
	assert.False(t, fetches[1].HasStatic)
	assert.Equal(t, int64(len("CREATE TABLE t;")), fetches[1].Bytes)
}

func TestList_MissingRoot(t *testing.T) {
	fetches, err := List(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, fetches)
}
