package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeTempConfig(t, "wakuchin.json", `{
		"tries": 1000,
		"times": 2,
		"regex": "^WK",
		"output": "json",
		"interval": "250ms",
		"workers": 4,
		"handler": "console",
		"no_progress": false
	}`)

	doc, err := Load(path)
	require.NoError(t, err)

	require.EqualValues(t, 1000, doc.Tries)
	require.EqualValues(t, 2, doc.Times)
	require.Equal(t, "^WK", doc.Regex)
	require.Equal(t, "json", doc.Output)
	require.Equal(t, "console", doc.Handler)
	require.EqualValues(t, 4, doc.Workers)
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "wakuchin.yaml", "tries: 500\ntimes: 1\nregex: \".*\"\n")

	doc, err := Load(path)
	require.NoError(t, err)

	require.EqualValues(t, 500, doc.Tries)
	require.EqualValues(t, 1, doc.Times)
	require.Equal(t, ".*", doc.Regex)
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeTempConfig(t, "wakuchin.ini", "tries=500")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
