package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesEntryAndOptions(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "adl.config.yaml", `
name: widgets
entry:
  - main.adl
  - extra.adl
namespace: Widgets
emitters:
  - json-schema
options:
  warnings-as-errors: true
`)

	m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "widgets", m.Name)
	require.Equal(t, []string{"main.adl", "extra.adl"}, m.Entry)
	require.True(t, m.Options.WarningsAsErrors)
}

func TestLoadRejectsManifestWithoutEntry(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "adl.config.yaml", "name: widgets\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestFindWalksUpToAncestor(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "adl.config.yaml", "name: x\nentry: [a.adl]\n")

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Find(nested)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "adl.config.yaml"), found)
}

func TestFindReturnsEmptyWhenNoManifest(t *testing.T) {
	dir := t.TempDir()
	found, err := Find(dir)
	require.NoError(t, err)
	require.Empty(t, found)
}
