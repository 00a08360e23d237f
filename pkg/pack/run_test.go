package pack

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func archiveNames(t *testing.T, path string) []string {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names
}

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".packignore":   "*.log\n/dist\n",
		"pack.yaml":     "name: widget\nversion: 1.4.0\n",
		"a.txt":         "alpha",
		"b.log":         "excluded",
		"dist/old.js":   "excluded",
		"src/index.js":  "x",
		"src/debug.log": "excluded",
	})

	output := filepath.Join(t.TempDir(), "widget.zip")
	res, err := Run(Options{
		Root:      root,
		Output:    output,
		AssumeYes: true,
	}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, output, res.Archive)
	assert.Equal(t, output+".sha256", res.ChecksumFile)
	assert.Equal(t, 4, res.Files)

	assert.ElementsMatch(t,
		[]string{".packignore", "pack.yaml", "a.txt", "src/index.js"},
		archiveNames(t, output))

	checksums, err := os.ReadFile(res.ChecksumFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(checksums), "\n"), "\n")
	assert.Len(t, lines, 4)
	for _, line := range lines {
		parts := strings.SplitN(line, "  ", 2)
		require.Len(t, parts, 2)
		assert.Len(t, parts[0], 64, "sha256 hex digest expected")
	}
}

func TestRunDerivesOutputFromManifest(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"pack.yaml": "name: widget\nversion: 1.4.0\n",
		"a.txt":     "alpha",
	})

	res, err := Run(Options{Root: root, AssumeYes: true}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, filepath.Join(filepath.Dir(root), "widget-1.4.0.zip"), res.Archive)
	assert.FileExists(t, res.Archive)
	assert.FileExists(t, res.ChecksumFile)
}

func TestRunNoIgnoreFilePackagesEverything(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.txt":       "a",
		"sub/b.txt":   "b",
		"sub/c/d.txt": "d",
	})

	output := filepath.Join(t.TempDir(), "all.zip")
	res, err := Run(Options{Root: root, Output: output, AssumeYes: true}, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.ElementsMatch(t,
		[]string{"a.txt", "sub/b.txt", "sub/c/d.txt"},
		archiveNames(t, output))
}

func TestRunMissingRootFails(t *testing.T) {
	_, err := Run(Options{
		Root:      filepath.Join(t.TempDir(), "nope"),
		AssumeYes: true,
	}, zap.NewNop())
	require.Error(t, err)
}

func TestRunUnreadableIgnoreFileFailsBeforeTraversal(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".packignore"), 0o755))
	writeTree(t, root, map[string]string{"a.txt": "a"})

	_, err := Run(Options{Root: root, AssumeYes: true}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignore")
}
