package pack

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sha256Hex(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

func TestDigestEntries(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.txt":     "bravo",
		"a/one.txt": "one",
	})

	entries := []Entry{
		{Source: filepath.Join(root, "b.txt"), Name: "b.txt"},
		{Source: filepath.Join(root, "a", "one.txt"), Name: "a/one.txt"},
	}

	digests, err := DigestEntries(entries, 2, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, digests, 2)

	// Sorted by archive name regardless of completion order.
	assert.Equal(t, "a/one.txt", digests[0].Name)
	assert.Equal(t, "b.txt", digests[1].Name)
	assert.Equal(t, sha256Hex("one"), digests[0].Digest.Encoded())
	assert.Equal(t, sha256Hex("bravo"), digests[1].Digest.Encoded())
}

func TestDigestEntriesDefaultsWorkerCount(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a"})

	digests, err := DigestEntries(
		[]Entry{{Source: filepath.Join(root, "a.txt"), Name: "a.txt"}},
		0, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, digests, 1)
}

func TestDigestEntriesUnreadableFileFails(t *testing.T) {
	entries := []Entry{{Source: filepath.Join(t.TempDir(), "gone.txt"), Name: "gone.txt"}}

	_, err := DigestEntries(entries, 1, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.txt")
}

func TestWriteChecksums(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "hello"})

	digests, err := DigestEntries(
		[]Entry{{Source: filepath.Join(root, "a.txt"), Name: "a.txt"}},
		1, zap.NewNop())
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "out.zip.sha256")
	require.NoError(t, WriteChecksums(dest, digests, zap.NewNop()))

	content, err := os.ReadFile(dest)
	require.NoError(t, err)

	want := fmt.Sprintf("%s  a.txt\n", sha256Hex("hello"))
	assert.Equal(t, want, string(content))
	assert.True(t, strings.HasSuffix(string(content), "\n"))
}
