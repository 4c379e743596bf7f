package listfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/loadout/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comments and blanks skipped",
			input: "git\n#comment\n\nwget",
			want:  []string{"git", "wget"},
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  ripgrep  \n\t# indented comment\n   \nfd\n",
			want:  []string{"ripgrep", "fd"},
		},
		{
			name:  "duplicates kept in order",
			input: "jq\nyq\njq\n",
			want:  []string{"jq", "yq", "jq"},
		},
		{
			name:  "crlf line endings",
			input: "ms-python.python\r\n# c\r\nesbenp.prettier-vscode\r\n",
			want:  []string{"ms-python.python", "esbenp.prettier-vscode"},
		},
		{
			name:  "only comments",
			input: "# nothing\n#\n",
			want:  nil,
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brew-packages.txt")
	require.NoError(t, os.WriteFile(path, []byte("git\n# tools\nwget\n"), 0644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"git", "wget"}, got)
	assert.True(t, Exists(path))
}

func TestRead_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := Read(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListNotFound))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
	assert.False(t, Exists(path))
}

func TestRead_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(dir)
	require.Error(t, err)
	assert.False(t, errors.IsErrorCode(err, errors.ErrListNotFound))
	assert.False(t, Exists(dir))
}

func TestWrite_OverwritesAndCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "lists", "brew-packages.txt")

	require.NoError(t, Write(path, []string{"old-formula", "old-cask"}))
	require.NoError(t, Write(path, []string{"git", "wget", "firefox"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "git\nwget\nfirefox\n", string(data))

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWrite_RoundTripsThroughRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uv-tools.txt")
	entries := []string{"ruff", "httpie", "pre-commit"}

	require.NoError(t, Write(path, entries))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestWrite_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWrite_FollowsSymlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "dotfiles", "brew.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0644))

	link := filepath.Join(root, "brew-packages.txt")
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, Write(link, []string{"git", "wget"}))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.True(t, info.Mode()&os.ModeSymlink != 0, "link should survive the write")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "git\nwget\n", string(data))
}
