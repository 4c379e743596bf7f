// Package listfile reads and writes the newline-delimited inventory lists.
//
// One identifier per line. Surrounding whitespace is trimmed; blank lines and
// lines starting with `#` are ignored. Everything else is kept verbatim and in
// order, duplicates included.
package listfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/loadout/pkg/errors"
)

// CommentPrefix marks a line that is ignored.
const CommentPrefix = "#"

// Parse returns the entries of a list read from r.
func Parse(r io.Reader) ([]string, error) {
	var entries []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrListRead, "failed to scan list")
	}

	return entries, nil
}

// Read parses the list file at path. A missing file is reported with
// ErrListNotFound so callers can skip the category.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrListNotFound, "list file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrListRead, "failed to open list file: %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrListRead, "failed to read list file: %s", path).
			WithDetail("path", path)
	}
	return entries, nil
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Format renders entries one per line with a trailing newline.
func Format(entries []string) string {
	if len(entries) == 0 {
		return ""
	}
	return strings.Join(entries, "\n") + "\n"
}

// Write replaces the file at path with entries. The content is written to a
// temporary file in the same directory and renamed into place. When path is
// an existing symlink the file it points to is replaced and the link kept.
func Write(path string, entries []string) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrListWrite, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, errors.ErrListWrite, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(Format(entries)); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(err, errors.ErrListWrite, "failed to write %s", path)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrListWrite, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrListWrite, "failed to set mode on %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrListWrite, "failed to replace %s", path)
	}

	return nil
}
