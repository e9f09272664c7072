// Package filestore keeps uploaded project images in a directory on disk.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// maxRenameAttempts bounds how many suffixed names Save tries on collision
const maxRenameAttempts = 5

// UniqueSuffixLength is how much longer than requested a renamed file can get
const UniqueSuffixLength = len("-") + 8

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store writes and locates image files inside a single directory
type Store struct {
	dir     string
	allowed map[string]struct{}
}

// New creates a store rooted at dir accepting the given extensions (case-insensitive, no dot)
func New(dir string, allowedExtensions []string) *Store {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}
	return &Store{dir: dir, allowed: allowed}
}

// Dir returns the upload directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the on-disk location of a stored file
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// IsAllowed reports whether filename carries an allowed image extension
func (s *Store) IsAllowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := s.allowed[strings.ToLower(filename[idx+1:])]
	return ok
}

// Sanitize reduces a client supplied filename to a safe basename.
// Path separators become spaces, whitespace runs become underscores and anything
// outside [A-Za-z0-9_.-] is dropped. The result may be empty.
func Sanitize(filename string) string {
	decomposed := norm.NFKD.String(filename)

	var b strings.Builder
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		b.WriteRune(r)
	}

	name := strings.Join(strings.Fields(b.String()), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// FitName shortens a sanitized name to at most max bytes, keeping its extension.
// Sanitized names are ASCII, so bytes and characters agree.
func FitName(name string, max int) string {
	if len(name) <= max {
		return name
	}
	ext := filepath.Ext(name)
	if len(ext) >= max {
		return ""
	}
	base := strings.TrimSuffix(name, ext)
	base = strings.TrimRight(base[:max-len(ext)], "._-")
	if base == "" {
		return ""
	}
	return base + ext
}

// Save writes r under name, creating the directory first.
// An existing file is never overwritten: on collision a short unique suffix is
// inserted before the extension. The stored name is returned.
func (s *Store) Save(r io.Reader, name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("refusing to store unsafe filename %q", name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	stored := name
	for attempt := 0; ; attempt++ {
		f, err := os.OpenFile(s.Path(stored), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			if attempt >= maxRenameAttempts {
				return "", fmt.Errorf("no free filename for %q: %w", name, err)
			}
			stored = uniqueName(name)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", stored, err)
		}

		_, copyErr := io.Copy(f, r)
		closeErr := f.Close()
		if copyErr != nil || closeErr != nil {
			os.Remove(s.Path(stored))
			return "", fmt.Errorf("failed to write %s: %w", stored, errors.Join(copyErr, closeErr))
		}
		return stored, nil
	}
}

// Remove deletes a stored file; a missing file is not an error
func (s *Store) Remove(name string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("refusing to remove unsafe filename %q", name)
	}
	err := os.Remove(s.Path(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Exists reports whether a file with that name is stored
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

func uniqueName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:UniqueSuffixLength-1], ext)
}
