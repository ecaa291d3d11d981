// Package fs writes generated files to one directory per category.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsplit"
)

// Ensure Store implements docsplit.OutputStore at compile time.
var _ docsplit.OutputStore = (*Store)(nil)

// Store writes files under baseDir/<category>/<name>. Category names are
// used verbatim; only names that would leave baseDir are rejected.
type Store struct {
	baseDir string
}

// NewStore creates a new Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Path returns the location of the named file in a category directory.
func (s *Store) Path(category, name string) (string, error) {
	if strings.TrimSpace(category) == "" {
		return "", docsplit.Errorf(docsplit.EINVALID, "category name required")
	}
	if name == "" || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", docsplit.Errorf(docsplit.EINVALID, "invalid file name %q", name)
	}

	dir := filepath.Join(s.baseDir, category)
	rel, err := filepath.Rel(s.baseDir, dir)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", docsplit.Errorf(docsplit.EINVALID, "category %q: path traversal outside output directory", category)
	}

	return filepath.Join(dir, name), nil
}

// Exists implements docsplit.OutputStore.
func (s *Store) Exists(ctx context.Context, category, name string) (bool, error) {
	path, err := s.Path(category, name)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WriteFile implements docsplit.OutputStore.
func (s *Store) WriteFile(ctx context.Context, category, name, content string) error {
	path, err := s.Path(category, name)
	if err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return writeFileAtomic(path, []byte(content))
}
