// Package filestore implements the repository's FileStore port on top of
// an afero filesystem: UTF-8 text in, parsed line sequence out, and the
// serialized sequence written back atomically.
package filestore

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/jwigmo/todotxt/internal/domain/model/line"
	"github.com/jwigmo/todotxt/internal/domain/parser"
	"github.com/jwigmo/todotxt/internal/domain/repository"
	"github.com/jwigmo/todotxt/internal/infra/persistence/file"
)

// TodoFileStore loads and saves one todo.txt file. The path passed to
// Load becomes the bound save target; Save before any Load fails.
type TodoFileStore struct {
	fs          afero.Fs
	parsers     parser.Chain
	currentPath string
}

// New creates a file store over fs using the default line-parser chain
func New(fs afero.Fs) *TodoFileStore {
	return NewWithChain(fs, parser.DefaultChain())
}

// NewWithChain creates a file store with a custom line-parser chain
func NewWithChain(fs afero.Fs, chain parser.Chain) *TodoFileStore {
	return &TodoFileStore{fs: fs, parsers: chain}
}

// Load reads, validates and parses the file at path
func (s *TodoFileStore) Load(path string) ([]line.Line, error) {
	exists, err := afero.Exists(s.fs, path)
	if err != nil || !exists {
		return nil, fmt.Errorf("load %s: %w", path, repository.ErrFileNotFound)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, repository.ErrFileNotFound)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("load %s: %w", path, repository.ErrInvalidEncoding)
	}

	s.currentPath = path
	return s.parsers.ParseContent(string(data)), nil
}

// Save serializes the line sequence and writes it to the bound target
func (s *TodoFileStore) Save(lines []line.Line) error {
	if s.currentPath == "" {
		return fmt.Errorf("save: %w", repository.ErrNoFileLoaded)
	}

	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Serialize()
	}
	content := strings.Join(parts, "\n")

	if err := file.WriteAtomic(s.fs, s.currentPath, []byte(content)); err != nil {
		return fmt.Errorf("save %s: %w", s.currentPath, repository.ErrWriteFailed)
	}
	return nil
}
