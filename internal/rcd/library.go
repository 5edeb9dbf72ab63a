package rcd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"paddock/internal/gamefile"
)

// Library manages the driver records in one Talent directory.
type Library struct {
	dir    string
	logger *slog.Logger
}

// NewLibrary builds a Library over dir. The directory must exist.
func NewLibrary(dir string, logger *slog.Logger) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: talent directory %s", gamefile.ErrNotFound, dir)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Library{dir: dir, logger: logger}, nil
}

// List returns the filename stems of every record in the library, sorted.
// Dialog.rcd is game UI text, not a driver, and is skipped.
func (l *Library) List() ([]string, error) {
	paths, err := gamefile.FindByExtension(l.dir, ".rcd", false)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		stem := gamefile.Stem(path)
		if strings.EqualFold(stem, "Dialog") {
			continue
		}
		names = append(names, stem)
	}
	return names, nil
}

// Get loads a record by display name ("Brandon Lang" resolves to
// BrandonLang.rcd).
func (l *Library) Get(name string) (*Record, error) {
	return l.GetByFilename(gamefile.NameToFilename(name))
}

// GetByFilename loads a record by filename stem.
func (l *Library) GetByFilename(stem string) (*Record, error) {
	if !strings.HasSuffix(strings.ToLower(stem), ".rcd") {
		stem += ".rcd"
	}
	return ParseFile(filepath.Join(l.dir, stem))
}

// Exists reports whether a record file exists for name.
func (l *Library) Exists(name string) bool {
	path := filepath.Join(l.dir, gamefile.NameToFilename(name)+".rcd")
	_, err := os.Stat(path)
	return err == nil
}

// Save writes record to the library. When overwrite is false an existing
// file for the same name is a validation error.
func (l *Library) Save(record *Record, overwrite bool) error {
	path := filepath.Join(l.dir, record.Filename())
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: driver %q already exists", gamefile.ErrValidation, record.Name())
		}
	}
	if err := GenerateFile(record, path); err != nil {
		return err
	}
	l.logger.Info("saved driver record", "driver", record.Name(), "path", path)
	return nil
}

// Delete removes a record by display name.
func (l *Library) Delete(name string) error {
	path := filepath.Join(l.dir, gamefile.NameToFilename(name)+".rcd")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: driver %q", gamefile.ErrNotFound, name)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	l.logger.Info("deleted driver record", "driver", name)
	return nil
}
