package champ

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"paddock/internal/cch"
	"paddock/internal/gamedata"
	"paddock/internal/gamefile"
)

// Saves manages the championship save files of one player profile.
type Saves struct {
	dir    string
	logger *slog.Logger
}

// NewSaves returns a save service for the given player.
func NewSaves(layout gamedata.Layout, player string, logger *slog.Logger) *Saves {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Saves{
		dir:    layout.PlayerDir(player),
		logger: logger,
	}
}

// Dir returns the player directory the service works in.
func (s *Saves) Dir() string {
	return s.dir
}

// List returns the save names (file stems) of the player, sorted. A player
// without a profile directory has no saves.
func (s *Saves) List() ([]string, error) {
	paths, err := gamefile.FindByExtension(s.dir, ".cch", false)
	if err != nil {
		if errors.Is(err, gamefile.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		names = append(names, gamefile.Stem(path))
	}
	return names, nil
}

// Get loads a save by name.
func (s *Saves) Get(name string) (*cch.Championship, error) {
	return cch.ParseFile(s.path(name))
}

// Exists reports whether a save with this name is present.
func (s *Saves) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// Create writes a new save. A name already in use is an error.
func (s *Saves) Create(championship *cch.Championship, name string) error {
	if s.Exists(name) {
		return fmt.Errorf("%w: save %q already exists", gamefile.ErrValidation, name)
	}
	return s.write(championship, name)
}

// Update overwrites an existing save.
func (s *Saves) Update(championship *cch.Championship, name string) error {
	if !s.Exists(name) {
		return fmt.Errorf("%w: save %s", gamefile.ErrNotFound, name)
	}
	return s.write(championship, name)
}

// Save writes a save whether or not it exists.
func (s *Saves) Save(championship *cch.Championship, name string) error {
	return s.write(championship, name)
}

// Delete removes a save.
func (s *Saves) Delete(name string) error {
	path := s.path(name)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: save %s", gamefile.ErrNotFound, name)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("delete save %s: %w", path, err)
	}
	s.logger.Info("save deleted", "save", name)
	return nil
}

// Duplicate copies a save under a new name with the season progress reset,
// so the copy starts an unraced season with the same grid and settings.
func (s *Saves) Duplicate(source, target string) (*cch.Championship, error) {
	championship, err := s.Get(source)
	if err != nil {
		return nil, err
	}

	ResetProgress(championship)

	if err := s.Create(championship, target); err != nil {
		return nil, err
	}
	s.logger.Info("save duplicated", "source", source, "target", target)
	return championship, nil
}

// ResetProgress zeroes the season state and every participant's standing
// while keeping the grid, vehicles, and settings.
func ResetProgress(championship *cch.Championship) {
	championship.Season.SeasonStatus = 0
	championship.Season.CurrentRace = 0
	championship.Season.RaceSession = 0
	championship.Season.RaceOver = 0

	championship.Player.SeasonPoints = 0
	championship.Player.PointsPosition = 0
	championship.Player.PolesTaken = 0
	for i := range championship.Opponents {
		championship.Opponents[i].SeasonPoints = 0
		championship.Opponents[i].PointsPosition = 0
		championship.Opponents[i].PolesTaken = 0
	}
}

func (s *Saves) write(championship *cch.Championship, name string) error {
	return cch.GenerateFile(championship, s.path(name))
}

func (s *Saves) path(name string) string {
	if !strings.EqualFold(filepath.Ext(name), ".cch") {
		name += ".cch"
	}
	return filepath.Join(s.dir, name)
}
