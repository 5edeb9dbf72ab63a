package gdb

import (
	"log/slog"
	"path/filepath"
	"strings"

	"paddock/internal/gamefile"
)

// Track is one parsed track definition.
type Track struct {
	TrackName string
	VenueName string
	Layout    string

	Path         string
	FileName     string
	RelativePath string

	// Info holds every key=value pair the file carries, named fields
	// included.
	Info map[string]string
}

// DisplayName returns a name fit for listings.
func (t *Track) DisplayName() string {
	if t.TrackName != "" {
		return t.TrackName
	}
	if t.FileName != "" {
		return t.FileName
	}
	return "Unknown Track"
}

// Stem returns the filename without its extension, the form track orders
// reference.
func (t *Track) Stem() string {
	return gamefile.Stem(t.FileName)
}

// Parse parses track definition content. Brace lines and comments are
// skipped; every key=value pair lands in Info.
func Parse(content string) *Track {
	track := &Track{Info: map[string]string{}}

	for _, line := range strings.Split(content, "\n") {
		if idx := strings.Index(line, "//"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" || line == "{" || line == "}" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = trimQuotes(strings.TrimSpace(value))
		if key == "" {
			continue
		}
		track.Info[key] = value

		switch {
		case strings.EqualFold(key, "TrackName"):
			track.TrackName = value
		case strings.EqualFold(key, "VenueName"):
			track.VenueName = value
		case strings.EqualFold(key, "Layout"):
			track.Layout = value
		}
	}

	return track
}

func trimQuotes(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') || (value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// Scanner parses track definitions under a locations library root.
type Scanner struct {
	root   string
	logger *slog.Logger
}

// NewScanner returns a scanner rooted at the locations directory.
func NewScanner(root string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{root: root, logger: logger}
}

// ParseFile parses one track definition.
func (s *Scanner) ParseFile(path string) (*Track, error) {
	content, err := gamefile.ReadFile(path)
	if err != nil {
		return nil, err
	}

	track := Parse(content)
	track.Path = path
	track.FileName = filepath.Base(path)
	if rel, err := filepath.Rel(s.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		track.RelativePath = rel
	} else {
		track.RelativePath = track.FileName
	}
	return track, nil
}

// Scan parses every track definition under the root. Unreadable files are
// logged and skipped.
func (s *Scanner) Scan() ([]*Track, error) {
	paths, err := gamefile.FindByExtension(s.root, ".gdb", true)
	if err != nil {
		return nil, err
	}

	tracks := make([]*Track, 0, len(paths))
	for _, path := range paths {
		track, err := s.ParseFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable track", "path", path, "error", err)
			continue
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// Search returns the tracks whose name, venue, layout, or filename contains
// the query, case-insensitively.
func Search(tracks []*Track, query string) []*Track {
	q := strings.ToLower(query)
	var matched []*Track
	for _, track := range tracks {
		if strings.Contains(strings.ToLower(track.TrackName), q) ||
			strings.Contains(strings.ToLower(track.VenueName), q) ||
			strings.Contains(strings.ToLower(track.Layout), q) ||
			strings.Contains(strings.ToLower(track.FileName), q) {
			matched = append(matched, track)
		}
	}
	return matched
}
