package gamefile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// lineEnding is the line terminator the simulator expects on disk.
const lineEnding = "\r\n"

// ReadFile reads path and decodes it from Windows-1252.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(raw, path)
}

// Decode converts Windows-1252 bytes to a string. The name parameter is only
// used in error messages.
func Decode(raw []byte, name string) (string, error) {
	for i, b := range raw {
		if !validWindows1252(b) {
			return "", fmt.Errorf("%w: %s: invalid byte 0x%02X at offset %d", ErrDecode, name, b, i)
		}
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
	}
	return string(decoded), nil
}

// WriteFile encodes content as Windows-1252 with CRLF line endings and writes
// it to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(NormalizeLineEndings(content)))
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// NormalizeLineEndings rewrites every line break in content to CRLF.
func NormalizeLineEndings(content string) string {
	unified := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(unified, "\n", lineEnding)
}

// FindByExtension returns every file under dir with the given extension
// (case-insensitive, with or without the leading dot), sorted by path.
// When recursive is false only dir itself is listed.
func FindByExtension(dir, ext string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: directory %s", ErrNotFound, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrValidation, dir)
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	var matches []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
				matches = append(matches, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	} else {
		entries, readErr := os.ReadDir(dir)
		if readErr != nil {
			return nil, fmt.Errorf("list %s: %w", dir, readErr)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ext) {
				matches = append(matches, filepath.Join(dir, entry.Name()))
			}
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// NameToFilename normalizes a display name to its on-disk form by removing
// spaces ("Brandon Lang" -> "BrandonLang").
func NameToFilename(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// Stem returns the final path element without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// validWindows1252 reports whether b maps to a character in Windows-1252.
// Five bytes in the 0x80-0x9F block are undefined in the code page.
func validWindows1252(b byte) bool {
	switch b {
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return false
	}
	return true
}
