package veh

import (
	"fmt"
	"path/filepath"
	"strings"

	"paddock/internal/gamefile"
)

// baseClassBlocklist names classes that tie a vehicle to its original mod.
// They are dropped when an isolated copy gets its class line rewritten.
var baseClassBlocklist = map[string]struct{}{
	"Rhez":    {},
	"ZR":      {},
	"Howston": {},
	"Hammer":  {},
}

// PatchResult reports which fields a patch actually touched.
type PatchResult struct {
	ClassesPatched     bool
	DriverPatched      bool
	DescriptionPatched bool
}

// Patch rewrites the class, driver, description, and livery lines of an
// isolated vehicle definition. Every other line, including comments and
// formatting, passes through untouched; the file is never re-serialized from
// the parsed model.
func Patch(content, championship, driver, prefix string) (string, PatchResult) {
	var result PatchResult
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		switch {
		case keyLine(stripped, "DefaultLivery"), keyLine(stripped, "PitCrewLivery"), keyLine(stripped, "TrackLivery"):
			lines[i] = patchLivery(line, prefix)
		case keyLine(stripped, "Classes"):
			lines[i] = patchClasses(line, championship)
			result.ClassesPatched = true
		case keyLine(stripped, "Driver"):
			lines[i] = indentOf(line) + fmt.Sprintf("Driver=\"%s\"", driver)
			result.DriverPatched = true
		case keyLine(stripped, "Description"):
			lines[i] = patchDescription(line, prefix)
			result.DescriptionPatched = true
		}
	}

	return strings.Join(lines, "\n"), result
}

// PatchFile applies Patch to a file on disk.
func PatchFile(path, championship, driver, prefix string) (PatchResult, error) {
	content, err := gamefile.ReadFile(path)
	if err != nil {
		return PatchResult{}, err
	}
	patched, result := Patch(content, championship, driver, prefix)
	if err := gamefile.WriteFile(path, patched); err != nil {
		return result, err
	}
	return result, nil
}

// keyLine reports whether a trimmed line assigns the given key, with or
// without space around the equals sign.
func keyLine(stripped, key string) bool {
	return strings.HasPrefix(stripped, key+"=") || strings.HasPrefix(stripped, key+" =")
}

func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// lineValue strips the trailing comment and quotes from the value side of an
// assignment line.
func lineValue(line string) (field, value string, ok bool) {
	field, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	if idx := strings.Index(value, "//"); idx != -1 {
		value = value[:idx]
	}
	return strings.TrimSpace(field), strings.Trim(strings.TrimSpace(value), `"`), true
}

// patchLivery prefixes the livery filename. A track livery keeps its track
// name component.
func patchLivery(line, prefix string) string {
	field, value, ok := lineValue(line)
	if !ok {
		return line
	}
	var newValue string
	if field == "TrackLivery" && strings.Contains(value, ",") {
		track, livery, _ := strings.Cut(value, ",")
		newValue = fmt.Sprintf("%s, %s_%s", strings.TrimSpace(track), prefix, filepath.Base(strings.TrimSpace(livery)))
	} else {
		newValue = fmt.Sprintf("%s_%s", prefix, filepath.Base(value))
	}
	return indentOf(line) + fmt.Sprintf("%s=\"%s\"", field, newValue)
}

// patchClasses replaces the class list with the championship name plus one
// surviving base class. Bare numbers, AI_ONLY, and blocklisted mod classes
// never survive; when nothing survives the championship name stands alone.
func patchClasses(line, championship string) string {
	_, value, ok := lineValue(line)
	if !ok {
		return line
	}
	newClasses := championship
	if base := selectBaseClass(strings.Fields(value)); base != "" {
		newClasses = championship + " " + base
	}
	return indentOf(line) + fmt.Sprintf("Classes=\"%s\"", newClasses)
}

func selectBaseClass(classes []string) string {
	for _, class := range classes {
		if isDigits(class) || class == "AI_ONLY" {
			continue
		}
		if _, blocked := baseClassBlocklist[class]; blocked {
			continue
		}
		return class
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// patchDescription prepends the prefix unless it is already there.
func patchDescription(line, prefix string) string {
	field, value, ok := lineValue(line)
	if !ok {
		return line
	}
	if !strings.HasPrefix(value, prefix) {
		value = prefix + " " + value
	}
	return indentOf(line) + fmt.Sprintf("%s=\"%s\"", field, value)
}
