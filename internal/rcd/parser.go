package rcd

import (
	"fmt"
	"strconv"
	"strings"

	"paddock/internal/gamefile"
)

// ParseFile reads and parses a .rcd file.
func ParseFile(path string) (*Record, error) {
	content, err := gamefile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	record, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return record, nil
}

// Parse parses .rcd file content. The name is the first line that is not
// blank, a comment, a brace, or a key=value pair; the fields live between a
// literal { and }. Unknown keys are ignored, missing keys get defaults.
func Parse(content string) (*Record, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: empty file", gamefile.ErrFormat)
	}

	name := ""
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		if strings.HasPrefix(trimmed, "{") || trimmed == "}" {
			continue
		}
		if strings.Contains(trimmed, "=") {
			continue
		}
		name = trimmed
		break
	}
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", gamefile.ErrFormat)
	}

	open := strings.Index(content, "{")
	closing := strings.LastIndex(content, "}")
	if open == -1 || closing == -1 || closing < open {
		return nil, fmt.Errorf("%w: missing braces", gamefile.ErrFormat)
	}

	fields := parseKeyValues(content[open+1 : closing])

	info := PersonalInfo{
		Nationality: lookup(fields, "Nationality", "Unknown"),
		DateOfBirth: lookup(fields, "DateofBirth", "01-01-1980"),
	}
	var err error
	if info.Starts, err = lookupInt(fields, "Starts", 0); err != nil {
		return nil, err
	}
	if info.Poles, err = lookupInt(fields, "Poles", 0); err != nil {
		return nil, err
	}
	if info.Wins, err = lookupInt(fields, "Wins", 0); err != nil {
		return nil, err
	}
	if info.DriversChampionships, err = lookupInt(fields, "DriversChampionships", 0); err != nil {
		return nil, err
	}

	stats := DefaultStats()
	statFields := map[string]*float64{
		"Aggression":     &stats.Aggression,
		"Reputation":     &stats.Reputation,
		"Courtesy":       &stats.Courtesy,
		"Composure":      &stats.Composure,
		"Speed":          &stats.Speed,
		"Crash":          &stats.Crash,
		"Recovery":       &stats.Recovery,
		"CompletedLaps":  &stats.CompletedLaps,
		"MinRacingSkill": &stats.MinRacingSkill,
	}
	for key, target := range statFields {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		value, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %s: %q is not a number", gamefile.ErrFormat, key, raw)
		}
		*target = value
	}

	return NewRecord(name, info, stats)
}

// parseKeyValues collects Key=Value pairs from a braced block, skipping
// blank lines and comments.
func parseKeyValues(block string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

func lookup(fields map[string]string, key, fallback string) string {
	if value, ok := fields[key]; ok {
		return value
	}
	return fallback
}

func lookupInt(fields map[string]string, key string, fallback int) (int, error) {
	raw, ok := fields[key]
	if !ok {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", gamefile.ErrFormat, key, raw)
	}
	return value, nil
}
