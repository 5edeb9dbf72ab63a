package rfm

import (
	"fmt"
	"strconv"
	"strings"

	"paddock/internal/gamefile"
)

// ParseFile reads and parses a .rfm file.
func ParseFile(path string) (*Mod, error) {
	content, err := gamefile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mod, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mod, nil
}

// Parse parses mod definition content. The file mixes flat key=value lines
// with brace blocks; block declarations may repeat (Season) and a season
// carries its own nested SceneOrder block.
func Parse(content string) (*Mod, error) {
	p := &parser{lines: strings.Split(content, "\n")}
	mod := NewMod("", "")
	nameSet := false

	for p.pos < len(p.lines) {
		line := p.clean()
		switch {
		case line == "":
			// skip
		case strings.HasPrefix(line, "Season=") || strings.HasPrefix(line, "Season ="):
			season, err := p.parseSeason(line)
			if err != nil {
				return nil, err
			}
			mod.Seasons = append(mod.Seasons, season)
		case strings.HasPrefix(line, "DefaultScoring"):
			if err := p.parseBlock(func(key, value string) error {
				return applySetter(scoringSetters, &mod.Scoring, key, value)
			}); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "SeasonScoringInfo"):
			if err := p.parseBlock(func(key, value string) error {
				return applySetter(seasonScoringSetters, &mod.SeasonScoring, key, value)
			}); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "SceneOrder"):
			mod.SceneOrder = p.parseListBlock()
		case strings.HasPrefix(line, "PitGroupOrder"):
			groups, err := p.parsePitGroups()
			if err != nil {
				return nil, err
			}
			mod.PitGroups = groups
		case strings.HasPrefix(line, "ConfigOverrides"):
			p.parseOverrides(mod.ConfigOverrides)
		case strings.Contains(line, "="):
			key, value := splitKeyValue(line)
			if key == "Mod Name" {
				nameSet = true
			}
			if err := applyModSetter(mod, key, value); err != nil {
				return nil, err
			}
		}
		p.pos++
	}

	if !nameSet || mod.ModName == "" {
		return nil, fmt.Errorf("%w: missing required field: Mod Name", gamefile.ErrFormat)
	}
	return mod, nil
}

type parser struct {
	lines []string
	pos   int
}

// clean returns the current line with trailing comments and whitespace
// stripped.
func (p *parser) clean() string {
	if p.pos >= len(p.lines) {
		return ""
	}
	line := p.lines[p.pos]
	if idx := strings.Index(line, "//"); idx != -1 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// enterBlock advances past the declaration line to the first line after the
// opening brace.
func (p *parser) enterBlock() {
	p.pos++
	for p.pos < len(p.lines) {
		if strings.Contains(p.clean(), "{") {
			p.pos++
			return
		}
		p.pos++
	}
}

// parseBlock consumes a brace block, feeding each key=value line to apply.
// On return the cursor rests on the closing brace line.
func (p *parser) parseBlock(apply func(key, value string) error) error {
	p.enterBlock()
	for p.pos < len(p.lines) {
		line := p.clean()
		if strings.Contains(line, "}") {
			return nil
		}
		if strings.Contains(line, "=") {
			key, value := splitKeyValue(line)
			if err := apply(key, value); err != nil {
				return err
			}
		}
		p.pos++
	}
	return nil
}

// parseListBlock consumes a brace block of bare lines (a SceneOrder).
func (p *parser) parseListBlock() []string {
	p.enterBlock()
	var items []string
	for p.pos < len(p.lines) {
		line := p.clean()
		if strings.Contains(line, "}") {
			return items
		}
		if line != "" {
			items = append(items, line)
		}
		p.pos++
	}
	return items
}

func (p *parser) parseSeason(declaration string) (Season, error) {
	_, name := splitKeyValue(declaration)
	season := Season{Name: name, MinOpponents: 5}

	p.enterBlock()
	for p.pos < len(p.lines) {
		line := p.clean()
		if strings.Contains(line, "}") {
			return season, nil
		}
		if strings.HasPrefix(line, "SceneOrder") {
			season.SceneOrder = p.parseListBlock()
		} else if strings.Contains(line, "=") {
			key, value := splitKeyValue(line)
			if err := applySetter(seasonSetters, &season, key, value); err != nil {
				return season, err
			}
		}
		p.pos++
	}
	return season, nil
}

func (p *parser) parsePitGroups() ([]PitGroup, error) {
	var groups []PitGroup
	err := p.parseBlock(func(key, value string) error {
		if key != "PitGroup" {
			return nil
		}
		count, name, ok := strings.Cut(value, ",")
		if !ok {
			return nil
		}
		vehicles, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return fmt.Errorf("%w: PitGroup: %q is not an integer", gamefile.ErrFormat, count)
		}
		groups = append(groups, PitGroup{VehicleCount: vehicles, GroupName: strings.TrimSpace(name)})
		return nil
	})
	return groups, err
}

func (p *parser) parseOverrides(overrides map[string]string) {
	_ = p.parseBlock(func(key, value string) error {
		overrides[key] = value
		return nil
	})
}

func splitKeyValue(line string) (string, string) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return "", ""
	}
	return strings.TrimSpace(key), strings.TrimSpace(value)
}
