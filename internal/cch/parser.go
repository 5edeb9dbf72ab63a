package cch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"paddock/internal/gamefile"
)

var (
	sectionPattern  = regexp.MustCompile(`^\[(\w+)\]`)
	keyValuePattern = regexp.MustCompile(`^([^=\s]+)\s*=\s*(.*)$`)
	pairPattern     = regexp.MustCompile(`\(([^)]+)\)`)
)

// ParseFile reads and parses a championship save.
func ParseFile(path string) (*Championship, error) {
	content, err := gamefile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	championship, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	championship.Path = path
	return championship, nil
}

// Parse parses save content. Unknown sections and keys are skipped; a save
// written by a newer simulator build still loads.
func Parse(content string) (*Championship, error) {
	championship := New()

	for _, sec := range splitSections(content) {
		var err error
		switch {
		case sec.name == "CAREER":
			err = applySection(sec.lines, careerSetters, &championship.Career)
		case sec.name == "VEHICLE":
			vehicle := NewVehicleEntry(0, "")
			if err = parseVehicle(sec.lines, &vehicle); err == nil {
				championship.Vehicles = append(championship.Vehicles, vehicle)
			}
		case sec.name == "CAREERSEASON":
			err = applySection(sec.lines, seasonSetters, &championship.Season)
		case sec.name == "PLAYER":
			err = applySection(sec.lines, participantSetters, &championship.Player)
			championship.Player.ControlType = 0
		case strings.HasPrefix(sec.name, "OPPONENT"):
			opponent := NewOpponent(opponentID(sec.name), "", "")
			if err = applySection(sec.lines, participantSetters, &opponent.Participant); err == nil {
				if opponent.Name == "" {
					opponent.Name = fmt.Sprintf("Opponent %d", opponent.ID)
				}
				championship.Opponents = append(championship.Opponents, opponent)
			}
		case sec.name == "PLAYERTRACKSTAT":
			var stat TrackStat
			if err = parseTrackStat(sec.lines, &stat); err == nil {
				championship.TrackStats = append(championship.TrackStats, stat)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("section [%s]: %w", sec.name, err)
		}
	}

	return championship, nil
}

type section struct {
	name  string
	lines []string
}

func splitSections(content string) []section {
	var sections []section
	current := -1

	for _, line := range strings.Split(content, "\n") {
		if match := sectionPattern.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			sections = append(sections, section{name: match[1]})
			current++
			continue
		}
		if current >= 0 {
			sections[current].lines = append(sections[current].lines, line)
		}
	}
	return sections
}

// applySection feeds every key=value line of a section through its setter
// table.
func applySection[T any](lines []string, setters map[string]func(*T, string) error, target *T) error {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		match := keyValuePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if setter, ok := setters[match[1]]; ok {
			if err := setter(target, match[2]); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseVehicle handles the one key the format writes with a colon instead of
// an equals sign, then defers to the setter table.
func parseVehicle(lines []string, vehicle *VehicleEntry) error {
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "UpgradeList:") {
			vehicle.UpgradeList = strings.TrimPrefix(trimmed, "UpgradeList:")
		}
	}
	return applySection(lines, vehicleSetters, vehicle)
}

// parseTrackStat keeps every ClassRecord line verbatim, in file order.
func parseTrackStat(lines []string, stat *TrackStat) error {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		match := keyValuePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		switch match[1] {
		case "TrackName":
			stat.TrackName = unquote(match[2])
		case "TrackFile":
			stat.TrackFile = unquote(match[2])
		case "ClassRecord":
			stat.ClassRecords = append(stat.ClassRecords, match[2])
		}
	}
	return nil
}

// opponentID extracts the numeric suffix of an OPPONENTxx section name. A
// missing or malformed suffix yields zero.
func opponentID(name string) int {
	if len(name) <= len("OPPONENT") {
		return 0
	}
	id, err := strconv.Atoi(name[len("OPPONENT"):])
	if err != nil {
		return 0
	}
	return id
}

func unquote(value string) string {
	return strings.Trim(strings.TrimSpace(value), `"`)
}

// parseIntValue accepts integers written as floats, which some saves carry.
func parseIntValue(key, value string) (int, error) {
	value = unquote(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", gamefile.ErrFormat, key, value)
	}
	return int(f), nil
}

func parseFloatValue(key, value string) (float64, error) {
	value = unquote(value)
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", gamefile.ErrFormat, key, value)
	}
	return f, nil
}

// parsePair reads a value like (10.000,10.000). Anything malformed yields
// the zero pair.
func parsePair(value string) Pair {
	match := pairPattern.FindStringSubmatch(value)
	if match == nil {
		return Pair{}
	}
	parts := strings.Split(match[1], ",")
	if len(parts) != 2 {
		return Pair{}
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errX != nil || errY != nil {
		return Pair{}
	}
	return Pair{X: x, Y: y}
}

func setString[T any](field func(*T) *string) func(*T, string) error {
	return func(t *T, value string) error {
		*field(t) = unquote(value)
		return nil
	}
}

func setInt[T any](key string, field func(*T) *int) func(*T, string) error {
	return func(t *T, value string) error {
		n, err := parseIntValue(key, value)
		if err != nil {
			return err
		}
		*field(t) = n
		return nil
	}
}

func setFloat[T any](key string, field func(*T) *float64) func(*T, string) error {
	return func(t *T, value string) error {
		f, err := parseFloatValue(key, value)
		if err != nil {
			return err
		}
		*field(t) = f
		return nil
	}
}

func setPair[T any](field func(*T) *Pair) func(*T, string) error {
	return func(t *T, value string) error {
		*field(t) = parsePair(value)
		return nil
	}
}

var careerSetters = map[string]func(*CareerStats, string) error{
	"Experience":   setInt("Experience", func(c *CareerStats) *int { return &c.Experience }),
	"Money":        setInt("Money", func(c *CareerStats) *int { return &c.Money }),
	"CurSeasIndex": setInt("CurSeasIndex", func(c *CareerStats) *int { return &c.CurSeasIndex }),

	"SinglePlayerVehicle": setString(func(c *CareerStats) *string { return &c.SinglePlayerVehicle }),
	"SinglePlayerFilter":  setString(func(c *CareerStats) *string { return &c.SinglePlayerFilter }),
	"MultiPlayerFilter":   setString(func(c *CareerStats) *string { return &c.MultiPlayerFilter }),

	"AIRealism":              setFloat("AIRealism", func(c *CareerStats) *float64 { return &c.AIRealism }),
	"SinglePlayerAIStrength": setInt("SinglePlayerAIStrength", func(c *CareerStats) *int { return &c.SinglePlayerAIStrength }),
	"MultiPlayerAIStrength":  setInt("MultiPlayerAIStrength", func(c *CareerStats) *int { return &c.MultiPlayerAIStrength }),

	"AbortedSeasons":     setInt("AbortedSeasons", func(c *CareerStats) *int { return &c.AbortedSeasons }),
	"TotalLaps":          setInt("TotalLaps", func(c *CareerStats) *int { return &c.TotalLaps }),
	"TotalRaces":         setInt("TotalRaces", func(c *CareerStats) *int { return &c.TotalRaces }),
	"TotalRacesWithAI":   setInt("TotalRacesWithAI", func(c *CareerStats) *int { return &c.TotalRacesWithAI }),
	"TotalPointsScored":  setInt("TotalPointsScored", func(c *CareerStats) *int { return &c.TotalPointsScored }),
	"TotalChampionships": setInt("TotalChampionships", func(c *CareerStats) *int { return &c.TotalChampionships }),
	"TotalWins":          setInt("TotalWins", func(c *CareerStats) *int { return &c.TotalWins }),
	"TotalPoles":         setInt("TotalPoles", func(c *CareerStats) *int { return &c.TotalPoles }),
	"TotalLapRecords":    setInt("TotalLapRecords", func(c *CareerStats) *int { return &c.TotalLapRecords }),

	"AvgStartPosition":    setFloat("AvgStartPosition", func(c *CareerStats) *float64 { return &c.AvgStartPosition }),
	"AvgFinishPosition":   setFloat("AvgFinishPosition", func(c *CareerStats) *float64 { return &c.AvgFinishPosition }),
	"AvgRaceDistance":     setFloat("AvgRaceDistance", func(c *CareerStats) *float64 { return &c.AvgRaceDistance }),
	"AvgOpponentStrength": setFloat("AvgOpponentStrength", func(c *CareerStats) *float64 { return &c.AvgOpponentStrength }),
}

var vehicleSetters = map[string]func(*VehicleEntry, string) error{
	"ID":           setInt("ID", func(v *VehicleEntry) *int { return &v.ID }),
	"File":         setString(func(v *VehicleEntry) *string { return &v.File }),
	"Skin":         setString(func(v *VehicleEntry) *string { return &v.Skin }),
	"MetersDriven": setInt("MetersDriven", func(v *VehicleEntry) *int { return &v.MetersDriven }),
	"MoneySpent":   setInt("MoneySpent", func(v *VehicleEntry) *int { return &v.MoneySpent }),
	"FreeVehicle":  setInt("FreeVehicle", func(v *VehicleEntry) *int { return &v.FreeVehicle }),
	"Seat":         setPair(func(v *VehicleEntry) *Pair { return &v.Seat }),
	"Mirror":       setPair(func(v *VehicleEntry) *Pair { return &v.Mirror }),
}

var seasonSetters = map[string]func(*SeasonSettings, string) error{
	"Name":            setString(func(s *SeasonSettings) *string { return &s.Name }),
	"SeasonStatus":    setInt("SeasonStatus", func(s *SeasonSettings) *int { return &s.SeasonStatus }),
	"RaceSession":     setInt("RaceSession", func(s *SeasonSettings) *int { return &s.RaceSession }),
	"RaceOver":        setInt("RaceOver", func(s *SeasonSettings) *int { return &s.RaceOver }),
	"CurrentRace":     setInt("CurrentRace", func(s *SeasonSettings) *int { return &s.CurrentRace }),
	"PlayerVehicleID": setInt("PlayerVehicleID", func(s *SeasonSettings) *int { return &s.PlayerVehicleID }),

	"MECHFAIL_rate":            setInt("MECHFAIL_rate", func(s *SeasonSettings) *int { return &s.MechFailRate }),
	"GAMEOPT_damagemultiplier": setInt("GAMEOPT_damagemultiplier", func(s *SeasonSettings) *int { return &s.DamageMultiplier }),
	"GAMEOPT_fuel_mult":        setInt("GAMEOPT_fuel_mult", func(s *SeasonSettings) *int { return &s.FuelMult }),
	"GAMEOPT_tire_mult":        setInt("GAMEOPT_tire_mult", func(s *SeasonSettings) *int { return &s.TireMult }),

	"RACECOND_reconnaissance":      setInt("RACECOND_reconnaissance", func(s *SeasonSettings) *int { return &s.Reconnaissance }),
	"RACECOND_walkthrough":         setInt("RACECOND_walkthrough", func(s *SeasonSettings) *int { return &s.Walkthrough }),
	"RACECOND_formation":           setInt("RACECOND_formation", func(s *SeasonSettings) *int { return &s.Formation }),
	"RACECOND_safetycarcollision":  setInt("RACECOND_safetycarcollision", func(s *SeasonSettings) *int { return &s.SafetyCarCollision }),
	"RACECOND_safetycar_thresh":    setFloat("RACECOND_safetycar_thresh", func(s *SeasonSettings) *float64 { return &s.SafetyCarThresh }),
	"RACECOND_flag_rules":          setInt("RACECOND_flag_rules", func(s *SeasonSettings) *int { return &s.FlagRules }),
	"RACECOND_blue_flags":          setInt("RACECOND_blue_flags", func(s *SeasonSettings) *int { return &s.BlueFlags }),
	"RACECOND_weather":             setInt("RACECOND_weather", func(s *SeasonSettings) *int { return &s.Weather }),
	"RACECOND_timescaled_weather":  setInt("RACECOND_timescaled_weather", func(s *SeasonSettings) *int { return &s.TimescaledWeather }),
	"RACECOND_race_starting_time":  setInt("RACECOND_race_starting_time", func(s *SeasonSettings) *int { return &s.RaceStartingTime }),
	"RACECOND_race_timescale":      setInt("RACECOND_race_timescale", func(s *SeasonSettings) *int { return &s.RaceTimescale }),
	"RACECOND_private_qual":        setInt("RACECOND_private_qual", func(s *SeasonSettings) *int { return &s.PrivateQual }),
	"RACECOND_parc_ferme":          setInt("RACECOND_parc_ferme", func(s *SeasonSettings) *int { return &s.ParcFerme }),

	"GAMEOPT_ai_driverstrength":    setInt("GAMEOPT_ai_driverstrength", func(s *SeasonSettings) *int { return &s.AIDriverStrength }),
	"GAMEOPT_free_settings":        setInt("GAMEOPT_free_settings", func(s *SeasonSettings) *int { return &s.FreeSettings }),
	"GAMEOPT_race_finish_criteria": setInt("GAMEOPT_race_finish_criteria", func(s *SeasonSettings) *int { return &s.RaceFinishCriteria }),
	"GAMEOPT_race_laps":            setInt("GAMEOPT_race_laps", func(s *SeasonSettings) *int { return &s.RaceLaps }),
	"GAMEOPT_race_time":            setInt("GAMEOPT_race_time", func(s *SeasonSettings) *int { return &s.RaceTime }),
	"GAMEOPT_race_length":          setFloat("GAMEOPT_race_length", func(s *SeasonSettings) *float64 { return &s.RaceLength }),
	"GAMEOPT_opponents":            setInt("GAMEOPT_opponents", func(s *SeasonSettings) *int { return &s.Opponents }),
	"GAMEOPT_speed_comp":           setInt("GAMEOPT_speed_comp", func(s *SeasonSettings) *int { return &s.SpeedComp }),
	"GAMEOPT_crash_recovery":       setInt("GAMEOPT_crash_recovery", func(s *SeasonSettings) *int { return &s.CrashRecovery }),
}

var participantSetters = map[string]func(*Participant, string) error{
	"Name":                 setString(func(p *Participant) *string { return &p.Name }),
	"VehFile":              setString(func(p *Participant) *string { return &p.VehFile }),
	"RCDFile":              setString(func(p *Participant) *string { return &p.RCDFile }),
	"SeasonPoints":         setInt("SeasonPoints", func(p *Participant) *int { return &p.SeasonPoints }),
	"PointsPosition":       setInt("PointsPosition", func(p *Participant) *int { return &p.PointsPosition }),
	"PolesTaken":           setInt("PolesTaken", func(p *Participant) *int { return &p.PolesTaken }),
	"OriginalGridPosition": setInt("OriginalGridPosition", func(p *Participant) *int { return &p.OriginalGridPosition }),
	"CurrentGridPosition":  setInt("CurrentGridPosition", func(p *Participant) *int { return &p.CurrentGridPosition }),
	"ControlType":          setInt("ControlType", func(p *Participant) *int { return &p.ControlType }),
	"Active":               setInt("Active", func(p *Participant) *int { return &p.Active }),
}
