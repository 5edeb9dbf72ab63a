package rfm

import (
	"fmt"
	"strconv"
	"strings"

	"paddock/internal/gamefile"
)

// The parser dispatches every key through static setter tables. Unknown keys
// are skipped, matching what the simulator does.

func applySetter[T any](setters map[string]func(*T, string) error, target *T, key, value string) error {
	setter, ok := setters[key]
	if !ok {
		return nil
	}
	return setter(target, value)
}

func applyModSetter(mod *Mod, key, value string) error {
	if setter, ok := modSetters[key]; ok {
		return setter(mod, value)
	}
	return applySetter(careerSetters, &mod.Career, key, value)
}

func parseIntValue(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", gamefile.ErrFormat, key, value)
	}
	return n, nil
}

func parseFloatValue(key, value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", gamefile.ErrFormat, key, value)
	}
	return f, nil
}

func setString[T any](field func(*T) *string) func(*T, string) error {
	return func(t *T, value string) error {
		*field(t) = value
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

func setOptionalInt[T any](key string, field func(*T) **int) func(*T, string) error {
	return func(t *T, value string) error {
		n, err := parseIntValue(key, value)
		if err != nil {
			return err
		}
		*field(t) = &n
		return nil
	}
}

var modSetters = map[string]func(*Mod, string) error{
	"Mod Name":          setString(func(m *Mod) *string { return &m.ModName }),
	"Vehicle Filter":    setString(func(m *Mod) *string { return &m.VehicleFilter }),
	"Track Filter":      setString(func(m *Mod) *string { return &m.TrackFilter }),
	"SafetyCar":         setString(func(m *Mod) *string { return &m.SafetyCar }),
	"Matchmaker":        setString(func(m *Mod) *string { return &m.Matchmaker }),
	"RaceCast Location": setString(func(m *Mod) *string { return &m.RaceCastLocation }),

	"Max Opponents":              setInt("Max Opponents", func(m *Mod) *int { return &m.MaxOpponents }),
	"Min Championship Opponents": setInt("Min Championship Opponents", func(m *Mod) *int { return &m.MinOpponents }),
	"Matchmaker TCP Port":        setInt("Matchmaker TCP Port", func(m *Mod) *int { return &m.MatchmakerTCPPort }),
	"Matchmaker UDP Port":        setInt("Matchmaker UDP Port", func(m *Mod) *int { return &m.MatchmakerUDPPort }),
	"Loading Bar Color":          setInt("Loading Bar Color", func(m *Mod) *int { return &m.LoadingBarColor }),

	"PitOrderByQualifying": func(m *Mod, value string) error {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "true", "1", "yes":
			m.PitOrderByQualifying = true
		default:
			m.PitOrderByQualifying = false
		}
		return nil
	},
}

var careerSetters = map[string]func(*CareerSettings, string) error{
	"StartingMoney":      setInt("StartingMoney", func(c *CareerSettings) *int { return &c.StartingMoney }),
	"StartingExperience": setInt("StartingExperience", func(c *CareerSettings) *int { return &c.StartingExperience }),
	"DriveAnyUnlocked":   setInt("DriveAnyUnlocked", func(c *CareerSettings) *int { return &c.DriveAnyUnlocked }),

	// One vehicle per line or several comma separated; they accumulate.
	"StartingVehicle": func(c *CareerSettings, value string) error {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				c.StartingVehicles = append(c.StartingVehicles, item)
			}
		}
		return nil
	},

	"BaseCreditMult": setFloat("BaseCreditMult", func(c *CareerSettings) *float64 { return &c.BaseCreditMult }),
	"LapMoneyMult":   setFloat("LapMoneyMult", func(c *CareerSettings) *float64 { return &c.LapMoneyMult }),
	"LapExpMult":     setFloat("LapExpMult", func(c *CareerSettings) *float64 { return &c.LapExpMult }),
	"FineMoneyMult":  setFloat("FineMoneyMult", func(c *CareerSettings) *float64 { return &c.FineMoneyMult }),
	"FineExpMult":    setFloat("FineExpMult", func(c *CareerSettings) *float64 { return &c.FineExpMult }),

	"PoleSingleMoneyMult": setFloat("PoleSingleMoneyMult", func(c *CareerSettings) *float64 { return &c.PoleSingleMoneyMult }),
	"PoleSingleExpMult":   setFloat("PoleSingleExpMult", func(c *CareerSettings) *float64 { return &c.PoleSingleExpMult }),
	"PoleCareerMoneyMult": setFloat("PoleCareerMoneyMult", func(c *CareerSettings) *float64 { return &c.PoleCareerMoneyMult }),
	"PoleCareerExpMult":   setFloat("PoleCareerExpMult", func(c *CareerSettings) *float64 { return &c.PoleCareerExpMult }),
	"PoleMultiMoneyMult":  setFloat("PoleMultiMoneyMult", func(c *CareerSettings) *float64 { return &c.PoleMultiMoneyMult }),
	"PoleMultiExpMult":    setFloat("PoleMultiExpMult", func(c *CareerSettings) *float64 { return &c.PoleMultiExpMult }),

	"WinSingleMoneyMult": setFloat("WinSingleMoneyMult", func(c *CareerSettings) *float64 { return &c.WinSingleMoneyMult }),
	"WinSingleExpMult":   setFloat("WinSingleExpMult", func(c *CareerSettings) *float64 { return &c.WinSingleExpMult }),
	"WinCareerMoneyMult": setFloat("WinCareerMoneyMult", func(c *CareerSettings) *float64 { return &c.WinCareerMoneyMult }),
	"WinCareerExpMult":   setFloat("WinCareerExpMult", func(c *CareerSettings) *float64 { return &c.WinCareerExpMult }),
	"WinMultiMoneyMult":  setFloat("WinMultiMoneyMult", func(c *CareerSettings) *float64 { return &c.WinMultiMoneyMult }),
	"WinMultiExpMult":    setFloat("WinMultiExpMult", func(c *CareerSettings) *float64 { return &c.WinMultiExpMult }),

	"PointsSingleMoneyMult": setFloat("PointsSingleMoneyMult", func(c *CareerSettings) *float64 { return &c.PointsSingleMoneyMult }),
	"PointsSingleExpMult":   setFloat("PointsSingleExpMult", func(c *CareerSettings) *float64 { return &c.PointsSingleExpMult }),
	"PointsCareerMoneyMult": setFloat("PointsCareerMoneyMult", func(c *CareerSettings) *float64 { return &c.PointsCareerMoneyMult }),
	"PointsCareerExpMult":   setFloat("PointsCareerExpMult", func(c *CareerSettings) *float64 { return &c.PointsCareerExpMult }),
	"PointsMultiMoneyMult":  setFloat("PointsMultiMoneyMult", func(c *CareerSettings) *float64 { return &c.PointsMultiMoneyMult }),
	"PointsMultiExpMult":    setFloat("PointsMultiExpMult", func(c *CareerSettings) *float64 { return &c.PointsMultiExpMult }),
}

var scoringSetters = map[string]func(*DefaultScoring, string) error{
	"RacePitKPH":   setInt("RacePitKPH", func(s *DefaultScoring) *int { return &s.RacePitKPH }),
	"NormalPitKPH": setInt("NormalPitKPH", func(s *DefaultScoring) *int { return &s.NormalPitKPH }),

	"Practice1Day":      setString(func(s *DefaultScoring) *string { return &s.Practice1Day }),
	"Practice1Start":    setString(func(s *DefaultScoring) *string { return &s.Practice1Start }),
	"Practice1Duration": setInt("Practice1Duration", func(s *DefaultScoring) *int { return &s.Practice1Duration }),
	"Practice2Day":      setString(func(s *DefaultScoring) *string { return &s.Practice2Day }),
	"Practice2Start":    setString(func(s *DefaultScoring) *string { return &s.Practice2Start }),
	"Practice2Duration": setInt("Practice2Duration", func(s *DefaultScoring) *int { return &s.Practice2Duration }),
	"Practice3Day":      setString(func(s *DefaultScoring) *string { return &s.Practice3Day }),
	"Practice3Start":    setString(func(s *DefaultScoring) *string { return &s.Practice3Start }),
	"Practice3Duration": setInt("Practice3Duration", func(s *DefaultScoring) *int { return &s.Practice3Duration }),
	"Practice4Day":      setString(func(s *DefaultScoring) *string { return &s.Practice4Day }),
	"Practice4Start":    setString(func(s *DefaultScoring) *string { return &s.Practice4Start }),
	"Practice4Duration": setInt("Practice4Duration", func(s *DefaultScoring) *int { return &s.Practice4Duration }),

	"QualifyDay":      setString(func(s *DefaultScoring) *string { return &s.QualifyDay }),
	"QualifyStart":    setString(func(s *DefaultScoring) *string { return &s.QualifyStart }),
	"QualifyDuration": setInt("QualifyDuration", func(s *DefaultScoring) *int { return &s.QualifyDuration }),
	"QualifyLaps":     setInt("QualifyLaps", func(s *DefaultScoring) *int { return &s.QualifyLaps }),

	"WarmupDay":      setString(func(s *DefaultScoring) *string { return &s.WarmupDay }),
	"WarmupStart":    setString(func(s *DefaultScoring) *string { return &s.WarmupStart }),
	"WarmupDuration": setInt("WarmupDuration", func(s *DefaultScoring) *int { return &s.WarmupDuration }),

	"RaceDay":   setString(func(s *DefaultScoring) *string { return &s.RaceDay }),
	"RaceStart": setString(func(s *DefaultScoring) *string { return &s.RaceStart }),
	"RaceLaps":  setInt("RaceLaps", func(s *DefaultScoring) *int { return &s.RaceLaps }),
	"RaceTime":  setInt("RaceTime", func(s *DefaultScoring) *int { return &s.RaceTime }),
}

var seasonScoringSetters = map[string]func(*SeasonScoring, string) error{
	"FirstPlace":   setInt("FirstPlace", func(s *SeasonScoring) *int { return &s.FirstPlace }),
	"SecondPlace":  setInt("SecondPlace", func(s *SeasonScoring) *int { return &s.SecondPlace }),
	"ThirdPlace":   setInt("ThirdPlace", func(s *SeasonScoring) *int { return &s.ThirdPlace }),
	"FourthPlace":  setInt("FourthPlace", func(s *SeasonScoring) *int { return &s.FourthPlace }),
	"FifthPlace":   setInt("FifthPlace", func(s *SeasonScoring) *int { return &s.FifthPlace }),
	"SixthPlace":   setInt("SixthPlace", func(s *SeasonScoring) *int { return &s.SixthPlace }),
	"SeventhPlace": setInt("SeventhPlace", func(s *SeasonScoring) *int { return &s.SeventhPlace }),
	"EighthPlace":  setInt("EighthPlace", func(s *SeasonScoring) *int { return &s.EighthPlace }),
}

var seasonSetters = map[string]func(*Season, string) error{
	"Vehicle Filter":             setString(func(s *Season) *string { return &s.VehicleFilter }),
	"FullSeasonName":             setString(func(s *Season) *string { return &s.FullSeasonName }),
	"Min Championship Opponents": setInt("Min Championship Opponents", func(s *Season) *int { return &s.MinOpponents }),
	"MinExperience":              setOptionalInt("MinExperience", func(s *Season) **int { return &s.MinExperience }),
	"EntryFee":                   setOptionalInt("EntryFee", func(s *Season) **int { return &s.EntryFee }),
}
