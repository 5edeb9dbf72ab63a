package rfm

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"paddock/internal/gamefile"
)

// Generate renders the mod definition in the layout the simulator ships its
// stock files in: header, overrides, seasons, scoring, career, points table,
// scene order, pit groups.
func Generate(mod *Mod) string {
	var b strings.Builder

	writeHeader(&b, mod)
	writeConfigOverrides(&b, mod)
	writeSeasons(&b, mod)
	writeDefaultScoring(&b, &mod.Scoring)
	writeCareerSettings(&b, &mod.Career)
	writeSeasonScoring(&b, &mod.SeasonScoring)
	writeSceneOrder(&b, mod.SceneOrder)
	writePitGroups(&b, mod)

	return b.String()
}

// GenerateFile renders the mod and writes it to path.
func GenerateFile(mod *Mod, path string) error {
	return gamefile.WriteFile(path, Generate(mod))
}

func writeHeader(b *strings.Builder, mod *Mod) {
	b.WriteString("// Game/Season Info:\n")
	fmt.Fprintf(b, "Mod Name = %s\n", mod.ModName)
	fmt.Fprintf(b, "Track Filter = %s\n", mod.TrackFilter)
	fmt.Fprintf(b, "Vehicle Filter = %s\n", mod.VehicleFilter)
	fmt.Fprintf(b, "SafetyCar = %s\n", mod.SafetyCar)
	b.WriteString("\n")

	fmt.Fprintf(b, "Matchmaker = %s\n", mod.Matchmaker)
	fmt.Fprintf(b, "Matchmaker TCP Port = %d\n", mod.MatchmakerTCPPort)
	fmt.Fprintf(b, "Matchmaker UDP Port = %d\n", mod.MatchmakerUDPPort)
	fmt.Fprintf(b, "Loading Bar Color = %d\n", mod.LoadingBarColor)
	fmt.Fprintf(b, "RaceCast Location = %s\n", mod.RaceCastLocation)
	b.WriteString("\n")

	fmt.Fprintf(b, "Max Opponents = %d   // maximum opponents in practice/quick race/grand prix/championship\n", mod.MaxOpponents)
	fmt.Fprintf(b, "Min Championship Opponents = %d // minimum opponents in championship only\n", mod.MinOpponents)
	b.WriteString("\n")
}

func writeConfigOverrides(b *strings.Builder, mod *Mod) {
	if len(mod.ConfigOverrides) == 0 {
		return
	}
	b.WriteString("ConfigOverrides\n{\n")
	for _, key := range sortedKeys(mod.ConfigOverrides) {
		fmt.Fprintf(b, "  %s=%s\n", key, mod.ConfigOverrides[key])
	}
	b.WriteString("}\n\n")
}

func writeSeasons(b *strings.Builder, mod *Mod) {
	if len(mod.Seasons) == 0 {
		return
	}
	b.WriteString("// Seasons:\n\n")
	for _, season := range mod.Seasons {
		fmt.Fprintf(b, "Season = %s\n{\n", season.Name)
		fmt.Fprintf(b, "  Vehicle Filter = %s\n", season.VehicleFilter)
		fmt.Fprintf(b, "  Min Championship Opponents = %d\n", season.MinOpponents)
		if season.FullSeasonName != "" {
			fmt.Fprintf(b, "  FullSeasonName = %s\n", season.FullSeasonName)
		}
		if season.MinExperience != nil {
			fmt.Fprintf(b, "  MinExperience = %d\n", *season.MinExperience)
		}
		if season.EntryFee != nil {
			fmt.Fprintf(b, "  EntryFee = %d\n", *season.EntryFee)
		}
		if len(season.SceneOrder) > 0 {
			b.WriteString("\n  SceneOrder\n  {\n")
			for _, track := range season.SceneOrder {
				fmt.Fprintf(b, "    %s\n", track)
			}
			b.WriteString("  }\n")
		}
		b.WriteString("}\n\n")
	}
}

func writeDefaultScoring(b *strings.Builder, s *DefaultScoring) {
	b.WriteString("\nDefaultScoring\n{\n")

	fmt.Fprintf(b, "  RacePitKPH = %d\n", s.RacePitKPH)
	fmt.Fprintf(b, "  NormalPitKPH = %d\n", s.NormalPitKPH)

	fmt.Fprintf(b, "  Practice1Day = %s\n", s.Practice1Day)
	fmt.Fprintf(b, "  Practice1Start = %s\n", s.Practice1Start)
	fmt.Fprintf(b, "  Practice1Duration = %d\n", s.Practice1Duration)
	fmt.Fprintf(b, "  Practice2Day = %s\n", s.Practice2Day)
	fmt.Fprintf(b, "  Practice2Start = %s\n", s.Practice2Start)
	fmt.Fprintf(b, "  Practice2Duration = %d\n", s.Practice2Duration)
	fmt.Fprintf(b, "  Practice3Day = %s\n", s.Practice3Day)
	fmt.Fprintf(b, "  Practice3Start = %s\n", s.Practice3Start)
	fmt.Fprintf(b, "  Practice3Duration = %d\n", s.Practice3Duration)
	fmt.Fprintf(b, "  Practice4Day = %s\n", s.Practice4Day)
	fmt.Fprintf(b, "  Practice4Start = %s\n", s.Practice4Start)
	fmt.Fprintf(b, "  Practice4Duration = %d\n", s.Practice4Duration)

	fmt.Fprintf(b, "  QualifyDay = %s\n", s.QualifyDay)
	fmt.Fprintf(b, "  QualifyStart = %s\n", s.QualifyStart)
	fmt.Fprintf(b, "  QualifyDuration = %d\n", s.QualifyDuration)
	fmt.Fprintf(b, "  QualifyLaps = %d\n", s.QualifyLaps)

	fmt.Fprintf(b, "  WarmupDay = %s\n", s.WarmupDay)
	fmt.Fprintf(b, "  WarmupStart = %s\n", s.WarmupStart)
	fmt.Fprintf(b, "  WarmupDuration = %d\n", s.WarmupDuration)

	fmt.Fprintf(b, "  RaceDay = %s\n", s.RaceDay)
	fmt.Fprintf(b, "  RaceStart = %s\n", s.RaceStart)
	fmt.Fprintf(b, "  RaceLaps = %d\n", s.RaceLaps)
	fmt.Fprintf(b, "  RaceTime = %d\n", s.RaceTime)

	b.WriteString("}\n\n")
}

func writeCareerSettings(b *strings.Builder, c *CareerSettings) {
	b.WriteString("// Money and experience accumulation (mostly multipliers for hard-coded values\n")
	b.WriteString("// which have various factors taken into account like number of competitors)\n")

	fmt.Fprintf(b, "StartingMoney = %d          // you might need a little spendin' cash\n", c.StartingMoney)
	fmt.Fprintf(b, "StartingExperience = %d       // start with no experience\n", c.StartingExperience)

	for _, vehicle := range c.StartingVehicles {
		fmt.Fprintf(b, "StartingVehicle = %s         // randomly chooses one free vehicle from this list\n", vehicle)
	}

	fmt.Fprintf(b, "DriveAnyUnlocked = %d         // 0 = must own to drive, 1 = must be unlocked to drive, 2 = drive anything\n", c.DriveAnyUnlocked)

	fmt.Fprintf(b, "BaseCreditMult = %s         // base which is multiplied by all the other multipliers\n", mult(c.BaseCreditMult))
	fmt.Fprintf(b, "LapMoneyMult = %s           // laps completed (based roughly on expected lap times)\n", mult(c.LapMoneyMult))
	fmt.Fprintf(b, "LapExpMult = %s\n", mult(c.LapExpMult))
	fmt.Fprintf(b, "FineMoneyMult = %s          // fines\n", mult(c.FineMoneyMult))
	fmt.Fprintf(b, "FineExpMult = %s\n", mult(c.FineExpMult))

	fmt.Fprintf(b, "PoleSingleMoneyMult = %s    // pole positions in single player\n", mult(c.PoleSingleMoneyMult))
	fmt.Fprintf(b, "PoleSingleExpMult = %s\n", mult(c.PoleSingleExpMult))
	fmt.Fprintf(b, "PoleCareerMoneyMult = %s    // pole positions in career mode\n", mult(c.PoleCareerMoneyMult))
	fmt.Fprintf(b, "PoleCareerExpMult = %s\n", mult(c.PoleCareerExpMult))
	fmt.Fprintf(b, "PoleMultiMoneyMult = %s     // pole positions in multiplayer\n", mult(c.PoleMultiMoneyMult))
	fmt.Fprintf(b, "PoleMultiExpMult = %s\n", mult(c.PoleMultiExpMult))

	fmt.Fprintf(b, "WinSingleMoneyMult = %s     // wins in single player\n", mult(c.WinSingleMoneyMult))
	fmt.Fprintf(b, "WinSingleExpMult = %s\n", mult(c.WinSingleExpMult))
	fmt.Fprintf(b, "WinCareerMoneyMult = %s     // wins in career mode\n", mult(c.WinCareerMoneyMult))
	fmt.Fprintf(b, "WinCareerExpMult = %s\n", mult(c.WinCareerExpMult))
	fmt.Fprintf(b, "WinMultiMoneyMult = %s      // wins in multiplayer\n", mult(c.WinMultiMoneyMult))
	fmt.Fprintf(b, "WinMultiExpMult = %s\n", mult(c.WinMultiExpMult))

	fmt.Fprintf(b, "PointsSingleMoneyMult = %s  // points in single player\n", mult(c.PointsSingleMoneyMult))
	fmt.Fprintf(b, "PointsSingleExpMult = %s\n", mult(c.PointsSingleExpMult))
	fmt.Fprintf(b, "PointsCareerMoneyMult = %s  // points in career mode\n", mult(c.PointsCareerMoneyMult))
	fmt.Fprintf(b, "PointsCareerExpMult = %s\n", mult(c.PointsCareerExpMult))
	fmt.Fprintf(b, "PointsMultiMoneyMult = %s   // points in multiplayer\n", mult(c.PointsMultiMoneyMult))
	fmt.Fprintf(b, "PointsMultiExpMult = %s\n", mult(c.PointsMultiExpMult))

	b.WriteString("\n")
}

func writeSeasonScoring(b *strings.Builder, s *SeasonScoring) {
	b.WriteString("// Season scoring info\nSeasonScoringInfo\n{\n")
	fmt.Fprintf(b, "  FirstPlace = %d\n", s.FirstPlace)
	fmt.Fprintf(b, "  SecondPlace = %d\n", s.SecondPlace)
	fmt.Fprintf(b, "  ThirdPlace = %d\n", s.ThirdPlace)
	fmt.Fprintf(b, "  FourthPlace = %d\n", s.FourthPlace)
	fmt.Fprintf(b, "  FifthPlace = %d\n", s.FifthPlace)
	fmt.Fprintf(b, "  SixthPlace = %d\n", s.SixthPlace)
	fmt.Fprintf(b, "  SeventhPlace = %d\n", s.SeventhPlace)
	fmt.Fprintf(b, "  EighthPlace = %d\n", s.EighthPlace)
	b.WriteString("}\n\n")
}

func writeSceneOrder(b *strings.Builder, order []string) {
	if len(order) == 0 {
		return
	}
	b.WriteString("SceneOrder\n{\n")
	for _, track := range order {
		fmt.Fprintf(b, "  %s\n", track)
	}
	b.WriteString("}\n\n")
}

func writePitGroups(b *strings.Builder, mod *Mod) {
	if len(mod.PitGroups) == 0 {
		return
	}
	b.WriteString("// Pitstop locations in order from front to back, with the number\n")
	b.WriteString("// of vehicles sharing each pit ... if the order needs to be\n")
	b.WriteString("// reversed on an individual track, set \"ReversePitOrder=1\" in\n")
	b.WriteString("// the track-specific GDB file.\n")
	b.WriteString("// These are now \"pit group\" names, not necessarily team names.\n")
	b.WriteString("// In the VEH file, the pit group defaults to the team name but\n")
	b.WriteString("// can be overridden by defining \"PitGroup=<name>\".\n")
	fmt.Fprintf(b, "PitOrderByQualifying = %t    // whether to set the pit order in the race by qualifying results\n", mod.PitOrderByQualifying)
	b.WriteString("PitGroupOrder\n{\n")
	b.WriteString("  // format is: PitGroup = <# of vehicles sharing pit>, <groupname>\n")
	for _, group := range mod.PitGroups {
		fmt.Fprintf(b, "  PitGroup = %d, %s\n", group.VehicleCount, group.GroupName)
	}
	b.WriteString("}\n\n")
}

// mult formats a multiplier the way the stock files carry them: integral
// values keep one decimal place.
func mult(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
