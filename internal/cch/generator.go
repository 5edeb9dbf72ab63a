package cch

import (
	"fmt"
	"strings"

	"paddock/internal/gamefile"
)

// fileHeader is the comment the simulator stamps on every save it writes.
const fileHeader = "//[[gMa1.002f (c)2007    ]] [[            ]]"

// Generate renders a championship save.
func Generate(championship *Championship) string {
	var b strings.Builder

	b.WriteString(fileHeader + "\n")
	writeCareer(&b, &championship.Career)
	for i := range championship.Vehicles {
		writeVehicle(&b, &championship.Vehicles[i])
	}
	writeSeason(&b, &championship.Season)
	writeParticipant(&b, "PLAYER", &championship.Player)
	for i := range championship.Opponents {
		opponent := &championship.Opponents[i]
		writeParticipant(&b, fmt.Sprintf("OPPONENT%02d", opponent.ID), &opponent.Participant)
	}
	for i := range championship.TrackStats {
		writeTrackStat(&b, &championship.TrackStats[i])
	}

	return b.String()
}

// GenerateFile renders the championship and writes it to path.
func GenerateFile(championship *Championship, path string) error {
	return gamefile.WriteFile(path, Generate(championship))
}

func writeCareer(b *strings.Builder, c *CareerStats) {
	b.WriteString("[CAREER]\n")
	fmt.Fprintf(b, "Experience=%d\n", c.Experience)
	fmt.Fprintf(b, "Money=%d\n", c.Money)
	fmt.Fprintf(b, "CurSeasIndex=%d\n", c.CurSeasIndex)
	fmt.Fprintf(b, "SinglePlayerVehicle=\"%s\"\n", c.SinglePlayerVehicle)
	fmt.Fprintf(b, "SinglePlayerFilter=\"%s\"\n", c.SinglePlayerFilter)
	fmt.Fprintf(b, "MultiPlayerFilter=\"%s\"\n", c.MultiPlayerFilter)
	fmt.Fprintf(b, "AIRealism=%.4f\n", c.AIRealism)
	fmt.Fprintf(b, "SinglePlayerAIStrength=%d\n", c.SinglePlayerAIStrength)
	fmt.Fprintf(b, "MultiPlayerAIStrength=%d\n", c.MultiPlayerAIStrength)
	fmt.Fprintf(b, "AbortedSeasons=%d\n", c.AbortedSeasons)
	fmt.Fprintf(b, "TotalLaps=%d\n", c.TotalLaps)
	fmt.Fprintf(b, "TotalRaces=%d\n", c.TotalRaces)
	fmt.Fprintf(b, "TotalRacesWithAI=%d\n", c.TotalRacesWithAI)
	fmt.Fprintf(b, "TotalPointsScored=%d\n", c.TotalPointsScored)
	fmt.Fprintf(b, "TotalChampionships=%d\n", c.TotalChampionships)
	fmt.Fprintf(b, "TotalWins=%d\n", c.TotalWins)
	fmt.Fprintf(b, "TotalPoles=%d\n", c.TotalPoles)
	fmt.Fprintf(b, "TotalLapRecords=%d\n", c.TotalLapRecords)
	fmt.Fprintf(b, "AvgStartPosition=%.6f\n", c.AvgStartPosition)
	fmt.Fprintf(b, "AvgFinishPosition=%.6f\n", c.AvgFinishPosition)
	fmt.Fprintf(b, "AvgRaceDistance=%.6f\n", c.AvgRaceDistance)
	fmt.Fprintf(b, "AvgOpponentStrength=%.6f\n", c.AvgOpponentStrength)
}

func writeVehicle(b *strings.Builder, v *VehicleEntry) {
	b.WriteString("[VEHICLE]\n")
	fmt.Fprintf(b, "ID=%d\n", v.ID)
	fmt.Fprintf(b, "File=\"%s\"\n", v.File)
	fmt.Fprintf(b, "Skin=\"%s\"\n", v.Skin)
	fmt.Fprintf(b, "MetersDriven=%d\n", v.MetersDriven)
	fmt.Fprintf(b, "MoneySpent=%d\n", v.MoneySpent)
	fmt.Fprintf(b, "FreeVehicle=%d\n", v.FreeVehicle)
	fmt.Fprintf(b, "Seat=(%.3f,%.3f)\n", v.Seat.X, v.Seat.Y)
	fmt.Fprintf(b, "Mirror=(%.3f,%.3f)\n", v.Mirror.X, v.Mirror.Y)
	fmt.Fprintf(b, "UpgradeList:%s\n", v.UpgradeList)
	b.WriteString("\n")
}

func writeSeason(b *strings.Builder, s *SeasonSettings) {
	b.WriteString("[CAREERSEASON]\n")
	fmt.Fprintf(b, "Name=\"%s\"\n", s.Name)
	fmt.Fprintf(b, "SeasonStatus=%d\n", s.SeasonStatus)
	fmt.Fprintf(b, "RaceSession=%d\n", s.RaceSession)
	fmt.Fprintf(b, "RaceOver=%d\n", s.RaceOver)
	fmt.Fprintf(b, "CurrentRace=%d\n", s.CurrentRace)
	fmt.Fprintf(b, "PlayerVehicleID=%d\n", s.PlayerVehicleID)
	b.WriteString("// Season championship settings (these override the plr file values)\n")
	fmt.Fprintf(b, "MECHFAIL_rate=%d\n", s.MechFailRate)
	fmt.Fprintf(b, "RACECOND_reconnaissance=%d\n", s.Reconnaissance)
	fmt.Fprintf(b, "RACECOND_walkthrough=%d\n", s.Walkthrough)
	fmt.Fprintf(b, "RACECOND_formation=%d\n", s.Formation)
	fmt.Fprintf(b, "RACECOND_safetycarcollision=%d\n", s.SafetyCarCollision)
	fmt.Fprintf(b, "RACECOND_safetycar_thresh=%.6f\n", s.SafetyCarThresh)
	fmt.Fprintf(b, "RACECOND_flag_rules=%d\n", s.FlagRules)
	fmt.Fprintf(b, "RACECOND_blue_flags=%d\n", s.BlueFlags)
	fmt.Fprintf(b, "RACECOND_weather=%d\n", s.Weather)
	fmt.Fprintf(b, "RACECOND_timescaled_weather=%d\n", s.TimescaledWeather)
	fmt.Fprintf(b, "RACECOND_race_starting_time=%d\n", s.RaceStartingTime)
	fmt.Fprintf(b, "RACECOND_race_timescale=%d\n", s.RaceTimescale)
	fmt.Fprintf(b, "RACECOND_private_qual=%d\n", s.PrivateQual)
	fmt.Fprintf(b, "RACECOND_parc_ferme=%d\n", s.ParcFerme)
	fmt.Fprintf(b, "GAMEOPT_ai_driverstrength=%d\n", s.AIDriverStrength)
	fmt.Fprintf(b, "GAMEOPT_free_settings=%d\n", s.FreeSettings)
	fmt.Fprintf(b, "GAMEOPT_damagemultiplier=%d\n", s.DamageMultiplier)
	fmt.Fprintf(b, "GAMEOPT_race_finish_criteria=%d\n", s.RaceFinishCriteria)
	fmt.Fprintf(b, "GAMEOPT_race_laps=%d\n", s.RaceLaps)
	fmt.Fprintf(b, "GAMEOPT_race_time=%d\n", s.RaceTime)
	fmt.Fprintf(b, "GAMEOPT_race_length=%.6f\n", s.RaceLength)
	fmt.Fprintf(b, "GAMEOPT_opponents=%d\n", s.Opponents)
	fmt.Fprintf(b, "GAMEOPT_fuel_mult=%d\n", s.FuelMult)
	fmt.Fprintf(b, "GAMEOPT_tire_mult=%d\n", s.TireMult)
	fmt.Fprintf(b, "GAMEOPT_speed_comp=%d\n", s.SpeedComp)
	fmt.Fprintf(b, "GAMEOPT_crash_recovery=%d\n", s.CrashRecovery)
}

func writeParticipant(b *strings.Builder, sectionName string, p *Participant) {
	fmt.Fprintf(b, "[%s]\n", sectionName)
	fmt.Fprintf(b, "Name=\"%s\"\n", p.Name)
	fmt.Fprintf(b, "VehFile=\"%s\"\n", p.VehFile)
	fmt.Fprintf(b, "RCDFile=\"%s\"\n", p.RCDFile)
	fmt.Fprintf(b, "SeasonPoints=%d\n", p.SeasonPoints)
	fmt.Fprintf(b, "PointsPosition=%d\n", p.PointsPosition)
	fmt.Fprintf(b, "PolesTaken=%d\n", p.PolesTaken)
	fmt.Fprintf(b, "OriginalGridPosition=%d\n", p.OriginalGridPosition)
	fmt.Fprintf(b, "CurrentGridPosition=%d\n", p.CurrentGridPosition)
	fmt.Fprintf(b, "ControlType=%d\n", p.ControlType)
	fmt.Fprintf(b, "Active=%d\n", p.Active)
	b.WriteString("\n")
}

func writeTrackStat(b *strings.Builder, stat *TrackStat) {
	b.WriteString("[PLAYERTRACKSTAT]\n")
	fmt.Fprintf(b, "TrackName=%s\n", stat.TrackName)
	fmt.Fprintf(b, "TrackFile=%s\n", stat.TrackFile)
	for _, record := range stat.ClassRecords {
		fmt.Fprintf(b, "ClassRecord=%s\n", record)
	}
	b.WriteString("\n")
}
