package rfm

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"paddock/internal/gamefile"
)

const sampleDefinition = `// Game/Season Info:
Mod Name = Test Championship
Track Filter = *
Vehicle Filter = CH_Test
SafetyCar = Hammer_PC.veh

Matchmaker = match.rfactor.net
Matchmaker TCP Port = 39001
Matchmaker UDP Port = 39002
Loading Bar Color = 16750848
RaceCast Location = racecast.rfactor.net

Max Opponents = 19   // maximum opponents
Min Championship Opponents = 3 // minimum opponents

ConfigOverrides
{
  Race Conditions=2
}

// Seasons:

Season = Sprint Cup
{
  Vehicle Filter = CH_Test
  Min Championship Opponents = 7
  FullSeasonName = Sprint Cup Full Season

  SceneOrder
  {
    Mills_Short
    Toban_Long
  }
}

Season = Endurance
{
  Vehicle Filter = CH_Test
  Min Championship Opponents = 9
  MinExperience = 20
  EntryFee = 1000

  SceneOrder
  {
    Orchard_National
  }
}

DefaultScoring
{
  RacePitKPH = 100
  NormalPitKPH = 120
  Practice1Day = Friday
  Practice1Start = 11:00
  Practice1Duration = 90
  QualifyDay = Saturday
  QualifyStart = 13:00
  QualifyDuration = 30
  QualifyLaps = 8
  RaceDay = Sunday
  RaceStart = 14:00
  RaceLaps = 40
  RaceTime = 90
}

StartingMoney = 2000000          // spending cash
StartingExperience = 10
StartingVehicle = car_one
StartingVehicle = car_two, car_three
DriveAnyUnlocked = 2
BaseCreditMult = 1.5
FineExpMult = 0.0

// Season scoring info
SeasonScoringInfo
{
  FirstPlace = 25
  SecondPlace = 18
  ThirdPlace = 15
  FourthPlace = 12
  FifthPlace = 10
  SixthPlace = 8
  SeventhPlace = 6
  EighthPlace = 4
}

SceneOrder
{
  Mills_Short
  Orchard_National
}

PitOrderByQualifying = true
PitGroupOrder
{
  // format is: PitGroup = <# of vehicles sharing pit>, <groupname>
  PitGroup = 1, Group1
  PitGroup = 2, Group2
}
`

func TestParseFullDefinition(t *testing.T) {
	mod, err := Parse(sampleDefinition)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if mod.ModName != "Test Championship" {
		t.Errorf("ModName = %q, want %q", mod.ModName, "Test Championship")
	}
	if mod.VehicleFilter != "CH_Test" {
		t.Errorf("VehicleFilter = %q, want %q", mod.VehicleFilter, "CH_Test")
	}
	if mod.MatchmakerTCPPort != 39001 || mod.MatchmakerUDPPort != 39002 {
		t.Errorf("matchmaker ports = %d/%d, want 39001/39002", mod.MatchmakerTCPPort, mod.MatchmakerUDPPort)
	}
	if mod.MaxOpponents != 19 || mod.MinOpponents != 3 {
		t.Errorf("opponents = %d/%d, want 19/3", mod.MaxOpponents, mod.MinOpponents)
	}
	if got := mod.ConfigOverrides["Race Conditions"]; got != "2" {
		t.Errorf("ConfigOverrides[Race Conditions] = %q, want %q", got, "2")
	}

	if len(mod.Seasons) != 2 {
		t.Fatalf("len(Seasons) = %d, want 2", len(mod.Seasons))
	}
	sprint := mod.Seasons[0]
	if sprint.Name != "Sprint Cup" {
		t.Errorf("Seasons[0].Name = %q, want %q", sprint.Name, "Sprint Cup")
	}
	if sprint.MinOpponents != 7 {
		t.Errorf("Seasons[0].MinOpponents = %d, want 7", sprint.MinOpponents)
	}
	if sprint.FullSeasonName != "Sprint Cup Full Season" {
		t.Errorf("Seasons[0].FullSeasonName = %q", sprint.FullSeasonName)
	}
	wantOrder := []string{"Mills_Short", "Toban_Long"}
	if len(sprint.SceneOrder) != len(wantOrder) {
		t.Fatalf("Seasons[0].SceneOrder = %v, want %v", sprint.SceneOrder, wantOrder)
	}
	for i, track := range wantOrder {
		if sprint.SceneOrder[i] != track {
			t.Errorf("Seasons[0].SceneOrder[%d] = %q, want %q", i, sprint.SceneOrder[i], track)
		}
	}

	endurance := mod.Seasons[1]
	if endurance.MinExperience == nil || *endurance.MinExperience != 20 {
		t.Errorf("Seasons[1].MinExperience = %v, want 20", endurance.MinExperience)
	}
	if endurance.EntryFee == nil || *endurance.EntryFee != 1000 {
		t.Errorf("Seasons[1].EntryFee = %v, want 1000", endurance.EntryFee)
	}

	if mod.Scoring.RacePitKPH != 100 || mod.Scoring.QualifyLaps != 8 || mod.Scoring.RaceLaps != 40 {
		t.Errorf("scoring = %+v", mod.Scoring)
	}
	if mod.Scoring.Practice1Start != "11:00" {
		t.Errorf("Practice1Start = %q, want %q", mod.Scoring.Practice1Start, "11:00")
	}

	if mod.Career.StartingMoney != 2000000 {
		t.Errorf("StartingMoney = %d, want 2000000", mod.Career.StartingMoney)
	}
	wantVehicles := []string{"car_one", "car_two", "car_three"}
	if len(mod.Career.StartingVehicles) != len(wantVehicles) {
		t.Fatalf("StartingVehicles = %v, want %v", mod.Career.StartingVehicles, wantVehicles)
	}
	for i, vehicle := range wantVehicles {
		if mod.Career.StartingVehicles[i] != vehicle {
			t.Errorf("StartingVehicles[%d] = %q, want %q", i, mod.Career.StartingVehicles[i], vehicle)
		}
	}
	if mod.Career.DriveAnyUnlocked != 2 {
		t.Errorf("DriveAnyUnlocked = %d, want 2", mod.Career.DriveAnyUnlocked)
	}
	if mod.Career.BaseCreditMult != 1.5 {
		t.Errorf("BaseCreditMult = %v, want 1.5", mod.Career.BaseCreditMult)
	}
	if mod.Career.FineExpMult != 0.0 {
		t.Errorf("FineExpMult = %v, want 0", mod.Career.FineExpMult)
	}

	if mod.SeasonScoring.FirstPlace != 25 || mod.SeasonScoring.EighthPlace != 4 {
		t.Errorf("season scoring = %+v", mod.SeasonScoring)
	}

	if len(mod.SceneOrder) != 2 || mod.SceneOrder[0] != "Mills_Short" {
		t.Errorf("SceneOrder = %v", mod.SceneOrder)
	}

	if !mod.PitOrderByQualifying {
		t.Error("PitOrderByQualifying = false, want true")
	}
	if len(mod.PitGroups) != 2 {
		t.Fatalf("len(PitGroups) = %d, want 2", len(mod.PitGroups))
	}
	if mod.PitGroups[1].VehicleCount != 2 || mod.PitGroups[1].GroupName != "Group2" {
		t.Errorf("PitGroups[1] = %+v", mod.PitGroups[1])
	}
}

func TestParseMissingModName(t *testing.T) {
	_, err := Parse("Track Filter = *\nVehicle Filter = CH_Test\n")
	if err == nil {
		t.Fatal("Parse() error = nil, want missing Mod Name error")
	}
	if !errors.Is(err, gamefile.ErrFormat) {
		t.Errorf("Parse() error = %v, want ErrFormat", err)
	}
}

func TestParseDefaultsSurviveSparseInput(t *testing.T) {
	mod, err := Parse("Mod Name = Bare\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if mod.TrackFilter != "*" {
		t.Errorf("TrackFilter = %q, want %q", mod.TrackFilter, "*")
	}
	if mod.SafetyCar != "Hammer_PC.veh" {
		t.Errorf("SafetyCar = %q, want %q", mod.SafetyCar, "Hammer_PC.veh")
	}
	if mod.Career.StartingMoney != 500000000 {
		t.Errorf("StartingMoney = %d, want default", mod.Career.StartingMoney)
	}
	if mod.SeasonScoring.FirstPlace != 10 {
		t.Errorf("FirstPlace = %d, want 10", mod.SeasonScoring.FirstPlace)
	}
}

func TestRoundTrip(t *testing.T) {
	mod := NewMod("Club Series", "CH_ClubSeries")
	mod.Career.StartingVehicles = []string{"hawk_01", "hawk_02"}
	mod.SceneOrder = []string{"Mills_Long", "Sardian_Heights"}
	mod.PitOrderByQualifying = true
	mod.PitGroups = []PitGroup{{1, "Group1"}, {1, "Group2"}}
	fee := 500
	mod.Seasons = []Season{
		{
			Name:          "Club Season",
			VehicleFilter: "CH_ClubSeries",
			MinOpponents:  5,
			SceneOrder:    []string{"Mills_Long", "Sardian_Heights", "Toban_Short"},
			EntryFee:      &fee,
		},
	}

	parsed, err := Parse(Generate(mod))
	if err != nil {
		t.Fatalf("Parse(Generate()) error = %v", err)
	}

	if parsed.ModName != mod.ModName {
		t.Errorf("ModName = %q, want %q", parsed.ModName, mod.ModName)
	}
	if parsed.VehicleFilter != mod.VehicleFilter {
		t.Errorf("VehicleFilter = %q, want %q", parsed.VehicleFilter, mod.VehicleFilter)
	}
	if len(parsed.Seasons) != 1 {
		t.Fatalf("len(Seasons) = %d, want 1", len(parsed.Seasons))
	}
	season := parsed.Seasons[0]
	if season.Name != "Club Season" {
		t.Errorf("season name = %q, want %q", season.Name, "Club Season")
	}
	if len(season.SceneOrder) != 3 || season.SceneOrder[2] != "Toban_Short" {
		t.Errorf("season scene order = %v", season.SceneOrder)
	}
	if season.EntryFee == nil || *season.EntryFee != 500 {
		t.Errorf("EntryFee = %v, want 500", season.EntryFee)
	}
	if len(parsed.Career.StartingVehicles) != 2 {
		t.Errorf("StartingVehicles = %v", parsed.Career.StartingVehicles)
	}
	if !parsed.PitOrderByQualifying {
		t.Error("PitOrderByQualifying lost in round trip")
	}
	if len(parsed.PitGroups) != 2 {
		t.Errorf("PitGroups = %v", parsed.PitGroups)
	}
	if parsed.Career.StartingMoney != mod.Career.StartingMoney {
		t.Errorf("StartingMoney = %d, want %d", parsed.Career.StartingMoney, mod.Career.StartingMoney)
	}
	if parsed.Scoring != mod.Scoring {
		t.Errorf("scoring changed in round trip:\n got %+v\nwant %+v", parsed.Scoring, mod.Scoring)
	}
}

func TestGenerateFile(t *testing.T) {
	mod := NewMod("File Series", "CH_FileSeries")
	path := filepath.Join(t.TempDir(), "rFm", "file_series.rfm")

	if err := GenerateFile(mod, path); err != nil {
		t.Fatalf("GenerateFile() error = %v", err)
	}

	content, err := gamefile.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(content, "Mod Name = File Series") {
		t.Error("generated file missing Mod Name line")
	}
	if !strings.Contains(content, "SeasonScoringInfo") {
		t.Error("generated file missing SeasonScoringInfo block")
	}
}
