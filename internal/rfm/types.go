package rfm

// Season is one championship season within a mod.
type Season struct {
	Name          string
	VehicleFilter string
	SceneOrder    []string // track names in race order
	MinOpponents  int

	// Optional fields; empty/zero means "not present in the file".
	FullSeasonName string
	MinExperience  *int
	EntryFee       *int
}

// DefaultScoring is the session day/time/duration grid.
type DefaultScoring struct {
	RacePitKPH   int
	NormalPitKPH int

	Practice1Day      string
	Practice1Start    string
	Practice1Duration int
	Practice2Day      string
	Practice2Start    string
	Practice2Duration int
	Practice3Day      string
	Practice3Start    string
	Practice3Duration int
	Practice4Day      string
	Practice4Start    string
	Practice4Duration int

	QualifyDay      string
	QualifyStart    string
	QualifyDuration int
	QualifyLaps     int

	WarmupDay      string
	WarmupStart    string
	WarmupDuration int

	RaceDay   string
	RaceStart string
	RaceLaps  int
	RaceTime  int
}

// NewDefaultScoring returns the stock session grid.
func NewDefaultScoring() DefaultScoring {
	return DefaultScoring{
		RacePitKPH:   80,
		NormalPitKPH: 80,

		Practice1Day: "Friday", Practice1Start: "10:00", Practice1Duration: 60,
		Practice2Day: "Friday", Practice2Start: "13:00", Practice2Duration: 60,
		Practice3Day: "Saturday", Practice3Start: "9:00", Practice3Duration: 45,
		Practice4Day: "Saturday", Practice4Start: "10:15", Practice4Duration: 45,

		QualifyDay: "Saturday", QualifyStart: "14:00", QualifyDuration: 60, QualifyLaps: 12,

		WarmupDay: "Sunday", WarmupStart: "9:00", WarmupDuration: 30,

		RaceDay: "Sunday", RaceStart: "12:00", RaceLaps: 50, RaceTime: 120,
	}
}

// SeasonScoring is the points awarded for the first eight placements.
type SeasonScoring struct {
	FirstPlace   int
	SecondPlace  int
	ThirdPlace   int
	FourthPlace  int
	FifthPlace   int
	SixthPlace   int
	SeventhPlace int
	EighthPlace  int
}

// NewSeasonScoring returns the stock 10-8-6-5-4-3-2-1 distribution.
func NewSeasonScoring() SeasonScoring {
	return SeasonScoring{
		FirstPlace:   10,
		SecondPlace:  8,
		ThirdPlace:   6,
		FourthPlace:  5,
		FifthPlace:   4,
		SixthPlace:   3,
		SeventhPlace: 2,
		EighthPlace:  1,
	}
}

// PitGroup is one pit slot assignment: how many vehicles share the slot and
// the group name they share it under.
type PitGroup struct {
	VehicleCount int
	GroupName    string
}

// CareerSettings holds starting money/experience, the starting-vehicle pool,
// and the economy multipliers.
type CareerSettings struct {
	StartingMoney      int
	StartingExperience int
	StartingVehicles   []string // accumulated in file order, duplicates kept
	DriveAnyUnlocked   int

	BaseCreditMult float64
	LapMoneyMult   float64
	LapExpMult     float64
	FineMoneyMult  float64
	FineExpMult    float64

	PoleSingleMoneyMult float64
	PoleSingleExpMult   float64
	PoleCareerMoneyMult float64
	PoleCareerExpMult   float64
	PoleMultiMoneyMult  float64
	PoleMultiExpMult    float64

	WinSingleMoneyMult float64
	WinSingleExpMult   float64
	WinCareerMoneyMult float64
	WinCareerExpMult   float64
	WinMultiMoneyMult  float64
	WinMultiExpMult    float64

	PointsSingleMoneyMult float64
	PointsSingleExpMult   float64
	PointsCareerMoneyMult float64
	PointsCareerExpMult   float64
	PointsMultiMoneyMult  float64
	PointsMultiExpMult    float64
}

// NewCareerSettings returns career defaults: a large cash balance so every
// generated championship can afford its vehicles, and neutral multipliers.
func NewCareerSettings() CareerSettings {
	return CareerSettings{
		StartingMoney:      500000000,
		StartingExperience: 0,
		DriveAnyUnlocked:   0,

		BaseCreditMult: 1.0,
		LapMoneyMult:   1.0,
		LapExpMult:     1.0,
		FineMoneyMult:  1.0,
		FineExpMult:    0.0,

		PoleSingleMoneyMult: 1.0,
		PoleSingleExpMult:   1.0,
		PoleCareerMoneyMult: 1.0,
		PoleCareerExpMult:   1.0,
		PoleMultiMoneyMult:  1.0,
		PoleMultiExpMult:    1.0,

		WinSingleMoneyMult: 1.0,
		WinSingleExpMult:   1.0,
		WinCareerMoneyMult: 1.0,
		WinCareerExpMult:   1.0,
		WinMultiMoneyMult:  1.0,
		WinMultiExpMult:    1.0,

		PointsSingleMoneyMult: 1.0,
		PointsSingleExpMult:   1.0,
		PointsCareerMoneyMult: 1.0,
		PointsCareerExpMult:   1.0,
		PointsMultiMoneyMult:  1.0,
		PointsMultiExpMult:    1.0,
	}
}

// Mod is one championship template.
type Mod struct {
	ModName       string
	VehicleFilter string
	TrackFilter   string
	SafetyCar     string

	MaxOpponents int
	MinOpponents int

	Seasons []Season

	Scoring       DefaultScoring
	SeasonScoring SeasonScoring
	Career        CareerSettings

	// SceneOrder is the global default track order, distinct from each
	// season's own order.
	SceneOrder []string

	PitOrderByQualifying bool
	PitGroups            []PitGroup

	Matchmaker        string
	MatchmakerTCPPort int
	MatchmakerUDPPort int
	RaceCastLocation  string
	LoadingBarColor   int

	ConfigOverrides map[string]string
}

// NewMod returns a Mod with the network, scoring, and career defaults the
// simulator ships with.
func NewMod(name, vehicleFilter string) *Mod {
	return &Mod{
		ModName:       name,
		VehicleFilter: vehicleFilter,
		TrackFilter:   "*",
		SafetyCar:     "Hammer_PC.veh",
		MaxOpponents:  19,
		MinOpponents:  3,

		Scoring:       NewDefaultScoring(),
		SeasonScoring: NewSeasonScoring(),
		Career:        NewCareerSettings(),

		Matchmaker:        "match.rfactor.net",
		MatchmakerTCPPort: 39001,
		MatchmakerUDPPort: 39002,
		RaceCastLocation:  "racecast.rfactor.net",
		LoadingBarColor:   16750848,

		ConfigOverrides: map[string]string{},
	}
}

// SeasonByName returns the first season with the given name, or nil.
func (m *Mod) SeasonByName(name string) *Season {
	for i := range m.Seasons {
		if m.Seasons[i].Name == name {
			return &m.Seasons[i]
		}
	}
	return nil
}
