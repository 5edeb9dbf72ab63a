package cch

// CareerStats is the [CAREER] section: the player's money, experience, and
// lifetime statistics.
type CareerStats struct {
	Experience   int
	Money        int
	CurSeasIndex int

	SinglePlayerVehicle string
	SinglePlayerFilter  string
	MultiPlayerFilter   string

	AIRealism              float64
	SinglePlayerAIStrength int
	MultiPlayerAIStrength  int

	AbortedSeasons     int
	TotalLaps          int
	TotalRaces         int
	TotalRacesWithAI   int
	TotalPointsScored  int
	TotalChampionships int
	TotalWins          int
	TotalPoles         int
	TotalLapRecords    int

	AvgStartPosition    float64
	AvgFinishPosition   float64
	AvgRaceDistance     float64
	AvgOpponentStrength float64
}

// NewCareerStats returns the stats of a fresh career.
func NewCareerStats() CareerStats {
	return CareerStats{
		Money:                  500,
		AIRealism:              0.25,
		SinglePlayerAIStrength: 95,
		MultiPlayerAIStrength:  95,
	}
}

// Pair is a two-component float value like a seat or mirror position.
type Pair struct {
	X float64
	Y float64
}

// VehicleEntry is one [VEHICLE] section: a vehicle the player owns.
type VehicleEntry struct {
	ID           int
	File         string
	Skin         string
	MetersDriven int
	MoneySpent   int
	FreeVehicle  int
	Seat         Pair
	Mirror       Pair
	UpgradeList  string
}

// NewVehicleEntry returns an owned vehicle with the stock seat and mirror
// positions.
func NewVehicleEntry(id int, file string) VehicleEntry {
	return VehicleEntry{
		ID:          id,
		File:        file,
		FreeVehicle: 1,
		Seat:        Pair{10, 10},
		Mirror:      Pair{10, 10},
	}
}

// SeasonSettings is the [CAREERSEASON] section: the active season and the
// race options that override the player file.
type SeasonSettings struct {
	Name            string
	SeasonStatus    int
	RaceSession     int
	RaceOver        int
	CurrentRace     int
	PlayerVehicleID int

	MechFailRate     int
	DamageMultiplier int
	FuelMult         int
	TireMult         int

	Reconnaissance     int
	Walkthrough        int
	Formation          int
	SafetyCarCollision int
	SafetyCarThresh    float64
	FlagRules          int
	BlueFlags          int

	Weather           int
	TimescaledWeather int
	RaceStartingTime  int
	RaceTimescale     int

	PrivateQual int
	ParcFerme   int

	AIDriverStrength   int
	FreeSettings       int
	RaceFinishCriteria int
	RaceLaps           int
	RaceTime           int
	RaceLength         float64
	Opponents          int
	SpeedComp          int
	CrashRecovery      int
}

// NewSeasonSettings returns an unstarted season with the stock race options.
func NewSeasonSettings() SeasonSettings {
	return SeasonSettings{
		Name: "New Season",

		MechFailRate:     2,
		DamageMultiplier: 50,
		FuelMult:         1,
		TireMult:         1,

		Walkthrough:        1,
		Formation:          3,
		SafetyCarCollision: 1,
		SafetyCarThresh:    1.0,
		FlagRules:          2,
		BlueFlags:          7,

		TimescaledWeather: 1,
		RaceStartingTime:  840,
		RaceTimescale:     1,

		PrivateQual: 2,
		ParcFerme:   3,

		AIDriverStrength:   95,
		FreeSettings:       -1,
		RaceFinishCriteria: 1,
		RaceLaps:           5,
		RaceTime:           120,
		RaceLength:         0.1,
		Opponents:          9,
		CrashRecovery:      3,
	}
}

// Participant is one entrant: the player or an opponent.
type Participant struct {
	Name                 string
	VehFile              string
	RCDFile              string
	SeasonPoints         int
	PointsPosition       int
	PolesTaken           int
	OriginalGridPosition int
	CurrentGridPosition  int
	ControlType          int // 0 player, 1 AI
	Active               int
}

// Opponent is a numbered [OPPONENTxx] entrant.
type Opponent struct {
	Participant
	ID int
}

// NewOpponent returns an active AI opponent.
func NewOpponent(id int, name, vehFile string) Opponent {
	return Opponent{
		ID: id,
		Participant: Participant{
			Name:        name,
			VehFile:     vehFile,
			ControlType: 1,
			Active:      1,
		},
	}
}

// TrackStat is one [PLAYERTRACKSTAT] section. ClassRecords are kept
// verbatim, one entry per ClassRecord line, in file order.
type TrackStat struct {
	TrackName    string
	TrackFile    string
	ClassRecords []string
}

// Championship is one complete save file.
type Championship struct {
	Career     CareerStats
	Vehicles   []VehicleEntry
	Season     SeasonSettings
	Player     Participant
	Opponents  []Opponent
	TrackStats []TrackStat

	// Path is where the save was read from, empty for saves built in
	// memory.
	Path string
}

// New returns an empty championship with fresh career and season defaults.
func New() *Championship {
	return &Championship{
		Career: NewCareerStats(),
		Season: NewSeasonSettings(),
		Player: Participant{Name: "Player", Active: 1},
	}
}

// OpponentByID returns the opponent with the given id, or nil.
func (c *Championship) OpponentByID(id int) *Opponent {
	for i := range c.Opponents {
		if c.Opponents[i].ID == id {
			return &c.Opponents[i]
		}
	}
	return nil
}

// OpponentByName returns the first opponent with the given name, or nil.
func (c *Championship) OpponentByName(name string) *Opponent {
	for i := range c.Opponents {
		if c.Opponents[i].Name == name {
			return &c.Opponents[i]
		}
	}
	return nil
}

// AddOpponent appends an opponent, assigning the next free id when the
// opponent carries id zero and the slot is already taken.
func (c *Championship) AddOpponent(opponent Opponent) {
	if opponent.ID == 0 && len(c.Opponents) > 0 {
		maxID := 0
		for i := range c.Opponents {
			if c.Opponents[i].ID > maxID {
				maxID = c.Opponents[i].ID
			}
		}
		opponent.ID = maxID + 1
	}
	c.Opponents = append(c.Opponents, opponent)
}

// RemoveOpponent deletes the opponent with the given id. It reports whether
// an opponent was removed.
func (c *Championship) RemoveOpponent(id int) bool {
	for i := range c.Opponents {
		if c.Opponents[i].ID == id {
			c.Opponents = append(c.Opponents[:i], c.Opponents[i+1:]...)
			return true
		}
	}
	return false
}

// ParticipantCount returns the player plus all opponents.
func (c *Championship) ParticipantCount() int {
	return 1 + len(c.Opponents)
}

// ActiveOpponentCount returns how many opponents are still active.
func (c *Championship) ActiveOpponentCount() int {
	active := 0
	for i := range c.Opponents {
		if c.Opponents[i].Active == 1 {
			active++
		}
	}
	return active
}
