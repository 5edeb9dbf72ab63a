package rcd

import "math/rand/v2"

// RandomBounds tunes RandomStats. Zero values are replaced by defaults.
type RandomBounds struct {
	SkillMin          float64
	SkillMax          float64
	SpeedVariance     float64
	ComposureVariance float64
	CrashBase         float64
	CrashVariance     float64
	LapsBase          float64
	LapsVariance      float64
	LapsMin           float64
	LapsMax           float64
	RecoveryVariance  float64
	AggressionMin     float64
	AggressionMax     float64
	CourtesyMin       float64
	CourtesyMax       float64
	SkillVariance     float64
	ReputationVar     float64
}

// DefaultRandomBounds mirrors the tuning the desktop tool shipped with.
func DefaultRandomBounds() RandomBounds {
	return RandomBounds{
		SkillMin:          40,
		SkillMax:          95,
		SpeedVariance:     8,
		ComposureVariance: 10,
		CrashBase:         50,
		CrashVariance:     15,
		LapsBase:          95,
		LapsVariance:      8,
		LapsMin:           75,
		LapsMax:           99,
		RecoveryVariance:  12,
		AggressionMin:     30,
		AggressionMax:     90,
		CourtesyMin:       40,
		CourtesyMax:       85,
		SkillVariance:     5,
		ReputationVar:     10,
	}
}

// RandomStats generates a coherent stat line: speed, composure, and recovery
// cluster around an overall skill level, crash tendency runs inverse to it,
// and completed laps runs inverse to crash tendency.
func RandomStats(rng *rand.Rand, bounds RandomBounds) Stats {
	overall := uniform(rng, bounds.SkillMin, bounds.SkillMax)

	speed := correlated(rng, overall, bounds.SpeedVariance)
	composure := correlated(rng, overall, bounds.ComposureVariance)
	crash := inverse(rng, overall, bounds.CrashBase, bounds.CrashVariance)
	laps := clampRange(inverse(rng, crash, bounds.LapsBase, bounds.LapsVariance), bounds.LapsMin, bounds.LapsMax)
	recovery := correlated(rng, overall, bounds.RecoveryVariance)

	return Stats{
		Aggression:     uniform(rng, bounds.AggressionMin, bounds.AggressionMax),
		Reputation:     correlated(rng, overall, bounds.ReputationVar),
		Courtesy:       uniform(rng, bounds.CourtesyMin, bounds.CourtesyMax),
		Composure:      composure,
		Speed:          speed,
		Crash:          crash,
		Recovery:       recovery,
		CompletedLaps:  laps,
		MinRacingSkill: correlated(rng, overall, bounds.SkillVariance),
	}
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

// correlated draws a value near center, bounded to [0, 100].
func correlated(rng *rand.Rand, center, variance float64) float64 {
	return clampRange(center+uniform(rng, -variance, variance), 0, 100)
}

// inverse draws a value that shrinks as driver skill grows.
func inverse(rng *rand.Rand, driverLevel, base, variance float64) float64 {
	offset := (driverLevel - 50) / 50 * variance
	return clampRange(base-offset+uniform(rng, -variance/2, variance/2), 0, 100)
}

func clampRange(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
