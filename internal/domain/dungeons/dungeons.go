// Package dungeons derives the dungeons category sub-score from a raw
// profile member record. Catacombs and each dungeon class contribute a
// level-based weight; experience past max level converts into a
// discounted overflow.
package dungeons

import (
	"math"

	"skyblock_stats/internal/app"
)

const (
	maxLevel = 50

	// typeMultiplier and classMultiplier scale level^4.5 into weight
	typeMultiplier  = 0.0002149604615
	classMultiplier = 0.0000045254834
)

// experienceTable holds the cumulative experience required to reach
// each catacombs/class level, indexed by level.
var experienceTable = [51]float64{
	0, 50, 125, 235, 395, 625, 955, 1425, 2095, 3045,
	4385, 6275, 8940, 12700, 17960, 25340, 35640, 50040, 70040, 97640,
	135640, 188140, 259640, 356640, 488640, 668640, 911640, 1239640, 1684640, 2284640,
	3084640, 4149640, 5559640, 7459640, 9959640, 13259640, 17559640, 23159640, 30359640, 39559640,
	51559640, 66559640, 85559640, 109559640, 139559640, 177559640, 225559640, 285559640, 360559640, 453559640,
	569809640,
}

// maxExperience is the cumulative experience at max level
var maxExperience = experienceTable[maxLevel]

// Generate computes the dungeons category sub-score for a member, or
// nil when the member has never entered the catacombs.
func Generate(m *app.ProfileMember) *app.DungeonsWeight {
	catacombs, ok := m.Dungeons.DungeonTypes["catacombs"]
	if !ok || catacombs.Experience == 0 {
		return nil
	}

	out := &app.DungeonsWeight{
		Types:   make(map[string]app.DungeonWeight, 1),
		Classes: make(map[string]app.DungeonWeight, len(m.Dungeons.PlayerClasses)),
	}

	w := dungeonWeight(typeMultiplier, catacombs.Experience)
	out.Types["catacombs"] = w
	out.Weight += w.Weight
	out.WeightOverflow += w.WeightOverflow

	for name, class := range m.Dungeons.PlayerClasses {
		cw := dungeonWeight(classMultiplier, class.Experience)
		out.Classes[name] = cw
		out.Weight += cw.Weight
		out.WeightOverflow += cw.WeightOverflow
	}

	return out
}

// dungeonWeight derives one type's or class's weight from its
// cumulative experience
func dungeonWeight(multiplier, experience float64) app.DungeonWeight {
	level := LevelFromExperience(experience)
	base := math.Pow(level, 4.5) * multiplier

	w := app.DungeonWeight{
		Level:      level,
		Experience: experience,
	}

	if experience <= maxExperience {
		w.Weight = base
		return w
	}

	w.Weight = math.Floor(base)
	splitter := (4 * maxExperience) / base
	w.WeightOverflow = math.Pow((experience-maxExperience)/splitter, 0.968)
	return w
}

// LevelFromExperience converts cumulative dungeon experience into a
// level with fractional progress toward the next one, capped at 50.
//
// Pure function: No I/O, deterministic output from input
func LevelFromExperience(experience float64) float64 {
	if experience <= 0 {
		return 0
	}

	for level := maxLevel; level > 0; level-- {
		required := experienceTable[level]
		if experience < required {
			continue
		}
		if level == maxLevel {
			return float64(level)
		}
		next := experienceTable[level+1]
		return float64(level) + (experience-required)/(next-required)
	}

	return experience / experienceTable[1]
}
