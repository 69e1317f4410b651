// Package skills derives the skills category sub-score from a raw
// profile member record. The weight model follows the Senither curve:
// a per-skill base weight grows with the level reached, and experience
// past the level cap converts into a heavily discounted overflow.
package skills

import (
	"math"

	"skyblock_stats/internal/app"
)

const (
	// Cumulative experience required to max a 50- or 60-capped skill
	level50Experience = 55172425
	level60Experience = 111672425
)

// curve holds the per-skill weight tuning
type curve struct {
	maxLevel        int
	exponent        float64
	overflowDivider float64
}

var curves = map[string]curve{
	"taming":     {maxLevel: 50, exponent: 1.14744, overflowDivider: 441379},
	"farming":    {maxLevel: 60, exponent: 1.217848139, overflowDivider: 220689},
	"mining":     {maxLevel: 60, exponent: 1.18207448, overflowDivider: 259634},
	"combat":     {maxLevel: 60, exponent: 1.15797687265, overflowDivider: 275862},
	"foraging":   {maxLevel: 50, exponent: 1.232826, overflowDivider: 259634},
	"fishing":    {maxLevel: 50, exponent: 1.406418, overflowDivider: 88274},
	"enchanting": {maxLevel: 60, exponent: 0.96976583, overflowDivider: 882758},
	"alchemy":    {maxLevel: 50, exponent: 1.0, overflowDivider: 1103448},
}

// experienceTable holds the cumulative experience required to reach
// each skill level, indexed by level.
var experienceTable = [61]float64{
	0, 50, 175, 375, 675, 1175, 1925, 2925, 4425, 6425,
	9925, 14925, 22425, 32425, 47425, 67425, 97425, 147425, 222425, 322425,
	522425, 822425, 1222425, 1722425, 2322425, 3022425, 3822425, 4722425, 5722425, 6822425,
	8022425, 9322425, 10722425, 12222425, 13822425, 15522425, 17322425, 19222425, 21222425, 23322425,
	25522425, 27822425, 30222425, 32722425, 35322425, 38072425, 40972425, 44072425, 47472425, 51172425,
	55172425, 59472425, 64072425, 68972425, 74172425, 79672425, 85472425, 91572425, 97972425, 104672425,
	111672425,
}

// Generate computes the skills category sub-score for a member, or nil
// when the member's skills API is disabled (no experience fields at all).
func Generate(m *app.ProfileMember) *app.SkillsWeight {
	sources := map[string]*float64{
		"taming":     m.ExperienceSkillTaming,
		"farming":    m.ExperienceSkillFarming,
		"mining":     m.ExperienceSkillMining,
		"combat":     m.ExperienceSkillCombat,
		"foraging":   m.ExperienceSkillForaging,
		"fishing":    m.ExperienceSkillFishing,
		"enchanting": m.ExperienceSkillEnchanting,
		"alchemy":    m.ExperienceSkillAlchemy,
	}

	anyPresent := false
	for _, xp := range sources {
		if xp != nil {
			anyPresent = true
			break
		}
	}
	if !anyPresent {
		return nil
	}

	out := &app.SkillsWeight{
		Skills: make(map[string]app.SkillWeight, len(sources)),
	}

	levelTotal := 0.0
	for name, xp := range sources {
		experience := 0.0
		if xp != nil {
			experience = *xp
		}

		w := skillWeight(curves[name], experience)
		out.Skills[name] = w
		levelTotal += w.Level
		out.Weight += w.Weight
		out.WeightOverflow += w.WeightOverflow
	}
	out.AverageSkillLevel = levelTotal / float64(len(sources))

	return out
}

// skillWeight derives one skill's weight from its cumulative experience
func skillWeight(c curve, experience float64) app.SkillWeight {
	level := LevelFromExperience(experience, c.maxLevel)

	maxExperience := float64(level50Experience)
	if c.maxLevel == 60 {
		maxExperience = level60Experience
	}

	base := math.Pow(level*10, 0.5+c.exponent+level/100) / 1250

	w := app.SkillWeight{
		Level:      level,
		Experience: experience,
	}

	if experience <= maxExperience {
		w.Weight = base
		return w
	}

	// Past the cap the base weight is locked in whole and the surplus
	// experience converts at a steep discount.
	w.Weight = math.Round(base)
	w.WeightOverflow = math.Pow((experience-maxExperience)/c.overflowDivider, 0.968)
	return w
}

// LevelFromExperience converts cumulative skill experience into a level
// with fractional progress toward the next one, capped at maxLevel.
//
// Pure function: No I/O, deterministic output from input
func LevelFromExperience(experience float64, maxLevel int) float64 {
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
