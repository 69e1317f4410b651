// Package slayers derives the slayers category sub-score from a raw
// profile member record. Experience converts linearly up to one million
// XP per boss; everything past that converts in diminishing one-million
// chunks.
package slayers

import (
	"math"

	"skyblock_stats/internal/app"
)

// linearCap is the per-boss experience that converts at full rate
const linearCap = 1000000

// curve holds the per-boss weight tuning
type curve struct {
	divider  float64
	modifier float64
}

var curves = map[string]curve{
	"zombie":   {divider: 2208, modifier: 0.15},
	"spider":   {divider: 2118, modifier: 0.08},
	"wolf":     {divider: 1962, modifier: 0.015},
	"enderman": {divider: 1430, modifier: 0.017},
}

// Generate computes the slayers category sub-score for a member, or nil
// when no slayer boss progress is recorded. Bosses without a weight
// curve are skipped.
func Generate(m *app.ProfileMember) *app.SlayersWeight {
	if len(m.SlayerBosses) == 0 {
		return nil
	}

	out := &app.SlayersWeight{
		Bosses: make(map[string]app.SlayerBossWeight, len(m.SlayerBosses)),
	}

	for name, boss := range m.SlayerBosses {
		c, ok := curves[name]
		if !ok {
			continue
		}

		w := bossWeight(c, boss.XP)
		out.Bosses[name] = w
		out.TotalExperience += boss.XP
		out.Weight += w.Weight
		out.WeightOverflow += w.WeightOverflow
	}

	return out
}

// bossWeight derives one boss's weight from its cumulative experience
func bossWeight(c curve, experience float64) app.SlayerBossWeight {
	w := app.SlayerBossWeight{Experience: experience}

	if experience <= linearCap {
		if experience > 0 {
			w.Weight = experience / c.divider
		}
		return w
	}

	w.Weight = linearCap / c.divider

	// Each chunk past the cap converts at a worse rate than the last;
	// the modifier grows by its initial value per chunk.
	remaining := experience - linearCap
	modifier := c.modifier
	for remaining > 0 {
		chunk := math.Min(remaining, linearCap)
		w.WeightOverflow += math.Pow(chunk/(c.divider*(1.5+modifier)), 0.942)
		modifier += c.modifier
		remaining -= chunk
	}

	return w
}
