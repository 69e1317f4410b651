package profile

import "skyblock_stats/internal/app"

// SumWeight returns the total weight across the category sub-scores
// present on the profile. Absent categories contribute nothing; they
// are a normal data state, not an error. Contributions are summed
// as-is, without clamping.
//
// Pure function: No I/O, deterministic output from input
func SumWeight(stats *app.SkyBlockProfileStats) float64 {
	total := 0.0
	for _, t := range categoryTotals(stats) {
		total += t.Weight
	}
	return total
}

// SumWeightOverflow returns the total weight overflow across the
// category sub-scores present on the profile
//
// Pure function: No I/O, deterministic output from input
func SumWeightOverflow(stats *app.SkyBlockProfileStats) float64 {
	total := 0.0
	for _, t := range categoryTotals(stats) {
		total += t.WeightOverflow
	}
	return total
}

// categoryTotals collects the weight totals of every non-nil category
// on the profile. Each category is counted exactly once.
func categoryTotals(stats *app.SkyBlockProfileStats) []app.WeightTotals {
	var totals []app.WeightTotals
	if stats.Skills != nil {
		totals = append(totals, stats.Skills.WeightTotals)
	}
	if stats.Slayers != nil {
		totals = append(totals, stats.Slayers.WeightTotals)
	}
	if stats.Dungeons != nil {
		totals = append(totals, stats.Dungeons.WeightTotals)
	}
	return totals
}
