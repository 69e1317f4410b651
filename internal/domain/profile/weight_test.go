package profile

import (
	"testing"

	"skyblock_stats/internal/app"
)

func TestSumWeight(t *testing.T) {
	tests := []struct {
		name     string
		stats    app.SkyBlockProfileStats
		expected float64
	}{
		{
			name: "two categories present, one absent",
			stats: app.SkyBlockProfileStats{
				Skills:  &app.SkillsWeight{WeightTotals: app.WeightTotals{Weight: 10}},
				Slayers: &app.SlayersWeight{WeightTotals: app.WeightTotals{Weight: 5}},
			},
			expected: 15,
		},
		{
			name:     "all categories absent",
			stats:    app.SkyBlockProfileStats{},
			expected: 0,
		},
		{
			name: "all categories present",
			stats: app.SkyBlockProfileStats{
				Skills:   &app.SkillsWeight{WeightTotals: app.WeightTotals{Weight: 1.5}},
				Slayers:  &app.SlayersWeight{WeightTotals: app.WeightTotals{Weight: 2.25}},
				Dungeons: &app.DungeonsWeight{WeightTotals: app.WeightTotals{Weight: 3}},
			},
			expected: 6.75,
		},
		{
			name: "negative contributions summed as-is",
			stats: app.SkyBlockProfileStats{
				Skills:  &app.SkillsWeight{WeightTotals: app.WeightTotals{Weight: -4}},
				Slayers: &app.SlayersWeight{WeightTotals: app.WeightTotals{Weight: 10}},
			},
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumWeight(&tt.stats); got != tt.expected {
				t.Errorf("Expected weight %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSumWeightOverflow(t *testing.T) {
	stats := app.SkyBlockProfileStats{
		Skills:   &app.SkillsWeight{WeightTotals: app.WeightTotals{Weight: 10, WeightOverflow: 2}},
		Dungeons: &app.DungeonsWeight{WeightTotals: app.WeightTotals{Weight: 3, WeightOverflow: 0.5}},
	}

	if got := SumWeightOverflow(&stats); got != 2.5 {
		t.Errorf("Expected weight overflow 2.5, got %v", got)
	}

	if got := SumWeightOverflow(&app.SkyBlockProfileStats{}); got != 0 {
		t.Errorf("Expected weight overflow 0 for no categories, got %v", got)
	}
}
