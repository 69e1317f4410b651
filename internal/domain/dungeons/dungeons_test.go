package dungeons

import (
	"math"
	"testing"

	"skyblock_stats/internal/app"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestGenerateNoCatacombs(t *testing.T) {
	tests := []struct {
		name   string
		member app.ProfileMember
	}{
		{
			name:   "no dungeons section",
			member: app.ProfileMember{},
		},
		{
			name: "zero catacombs experience",
			member: app.ProfileMember{
				Dungeons: app.DungeonsData{
					DungeonTypes: map[string]app.DungeonProgress{"catacombs": {Experience: 0}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Generate(&tt.member); result != nil {
				t.Errorf("Expected nil dungeons sub-score, got %+v", result)
			}
		})
	}
}

func TestGenerateCatacombsOnly(t *testing.T) {
	// Exactly level 1
	member := &app.ProfileMember{
		Dungeons: app.DungeonsData{
			DungeonTypes: map[string]app.DungeonProgress{"catacombs": {Experience: 50}},
		},
	}

	result := Generate(member)
	if result == nil {
		t.Fatal("Expected a dungeons sub-score")
	}

	catacombs := result.Types["catacombs"]
	if catacombs.Level != 1 {
		t.Errorf("Expected catacombs level 1, got %v", catacombs.Level)
	}
	// level^4.5 is exactly 1 at level 1, so the weight is the bare multiplier
	if catacombs.Weight != typeMultiplier {
		t.Errorf("Expected weight %v, got %v", typeMultiplier, catacombs.Weight)
	}
	if result.WeightOverflow != 0 {
		t.Errorf("Expected no overflow below max experience, got %v", result.WeightOverflow)
	}
}

func TestGenerateWithClasses(t *testing.T) {
	member := &app.ProfileMember{
		Dungeons: app.DungeonsData{
			DungeonTypes: map[string]app.DungeonProgress{"catacombs": {Experience: 50}},
			PlayerClasses: map[string]app.DungeonProgress{
				"mage":   {Experience: 50},
				"healer": {Experience: 0},
			},
		},
	}

	result := Generate(member)

	if len(result.Classes) != 2 {
		t.Errorf("Expected 2 class entries, got %d", len(result.Classes))
	}
	if result.Classes["mage"].Weight != classMultiplier {
		t.Errorf("Expected mage weight %v, got %v", classMultiplier, result.Classes["mage"].Weight)
	}
	if result.Classes["healer"].Weight != 0 {
		t.Errorf("Expected zero healer weight, got %v", result.Classes["healer"].Weight)
	}
	if expected := typeMultiplier + classMultiplier; result.Weight != expected {
		t.Errorf("Expected total weight %v, got %v", expected, result.Weight)
	}
}

func TestGenerateOverflow(t *testing.T) {
	member := &app.ProfileMember{
		Dungeons: app.DungeonsData{
			DungeonTypes: map[string]app.DungeonProgress{
				"catacombs": {Experience: maxExperience + 100000000},
			},
		},
	}

	result := Generate(member)
	catacombs := result.Types["catacombs"]

	if catacombs.Level != maxLevel {
		t.Errorf("Expected catacombs capped at level %d, got %v", maxLevel, catacombs.Level)
	}
	if catacombs.WeightOverflow <= 0 {
		t.Errorf("Expected positive overflow past max experience, got %v", catacombs.WeightOverflow)
	}
	if catacombs.Weight != math.Floor(catacombs.Weight) {
		t.Errorf("Expected whole base weight past max experience, got %v", catacombs.Weight)
	}
}

func TestLevelFromExperience(t *testing.T) {
	tests := []struct {
		name       string
		experience float64
		expected   float64
	}{
		{"zero experience", 0, 0},
		{"halfway to level one", 25, 0.5},
		{"exactly level one", 50, 1},
		{"exactly level two", 125, 2},
		{"exactly max level", maxExperience, 50},
		{"past max level stays capped", maxExperience * 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFromExperience(tt.experience); got != tt.expected {
				t.Errorf("Expected level %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestDungeonWeightProperties uses property-based testing to verify invariants
func TestDungeonWeightProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: weight and overflow are never negative
	properties.Property("weights non-negative", prop.ForAll(
		func(experience float64) bool {
			w := dungeonWeight(typeMultiplier, experience)
			return w.Weight >= 0 && w.WeightOverflow >= 0
		},
		gen.Float64Range(0, 2000000000),
	))

	// Property: overflow appears exactly when experience exceeds the max
	properties.Property("overflow only past max experience", prop.ForAll(
		func(experience float64) bool {
			w := dungeonWeight(classMultiplier, experience)
			if experience <= maxExperience {
				return w.WeightOverflow == 0
			}
			return w.WeightOverflow > 0
		},
		gen.Float64Range(0, 2000000000),
	))

	// Property: level is non-decreasing in experience
	properties.Property("level monotonic", prop.ForAll(
		func(a, b float64) bool {
			lo, hi := math.Min(a, b), math.Max(a, b)
			return LevelFromExperience(lo) <= LevelFromExperience(hi)
		},
		gen.Float64Range(0, 1000000000),
		gen.Float64Range(0, 1000000000),
	))

	properties.TestingRun(t)
}
