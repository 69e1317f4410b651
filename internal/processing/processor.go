package processing

import (
	"context"
	"fmt"

	"skyblock_stats/internal/app"
	"skyblock_stats/internal/domain/dungeons"
	"skyblock_stats/internal/domain/profile"
	"skyblock_stats/internal/domain/skills"
	"skyblock_stats/internal/domain/slayers"
	"skyblock_stats/internal/hypixel"

	"github.com/rs/zerolog/log"
)

// StatsProcessor orchestrates fetching raw Hypixel payloads and running
// them through the profile normalization pipeline. The domain packages
// stay pure; this is the imperative shell around them.
type StatsProcessor struct {
	api  hypixel.HypixelAPI
	gens profile.Generators
}

// NewStatsProcessor creates a processor wired with the real category generators
func NewStatsProcessor(api hypixel.HypixelAPI) *StatsProcessor {
	return &StatsProcessor{
		api:  api,
		gens: DefaultGenerators(),
	}
}

// DefaultGenerators wires the three category sub-score packages
func DefaultGenerators() profile.Generators {
	return profile.Generators{
		Skills:   skills.Generate,
		Slayers:  slayers.Generate,
		Dungeons: dungeons.Generate,
	}
}

// GetPlayerStats fetches and parses the identity record for a player
func (p *StatsProcessor) GetPlayerStats(ctx context.Context, uuid string) (*app.PlayerStats, error) {
	resp, err := p.api.GetPlayer(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player data: %w", err)
	}

	return profile.ParsePlayer(resp, uuid)
}

// GetProfileStats fetches and normalizes every profile the player has
// played on, in API listing order
func (p *StatsProcessor) GetProfileStats(ctx context.Context, uuid string) ([]app.SkyBlockProfileStats, error) {
	resp, err := p.api.GetSkyBlockProfiles(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch SkyBlock profiles: %w", err)
	}

	stats, err := profile.SelectProfiles(resp, uuid, p.gens)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("uuid", uuid).
		Int("listed_profiles", len(resp.Profiles)).
		Int("played_profiles", len(stats)).
		Msg("Normalized SkyBlock profiles")

	return stats, nil
}

// GetPlayerProfileStats returns each played profile merged with the
// player's identity record, one entry per profile
func (p *StatsProcessor) GetPlayerProfileStats(ctx context.Context, uuid string) ([]app.SkyBlockProfilePlayerStats, error) {
	player, err := p.GetPlayerStats(ctx, uuid)
	if err != nil {
		return nil, err
	}

	stats, err := p.GetProfileStats(ctx, uuid)
	if err != nil {
		return nil, err
	}

	merged := make([]app.SkyBlockProfilePlayerStats, 0, len(stats))
	for i := range stats {
		merged = append(merged, profile.MergePlayerProfile(&stats[i], player))
	}

	log.Info().
		Str("uuid", uuid).
		Str("username", player.Username).
		Int("profiles", len(merged)).
		Msg("Computed profile weights for player")

	return merged, nil
}
