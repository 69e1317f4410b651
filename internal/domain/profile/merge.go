package profile

import "skyblock_stats/internal/app"

// MergePlayerProfile combines one normalized profile with the player's
// identity record into the API-facing shape. The caller guarantees both
// inputs correspond to the same player; no identifiers are cross-checked.
// Login timestamps and social media links from the player record are
// deliberately dropped.
//
// Pure function: No I/O, returns a new value without modifying inputs
func MergePlayerProfile(stats *app.SkyBlockProfileStats, player *app.PlayerStats) app.SkyBlockProfilePlayerStats {
	return app.SkyBlockProfilePlayerStats{
		ID:             stats.ID,
		Name:           stats.Name,
		Username:       player.Username,
		LastSaveAt:     stats.LastSaveAt,
		Weight:         stats.Weight,
		WeightOverflow: stats.WeightOverflow,
		Skills:         stats.Skills,
		Slayers:        stats.Slayers,
		Dungeons:       stats.Dungeons,
	}
}
