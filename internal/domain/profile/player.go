package profile

import (
	"skyblock_stats/internal/app"
	"skyblock_stats/internal/apperr"
)

// ParsePlayer extracts the identity record from a raw player-lookup
// response. Fields are copied through verbatim; absent optional fields
// stay nil on the result.
//
// Pure function: No I/O, deterministic output from input
func ParsePlayer(resp *app.PlayerResponse, uuid string) (*app.PlayerStats, error) {
	if resp == nil || resp.Player == nil {
		return nil, apperr.NotFound(apperr.ReasonPlayerNull,
			"Found no Player data for a user with a UUID of '%s'", uuid)
	}

	return &app.PlayerStats{
		Username:    resp.Player.Displayname,
		FirstLogin:  resp.Player.FirstLogin,
		LastLogin:   resp.Player.LastLogin,
		SocialMedia: resp.Player.SocialMedia.Links,
	}, nil
}
