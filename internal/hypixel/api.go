package hypixel

import (
	"context"

	"skyblock_stats/internal/app"
)

// HypixelAPI defines the interface for interacting with the Hypixel API
// This separates infrastructure concerns from business logic
type HypixelAPI interface {
	// Core API endpoints
	GetPlayer(ctx context.Context, uuid string) (*app.PlayerResponse, error)
	GetSkyBlockProfiles(ctx context.Context, uuid string) (*app.ProfilesResponse, error)

	// API call tracking
	GetAPICallCount() int64
	IncrementAPICall()
	ResetAPICallCount()
}
