package mocks

import (
	"context"

	"skyblock_stats/internal/app"
)

// MockHypixelClient is a test double for the hypixel.Client
type MockHypixelClient struct {
	// Responses to return
	PlayerResponse   *app.PlayerResponse
	ProfilesResponse *app.ProfilesResponse

	// Errors to return
	PlayerError   error
	ProfilesError error

	// Call tracking
	GetPlayerCalled                   bool
	GetSkyBlockProfilesCalled         bool
	GetPlayerCalledWithUUID           string
	GetSkyBlockProfilesCalledWithUUID string

	apiCallCount int64
}

// NewMockHypixelClient creates a new mock hypixel client
func NewMockHypixelClient() *MockHypixelClient {
	return &MockHypixelClient{}
}

func (m *MockHypixelClient) GetPlayer(ctx context.Context, uuid string) (*app.PlayerResponse, error) {
	m.GetPlayerCalled = true
	m.GetPlayerCalledWithUUID = uuid
	m.apiCallCount++
	return m.PlayerResponse, m.PlayerError
}

func (m *MockHypixelClient) GetSkyBlockProfiles(ctx context.Context, uuid string) (*app.ProfilesResponse, error) {
	m.GetSkyBlockProfilesCalled = true
	m.GetSkyBlockProfilesCalledWithUUID = uuid
	m.apiCallCount++
	return m.ProfilesResponse, m.ProfilesError
}

func (m *MockHypixelClient) GetAPICallCount() int64 {
	return m.apiCallCount
}

func (m *MockHypixelClient) IncrementAPICall() {
	m.apiCallCount++
}

func (m *MockHypixelClient) ResetAPICallCount() {
	m.apiCallCount = 0
}
