package hypixel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"skyblock_stats/internal/app"
	"skyblock_stats/internal/config"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public Hypixel API endpoint
const DefaultBaseURL = "https://api.hypixel.net/v2"

type Client struct {
	apiKey       string
	baseURL      string
	client       *http.Client
	apiCallCount int64
	apiCallMutex sync.Mutex
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: config.APIRequestTimeout,
		},
	}
}

// NewClientWithBaseURL creates a client against a non-default endpoint,
// used by tests to point at a local server
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// IncrementAPICall safely increments the API call counter
func (c *Client) IncrementAPICall() {
	c.apiCallMutex.Lock()
	c.apiCallCount++
	c.apiCallMutex.Unlock()
}

// GetAPICallCount returns the current API call count
func (c *Client) GetAPICallCount() int64 {
	c.apiCallMutex.Lock()
	defer c.apiCallMutex.Unlock()
	return c.apiCallCount
}

// ResetAPICallCount resets the API call counter to zero
func (c *Client) ResetAPICallCount() {
	c.apiCallMutex.Lock()
	c.apiCallCount = 0
	c.apiCallMutex.Unlock()
}

// makeAPIRequest executes a GET request with retry per the API request
// resilience config and returns the response body
func (c *Client) makeAPIRequest(ctx context.Context, requestURL string) ([]byte, error) {
	retry := config.DefaultResilienceConfig.APIRequest
	wait := retry.InitialWait

	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		body, err := c.doRequest(ctx, requestURL)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt == retry.MaxAttempts {
			break
		}

		log.Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("API request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait = retry.NextWait(wait)
	}

	return nil, lastErr
}

// doRequest performs a single HTTP GET and reads the body
func (c *Client) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("API-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	c.IncrementAPICall()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// GetPlayer fetches a player-lookup response for the given UUID
func (c *Client) GetPlayer(ctx context.Context, uuid string) (*app.PlayerResponse, error) {
	requestURL := fmt.Sprintf("%s/player?uuid=%s", c.baseURL, url.QueryEscape(uuid))

	log.Debug().Str("uuid", uuid).Msg("Fetching player data")

	body, err := c.makeAPIRequest(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var playerResponse app.PlayerResponse
	if err := json.Unmarshal(body, &playerResponse); err != nil {
		return nil, fmt.Errorf("failed to decode player response: %w", err)
	}

	log.Debug().
		Str("uuid", uuid).
		Bool("has_player", playerResponse.Player != nil).
		Msg("Successfully fetched player data")

	return &playerResponse, nil
}

// GetSkyBlockProfiles fetches the SkyBlock profiles listing for the given UUID
func (c *Client) GetSkyBlockProfiles(ctx context.Context, uuid string) (*app.ProfilesResponse, error) {
	requestURL := fmt.Sprintf("%s/skyblock/profiles?uuid=%s", c.baseURL, url.QueryEscape(uuid))

	log.Debug().Str("uuid", uuid).Msg("Fetching SkyBlock profiles")

	body, err := c.makeAPIRequest(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	var profilesResponse app.ProfilesResponse
	if err := json.Unmarshal(body, &profilesResponse); err != nil {
		return nil, fmt.Errorf("failed to decode profiles response: %w", err)
	}

	log.Debug().
		Str("uuid", uuid).
		Int("profile_count", len(profilesResponse.Profiles)).
		Bool("profiles_null", profilesResponse.ProfilesNull).
		Msg("Successfully fetched SkyBlock profiles")

	return &profilesResponse, nil
}
