package profile

import (
	"strings"
	"testing"

	"skyblock_stats/internal/app"
	"skyblock_stats/internal/apperr"
)

func TestParsePlayer(t *testing.T) {
	firstLogin := int64(1500000000000)
	lastLogin := int64(1600000000000)

	resp := &app.PlayerResponse{
		Success: true,
		Player: &app.PlayerData{
			Displayname: "Steve",
			FirstLogin:  &firstLogin,
			LastLogin:   &lastLogin,
			SocialMedia: app.SocialMediaData{
				Links: map[string]string{"DISCORD": "steve#0001"},
			},
		},
	}

	stats, err := ParsePlayer(resp, "abc-123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if stats.Username != "Steve" {
		t.Errorf("Expected username 'Steve', got '%s'", stats.Username)
	}
	if stats.FirstLogin == nil || *stats.FirstLogin != firstLogin {
		t.Errorf("Expected firstLogin %d, got %v", firstLogin, stats.FirstLogin)
	}
	if stats.LastLogin == nil || *stats.LastLogin != lastLogin {
		t.Errorf("Expected lastLogin %d, got %v", lastLogin, stats.LastLogin)
	}
	if stats.SocialMedia["DISCORD"] != "steve#0001" {
		t.Errorf("Expected discord link to pass through, got %v", stats.SocialMedia)
	}
}

func TestParsePlayerMissingOptionalFields(t *testing.T) {
	resp := &app.PlayerResponse{
		Success: true,
		Player:  &app.PlayerData{Displayname: "Alex"},
	}

	stats, err := ParsePlayer(resp, "abc-123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Absent fields pass through as absent; no validation beyond the null check
	if stats.FirstLogin != nil {
		t.Errorf("Expected nil firstLogin, got %v", *stats.FirstLogin)
	}
	if stats.LastLogin != nil {
		t.Errorf("Expected nil lastLogin, got %v", *stats.LastLogin)
	}
	if stats.SocialMedia != nil {
		t.Errorf("Expected nil socialMedia, got %v", stats.SocialMedia)
	}
}

func TestParsePlayerNullPlayer(t *testing.T) {
	resp := &app.PlayerResponse{Success: true, Player: nil}

	_, err := ParsePlayer(resp, "aaaa-bbbb-cccc-dddd")
	if err == nil {
		t.Fatal("Expected error for null player, got nil")
	}

	if !apperr.IsNotFound(err) {
		t.Errorf("Expected a 404 error, got %v", err)
	}
	if !strings.Contains(err.Error(), "aaaa-bbbb-cccc-dddd") {
		t.Errorf("Expected message to contain the requested UUID, got %q", err.Error())
	}
	if apperr.ReasonOf(err) != apperr.ReasonPlayerNull {
		t.Errorf("Expected reason player_null, got %s", apperr.ReasonOf(err))
	}
}

func TestParsePlayerNilResponse(t *testing.T) {
	_, err := ParsePlayer(nil, "abc-123")
	if !apperr.IsNotFound(err) {
		t.Errorf("Expected a 404 error for nil response, got %v", err)
	}
}
