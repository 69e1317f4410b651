package app

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Save original environment
	originalAPIKey := os.Getenv("HYPIXEL_API_KEY")
	originalSpreadsheetID := os.Getenv("SPREADSHEET_ID")
	originalCredentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")

	// Cleanup function
	defer func() {
		setOrUnset("HYPIXEL_API_KEY", originalAPIKey)
		setOrUnset("SPREADSHEET_ID", originalSpreadsheetID)
		setOrUnset("GOOGLE_CREDENTIALS_FILE", originalCredentialsFile)
	}()

	t.Run("ValidConfiguration", func(t *testing.T) {
		os.Setenv("HYPIXEL_API_KEY", "test_api_key")
		os.Setenv("SPREADSHEET_ID", "test_spreadsheet_id")
		os.Setenv("GOOGLE_CREDENTIALS_FILE", "test_credentials.json")

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.HypixelAPIKey != "test_api_key" {
			t.Errorf("Expected HypixelAPIKey to be 'test_api_key', got '%s'", config.HypixelAPIKey)
		}

		if config.SpreadsheetID != "test_spreadsheet_id" {
			t.Errorf("Expected SpreadsheetID to be 'test_spreadsheet_id', got '%s'", config.SpreadsheetID)
		}

		if config.CredentialsFile != "test_credentials.json" {
			t.Errorf("Expected CredentialsFile to be 'test_credentials.json', got '%s'", config.CredentialsFile)
		}
	})

	t.Run("DefaultCredentialsFile", func(t *testing.T) {
		os.Setenv("HYPIXEL_API_KEY", "test_api_key")
		os.Unsetenv("GOOGLE_CREDENTIALS_FILE")

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.CredentialsFile != "credentials.json" {
			t.Errorf("Expected CredentialsFile to default to 'credentials.json', got '%s'", config.CredentialsFile)
		}
	})

	t.Run("OptionalSpreadsheetID", func(t *testing.T) {
		os.Setenv("HYPIXEL_API_KEY", "test_api_key")
		os.Unsetenv("SPREADSHEET_ID")

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if config.SpreadsheetID != "" {
			t.Errorf("Expected empty SpreadsheetID, got '%s'", config.SpreadsheetID)
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		os.Unsetenv("HYPIXEL_API_KEY")

		_, err := LoadConfig()

		if err == nil {
			t.Fatal("Expected error for missing HYPIXEL_API_KEY, got nil")
		}
	})
}

func setOrUnset(key, value string) {
	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}
