package config

import (
	"testing"
	"time"
)

func TestNextWait(t *testing.T) {
	retry := RetryConfig{
		InitialWait: 1 * time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}

	tests := []struct {
		name     string
		wait     time.Duration
		expected time.Duration
	}{
		{"doubles below ceiling", 1 * time.Second, 2 * time.Second},
		{"doubles again", 4 * time.Second, 8 * time.Second},
		{"clamped at ceiling", 8 * time.Second, 10 * time.Second},
		{"stays at ceiling", 10 * time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retry.NextWait(tt.wait); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDefaultResilienceConfig(t *testing.T) {
	if DefaultResilienceConfig.APIRequest.MaxAttempts != APIRequestMaxAttempts {
		t.Errorf("Expected API request max attempts %d, got %d",
			APIRequestMaxAttempts, DefaultResilienceConfig.APIRequest.MaxAttempts)
	}

	if DefaultResilienceConfig.SheetWrite.Timeout != SheetWriteTimeout {
		t.Errorf("Expected sheet write timeout %v, got %v",
			SheetWriteTimeout, DefaultResilienceConfig.SheetWrite.Timeout)
	}

	if DefaultResilienceConfig.APIRequest.InitialWait <= 0 {
		t.Error("Expected a positive initial wait")
	}
}
