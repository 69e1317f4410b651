package sheets

import (
	"context"
	"fmt"
	"time"

	"skyblock_stats/internal/app"
	"skyblock_stats/internal/config"

	"github.com/rs/zerolog/log"
)

// LeaderboardTabName is the tab profile weights are written to
const LeaderboardTabName = "Weights"

// LeaderboardManager exports computed profile weights to a spreadsheet
// tab, one row per profile, replacing the previous contents each run.
type LeaderboardManager struct {
	api           SheetsAPI
	spreadsheetID string
}

// NewLeaderboardManager creates a leaderboard manager for the given spreadsheet
func NewLeaderboardManager(api SheetsAPI, spreadsheetID string) *LeaderboardManager {
	return &LeaderboardManager{
		api:           api,
		spreadsheetID: spreadsheetID,
	}
}

// UpdateLeaderboard ensures the weights tab exists and rewrites it with
// the given merged profile records
func (m *LeaderboardManager) UpdateLeaderboard(ctx context.Context, stats []app.SkyBlockProfilePlayerStats) error {
	if err := m.ensureTab(ctx); err != nil {
		return err
	}

	clearRange := fmt.Sprintf("%s!A:Z", LeaderboardTabName)
	if err := m.api.ClearRange(ctx, m.spreadsheetID, clearRange); err != nil {
		return fmt.Errorf("failed to clear leaderboard tab: %w", err)
	}

	rows := BuildLeaderboardRows(stats, time.Now().UTC())
	updateRange := fmt.Sprintf("%s!A1", LeaderboardTabName)

	if err := m.writeWithRetry(ctx, updateRange, rows); err != nil {
		return fmt.Errorf("failed to write leaderboard rows: %w", err)
	}

	log.Info().
		Int("profiles", len(stats)).
		Str("tab", LeaderboardTabName).
		Msg("Updated weight leaderboard")

	return nil
}

// ensureTab creates the weights tab if it does not exist yet
func (m *LeaderboardManager) ensureTab(ctx context.Context) error {
	exists, err := m.api.SheetExists(ctx, m.spreadsheetID, LeaderboardTabName)
	if err != nil {
		return fmt.Errorf("failed to check leaderboard tab: %w", err)
	}
	if exists {
		return nil
	}

	log.Info().
		Str("tab", LeaderboardTabName).
		Msg("Creating leaderboard tab")

	if err := m.api.CreateSheet(ctx, m.spreadsheetID, LeaderboardTabName); err != nil {
		return fmt.Errorf("failed to create leaderboard tab: %w", err)
	}
	return nil
}

// writeWithRetry updates a range per the sheet write resilience config
func (m *LeaderboardManager) writeWithRetry(ctx context.Context, range_ string, values [][]interface{}) error {
	retry := config.DefaultResilienceConfig.SheetWrite
	wait := retry.InitialWait

	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		if lastErr = m.api.UpdateRange(ctx, m.spreadsheetID, range_, values); lastErr == nil {
			return nil
		}

		if attempt == retry.MaxAttempts {
			break
		}

		log.Debug().
			Err(lastErr).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Sheet write failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		wait = retry.NextWait(wait)
	}

	return lastErr
}

// BuildLeaderboardRows converts merged profile records into sheet rows,
// header first. Rows use [][]interface{} as required at the Sheets API
// boundary.
//
// Pure function: No I/O, deterministic output from input
func BuildLeaderboardRows(stats []app.SkyBlockProfilePlayerStats, updatedAt time.Time) [][]interface{} {
	rows := [][]interface{}{
		{
			"Username", "Profile", "Weight", "Overflow",
			"Skills", "Slayers", "Dungeons",
			"Last Save", "Updated",
		},
	}

	updated := updatedAt.Format("2006-01-02 15:04:05")
	for i := range stats {
		s := &stats[i]
		rows = append(rows, []interface{}{
			s.Username,
			s.Name,
			s.Weight,
			s.WeightOverflow,
			categoryCell(skillsTotals(s.Skills)),
			categoryCell(slayersTotals(s.Slayers)),
			categoryCell(dungeonsTotals(s.Dungeons)),
			s.LastSaveAt.Date.Format("2006-01-02 15:04:05"),
			updated,
		})
	}

	return rows
}

// categoryCell renders a category's combined weight, or N/A for a
// category absent on the profile
func categoryCell(totals *app.WeightTotals) interface{} {
	if totals == nil {
		return "N/A"
	}
	return totals.Weight + totals.WeightOverflow
}

func skillsTotals(w *app.SkillsWeight) *app.WeightTotals {
	if w == nil {
		return nil
	}
	return &w.WeightTotals
}

func slayersTotals(w *app.SlayersWeight) *app.WeightTotals {
	if w == nil {
		return nil
	}
	return &w.WeightTotals
}

func dungeonsTotals(w *app.DungeonsWeight) *app.WeightTotals {
	if w == nil {
		return nil
	}
	return &w.WeightTotals
}
