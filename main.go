package main

import (
	"context"
	"flag"
	"time"

	"skyblock_stats/internal/app"
	"skyblock_stats/internal/deployment"
	"skyblock_stats/internal/hypixel"
	"skyblock_stats/internal/processing"
	"skyblock_stats/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	uuid := flag.String("uuid", "", "Minecraft UUID of the player to track (hyphenated or not)")
	interval := flag.Duration("interval", 10*time.Minute, "Interval between weight updates (e.g., 5m, 10m)")
	runOnce := flag.Bool("once", false, "Run once and exit (don't start scheduler)")
	deployTarget := flag.String("deploy", "", "Deploy target in user@host:path format; deploys and exits")
	binaryPath := flag.String("binary", "skyblock-stats", "Path to the built binary used with -deploy")
	flag.Parse()

	if *deployTarget != "" {
		deployer := deployment.NewSSHDeployer(*deployTarget)
		if err := deployer.Deploy(*binaryPath); err != nil {
			log.Fatal().Err(err).Msg("Deployment failed")
		}
		return
	}

	if *uuid == "" {
		log.Fatal().Msg("The -uuid flag is required")
	}

	log.Info().
		Str("uuid", *uuid).
		Dur("interval", *interval).
		Bool("run_once", *runOnce).
		Msg("Starting SkyBlock stats application")

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.UpdateInterval = *interval

	ctx := context.Background()

	// Initialize clients
	hypixelClient := hypixel.NewClient(config.HypixelAPIKey)
	statsProcessor := processing.NewStatsProcessor(hypixelClient)

	var leaderboard *sheets.LeaderboardManager
	if config.SpreadsheetID != "" {
		sheetsClient, err := sheets.NewClient(ctx, config.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create sheets client")
		}
		leaderboard = sheets.NewLeaderboardManager(sheetsClient, config.SpreadsheetID)
	} else {
		log.Info().Msg("SPREADSHEET_ID not set; leaderboard export disabled")
	}

	// Define the main processing function
	processStats := func() {
		log.Debug().Msg("Starting weight update cycle")

		// Reset API call counter at the start of each cycle
		hypixelClient.ResetAPICallCount()

		merged, err := statsProcessor.GetPlayerProfileStats(ctx, *uuid)
		if err != nil {
			log.Error().Err(err).Msg("Failed to compute profile weights")
			return
		}

		for i := range merged {
			log.Info().
				Str("username", merged[i].Username).
				Str("profile", merged[i].Name).
				Float64("weight", merged[i].Weight).
				Float64("weight_overflow", merged[i].WeightOverflow).
				Msg("Profile weight")
		}

		if leaderboard != nil {
			if err := leaderboard.UpdateLeaderboard(ctx, merged); err != nil {
				log.Error().Err(err).Msg("Failed to update leaderboard")
				return
			}
		}

		log.Info().
			Int64("api_calls", hypixelClient.GetAPICallCount()).
			Msg("Completed weight update cycle")
	}

	// Run initial processing
	log.Info().Msg("Running initial weight update")
	processStats()

	// Exit if run-once flag is set
	if *runOnce {
		log.Info().Msg("Run-once mode: exiting after initial processing")
		return
	}

	// Start scheduled processing
	log.Info().
		Dur("interval", *interval).
		Msg("Starting scheduled weight updates")

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for range ticker.C {
		processStats()
	}
}
