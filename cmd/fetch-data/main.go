// Package main provides the entry point for the dataset download tool.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/soccer-bettor/internal/config"
	"github.com/yourusername/soccer-bettor/internal/dataset"
	"github.com/yourusername/soccer-bettor/internal/logger"
)

var (
	configFile string
	leagues    []string
	seasons    []string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringSliceVar(&leagues, "leagues", nil, "Leagues to fetch (defaults to configured leagues)")
	rootCmd.Flags().StringSliceVar(&seasons, "seasons", nil, "Season codes to fetch (defaults to configured seasons)")
}

var rootCmd = &cobra.Command{
	Use:   "fetch-data",
	Short: "Download historical match data",
	Long:  `Downloads season files from football-data.co.uk into the local data directory so backtests can run offline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return fetchData(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func fetchData(ctx context.Context) error {
	cfg, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log := logger.NewLogger(cfg.App.LogLevel)

	if len(leagues) == 0 {
		leagues = cfg.Dataset.Leagues
	}
	if len(seasons) == 0 {
		seasons = cfg.Dataset.Seasons
	}

	client := dataset.NewClient(dataset.ClientConfig{
		Timeout:      time.Duration(cfg.Dataset.TimeoutSeconds) * time.Second,
		MaxRetries:   cfg.Dataset.RetryAttempts,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    cfg.Dataset.RateLimitPerSecond,
	})
	defer client.Close()

	loader := dataset.NewLoader(client, dataset.LoaderConfig{
		BaseURL:             cfg.Dataset.BaseURL,
		DataDir:             cfg.Dataset.DataDir,
		CacheTTL:            time.Duration(cfg.Dataset.CacheTTLSeconds) * time.Second,
		CacheSweep:          time.Duration(cfg.Dataset.CacheSweepSeconds) * time.Second,
		MinMatchesPerSeason: cfg.Dataset.MinMatchesPerSeason,
	}, log)

	matches, err := loader.LoadAll(ctx, leagues, seasons)
	if err != nil {
		return err
	}

	fmt.Printf("Fetched %d matches across %d leagues and %d seasons into %s\n",
		len(matches), len(leagues), len(seasons), cfg.Dataset.DataDir)
	return nil
}
