package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/pstrahl/DataEng/internal/config"
	"github.com/pstrahl/DataEng/internal/people"
	"github.com/pstrahl/DataEng/internal/pkg/logger"
)

func main() {
	configPath := envOrDefault("CONFIG_FILE", "config.yaml")
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		logger.Error("config load failed", "path", configPath, "error", err.Error())
		os.Exit(1)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))

	runID := uuid.New().String()
	logger.Info("reconciliation starting",
		"run_id", runID,
		"constituents", cfg.Inputs.Constituents,
		"emails", cfg.Inputs.Emails,
		"subscriptions", cfg.Inputs.Subscriptions,
		"chapter_id", cfg.Pipeline.ChapterID,
	)

	result, err := people.Run(cfg)
	if err != nil {
		logger.Error("reconciliation failed", "run_id", runID, "error", err.Error())
		os.Exit(1)
	}

	logger.Info("reconciliation complete",
		"run_id", runID,
		"people", result.People,
		"acquisition_days", result.AcquisitionDays,
		"people_file", cfg.Outputs.People,
		"acquisition_facts_file", cfg.Outputs.AcquisitionFacts,
	)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
