package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"

	"github.com/shalconnects/balanze-go/internal/config"
	"github.com/shalconnects/balanze-go/internal/logging"
)

// printBanner displays the startup banner to stderr
func printBanner(cfg *config.Config, logger *logging.Logger) {
	serviceURL := fmt.Sprintf("http://%s", cfg.Server.Addr())

	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	hr := lineColor + strings.Repeat("═", 60) + banner.ColorReset

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	fmt.Fprintf(os.Stderr, "%s  BALANZE  financial assistant%s\n\n", textColor, banner.ColorReset)

	kvLines := [][2]string{
		{"Version", version},
		{"Commit", commit},
		{"Environment", cfg.Environment},
		{"Service URL", serviceURL},
		{"Store", cfg.Store.Driver},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-16s %s%s\n", textColor, kv[0], kv[1], banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	logger.Info("Application started",
		"version", version,
		"environment", cfg.Environment,
		"service_url", serviceURL,
		"store", cfg.Store.Driver)
}
