// Package main provides the fetch command, which downloads and
// unpacks the bulk extracts without running the rest of the
// pipeline. Useful for staging local files for repeated report runs.
package main

import (
	"flag"
	"fmt"
	"os"

	"fecflow/internal/config"
	"fecflow/internal/fetcher"
	"fecflow/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to pipeline configuration")
	outDir := flag.String("out", "extracts", "Directory to place the extracted flat files")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Error(fmt.Sprintf("Failed to create output dir: %v", err))
		os.Exit(1)
	}

	f := fetcher.NewFetcherWithConfig(&cfg.Retry, *outDir)

	for _, src := range cfg.Cycle.Sources {
		if src.IsLocalFile() {
			log.Info("Skipping local source", "kind", src.Kind, "file", src.File)

			continue
		}

		// Extracted files are the point here, so no cleanup call.
		path, _, err := f.Fetch(src)
		if err != nil {
			log.Error(fmt.Sprintf("Fetch failed for %s: %v", src.Kind, err))
			os.Exit(1)
		}

		log.Info("Extract ready", "kind", src.Kind, "path", path)
	}
}
