// Package main provides the unified report command that runs the
// whole pipeline: fetch, parse, normalize, join, aggregate, render.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fecflow/internal/config"
	"fecflow/internal/fetcher"
	"fecflow/internal/logger"
	"fecflow/internal/models"
	"fecflow/internal/normalizer"
	"fecflow/internal/parser"
	"fecflow/internal/pipeline"
	"fecflow/internal/report"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to pipeline configuration")
	workDir := flag.String("work-dir", "", "Directory for downloaded archives (default: OS temp dir)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("Starting report pipeline", "cycle", cfg.Cycle.Year)

	startTime := time.Now()

	// 1. Ingestion
	// ------------
	log.Info("Phase 1: Ingestion (fetching extracts)...")

	f := fetcher.NewFetcherWithConfig(&cfg.Retry, *workDir)

	candidates, committees, contributions, err := ingest(cfg, f, log)
	if err != nil {
		log.Error(fmt.Sprintf("Ingestion failed: %v", err))
		os.Exit(1)
	}

	log.Info("Extracts loaded",
		"candidates", len(candidates),
		"committees", len(committees),
		"contributions", len(contributions),
		"elapsed", time.Since(startTime).String(),
	)

	// 2. Normalization
	// ----------------
	log.Info("Phase 2: Normalization...")

	processor := normalizer.NewProcessor()
	candidates = processor.Candidates(candidates)
	committees = processor.Committees(committees)
	contributions = processor.Contributions(contributions)

	// 3. Join and filter
	// ------------------
	log.Info("Phase 3: Join and cohort filtering...")

	rawTotals := pipeline.RawTotals(contributions)
	donations := pipeline.Join(contributions, committees, candidates)

	employerCohort := pipeline.ByEmployer(donations, cfg.Cohort.Employer)
	professorCohort := pipeline.ByOccupation(employerCohort, cfg.Cohort.OccupationContains)

	log.Info("Cohorts selected",
		"employer_rows", len(employerCohort),
		"occupation_rows", len(professorCohort),
	)

	// 4. Aggregation
	// --------------
	log.Info("Phase 4: Aggregation...")

	ranked := pipeline.TopPartiesByCash(candidates, cfg.Report.TopN)
	employerCrosstab := pipeline.QuarterCrosstab(pipeline.WithParty(employerCohort))
	professorCrosstab := pipeline.QuarterCrosstab(pipeline.WithParty(professorCohort))

	// 5. Rendering
	// ------------
	log.Info("Phase 5: Rendering reports...")

	if err := render(cfg, rawTotals, ranked, employerCrosstab, professorCrosstab); err != nil {
		log.Error(fmt.Sprintf("Rendering failed: %v", err))
		os.Exit(1)
	}

	log.Info("Pipeline complete",
		"output_dir", cfg.Report.OutputDir,
		"elapsed", time.Since(startTime).String(),
	)
}

// ingest fetches and parses the three extracts, logging per-extract
// parse statistics.
func ingest(cfg *config.Config, f *fetcher.Fetcher, log *logger.Logger) ([]models.Candidate, []models.Committee, []models.Contribution, error) {
	var (
		candidates    []models.Candidate
		committees    []models.Committee
		contributions []models.Contribution
	)

	for _, kind := range []string{config.KindCandidates, config.KindCommittees, config.KindContributions} {
		src, ok := cfg.GetSource(kind)
		if !ok {
			return nil, nil, nil, fmt.Errorf("no source configured for %s", kind)
		}

		path, cleanup, err := f.Fetch(src)
		if err != nil {
			return nil, nil, nil, err
		}

		file, err := os.Open(path)
		if err != nil {
			cleanup()

			return nil, nil, nil, fmt.Errorf("failed to open %s extract: %w", kind, err)
		}

		var stats *parser.Stats

		switch kind {
		case config.KindCandidates:
			candidates, stats, err = parser.LoadCandidates(file)
		case config.KindCommittees:
			committees, stats, err = parser.LoadCommittees(file)
		case config.KindContributions:
			contributions, stats, err = parser.LoadContributions(file)
		}

		file.Close()
		cleanup()

		if err != nil {
			return nil, nil, nil, err
		}

		log.Info("Extract parsed", "kind", kind, "rows", stats.Rows, "skipped", stats.Skipped)

		for col, n := range stats.CoercionFailures {
			log.Debug("Coercion failures", "kind", kind, "column", col, "count", n)
		}
	}

	return candidates, committees, contributions, nil
}

// render writes the text tables to stdout and the HTML tables and
// chart into the output directory. The professor crosstab flows
// straight into the chart; there is no intermediate file.
func render(cfg *config.Config, rawTotals pipeline.Totals, ranked []pipeline.PartyCash, employerCT, professorCT *pipeline.Crosstab) error {
	if err := os.MkdirAll(cfg.Report.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	note := cfg.Report.SourceNote

	tables := []struct {
		table *report.Table
		file  string
	}{
		{report.TotalsTable(rawTotals, note), "totals.html"},
		{report.PartyCashTable(ranked, note), "party_cash.html"},
		{report.CrosstabTable(employerCT, fmt.Sprintf("%s Donations by Quarter", cfg.Cohort.Employer), note), "employer_quarters.html"},
		{report.CrosstabTable(professorCT, fmt.Sprintf("%s %s Donations by Quarter", cfg.Cohort.Employer, cfg.Cohort.OccupationContains), note), "occupation_quarters.html"},
	}

	for _, t := range tables {
		fmt.Println(t.table.Text())

		if err := t.table.WriteHTML(filepath.Join(cfg.Report.OutputDir, t.file)); err != nil {
			return err
		}
	}

	chartTitle := fmt.Sprintf("%s %s Donations", cfg.Cohort.Employer, cfg.Cohort.OccupationContains)
	chartPath := filepath.Join(cfg.Report.OutputDir, "donations_by_quarter.html")

	return report.QuarterChart(professorCT, cfg.CycleQuarters(), chartTitle, note, chartPath)
}
