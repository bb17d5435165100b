package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shelterworks/energyprofile/internal/household"
	"github.com/shelterworks/energyprofile/internal/report"
	"github.com/shelterworks/energyprofile/internal/scenario"
	"github.com/shelterworks/energyprofile/internal/thermal"
	"github.com/shelterworks/energyprofile/internal/usage"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "energyprofile: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.level()).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg *Config, logger zerolog.Logger) error {
	var scn *scenario.Scenario
	if cfg.ScenarioPath == "" {
		logger.Info().Msg("no scenario file given, running bundled example")
		scn = scenario.Default()
	} else {
		loaded, err := scenario.Load(cfg.ScenarioPath)
		if err != nil {
			return err
		}
		scn = loaded
	}

	var renderer report.Renderer = report.NewChartRenderer(cfg.OutDir, logger)
	if cfg.NoCharts {
		renderer = report.NopRenderer{}
	}

	if err := runFacilities(scn, renderer, cfg, logger); err != nil {
		return err
	}
	return runUsage(scn, renderer, cfg, logger)
}

func runFacilities(scn *scenario.Scenario, renderer report.Renderer, cfg *Config, logger zerolog.Logger) error {
	if len(scn.Facilities) == 0 {
		return nil
	}

	estimator := thermal.NewEstimator(logger)
	for _, spec := range scn.Facilities {
		f, err := thermal.NewFacility(spec.Name, spec.AreaM2, spec.HeatLossCoef, spec.Climate)
		if err != nil {
			return err
		}
		if spec.LightingPowerDensity > 0 {
			f.LightingPowerDensity = spec.LightingPowerDensity
		}

		b := estimator.EstimateAnnualEnergy(f, thermal.DefaultEstimateOptions())

		report.WriteFacilitySummary(os.Stdout, f, b)
		fmt.Println()

		if _, err := renderer.FacilityChart(f, b); err != nil {
			return err
		}
		summaryName := fmt.Sprintf("%s_summary.json", sanitizeName(f.Name))
		if _, err := report.WriteJSON(cfg.OutDir, summaryName, report.NewFacilitySummary(f, b)); err != nil {
			return err
		}
	}
	return nil
}

func runUsage(scn *scenario.Scenario, renderer report.Renderer, cfg *Config, logger zerolog.Logger) error {
	if len(scn.UsageRuns) == 0 {
		return nil
	}

	dataset, err := household.NewClientFromFile(cfg.DatasetPath, logger)
	if err != nil {
		return err
	}
	calc := usage.NewCalculator(dataset, logger)

	for _, run := range scn.UsageRuns {
		monthly, err := calc.MonthlyUsage(run.Postcode, run.Households, run.Trend, run.Options())
		if err != nil {
			return err
		}

		title := fmt.Sprintf("Monthly Energy Usage for Postcode %s (%d households)", run.Postcode, run.Households)
		report.WriteUsageTable(os.Stdout, title, monthly)
		fmt.Println()

		chartTitle := fmt.Sprintf("Monthly Energy Usage - Postcode %s", run.Postcode)
		if _, err := renderer.UsageChart(run.Postcode, chartTitle, monthly); err != nil {
			return err
		}
		summaryName := fmt.Sprintf("%s_usage_summary.json", sanitizeName(run.Postcode))
		if _, err := report.WriteJSON(cfg.OutDir, summaryName, report.NewUsageSummary(run.Postcode, run.Households, monthly)); err != nil {
			return err
		}
	}
	return nil
}

// sanitizeName mirrors chart file naming for JSON summary files.
func sanitizeName(name string) string {
	out := []rune(name)
	for i, r := range out {
		switch r {
		case '/', '\\', ':', ' ':
			out[i] = '_'
		}
	}
	return string(out)
}
