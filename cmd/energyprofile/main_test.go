package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_BundledScenario runs the example scenario headless end to end
// and checks the JSON summaries land in the output directory.
func TestRun_BundledScenario(t *testing.T) {
	out := t.TempDir()
	cfg := &Config{
		DatasetPath: "testdata/postcodes.csv",
		OutDir:      out,
		NoCharts:    true,
		LogLevel:    "error",
	}

	require.NoError(t, run(cfg, zerolog.Nop()))

	for _, name := range []string{
		"Many_Tears_Rescue_Wales_summary.json",
		"APS_summary.json",
		"IV49_usage_summary.json",
	} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoErrorf(t, err, "expected summary %s", name)
	}
}

// TestRun_ScenarioFile runs a scenario loaded from YAML.
func TestRun_ScenarioFile(t *testing.T) {
	out := t.TempDir()
	scenarioPath := filepath.Join(out, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(`
facilities:
  - name: Test Shelter
    area_m2: 100
    heat_loss_coef: 3
    climate:
      January: 5
      February: 4
      March: 6
      April: 8
      May: 11
      June: 13
      July: 15
      August: 15
      September: 13
      October: 10
      November: 7
      December: 5
`), 0o644))

	cfg := &Config{
		ScenarioPath: scenarioPath,
		OutDir:       out,
		NoCharts:     true,
		LogLevel:     "error",
	}

	require.NoError(t, run(cfg, zerolog.Nop()))

	_, err := os.Stat(filepath.Join(out, "Test_Shelter_summary.json"))
	assert.NoError(t, err)
}

// TestRun_MissingDataset verifies usage runs fail loudly without the CSV.
func TestRun_MissingDataset(t *testing.T) {
	cfg := &Config{
		DatasetPath: filepath.Join(t.TempDir(), "absent.csv"),
		OutDir:      t.TempDir(),
		NoCharts:    true,
		LogLevel:    "error",
	}

	err := run(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dataset")
}
