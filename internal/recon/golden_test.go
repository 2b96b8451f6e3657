package recon_test

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"opsrecon/internal/recon"
	"opsrecon/internal/source"
)

var update = flag.Bool("update", false, "update golden files")

// TestReconcilePipeline_Golden runs the full pipeline on a checked-in fixture
// pair and compares the serialized Result against a golden file. The fixture
// deliberately mixes field spellings, duration formats, an irrelevant row, a
// dateless row and one broken JSON line, so any change to normalization,
// absorption or aggregation shows up as a diff.
func TestReconcilePipeline_Golden(t *testing.T) {
	goldenDir := filepath.Join("..", "testdata", "golden")

	store := source.NewStore(goldenDir)
	scheduled, err := store.Fetch(context.Background(), "backoffice")
	if err != nil {
		t.Fatalf("Failed to load backoffice fixture: %v", err)
	}
	technical, err := store.Fetch(context.Background(), "support")
	if err != nil {
		t.Fatalf("Failed to load support fixture: %v", err)
	}
	if len(scheduled) == 0 || len(technical) == 0 {
		t.Fatalf("Fixture datasets are empty")
	}

	result := recon.Reconcile(recon.Input{
		Scheduled: scheduled,
		Technical: technical,
		Roster:    []string{"Julien Mercier", "Claire Fontaine", "Antoine Lefebvre"},
	})

	actualJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal result: %v", err)
	}

	goldenPath := filepath.Join(goldenDir, "reconcile_golden.json")

	if *update {
		if err := os.WriteFile(goldenPath, actualJSON, 0644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("Golden file updated at %s", goldenPath)
		return
	}

	expectedJSON, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file not found at %s. Run tests with -update flag to generate it.", goldenPath)
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if !bytes.Equal(expectedJSON, actualJSON) {
		t.Errorf("Mismatch between actual results and golden file.")

		tmpPath := goldenPath + ".actual"
		os.WriteFile(tmpPath, actualJSON, 0644)
		t.Errorf("Wrote actual output to %s for comparison. If the change was intentional, re-run with 'go test ./... -update'", tmpPath)
	}
}
