package services

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestGetRecord(t *testing.T) {
	signalDir := t.TempDir()
	outputDir := t.TempDir()
	cfg := testConfig(signalDir, outputDir)
	fsvc := NewFeatureService(cfg, &stubOracle{}, NewSignalService())

	recordPath := filepath.Join(outputDir, "sub01_l1_fecg_features.json")
	payload := `{"Quality_OK": true, "QRS_Duration_ms": 82.4, "subject_type": "fetal"}`
	if err := os.WriteFile(recordPath, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	record, err := fsvc.GetRecord("sub01_l1_fecg.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if record["Quality_OK"] != true {
		t.Errorf("Expected Quality_OK=true, got %v", record["Quality_OK"])
	}
}

func TestGetRecordNotFound(t *testing.T) {
	cfg := testConfig(t.TempDir(), t.TempDir())
	fsvc := NewFeatureService(cfg, &stubOracle{}, NewSignalService())

	_, err := fsvc.GetRecord("sub09_l1_fecg.json")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Expected ErrRecordNotFound, got %v", err)
	}
}

func TestGetRecordMalformed(t *testing.T) {
	signalDir := t.TempDir()
	outputDir := t.TempDir()
	cfg := testConfig(signalDir, outputDir)
	fsvc := NewFeatureService(cfg, &stubOracle{}, NewSignalService())

	recordPath := filepath.Join(outputDir, "sub01_l1_fecg_features.json")
	if err := os.WriteFile(recordPath, []byte("{broken json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := fsvc.GetRecord("sub01_l1_fecg.json")
	if !errors.Is(err, ErrRecordMalformed) {
		t.Errorf("Expected ErrRecordMalformed, got %v", err)
	}
}

func TestGetWaveform(t *testing.T) {
	signalDir := t.TempDir()
	outputDir := t.TempDir()
	cfg := testConfig(signalDir, outputDir)
	fsvc := NewFeatureService(cfg, &stubOracle{}, NewSignalService())

	// синус 1.25 Гц при fs=250: максимумы на 50, 250, 450...
	writeSignalFile(t, signalDir, "sub01_l1_fecg.json", sineSignal(1.25, 250, 1000))

	view, err := fsvc.GetWaveform("sub01_l1_fecg.json", 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(view.Samples) != 500 {
		t.Errorf("Expected 500 samples for 2s window, got %d", len(view.Samples))
	}
	if view.DurationSec != 4 {
		t.Errorf("Expected total duration 4s, got %v", view.DurationSec)
	}
	if len(view.RPeaks) != 3 {
		t.Fatalf("Expected 3 peaks in window, got %v", view.RPeaks)
	}
	if view.RPeaks[0] != 50 {
		t.Errorf("Expected first peak at 50, got %d", view.RPeaks[0])
	}
	if math.Abs(view.AmplitudeMax-1.0) > 1e-6 {
		t.Errorf("Expected amplitude max near 1, got %v", view.AmplitudeMax)
	}
}

func TestGetWaveformMissingSignal(t *testing.T) {
	cfg := testConfig(t.TempDir(), t.TempDir())
	fsvc := NewFeatureService(cfg, &stubOracle{}, NewSignalService())

	_, err := fsvc.GetWaveform("sub99_l1_fecg.json", 10)
	if !errors.Is(err, ErrSignalNotFound) {
		t.Errorf("Expected ErrSignalNotFound, got %v", err)
	}
}
