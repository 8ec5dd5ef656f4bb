package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestRunRendersAllFrames(t *testing.T) {
	dir := t.TempDir()

	results := Run(Config{
		OutputDir:  dir,
		Width:      64,
		Height:     64,
		Frames:     4,
		TurnFrames: 4,
		Scale:      1,
		Workers:    2,
	})

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Errorf("frame %d failed: %s", r.Frame, r.Error)
			continue
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			t.Errorf("frame %d output missing: %v", r.Frame, err)
		} else if info.Size() == 0 {
			t.Errorf("frame %d output is empty", r.Frame)
		}
	}

	// Results are indexed by frame number regardless of worker order.
	for i, r := range results {
		if r.Frame != i {
			t.Errorf("result %d holds frame %d", i, r.Frame)
		}
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	results := []Result{
		{Frame: 0, Path: filepath.Join(dir, "0000.webp"), Success: true},
		{Frame: 1, Error: "boom"},
		{Frame: 2, Path: filepath.Join(dir, "0002.webp"), Success: true},
	}
	if err := WriteManifest(path, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("manifest has %d entries, want 2 (failed frame excluded)", len(entries))
	}
	if entries[0].Frame != 0 || entries[0].Image != "0000.webp" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Frame != 2 || entries[1].Image != "0002.webp" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
