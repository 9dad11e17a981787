package engine

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseSnapshotRoundTrip(t *testing.T) {
	snap := Snapshot{
		Version:    SnapshotVersion,
		Data:       NewDataset(30),
		ExportedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	got, err := ParseSnapshot(raw)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if got.Version != SnapshotVersion {
		t.Fatalf("version=%q, want %q", got.Version, SnapshotVersion)
	}
	if len(got.Data) != 30 {
		t.Fatalf("dataset has %d days, want 30", len(got.Data))
	}
	if !got.ExportedAt.Equal(snap.ExportedAt) {
		t.Fatalf("exportedAt=%v, want %v", got.ExportedAt, snap.ExportedAt)
	}
}

func TestParseSnapshotRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "definitely not json"},
		{"missing dataset", `{"version":"4.0"}`},
		{"null dataset", `{"version":"4.0","ramadanData":null}`},
		{"dataset not a mapping", `{"version":"4.0","ramadanData":5}`},
		{"dataset with bad keys", `{"ramadanData":{"abc":{}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.raw))
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err=%v, want ValidationError", err)
			}
		})
	}
}

func TestParseSnapshotToleratesMalformedInformationalFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"numeric version", `{"version":4,"ramadanData":{"1":{"items":{}}}}`},
		{"non-RFC3339 date", `{"version":"4.0","ramadanData":{"1":{"items":{}}},"exportDate":"yesterday"}`},
		{"null version and date", `{"version":null,"ramadanData":{"1":{"items":{}}},"exportDate":null}`},
		{"missing everything but dataset", `{"ramadanData":{"1":{"items":{}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := ParseSnapshot([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseSnapshot: %v", err)
			}
			if len(snap.Data) != 1 {
				t.Fatalf("dataset has %d days, want 1", len(snap.Data))
			}
		})
	}
}

func TestParseSnapshotIgnoresExtraFields(t *testing.T) {
	raw := `{"version":"9.9","ramadanData":{"1":{"items":{},"overallCompletion":0,"completedItems":0}},"exportDate":"2026-03-01T00:00:00Z","note":"hi"}`
	snap, err := ParseSnapshot([]byte(raw))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if len(snap.Data) != 1 {
		t.Fatalf("dataset has %d days, want 1", len(snap.Data))
	}
}
