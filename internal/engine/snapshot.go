package engine

import (
	"encoding/json"
	"time"
)

// SnapshotVersion is the backup envelope schema version.
const SnapshotVersion = "4.0"

// Snapshot is the export/import envelope. The dataset field name matches the
// original backup files so old exports import cleanly.
type Snapshot struct {
	Version    string    `json:"version"`
	Data       Dataset   `json:"ramadanData"`
	ExportedAt time.Time `json:"exportDate"`
}

// ParseSnapshot decodes a backup blob. It fails with ValidationError when
// the blob is not JSON or lacks a structurally valid dataset mapping; all
// other envelope fields are informational and never rejected, whatever
// their shape.
func ParseSnapshot(raw []byte) (*Snapshot, error) {
	var probe struct {
		Version    json.RawMessage `json:"version"`
		Data       json.RawMessage `json:"ramadanData"`
		ExportedAt json.RawMessage `json:"exportDate"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, ValidationError{Reason: "not a JSON backup file"}
	}
	if len(probe.Data) == 0 || string(probe.Data) == "null" {
		return nil, ValidationError{Reason: "missing ramadanData field"}
	}

	var data Dataset
	if err := json.Unmarshal(probe.Data, &data); err != nil {
		return nil, ValidationError{Reason: "ramadanData is not a day mapping"}
	}

	snap := &Snapshot{Data: data}
	// Best effort on the informational fields: a numeric version or an
	// unparseable date is kept as its zero value, never a rejection.
	_ = json.Unmarshal(probe.Version, &snap.Version)
	_ = json.Unmarshal(probe.ExportedAt, &snap.ExportedAt)
	return snap, nil
}
