package capex

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Snapshot files let every read command run against a local copy of the
// store, for offline work and for keeping a reviewable history of the
// portfolio in git. The format is the exact data node of a getData answer,
// indented, so a file can be produced with nothing more than curl.

// EncodeSnapshot writes s as indented JSON.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot. It also accepts
// a full getData response body, so a raw curl capture works unmodified.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if len(s.Projects) > 0 {
		return &s, nil
	}
	// Fall back to the enveloped form.
	var envelope struct {
		Data Snapshot `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Data.Projects) > 0 {
		return &envelope.Data, nil
	}
	return nil, ErrEmptyDataset
}

// ReadSnapshotFile loads a snapshot from path.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()
	s, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return s, nil
}

// WriteSnapshotFile saves a snapshot to path, creating parent directories as
// needed. The write goes through a temporary file so an interrupted save
// never truncates an existing snapshot.
func WriteSnapshotFile(path string, s *Snapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot dir: %w", err)
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating snapshot temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := EncodeSnapshot(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing snapshot temp file: %w", err)
	}
	return os.Rename(tmp.Name(), path)
}
