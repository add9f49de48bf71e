package capex

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := &Snapshot{
		Projects: []Project{
			{RowIndex: 2, Name: "A", PONumber: "PO-1", AllocatedBudget: MAD(1000.50)},
		},
		OrderDetails:  []OrderDetail{{PONumber: "PO-1", LineID: "10", Quantity: Q(2)}},
		GlobalBudgets: []GlobalBudget{{RowIndex: 2, Category: "Réseaux", AllocatedBudget: Q(2)}},
	}

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, s); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Projects) != 1 || got.Projects[0].Name != "A" {
		t.Errorf("projects = %v", got.Projects)
	}
	if !got.Projects[0].AllocatedBudget.Equal(MAD(1000.50)) {
		t.Errorf("amount = %v", got.Projects[0].AllocatedBudget)
	}
	if len(got.OrderDetails) != 1 || len(got.GlobalBudgets) != 1 {
		t.Errorf("sizes = %d/%d", len(got.OrderDetails), len(got.GlobalBudgets))
	}
}

func TestDecodeSnapshotEnvelope(t *testing.T) {
	// A raw curl capture of the store answer works unmodified.
	body := `{"status":"success","data":{"projects":[{"rowIndex":2,"projectName":"A"}],"orderDetails":[],"globalBudgets":[]}}`
	got, err := DecodeSnapshot(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Projects) != 1 || got.Projects[0].Name != "A" {
		t.Errorf("projects = %v", got.Projects)
	}
}

func TestDecodeSnapshotEmpty(t *testing.T) {
	_, err := DecodeSnapshot(strings.NewReader(`{"projects":[],"orderDetails":[],"globalBudgets":[]}`))
	if !errors.Is(err, ErrEmptyDataset) {
		t.Errorf("err = %v, want ErrEmptyDataset", err)
	}
}

func TestSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.json")
	s := &Snapshot{Projects: []Project{{RowIndex: 2, Name: "A"}}}

	if err := WriteSnapshotFile(path, s); err != nil {
		t.Fatal(err)
	}
	got, err := ReadSnapshotFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Projects) != 1 || got.Projects[0].Name != "A" {
		t.Errorf("projects = %v", got.Projects)
	}

	if _, err := ReadSnapshotFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
