package capex

import "testing"

func TestNewGainsReport(t *testing.T) {
	projects := []Project{
		{RowIndex: 2, Name: "A", PONumber: "PO-1", AllocatedBudget: MAD(500_000), TotalOrdered: MAD(400_000)},
		{RowIndex: 3, Name: "B", PONumber: "PO-2", AllocatedBudget: MAD(300_000), TotalOrdered: MAD(320_000)},
		{RowIndex: 4, Name: "C", AllocatedBudget: MAD(100_000), TotalOrdered: MAD(50_000)}, // no order
		{RowIndex: 5, Name: "D", PONumber: "PO-3", AllocatedBudget: MAD(100_000)},          // nothing ordered
	}

	r := NewGainsReport(projects)
	if len(r.Projects) != 2 {
		t.Fatalf("got %d committed projects, want 2", len(r.Projects))
	}
	// Sorted by gain, largest first: A (+100k) before B (-20k).
	if r.Projects[0].Project.Name != "A" || r.Projects[1].Project.Name != "B" {
		t.Errorf("order: %q, %q", r.Projects[0].Project.Name, r.Projects[1].Project.Name)
	}
	if !r.Projects[0].Gain.Equal(MAD(100_000)) {
		t.Errorf("A gain = %v, want 100000", r.Projects[0].Gain)
	}
	if !r.Projects[1].Gain.Equal(MAD(-20_000)) {
		t.Errorf("B gain = %v, want -20000 (overrun)", r.Projects[1].Gain)
	}

	if !r.TotalAllocated.Equal(MAD(800_000)) {
		t.Errorf("TotalAllocated = %v", r.TotalAllocated)
	}
	if !r.TotalOrdered.Equal(MAD(720_000)) {
		t.Errorf("TotalOrdered = %v", r.TotalOrdered)
	}
	if !r.TotalGain.Equal(MAD(80_000)) {
		t.Errorf("TotalGain = %v", r.TotalGain)
	}
}

func TestNewGainsReportEmpty(t *testing.T) {
	r := NewGainsReport(nil)
	if len(r.Projects) != 0 || !r.TotalGain.IsZero() {
		t.Errorf("empty portfolio: %+v", r)
	}
}
