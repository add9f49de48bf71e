package capex

import "testing"

func TestParseStage(t *testing.T) {
	got, err := ParseStage("  projet clôturé ")
	if err != nil {
		t.Fatal(err)
	}
	if got != ClosedStage {
		t.Errorf("ParseStage = %q, want %q", got, ClosedStage)
	}

	if _, err := ParseStage("Terminé"); err == nil {
		t.Error("expected an error for an unknown stage")
	}
}
