package capex

import (
	"encoding/json"
	"testing"
)

func TestProjectUnmarshalLenient(t *testing.T) {
	// Cells come back loosely typed: quoted numbers, french separators,
	// numeric order numbers, nulls.
	data := []byte(`{
		"rowIndex": "7",
		"projectName": "Refonte LAN",
		"poNumber": 4500123,
		"statut": "Exécution",
		"fournisseur": " Atos ",
		"budgetCategory": "Réseaux",
		"allocatedBudget": "1 234,56",
		"totalOrdered": null,
		"numDA": 778899,
		"yearofbudget": 2025,
		"zone": "Casa"
	}`)

	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatal(err)
	}
	if p.RowIndex != 7 {
		t.Errorf("RowIndex = %d, want 7", p.RowIndex)
	}
	if p.PONumber != "4500123" {
		t.Errorf("PONumber = %q, want 4500123", p.PONumber)
	}
	if p.Vendor != "Atos" {
		t.Errorf("Vendor = %q, want trimmed Atos", p.Vendor)
	}
	if !p.AllocatedBudget.Equal(MAD(1234.56)) {
		t.Errorf("AllocatedBudget = %v, want 1234.56", p.AllocatedBudget)
	}
	if !p.TotalOrdered.IsZero() {
		t.Errorf("TotalOrdered = %v, want zero", p.TotalOrdered)
	}
	if p.RequestNumber != "778899" {
		t.Errorf("RequestNumber = %q, want 778899", p.RequestNumber)
	}
	if p.BudgetYear != "2025" {
		t.Errorf("BudgetYear = %q, want 2025", p.BudgetYear)
	}
	if string(p.Extra["zone"]) != `"Casa"` {
		t.Errorf("Extra[zone] = %s, want \"Casa\"", p.Extra["zone"])
	}
}

func TestProjectMarshalOmitsZeroRowIndex(t *testing.T) {
	// A create is signaled by the absence of rowIndex, not by rowIndex 0.
	p := Project{Name: "New", AllocatedBudget: MAD(1000)}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["rowIndex"]; ok {
		t.Errorf("rowIndex present in %s", data)
	}

	p.RowIndex = 7
	data, _ = json.Marshal(p)
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if string(m["rowIndex"]) != "7" {
		t.Errorf("rowIndex = %s, want 7", m["rowIndex"])
	}
}

func TestProjectExtraRoundTrip(t *testing.T) {
	data := []byte(`{"rowIndex":2,"projectName":"X","zone":"Casa","sponsor":"DSI"}`)
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"zone", "sponsor"} {
		if _, ok := m[key]; !ok {
			t.Errorf("unknown column %q lost on round trip: %s", key, out)
		}
	}
}

func TestOrderDetailMonths(t *testing.T) {
	data := []byte(`{"poNumber":"PO-1","lineId":"10","quantity":5,"unitPrice":100,"mar":"2","sep":3}`)
	var d OrderDetail
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatal(err)
	}
	if !d.Forecast[2].Equal(Q(2)) || !d.Forecast[8].Equal(Q(3)) {
		t.Errorf("Forecast = %v", d.Forecast)
	}
	if !d.Forecast.Total().Equal(Q(5)) {
		t.Errorf("Total = %v, want 5", d.Forecast.Total())
	}

	// Every bucket must be written back, zeros included: updateForecasts
	// replaces whole rows.
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatal(err)
	}
	for _, month := range Months {
		if _, ok := m[month]; !ok {
			t.Errorf("month %q missing in %s", month, out)
		}
	}
}

func TestGlobalBudgetAllocated(t *testing.T) {
	var g GlobalBudget
	if err := json.Unmarshal([]byte(`{"rowIndex":3,"budgetCategory":"Réseaux","allocatedBudget":"2,5"}`), &g); err != nil {
		t.Fatal(err)
	}
	if !g.Allocated().Equal(MAD(2_500_000)) {
		t.Errorf("Allocated = %v, want 2500000", g.Allocated())
	}
}

func TestMoneyRatio(t *testing.T) {
	if got := MAD(450_000).Ratio(MAD(2_000_000)); !got.Equal(22.5) {
		t.Errorf("Ratio = %v, want 22.5", got)
	}
	// Overruns are not clamped.
	if got := MAD(300).Ratio(MAD(200)); !got.Equal(150) {
		t.Errorf("Ratio = %v, want 150", got)
	}
	if got := MAD(100).Ratio(MAD(0)); got != 0 {
		t.Errorf("Ratio by zero = %v, want 0", got)
	}
	if got := Percent(150).Clamped(); got != 100 {
		t.Errorf("Clamped = %v, want 100", got)
	}
}

func TestMoneyUnits(t *testing.T) {
	m := MAD(1_250_000)
	if got := m.Kilo(); got != "1250.00 KDH" {
		t.Errorf("Kilo = %q", got)
	}
	if got := m.Mega(); got != "1.25 MDH" {
		t.Errorf("Mega = %q", got)
	}
	if got := MAD(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q", got)
	}
}
