package renderer

import (
	"embed"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/capex"
)

//go:embed testdata/*.md
var golden embed.FS

var update = flag.Bool("update", false, "rewrite golden files with the received output")

func TestUpdateIsOff(t *testing.T) {
	if *update {
		t.Fatal("-update is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

func checkGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	if *update {
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("updating %s: %v", path, err)
		}
		return
	}
	want, err := golden.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden %s: %v (run with -update to create it)", path, err)
	}
	if string(want) != got {
		t.Errorf("output differs from %s:\ngot:\n%s\nwant:\n%s", path, got, want)
	}
}

// fixture returns a small but representative snapshot: a regular engaged
// project, a closed internal one, and an orphan category.
func fixture() *capex.Snapshot {
	detail := capex.OrderDetail{
		PONumber:    "PO-1001",
		LineID:      "10",
		Description: "Firewall appliance",
		Quantity:    capex.Q(3),
		UnitPrice:   capex.MAD(1000),
		LineTotal:   capex.MAD(3000),
	}
	detail.Forecast[2] = capex.Q(2)
	detail.Forecast[8] = capex.Q(1)

	return &capex.Snapshot{
		Projects: []capex.Project{
			{
				RowIndex: 2, Name: "Firewall Upgrade", PONumber: "PO-1001",
				Status: "Exécution", Vendor: "Atos", BudgetCategory: "Réseaux",
				AllocatedBudget: capex.MAD(500_000), TotalOrdered: capex.MAD(450_000),
				RequestNumber: "DA-77", BudgetYear: "2025",
			},
			{
				RowIndex: 3, Name: "Stock Serveurs",
				Status: "Projet Clôturé", Vendor: "SRM Interne", BudgetCategory: "Datacenter",
				AllocatedBudget: capex.MAD(250_000), BudgetYear: "2025",
			},
			{
				RowIndex: 4, Name: "Licences SIEM", PONumber: "PO-1002",
				Status: "Commande Émise", Vendor: "Oracle", BudgetCategory: "Sécurité",
				AllocatedBudget: capex.MAD(300_000), TotalOrdered: capex.MAD(320_000),
				RequestNumber: "DA-78", BudgetYear: "2024",
			},
		},
		OrderDetails: []capex.OrderDetail{detail},
		GlobalBudgets: []capex.GlobalBudget{
			{RowIndex: 2, Category: "Réseaux", AllocatedBudget: capex.Q(2)},
			{RowIndex: 3, Category: "Datacenter", AllocatedBudget: capex.Q(5)},
		},
	}
}

func TestListMarkdown(t *testing.T) {
	s := fixture()
	joined := capex.Join(s.Projects, s.OrderDetails)
	checkGolden(t, "list.md", ListMarkdown(joined))
}

func TestBoardMarkdown(t *testing.T) {
	s := fixture()
	board := capex.NewBoard(capex.Join(s.Projects, s.OrderDetails), nil)
	checkGolden(t, "board.md", BoardMarkdown(board))
}

func TestBudgetMarkdown(t *testing.T) {
	report := capex.NewBudgetReport(fixture(), capex.DefaultPolicy)
	checkGolden(t, "budget.md", BudgetMarkdown(report))
}

func TestForecastMarkdown(t *testing.T) {
	checkGolden(t, "forecast.md", ForecastMarkdown(capex.MonthlyForecasts(fixture().OrderDetails)))
}

func TestAttentionMarkdownEmpty(t *testing.T) {
	got := AttentionMarkdown(nil, nil)
	if got != "Nothing needs attention.\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestAttentionMarkdown(t *testing.T) {
	s := fixture()
	s.Projects[1].Vendor = "Someone Else" // not internal anymore, so it waits for a PO
	joined := capex.Join(s.Projects, s.OrderDetails)
	got := AttentionMarkdown(capex.AwaitingPO(s.Projects, capex.DefaultPolicy), capex.AwaitingForecasts(joined))

	if !strings.Contains(got, "# Awaiting Purchase Order (1)") {
		t.Errorf("missing awaiting-PO section:\n%s", got)
	}
	if !strings.Contains(got, "Stock Serveurs") {
		t.Errorf("missing awaiting-PO project:\n%s", got)
	}
	// PO-1001 has a plan, PO-1002 has no lines at all: neither awaits a forecast.
	if strings.Contains(got, "# Awaiting Forecast") {
		t.Errorf("unexpected awaiting-forecast section:\n%s", got)
	}
}

func TestGainsMarkdown(t *testing.T) {
	report := capex.NewGainsReport(fixture().Projects)
	got := GainsMarkdown(report)

	// Committed projects only, sorted by gain: +50 KDH before -20 KDH.
	first := strings.Index(got, "Firewall Upgrade")
	second := strings.Index(got, "Licences SIEM")
	if first < 0 || second < 0 || second < first {
		t.Errorf("unexpected row order:\n%s", got)
	}
	if strings.Contains(got, "Stock Serveurs") {
		t.Errorf("uncommitted project in gains report:\n%s", got)
	}
	if !strings.Contains(got, "| **Total** | **800.00 KDH** | **770.00 KDH** |") {
		t.Errorf("unexpected totals:\n%s", got)
	}
}

func TestRenderPV(t *testing.T) {
	s := fixture()
	joined := capex.Join(s.Projects, s.OrderDetails)
	pv, err := capex.NewPV(joined[0], capex.PVOptions{Place: "Casablanca"})
	if err != nil {
		t.Fatal(err)
	}
	got := RenderPV(pv)

	for _, want := range []string{
		"# Procès-Verbal de Réception Provisoire",
		"**Projet :** Firewall Upgrade",
		"**Bon de commande :** PO-1001",
		"**Lieu :** Casablanca",
		"| 10 | Firewall appliance | 3 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
