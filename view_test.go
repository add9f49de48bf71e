package capex

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// memStore is an in-memory Store double. Mutations rewrite the snapshot so a
// refresh observes them, like the real store.
type memStore struct {
	snap     Snapshot
	fail     error
	getCalls int
}

func (m *memStore) GetData(ctx context.Context) (*Snapshot, error) {
	m.getCalls++
	if m.fail != nil {
		return nil, m.fail
	}
	s := m.snap
	return &s, nil
}

func (m *memStore) CreateProject(ctx context.Context, p Project, lines []ExtractedLine) error {
	if m.fail != nil {
		return m.fail
	}
	p.RowIndex = len(m.snap.Projects) + 2
	m.snap.Projects = append(m.snap.Projects, p)
	return nil
}

func (m *memStore) UpdateProjectStatus(ctx context.Context, rowIndex int, status string) error {
	for i := range m.snap.Projects {
		if m.snap.Projects[i].RowIndex == rowIndex {
			m.snap.Projects[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("row %d not found", rowIndex)
}

func (m *memStore) DeleteProject(ctx context.Context, rowIndex int, poNumber string) error {
	for i := range m.snap.Projects {
		if m.snap.Projects[i].RowIndex == rowIndex {
			m.snap.Projects = append(m.snap.Projects[:i], m.snap.Projects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("row %d not found", rowIndex)
}

func (m *memStore) UpdateProject(ctx context.Context, p Project) error {
	for i := range m.snap.Projects {
		if m.snap.Projects[i].RowIndex == p.RowIndex {
			m.snap.Projects[i] = p
			return nil
		}
	}
	return fmt.Errorf("row %d not found", p.RowIndex)
}

func (m *memStore) UpdateForecasts(ctx context.Context, poNumber string, details []OrderDetail) error {
	return m.fail
}

func (m *memStore) UpdateProjectAndDetails(ctx context.Context, p Project, lines []ExtractedLine) error {
	return m.fail
}

func (m *memStore) CreateBudgetCategory(ctx context.Context, category string, allocated Quantity) error {
	m.snap.GlobalBudgets = append(m.snap.GlobalBudgets, GlobalBudget{
		RowIndex: len(m.snap.GlobalBudgets) + 2, Category: category, AllocatedBudget: allocated,
	})
	return nil
}

func (m *memStore) UpdateBudgetCategory(ctx context.Context, g GlobalBudget) error { return m.fail }
func (m *memStore) DeleteBudgetCategory(ctx context.Context, rowIndex int) error   { return m.fail }

// recordingNotifier keeps every notification.
type recordingNotifier struct {
	severities []Severity
	messages   []string
}

func (r *recordingNotifier) Notify(sev Severity, message string) {
	r.severities = append(r.severities, sev)
	r.messages = append(r.messages, message)
}

func viewFixture() *memStore {
	return &memStore{snap: Snapshot{
		Projects: []Project{
			{RowIndex: 2, Name: "Firewall Upgrade", PONumber: "PO-1", Status: Stages[5], Vendor: "Atos", BudgetYear: "2025", BudgetCategory: "Réseaux"},
			{RowIndex: 3, Name: "Stock Serveurs", Status: Stages[0], Vendor: "Dell", BudgetYear: "2024", BudgetCategory: "Datacenter"},
		},
		OrderDetails: []OrderDetail{{PONumber: "PO-1", LineID: "10"}},
	}}
}

func TestViewRefresh(t *testing.T) {
	store := viewFixture()
	v := NewView(store, nil)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v.Err() != nil {
		t.Errorf("Err = %v after a good refresh", v.Err())
	}
	joined := v.Projects()
	if len(joined) != 2 {
		t.Fatalf("Projects = %v", joined)
	}
	if len(joined[0].Details) != 1 {
		t.Errorf("details not joined: %v", joined[0])
	}
}

func TestViewRefreshFailure(t *testing.T) {
	store := viewFixture()
	notify := &recordingNotifier{}
	v := NewView(store, notify)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	store.fail = boom
	if err := v.Refresh(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
	// The view keeps no stale data.
	if v.Err() == nil || v.Projects() != nil || v.Snapshot() != nil {
		t.Errorf("error state not entered: err=%v projects=%v", v.Err(), v.Projects())
	}
	if len(notify.severities) == 0 || notify.severities[len(notify.severities)-1] != SeverityError {
		t.Errorf("no error notification: %v", notify.messages)
	}

	// And recovers wholesale on the next good refresh.
	store.fail = nil
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if v.Err() != nil || len(v.Projects()) != 2 {
		t.Errorf("not recovered: err=%v", v.Err())
	}
}

func TestViewFilter(t *testing.T) {
	store := viewFixture()
	v := NewView(store, nil)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"Firewall Upgrade", "Stock Serveurs"}},
		{"search_name_case", Filter{Search: "firewall"}, []string{"Firewall Upgrade"}},
		{"search_po", Filter{Search: "po-1"}, []string{"Firewall Upgrade"}},
		{"search_vendor", Filter{Search: "dell"}, []string{"Stock Serveurs"}},
		{"status", Filter{Status: Stages[0]}, []string{"Stock Serveurs"}},
		{"year", Filter{Year: "2025"}, []string{"Firewall Upgrade"}},
		{"category", Filter{Category: "Datacenter"}, []string{"Stock Serveurs"}},
		{"and", Filter{Search: "stock", Year: "2025"}, nil},
		{"no_match", Filter{Search: "zzz"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Filtered(tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d projects, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].Name != tc.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i].Name, tc.want[i])
				}
			}
		})
	}
}

func TestViewMutationRefreshes(t *testing.T) {
	store := viewFixture()
	notify := &recordingNotifier{}
	v := NewView(store, notify)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	before := store.getCalls
	p := Project{Name: "Nouveau", Status: Stages[0]}
	if err := v.CreateProject(context.Background(), p, nil); err != nil {
		t.Fatal(err)
	}
	if store.getCalls != before+1 {
		t.Errorf("mutation did not refresh: %d getData calls", store.getCalls)
	}
	if len(v.Projects()) != 3 {
		t.Errorf("created project not visible: %v", v.Projects())
	}
	if notify.severities[len(notify.severities)-1] != SeveritySuccess {
		t.Errorf("no success notification: %v", notify.messages)
	}
}

func TestViewMutationFailureNotifies(t *testing.T) {
	store := viewFixture()
	notify := &recordingNotifier{}
	v := NewView(store, notify)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	if err := v.DeleteProject(context.Background(), 99, ""); err == nil {
		t.Fatal("expected the refusal to surface")
	}
	if notify.severities[len(notify.severities)-1] != SeverityError {
		t.Errorf("no error notification: %v", notify.messages)
	}
	// The snapshot is untouched on failure.
	if len(v.Projects()) != 2 {
		t.Errorf("snapshot changed on a failed mutation: %v", v.Projects())
	}
}

func TestViewFind(t *testing.T) {
	v := NewView(viewFixture(), nil)
	if err := v.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	p, err := v.Find(3)
	if err != nil || p.Name != "Stock Serveurs" {
		t.Errorf("Find(3) = %v, %v", p, err)
	}
	if _, err := v.Find(99); err == nil {
		t.Error("Find(99) should fail")
	}
}
