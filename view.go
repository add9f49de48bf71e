package capex

import (
	"context"
	"fmt"
	"strings"
)

// Store is the full set of operations a view needs from the backend. *Client
// implements it; tests substitute an in-memory double.
type Store interface {
	GetData(ctx context.Context) (*Snapshot, error)
	CreateProject(ctx context.Context, p Project, lines []ExtractedLine) error
	UpdateProjectStatus(ctx context.Context, rowIndex int, status string) error
	DeleteProject(ctx context.Context, rowIndex int, poNumber string) error
	UpdateProject(ctx context.Context, p Project) error
	UpdateForecasts(ctx context.Context, poNumber string, details []OrderDetail) error
	UpdateProjectAndDetails(ctx context.Context, p Project, lines []ExtractedLine) error
	CreateBudgetCategory(ctx context.Context, category string, allocated Quantity) error
	UpdateBudgetCategory(ctx context.Context, g GlobalBudget) error
	DeleteBudgetCategory(ctx context.Context, rowIndex int) error
}

// View holds the current snapshot and everything derived from it. Derived
// data is recomputed whenever the snapshot is replaced; nothing here ever
// patches a snapshot in place. The one exception to refresh-after-write is
// the Board, which applies stage moves optimistically.
type View struct {
	store  Store
	notify Notifier

	snap   *Snapshot
	joined []ProjectWithDetails
	board  *Board
	err    error
}

// NewView returns an empty view over the store. notify may be nil.
func NewView(store Store, notify Notifier) *View {
	if notify == nil {
		notify = nopNotifier{}
	}
	v := &View{store: store, notify: notify}
	v.board = NewBoard(nil, notify)
	return v
}

// Refresh replaces the snapshot from the store. On failure the view enters
// an error state, keeping no stale data.
func (v *View) Refresh(ctx context.Context) error {
	snap, err := v.store.GetData(ctx)
	if err != nil {
		v.snap = nil
		v.joined = nil
		v.err = err
		v.board.Reset(nil)
		v.notify.Notify(SeverityError, fmt.Sprintf("refresh failed: %v", err))
		return err
	}
	v.Load(snap)
	return nil
}

// Load installs a snapshot obtained out of band, such as a local file.
func (v *View) Load(snap *Snapshot) {
	v.snap = snap
	v.joined = Join(snap.Projects, snap.OrderDetails)
	v.err = nil
	v.board.Reset(v.joined)
}

// Err returns the error of the last failed refresh, nil after a good one.
func (v *View) Err() error { return v.err }

// Snapshot returns the current raw snapshot, nil in error state.
func (v *View) Snapshot() *Snapshot { return v.snap }

// Projects returns the joined projects, nil in error state.
func (v *View) Projects() []ProjectWithDetails { return v.joined }

// Board returns the Kanban coordinator over the current projects.
func (v *View) Board() *Board { return v.board }

// Find returns the joined project at rowIndex.
func (v *View) Find(rowIndex int) (ProjectWithDetails, error) {
	for _, p := range v.joined {
		if p.RowIndex == rowIndex {
			return p, nil
		}
	}
	return ProjectWithDetails{}, fmt.Errorf("no project at row %d", rowIndex)
}

// BudgetReport aggregates the current snapshot per category.
func (v *View) BudgetReport(pol Policy) *BudgetReport {
	if v.snap == nil {
		return &BudgetReport{}
	}
	return NewBudgetReport(v.snap, pol)
}

// GainsReport computes savings over the current snapshot.
func (v *View) GainsReport() *GainsReport {
	if v.snap == nil {
		return &GainsReport{}
	}
	return NewGainsReport(v.snap.Projects)
}

// Forecasts returns the monthly forecast totals of the current snapshot.
func (v *View) Forecasts() []MonthForecast {
	if v.snap == nil {
		return MonthlyForecasts(nil)
	}
	return MonthlyForecasts(v.snap.OrderDetails)
}

// Filter selects projects. All set criteria must match. Search looks through
// name, purchase order number and vendor, case-insensitively.
type Filter struct {
	Search   string
	Status   string
	Year     string
	Category string
}

// Match reports whether the project satisfies every set criterion.
func (f Filter) Match(p Project) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Year != "" && p.BudgetYear != f.Year {
		return false
	}
	if f.Category != "" && p.BudgetCategory != f.Category {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.PONumber), needle) &&
			!strings.Contains(strings.ToLower(p.Vendor), needle) {
			return false
		}
	}
	return true
}

// Filtered returns the joined projects matching f, in snapshot order.
func (v *View) Filtered(f Filter) []ProjectWithDetails {
	var out []ProjectWithDetails
	for _, p := range v.joined {
		if f.Match(p.Project) {
			out = append(out, p)
		}
	}
	return out
}

// mutate runs one store write, notifies the outcome, and refreshes on
// success so derived data is rebuilt from the authoritative state.
func (v *View) mutate(ctx context.Context, success string, op func() error) error {
	if err := op(); err != nil {
		v.notify.Notify(SeverityError, err.Error())
		return err
	}
	v.notify.Notify(SeveritySuccess, success)
	return v.Refresh(ctx)
}

// CreateProject appends a project, optionally with extracted order lines.
func (v *View) CreateProject(ctx context.Context, p Project, lines []ExtractedLine) error {
	return v.mutate(ctx, fmt.Sprintf("project %q created", p.Name), func() error {
		return v.store.CreateProject(ctx, p, lines)
	})
}

// UpdateProject rewrites a full project row.
func (v *View) UpdateProject(ctx context.Context, p Project) error {
	return v.mutate(ctx, fmt.Sprintf("project %q updated", p.Name), func() error {
		return v.store.UpdateProject(ctx, p)
	})
}

// DeleteProject removes a project row and its order lines.
func (v *View) DeleteProject(ctx context.Context, rowIndex int, poNumber string) error {
	return v.mutate(ctx, fmt.Sprintf("project at row %d deleted", rowIndex), func() error {
		return v.store.DeleteProject(ctx, rowIndex, poNumber)
	})
}

// UpdateForecasts replaces the delivery plan of an order.
func (v *View) UpdateForecasts(ctx context.Context, poNumber string, details []OrderDetail) error {
	return v.mutate(ctx, fmt.Sprintf("forecasts of %s updated", poNumber), func() error {
		return v.store.UpdateForecasts(ctx, poNumber, details)
	})
}

// UpdateProjectAndDetails rewrites a project and its lines in one exchange.
func (v *View) UpdateProjectAndDetails(ctx context.Context, p Project, lines []ExtractedLine) error {
	return v.mutate(ctx, fmt.Sprintf("project %q and its order updated", p.Name), func() error {
		return v.store.UpdateProjectAndDetails(ctx, p, lines)
	})
}

// CreateBudgetCategory appends a category envelope, in millions of MAD.
func (v *View) CreateBudgetCategory(ctx context.Context, category string, allocated Quantity) error {
	return v.mutate(ctx, fmt.Sprintf("category %q created", category), func() error {
		return v.store.CreateBudgetCategory(ctx, category, allocated)
	})
}

// UpdateBudgetCategory rewrites a category envelope.
func (v *View) UpdateBudgetCategory(ctx context.Context, g GlobalBudget) error {
	return v.mutate(ctx, fmt.Sprintf("category %q updated", g.Category), func() error {
		return v.store.UpdateBudgetCategory(ctx, g)
	})
}

// DeleteBudgetCategory removes a category envelope.
func (v *View) DeleteBudgetCategory(ctx context.Context, rowIndex int) error {
	return v.mutate(ctx, fmt.Sprintf("category at row %d deleted", rowIndex), func() error {
		return v.store.DeleteBudgetCategory(ctx, rowIndex)
	})
}
