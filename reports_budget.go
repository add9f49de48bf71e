package capex

import (
	"sort"
	"strings"
)

// Policy holds the aggregation conventions that decide when a project's
// budget counts as consumed or engaged. The defaults encode current finance
// practice; the marker and threshold are configurable because both have
// changed before.
type Policy struct {
	// VendorMarker flags internally-managed projects: when the vendor name
	// contains it (case-insensitive) and the project is at ClosedStage, the
	// full allocation counts as consumed instead of the ordered total.
	VendorMarker string
	// ClosedStage is the stage at which a marker-vendor project consumes its
	// allocation.
	ClosedStage string
	// EngagedFrom is the index into Stages from which a project with a
	// request number counts as engaged.
	EngagedFrom int
}

// DefaultPolicy reflects how the finance team reads the sheet today.
var DefaultPolicy = Policy{
	VendorMarker: "srm",
	ClosedStage:  ClosedStage,
	EngagedFrom:  3,
}

// markerVendor reports whether the project is internally managed.
func (pol Policy) markerVendor(p Project) bool {
	if pol.VendorMarker == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.Vendor), strings.ToLower(pol.VendorMarker))
}

// consumed returns the amount the project has consumed from its envelope.
func (pol Policy) consumed(p Project) Money {
	if pol.markerVendor(p) && p.Status == pol.ClosedStage {
		return p.AllocatedBudget
	}
	return p.TotalOrdered
}

// engaged reports whether the project allocation is committed: it has a
// request number and has passed the procurement threshold stage.
func (pol Policy) engaged(p Project) bool {
	if p.RequestNumber == "" {
		return false
	}
	for i := pol.EngagedFrom; i < len(Stages); i++ {
		if p.Status == Stages[i] {
			return true
		}
	}
	return false
}

// CategoryBudget is the aggregated view of one budget envelope.
type CategoryBudget struct {
	Name      string
	RowIndex  int
	Allocated Money
	Consumed  Money
	Engaged   Money
	Remaining Money
	// Consumption is Consumed over Allocated; it exceeds 100% on overruns
	// and is zero when no envelope is allocated.
	Consumption Percent
	// EngagedProjects lists the projects whose allocation is committed
	// against this envelope, in snapshot order.
	EngagedProjects []Project
}

// BudgetReport aggregates the portfolio per budget category.
type BudgetReport struct {
	Categories     []CategoryBudget
	TotalAllocated Money
	TotalConsumed  Money
	TotalEngaged   Money
	TotalRemaining Money
	// Orphans lists category labels referenced by projects but missing from
	// the envelopes, in first-seen order. Their amounts are not counted.
	Orphans []string
}

// NewBudgetReport computes the per-category aggregation of a snapshot.
// Envelopes sharing a label collapse into one, last row winning. Categories
// come out sorted by allocation, largest first, ties keeping sheet order.
func NewBudgetReport(s *Snapshot, pol Policy) *BudgetReport {
	order := make([]string, 0, len(s.GlobalBudgets))
	cats := make(map[string]*CategoryBudget, len(s.GlobalBudgets))
	for _, g := range s.GlobalBudgets {
		if _, ok := cats[g.Category]; !ok {
			order = append(order, g.Category)
		}
		cats[g.Category] = &CategoryBudget{
			Name:      g.Category,
			RowIndex:  g.RowIndex,
			Allocated: g.Allocated(),
		}
	}

	report := &BudgetReport{}
	seenOrphan := make(map[string]bool)
	for _, p := range s.Projects {
		cat, ok := cats[p.BudgetCategory]
		if !ok {
			if p.BudgetCategory != "" && !seenOrphan[p.BudgetCategory] {
				seenOrphan[p.BudgetCategory] = true
				report.Orphans = append(report.Orphans, p.BudgetCategory)
			}
			continue
		}
		cat.Consumed = cat.Consumed.Add(pol.consumed(p))
		if pol.engaged(p) {
			cat.Engaged = cat.Engaged.Add(p.AllocatedBudget)
			cat.EngagedProjects = append(cat.EngagedProjects, p)
		}
	}

	report.Categories = make([]CategoryBudget, 0, len(order))
	for _, name := range order {
		cat := cats[name]
		cat.Remaining = cat.Allocated.Sub(cat.Engaged)
		cat.Consumption = cat.Consumed.Ratio(cat.Allocated)
		report.Categories = append(report.Categories, *cat)

		report.TotalAllocated = report.TotalAllocated.Add(cat.Allocated)
		report.TotalConsumed = report.TotalConsumed.Add(cat.Consumed)
		report.TotalEngaged = report.TotalEngaged.Add(cat.Engaged)
		report.TotalRemaining = report.TotalRemaining.Add(cat.Remaining)
	}
	sort.SliceStable(report.Categories, func(i, j int) bool {
		return report.Categories[j].Allocated.LessThan(report.Categories[i].Allocated)
	})
	return report
}

// MonthForecast is the portfolio-wide forecast spend for one month.
type MonthForecast struct {
	Month string
	Total Money
}

// MonthlyForecasts sums quantity×unit price over every order line, per
// month bucket. The twelve months always come out, zeros included.
func MonthlyForecasts(details []OrderDetail) []MonthForecast {
	totals := make([]Money, 12)
	for _, d := range details {
		for i := range Months {
			totals[i] = totals[i].Add(d.UnitPrice.Mul(d.Forecast[i]))
		}
	}
	forecasts := make([]MonthForecast, 12)
	for i, m := range Months {
		forecasts[i] = MonthForecast{Month: m, Total: totals[i]}
	}
	return forecasts
}

// DeliveriesIn returns the projects having at least one order line with a
// non-zero quantity planned in the given month bucket.
func DeliveriesIn(joined []ProjectWithDetails, month string) []ProjectWithDetails {
	i := monthIndex(month)
	if i < 0 {
		return nil
	}
	var out []ProjectWithDetails
	for _, p := range joined {
		for _, d := range p.Details {
			if !d.Forecast[i].IsZero() {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// AwaitingPO lists the projects holding a budget with no purchase order
// placed yet. Marker-vendor projects are excluded: they never get one.
func AwaitingPO(projects []Project, pol Policy) []Project {
	var out []Project
	for _, p := range projects {
		if p.PONumber == "" && p.AllocatedBudget.IsPositive() && !pol.markerVendor(p) {
			out = append(out, p)
		}
	}
	return out
}

// AwaitingForecasts lists the ordered projects whose lines carry no delivery
// plan at all: every month bucket of every line sums to zero.
func AwaitingForecasts(joined []ProjectWithDetails) []ProjectWithDetails {
	var out []ProjectWithDetails
	for _, p := range joined {
		if p.PONumber == "" || len(p.Details) == 0 {
			continue
		}
		planned := false
		for _, d := range p.Details {
			if !d.Forecast.Total().IsZero() {
				planned = true
				break
			}
		}
		if !planned {
			out = append(out, p)
		}
	}
	return out
}
