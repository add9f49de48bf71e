package capex

import (
	"fmt"
	"time"
)

// PVItem is one line of a provisional acceptance report: what remains to be
// received on an order line.
type PVItem struct {
	LineID      string
	Description string
	Quantity    Quantity
}

// PV is a "procès-verbal de réception provisoire": the acceptance document
// signed when a delivery comes in. It covers the quantities still expected
// on the order at the time it is drawn up.
type PV struct {
	Project Project
	Date    time.Time
	Place   string
	Items   []PVItem
}

// PVOptions customizes a generated report.
type PVOptions struct {
	// Date of the acceptance, today when zero.
	Date time.Time
	// Place of the acceptance.
	Place string
}

// NewPV builds the acceptance report for a project from its order lines:
// one item per line with a positive remaining quantity. It fails when the
// project has no order or nothing left to receive.
func NewPV(p ProjectWithDetails, opts PVOptions) (*PV, error) {
	if p.PONumber == "" {
		return nil, fmt.Errorf("project %q has no purchase order", p.Name)
	}
	pv := &PV{Project: p.Project, Date: opts.Date, Place: opts.Place}
	if pv.Date.IsZero() {
		pv.Date = time.Now()
	}
	for _, d := range p.Details {
		remaining := d.Remaining()
		if !remaining.IsPositive() {
			continue
		}
		pv.Items = append(pv.Items, PVItem{
			LineID:      d.LineID,
			Description: d.Description,
			Quantity:    remaining,
		})
	}
	if len(pv.Items) == 0 {
		return nil, fmt.Errorf("order %s is fully received, nothing to accept", p.PONumber)
	}
	return pv, nil
}
