package capex

import "sort"

// ProjectGain is the negotiated saving on one committed project: the gap
// between the allocated budget and what was actually ordered. A negative
// gain is an overrun.
type ProjectGain struct {
	Project Project
	Gain    Money
}

// GainsReport sums negotiated savings over the committed portfolio.
type GainsReport struct {
	TotalAllocated Money
	TotalOrdered   Money
	TotalGain      Money
	Projects       []ProjectGain
}

// NewGainsReport computes savings over committed projects only: those with
// a purchase order and a positive ordered total. Projects come out sorted
// by gain, largest first, ties keeping sheet order.
func NewGainsReport(projects []Project) *GainsReport {
	report := &GainsReport{}
	for _, p := range projects {
		if p.PONumber == "" || !p.TotalOrdered.IsPositive() {
			continue
		}
		gain := p.AllocatedBudget.Sub(p.TotalOrdered)
		report.TotalAllocated = report.TotalAllocated.Add(p.AllocatedBudget)
		report.TotalOrdered = report.TotalOrdered.Add(p.TotalOrdered)
		report.TotalGain = report.TotalGain.Add(gain)
		report.Projects = append(report.Projects, ProjectGain{Project: p, Gain: gain})
	}
	sort.SliceStable(report.Projects, func(i, j int) bool {
		return report.Projects[j].Gain.LessThan(report.Projects[i].Gain)
	})
	return report
}
