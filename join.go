package capex

// Join attaches order lines to their project by PONumber. Every project
// appears exactly once, in input order; a project without a matching line
// gets an empty Details slice. Lines whose PONumber matches no project are
// dropped. Matching is exact string equality on the coerced PONumber, so a
// projectless line and an orderless project never pair up through the empty
// string: downstream consumers gate on a non-empty PONumber before trusting
// Details.
func Join(projects []Project, details []OrderDetail) []ProjectWithDetails {
	byPO := make(map[string][]OrderDetail, len(projects))
	for _, d := range details {
		byPO[d.PONumber] = append(byPO[d.PONumber], d)
	}
	joined := make([]ProjectWithDetails, 0, len(projects))
	for _, p := range projects {
		lines := byPO[p.PONumber]
		if p.PONumber == "" {
			lines = nil
		}
		joined = append(joined, ProjectWithDetails{Project: p, Details: lines})
	}
	return joined
}
