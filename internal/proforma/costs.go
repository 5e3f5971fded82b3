package proforma

// costTotals is the output of cost aggregation: the total estimated cost and
// its labor/material/subcontractor split in percent.
type costTotals struct {
	total            float64
	laborPercent     float64
	materialPercent  float64
	subcontractorPct float64
}

func aggregateCosts(lines []CostLine) costTotals {
	var t costTotals
	var labor, material, subcontractor float64
	for _, line := range lines {
		t.total += line.TotalCost
		labor += line.LaborCost
		material += line.MaterialCost
		subcontractor += line.SubcontractorCost
	}
	if t.total == 0 {
		return t
	}
	t.laborPercent = labor / t.total * 100
	t.materialPercent = material / t.total * 100
	t.subcontractorPct = subcontractor / t.total * 100
	return t
}

// monthlyCost is one construction month's typed cost share.
type monthlyCost struct {
	labor         float64
	material      float64
	subcontractor float64
	total         float64
}

// distributeCosts spreads the total estimated cost evenly across the
// construction months (straight line, no S-curve) and applies the aggregate
// percentages to each equal share.
func distributeCosts(t costTotals, constructionMonths int) []monthlyCost {
	if constructionMonths < 1 {
		constructionMonths = 1
	}
	share := t.total / float64(constructionMonths)
	dist := make([]monthlyCost, constructionMonths)
	for i := range dist {
		dist[i] = monthlyCost{
			labor:         share * t.laborPercent / 100,
			material:      share * t.materialPercent / 100,
			subcontractor: share * t.subcontractorPct / 100,
			total:         share,
		}
	}
	return dist
}

// costForMonth looks up the distribution by construction-month offset. The
// phase classification keeps the index in range; if it ever is not, the last
// month's share is reused rather than indexing out of bounds.
func costForMonth(dist []monthlyCost, idx int) monthlyCost {
	if len(dist) == 0 {
		return monthlyCost{}
	}
	if idx >= len(dist) {
		idx = len(dist) - 1
	}
	return dist[idx]
}
