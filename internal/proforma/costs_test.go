package proforma

import "testing"

func TestAggregateCosts(t *testing.T) {
	totals := aggregateCosts([]CostLine{
		{TotalCost: 300000, LaborCost: 100000, MaterialCost: 120000, SubcontractorCost: 80000},
		{TotalCost: 100000, LaborCost: 50000, MaterialCost: 30000, SubcontractorCost: 20000},
	})

	approx(t, "total", totals.total, 400000)
	approx(t, "labor percent", totals.laborPercent, 37.5)
	approx(t, "material percent", totals.materialPercent, 37.5)
	approx(t, "subcontractor percent", totals.subcontractorPct, 25)
}

func TestAggregateCostsEmpty(t *testing.T) {
	totals := aggregateCosts(nil)
	if totals.total != 0 || totals.laborPercent != 0 || totals.materialPercent != 0 || totals.subcontractorPct != 0 {
		t.Errorf("empty cost set not all-zero: %+v", totals)
	}
}

func TestDistributeCostsEvenSplit(t *testing.T) {
	totals := aggregateCosts([]CostLine{
		{TotalCost: 400000, LaborCost: 150000, MaterialCost: 150000, SubcontractorCost: 100000},
	})
	dist := distributeCosts(totals, 10)

	if len(dist) != 10 {
		t.Fatalf("got %d months, want 10", len(dist))
	}
	for _, m := range dist {
		approx(t, "labor", m.labor, 15000)
		approx(t, "material", m.material, 15000)
		approx(t, "subcontractor", m.subcontractor, 10000)
		approx(t, "total", m.total, 40000)
	}
}

func TestCostForMonthClampsIndex(t *testing.T) {
	dist := distributeCosts(aggregateCosts([]CostLine{{TotalCost: 30000, LaborCost: 30000}}), 3)

	last := costForMonth(dist, 2)
	beyond := costForMonth(dist, 7)
	if beyond != last {
		t.Errorf("out-of-range lookup = %+v, want last month %+v", beyond, last)
	}

	if empty := costForMonth(nil, 0); empty != (monthlyCost{}) {
		t.Errorf("empty distribution lookup = %+v, want zero", empty)
	}
}
