package proforma

import (
	"time"

	"github.com/google/uuid"
)

type Phase string

const (
	PhaseConstruction     Phase = "construction"
	PhasePostConstruction Phase = "post-construction"
)

// MonthKeyLayout is the format of MonthlyCashFlow.Month.
const MonthKeyLayout = "2006-01"

// MonthlyCashFlow is one row of the projection, produced in chronological
// order and never revised after creation.
type MonthlyCashFlow struct {
	Month string `json:"month"` // YYYY-MM
	Label string `json:"label"` // e.g. "Mar 2026"
	Phase Phase  `json:"phase"`

	MilestonePayments float64 `json:"milestonePayments"`
	RentalIncome      float64 `json:"rentalIncome"`

	LaborCost          float64 `json:"laborCost"`
	MaterialCost       float64 `json:"materialCost"`
	SubcontractorCost  float64 `json:"subcontractorCost"`
	OverheadAllocation float64 `json:"overheadAllocation"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	DebtService        float64 `json:"debtService"`

	TotalInflow       float64 `json:"totalInflow"`
	TotalOutflow      float64 `json:"totalOutflow"`
	NetCashFlow       float64 `json:"netCashFlow"`
	CumulativeBalance float64 `json:"cumulativeBalance"`
}

type Summary struct {
	TotalInflow    float64 `json:"totalInflow"`
	TotalOutflow   float64 `json:"totalOutflow"`
	NetCashFlow    float64 `json:"netCashFlow"`
	PeakCashNeeded float64 `json:"peakCashNeeded"`
	MonthsNegative int     `json:"monthsNegative"`

	// Stabilized figures are annualized averages over post-construction
	// months with non-zero rental income.
	AnnualRentalIncome      float64 `json:"annualRentalIncome"`
	AnnualOperatingExpenses float64 `json:"annualOperatingExpenses"`
	AnnualDebtService       float64 `json:"annualDebtService"`
	NetOperatingIncome      float64 `json:"netOperatingIncome"`
	CashFlowAfterDebt       float64 `json:"cashFlowAfterDebt"`
}

type CostBreakdown struct {
	LaborPercent         float64 `json:"laborPercent"`
	MaterialPercent      float64 `json:"materialPercent"`
	SubcontractorPercent float64 `json:"subcontractorPercent"`
	OverheadPercent      float64 `json:"overheadPercent"`
}

type RentalSummary struct {
	TotalUnits                int     `json:"totalUnits"`
	TotalSquareFootage        float64 `json:"totalSquareFootage"`
	TotalProjectSquareFootage float64 `json:"totalProjectSquareFootage"`
	AverageRentPerUnit        float64 `json:"averageRentPerUnit"`
	AverageRentPerSqft        float64 `json:"averageRentPerSqft"`
	StabilizedOccupancy       float64 `json:"stabilizedOccupancy"`
}

// Projection is the full result of one engine run.
type Projection struct {
	ProjectID   uuid.UUID `json:"projectId"`
	ProjectName string    `json:"projectName"`

	ContractValue    float64   `json:"contractValue"`
	StartDate        time.Time `json:"startDate"`
	ProjectionMonths int       `json:"projectionMonths"`

	TotalEstimatedCost float64 `json:"totalEstimatedCost"`
	ProjectedProfit    float64 `json:"projectedProfit"`
	ProjectedMargin    float64 `json:"projectedMargin"`

	MonthlyCashFlows []MonthlyCashFlow `json:"monthlyCashFlows"`
	Summary          Summary           `json:"summary"`
	CostBreakdown    CostBreakdown     `json:"costBreakdown"`
	RentalSummary    RentalSummary     `json:"rentalSummary"`
}
