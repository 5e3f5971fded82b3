// Package proforma turns project-level financial assumptions into a
// month-by-month cash-flow forecast for a construction project that may
// transition into an income-producing asset after completion. The engine is
// a pure function of its inputs: no persistence, no shared state, safe for
// concurrent callers.
package proforma

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidHorizon rejects non-positive or excessive projection horizons.
// Degenerate horizons are almost certainly caller bugs, so the engine
// refuses them instead of returning an empty projection.
var ErrInvalidHorizon = errors.New("projection horizon out of range")

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.ConstructionFraction <= 0 {
		cfg.ConstructionFraction = DefaultConfig().ConstructionFraction
	}
	if cfg.MaxProjectionMonths <= 0 {
		cfg.MaxProjectionMonths = DefaultConfig().MaxProjectionMonths
	}
	if len(cfg.DefaultMilestones) == 0 {
		cfg.DefaultMilestones = DefaultConfig().DefaultMilestones
	}
	return &Engine{cfg: cfg}
}

// ProjectCashFlow runs the full projection over the input horizon.
//
// When the construction window implied by the completion date is longer than
// the horizon, months past the horizon are never visited and their share of
// the construction budget is never paid out in the projection. That
// truncation is deliberate and matches how shortened pro formas are read in
// practice: the horizon bounds the view, not the build.
func (e *Engine) ProjectCashFlow(project ProjectInfo, lines []CostLine, input Input) (*Projection, error) {
	if input.ProjectionMonths <= 0 || input.ProjectionMonths > e.cfg.MaxProjectionMonths {
		return nil, fmt.Errorf("%w: %d months", ErrInvalidHorizon, input.ProjectionMonths)
	}

	totals := aggregateCosts(lines)
	start := monthStart(input.StartDate)
	completion := e.completionDate(input.StartDate, input.ProjectionMonths, input.CompletionDate)
	constructionMonths := constructionMonthCount(input.StartDate, completion)
	distribution := distributeCosts(totals, constructionMonths)

	expenses := normalizeExpenses(input.OperatingExpenses)
	debtPayment := 0.0
	if input.IncludeDebtService {
		debtPayment = monthlyDebtService(input.Debt)
	}
	interestOnlyDebt := input.Debt.PaymentType == PaymentTypeInterestOnly

	rows := make([]MonthlyCashFlow, 0, input.ProjectionMonths)
	cumulative := 0.0
	overheadTotal := 0.0

	for i := 0; i < input.ProjectionMonths; i++ {
		month := start.AddDate(0, i, 0)
		phase := classify(month, completion)

		row := MonthlyCashFlow{
			Month: month.Format(MonthKeyLayout),
			Label: month.Format("Jan 2006"),
			Phase: phase,
		}

		if phase == PhaseConstruction {
			row.MilestonePayments = milestonePaymentsFor(input.Milestones, month)

			share := costForMonth(distribution, i)
			row.LaborCost = share.labor
			row.MaterialCost = share.material
			row.SubcontractorCost = share.subcontractor
			row.OverheadAllocation = e.overheadFor(input, share, totals.total, constructionMonths)
			overheadTotal += row.OverheadAllocation

			// Interest-only debt accrues during the draw period.
			if interestOnlyDebt {
				row.DebtService = debtPayment
			}
		} else {
			if input.IncludeRentalIncome {
				row.RentalIncome = rentalIncomeFor(input.RentalUnits, month)
			}
			if input.IncludeOperatingExpenses {
				row.OperatingExpenses = operatingExpensesFor(expenses, row.RentalIncome)
			}
			row.DebtService = debtPayment
		}

		row.TotalInflow = row.MilestonePayments + row.RentalIncome
		row.TotalOutflow = row.LaborCost + row.MaterialCost + row.SubcontractorCost +
			row.OverheadAllocation + row.OperatingExpenses + row.DebtService
		row.NetCashFlow = row.TotalInflow - row.TotalOutflow
		cumulative += row.NetCashFlow
		row.CumulativeBalance = cumulative

		rows = append(rows, row)
	}

	projection := &Projection{
		ProjectID:          project.ID,
		ProjectName:        project.Name,
		ContractValue:      input.ContractValue,
		StartDate:          start,
		ProjectionMonths:   input.ProjectionMonths,
		TotalEstimatedCost: totals.total,
		ProjectedProfit:    input.ContractValue - totals.total,
		MonthlyCashFlows:   rows,
		Summary:            summarize(rows),
		CostBreakdown: CostBreakdown{
			LaborPercent:         totals.laborPercent,
			MaterialPercent:      totals.materialPercent,
			SubcontractorPercent: totals.subcontractorPct,
		},
		RentalSummary: rentalSummary(input),
	}
	if input.ContractValue != 0 {
		projection.ProjectedMargin = projection.ProjectedProfit / input.ContractValue
	}
	if input.OverheadMethod != OverheadNone && totals.total+overheadTotal > 0 {
		projection.CostBreakdown.OverheadPercent = overheadTotal / (totals.total + overheadTotal) * 100
	}
	return projection, nil
}

// overheadFor allocates overhead to one construction month. The proportional
// method re-derives the figure from the monthly overhead rate times the
// construction duration, weighted by the month's share of total cost.
func (e *Engine) overheadFor(input Input, share monthlyCost, totalCost float64, constructionMonths int) float64 {
	switch input.OverheadMethod {
	case OverheadFlat:
		return nonNegative(input.MonthlyOverhead)
	case OverheadProportional:
		if totalCost <= 0 {
			return 0
		}
		return share.total / totalCost * (nonNegative(input.MonthlyOverhead) * float64(constructionMonths))
	default:
		return 0
	}
}

func summarize(rows []MonthlyCashFlow) Summary {
	var s Summary
	peakDeficit := 0.0
	var stabilizedRental, stabilizedOpEx, stabilizedDebt float64
	stabilizedMonths := 0

	for _, row := range rows {
		s.TotalInflow += row.TotalInflow
		s.TotalOutflow += row.TotalOutflow
		s.NetCashFlow += row.NetCashFlow
		if row.CumulativeBalance < 0 {
			s.MonthsNegative++
			if -row.CumulativeBalance > peakDeficit {
				peakDeficit = -row.CumulativeBalance
			}
		}
		if row.Phase == PhasePostConstruction && row.RentalIncome > 0 {
			stabilizedRental += row.RentalIncome
			stabilizedOpEx += row.OperatingExpenses
			stabilizedDebt += row.DebtService
			stabilizedMonths++
		}
	}
	s.PeakCashNeeded = peakDeficit

	if stabilizedMonths > 0 {
		avgRental := stabilizedRental / float64(stabilizedMonths)
		avgOpEx := stabilizedOpEx / float64(stabilizedMonths)
		avgDebt := stabilizedDebt / float64(stabilizedMonths)
		s.AnnualRentalIncome = avgRental * 12
		s.AnnualOperatingExpenses = avgOpEx * 12
		s.AnnualDebtService = avgDebt * 12
		s.NetOperatingIncome = (avgRental - avgOpEx) * 12
		s.CashFlowAfterDebt = (s.NetOperatingIncome/12 - avgDebt) * 12
	}
	return s
}

func rentalSummary(input Input) RentalSummary {
	summary := RentalSummary{
		TotalProjectSquareFootage: nonNegative(input.TotalSquareFootage),
	}
	if !input.IncludeRentalIncome || len(input.RentalUnits) == 0 {
		return summary
	}

	var totalRent, totalOccupancy float64
	for _, u := range input.RentalUnits {
		summary.TotalSquareFootage += nonNegative(u.SquareFootage)
		totalRent += unitMonthlyRent(u)
		totalOccupancy += nonNegative(u.OccupancyRate)
	}
	summary.TotalUnits = len(input.RentalUnits)
	summary.AverageRentPerUnit = totalRent / float64(summary.TotalUnits)
	if summary.TotalSquareFootage > 0 {
		summary.AverageRentPerSqft = totalRent / summary.TotalSquareFootage
	}
	summary.StabilizedOccupancy = totalOccupancy / float64(summary.TotalUnits)
	return summary
}

// GenerateDefaultMilestones materializes the configured payment schedule for
// a contract: each template's share of the contract value, dated at its
// completion point within the given duration.
func (e *Engine) GenerateDefaultMilestones(contractValue float64, startDate time.Time, months int) []PaymentMilestone {
	if months < 0 {
		months = 0
	}
	start := monthStart(startDate)
	milestones := make([]PaymentMilestone, 0, len(e.cfg.DefaultMilestones))
	for _, tpl := range e.cfg.DefaultMilestones {
		offset := int(math.Round(float64(months) * tpl.PercentComplete / 100))
		milestones = append(milestones, PaymentMilestone{
			ID:              uuid.New(),
			Name:            tpl.Name,
			Date:            start.AddDate(0, offset, 0),
			Amount:          contractValue * tpl.PercentOfValue / 100,
			PercentComplete: tpl.PercentComplete,
		})
	}
	return milestones
}
