package proforma

import (
	"math"
	"testing"
	"time"
)

func TestMilestonePaymentsBucketByCalendarMonth(t *testing.T) {
	milestones := []PaymentMilestone{
		{Name: "a", Date: time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC), Amount: 10000},
		{Name: "b", Date: time.Date(2026, time.May, 28, 0, 0, 0, 0, time.UTC), Amount: 5000},
		{Name: "c", Date: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), Amount: 7000},
	}

	approx(t, "May total", milestonePaymentsFor(milestones, date(2026, time.May)), 15000)
	approx(t, "June total", milestonePaymentsFor(milestones, date(2026, time.June)), 7000)
	approx(t, "July total", milestonePaymentsFor(milestones, date(2026, time.July)), 0)
}

func TestRentalIncomeFixedUnit(t *testing.T) {
	units := []RentalUnit{
		{RentType: RentTypeFixed, MonthlyRent: 2000, OccupancyRate: 90},
	}
	approx(t, "rental income", rentalIncomeFor(units, date(2026, time.September)), 1800)
}

func TestRentalIncomePerAreaUnit(t *testing.T) {
	units := []RentalUnit{
		{RentType: RentTypePerArea, SquareFootage: 1000, RentPerSqft: 3, OccupancyRate: 100},
	}
	approx(t, "rental income", rentalIncomeFor(units, date(2026, time.September)), 3000)
}

func TestRentalIncomeOccupancyStartGate(t *testing.T) {
	occupancy := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)
	units := []RentalUnit{
		{RentType: RentTypeFixed, MonthlyRent: 1500, OccupancyRate: 100, OccupancyStartDate: &occupancy},
	}

	approx(t, "before occupancy", rentalIncomeFor(units, date(2026, time.September)), 0)
	// The gate is the first day of the occupancy month, not the given day.
	approx(t, "occupancy month", rentalIncomeFor(units, date(2026, time.October)), 1500)
	approx(t, "after occupancy", rentalIncomeFor(units, date(2026, time.November)), 1500)
}

func TestOperatingExpensesPercentFeeWins(t *testing.T) {
	n := normalizeExpenses(OperatingExpenses{
		ManagementFeePercent: 10,
		ManagementFeeMonthly: 500, // ignored: percent is set
		ReservesMonthly:      100,
	})
	approx(t, "expenses", operatingExpensesFor(n, 2000), 200+100)
}

func TestOperatingExpensesFixedFee(t *testing.T) {
	n := normalizeExpenses(OperatingExpenses{
		ManagementFeeMonthly: 500,
		UtilitiesMonthly:     250,
		OtherMonthly:         50,
	})
	approx(t, "expenses", operatingExpensesFor(n, 2000), 500+250+50)
}

func TestOperatingExpensesAnnualProration(t *testing.T) {
	n := normalizeExpenses(OperatingExpenses{
		Annual:           &AnnualExpenses{Insurance: 1200, PropertyTax: 2400, Other: 600},
		InsuranceMonthly: 999, // ignored: structured annual figures present
	})
	approx(t, "expenses", operatingExpensesFor(n, 0), (1200+2400+600)/12.0)
}

func TestOperatingExpensesLegacyFlatFields(t *testing.T) {
	n := normalizeExpenses(OperatingExpenses{
		InsuranceMonthly:   120,
		PropertyTaxMonthly: 300,
	})
	approx(t, "expenses", operatingExpensesFor(n, 0), 420)
}

func TestOperatingExpensesNegativeFieldsTreatedAsZero(t *testing.T) {
	n := normalizeExpenses(OperatingExpenses{
		ManagementFeeMonthly: -100,
		ReservesMonthly:      -50,
		InsuranceMonthly:     -10,
	})
	approx(t, "expenses", operatingExpensesFor(n, 2000), 0)
}

func TestMonthlyDebtServiceInterestOnly(t *testing.T) {
	payment := monthlyDebtService(DebtService{
		LoanAmount:   500000,
		InterestRate: 6,
		PaymentType:  PaymentTypeInterestOnly,
	})
	approx(t, "interest-only payment", payment, 2500)
}

func TestMonthlyDebtServiceAmortizing(t *testing.T) {
	payment := monthlyDebtService(DebtService{
		LoanAmount:     200000,
		InterestRate:   6,
		LoanTermMonths: 360,
		PaymentType:    PaymentTypeAmortizing,
	})
	// Level payment on 200k @ 0.5%/month over 360 months.
	r := 0.005
	factor := math.Pow(1+r, 360)
	want := 200000 * r * factor / (factor - 1)
	approx(t, "amortizing payment", payment, want)
}

func TestMonthlyDebtServiceZeroRateReconstructsPrincipal(t *testing.T) {
	d := DebtService{
		LoanAmount:     120000,
		InterestRate:   0,
		LoanTermMonths: 48,
		PaymentType:    PaymentTypeAmortizing,
	}
	payment := monthlyDebtService(d)
	approx(t, "zero-rate payment", payment, 2500)

	var total float64
	for i := 0; i < d.LoanTermMonths; i++ {
		total += payment
	}
	approx(t, "repaid principal", total, d.LoanAmount)
}

func TestMonthlyDebtServiceGuards(t *testing.T) {
	// Loan amount is checked before the term: a zero loan with a zero term
	// must not reach the amortization formula.
	approx(t, "zero loan", monthlyDebtService(DebtService{PaymentType: PaymentTypeAmortizing}), 0)
	approx(t, "zero term", monthlyDebtService(DebtService{
		LoanAmount:  100000,
		PaymentType: PaymentTypeAmortizing,
	}), 0)
}
