package proforma

import (
	"math"
	"time"
)

// milestonePaymentsFor sums the milestones that fall in the same calendar
// month as the given iteration month.
func milestonePaymentsFor(milestones []PaymentMilestone, month time.Time) float64 {
	var total float64
	for _, m := range milestones {
		if sameMonth(m.Date, month) {
			total += m.Amount
		}
	}
	return total
}

// unitMonthlyRent is the occupancy-derated monthly rent of one unit.
func unitMonthlyRent(u RentalUnit) float64 {
	rent := nonNegative(u.MonthlyRent)
	if u.RentType == RentTypePerArea {
		rent = nonNegative(u.SquareFootage) * nonNegative(u.RentPerSqft)
	}
	return rent * nonNegative(u.OccupancyRate) / 100
}

// rentalIncomeFor sums unit rents for one month. Units with an occupancy
// start date contribute nothing before the first day of that month.
func rentalIncomeFor(units []RentalUnit, month time.Time) float64 {
	var total float64
	for _, u := range units {
		if u.OccupancyStartDate != nil && month.Before(monthStart(*u.OccupancyStartDate)) {
			continue
		}
		total += unitMonthlyRent(u)
	}
	return total
}

// operatingExpensesFor is the month's operating cost given the normalized
// expense assumptions and that month's rental income.
func operatingExpensesFor(n normalizedExpenses, rentalIncome float64) float64 {
	return n.fee.forMonth(rentalIncome) + n.fixedMonthly + n.annualMonthly
}

// monthlyDebtService is the level monthly payment for the loan. The loan
// amount is checked before the term so a zero-amount loan with a zero term
// never reaches the amortization formula.
func monthlyDebtService(d DebtService) float64 {
	if d.LoanAmount <= 0 {
		return 0
	}
	monthlyRate := d.InterestRate / 100 / 12
	if d.PaymentType == PaymentTypeInterestOnly {
		return d.LoanAmount * monthlyRate
	}
	if d.LoanTermMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return d.LoanAmount / float64(d.LoanTermMonths)
	}
	factor := math.Pow(1+monthlyRate, float64(d.LoanTermMonths))
	return d.LoanAmount * monthlyRate * factor / (factor - 1)
}
