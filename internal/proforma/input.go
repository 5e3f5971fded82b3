package proforma

import (
	"time"

	"github.com/google/uuid"
)

type RentType string

const (
	RentTypeFixed   RentType = "fixed"
	RentTypePerArea RentType = "per_area"
)

type PaymentType string

const (
	PaymentTypeInterestOnly PaymentType = "interest_only"
	PaymentTypeAmortizing   PaymentType = "amortizing"
)

type OverheadMethod string

const (
	OverheadNone         OverheadMethod = "none"
	OverheadFlat         OverheadMethod = "flat"
	OverheadProportional OverheadMethod = "proportional"
)

// ProjectInfo is the identifying metadata echoed unchanged into the output.
type ProjectInfo struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CostLine is a single estimate line. Only the cost totals matter to the
// engine; identity and quantities stay with the estimate source.
type CostLine struct {
	TotalCost         float64 `json:"totalCost"`
	LaborCost         float64 `json:"laborCost"`
	MaterialCost      float64 `json:"materialCost"`
	SubcontractorCost float64 `json:"subcontractorCost"`
}

// PaymentMilestone is a scheduled draw against the contract value. Date is
// bucketed at calendar-month granularity; the day of month is ignored.
type PaymentMilestone struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	PercentComplete float64   `json:"percentComplete"`
}

type RentalUnit struct {
	SquareFootage float64  `json:"squareFootage"`
	RentType      RentType `json:"rentType"`
	// MonthlyRent applies when RentType is fixed, RentPerSqft when per_area.
	MonthlyRent float64 `json:"monthlyRent"`
	RentPerSqft float64 `json:"rentPerSqft"`
	// OccupancyRate is a steady-state derating factor in percent, not a
	// vacancy schedule.
	OccupancyRate      float64    `json:"occupancyRate"`
	OccupancyStartDate *time.Time `json:"occupancyStartDate,omitempty"`
}

// AnnualExpenses holds yearly figures prorated to 1/12 per month.
type AnnualExpenses struct {
	Insurance   float64 `json:"insurance"`
	PropertyTax float64 `json:"propertyTax"`
	Other       float64 `json:"other"`
}

type OperatingExpenses struct {
	// ManagementFeePercent wins over ManagementFeeMonthly when non-zero.
	ManagementFeePercent float64 `json:"managementFeePercent"`
	ManagementFeeMonthly float64 `json:"managementFeeMonthly"`
	ReservesMonthly      float64 `json:"reservesMonthly"`
	UtilitiesMonthly     float64 `json:"utilitiesMonthly"`
	OtherMonthly         float64 `json:"otherMonthly"`
	// Annual supersedes the legacy flat monthly fields below when present.
	Annual             *AnnualExpenses `json:"annual,omitempty"`
	InsuranceMonthly   float64         `json:"insuranceMonthly"`
	PropertyTaxMonthly float64         `json:"propertyTaxMonthly"`
}

type DebtService struct {
	LoanAmount     float64     `json:"loanAmount"`
	InterestRate   float64     `json:"interestRate"` // annual, percent
	LoanTermMonths int         `json:"loanTermMonths"`
	PaymentType    PaymentType `json:"paymentType"`
}

// Input is the caller-supplied assumption bundle for one projection run.
type Input struct {
	ContractValue    float64    `json:"contractValue"`
	ProjectionMonths int        `json:"projectionMonths"`
	StartDate        time.Time  `json:"startDate"`
	CompletionDate   *time.Time `json:"completionDate,omitempty"`

	Milestones []PaymentMilestone `json:"milestones"`

	OverheadMethod  OverheadMethod `json:"overheadMethod"`
	MonthlyOverhead float64        `json:"monthlyOverhead"`

	IncludeRentalIncome bool         `json:"includeRentalIncome"`
	RentalUnits         []RentalUnit `json:"rentalUnits,omitempty"`

	IncludeOperatingExpenses bool              `json:"includeOperatingExpenses"`
	OperatingExpenses        OperatingExpenses `json:"operatingExpenses"`

	IncludeDebtService bool        `json:"includeDebtService"`
	Debt               DebtService `json:"debt"`

	// TotalSquareFootage is the project-level figure reported in the rental
	// summary, independent of the sum of unit areas.
	TotalSquareFootage float64 `json:"totalSquareFootage"`
}

type feeKind int

const (
	feePercentOfRent feeKind = iota
	feeFixedMonthly
)

// managementFee is the percent-vs-fixed choice resolved once at
// normalization time.
type managementFee struct {
	kind  feeKind
	value float64
}

func (f managementFee) forMonth(rentalIncome float64) float64 {
	if f.kind == feePercentOfRent {
		return rentalIncome * f.value / 100
	}
	return f.value
}

// normalizedExpenses collapses the either/or operating-expense fields into
// per-month amounts so the monthly calculator never re-inspects raw input.
type normalizedExpenses struct {
	fee           managementFee
	fixedMonthly  float64 // reserves + utilities + other
	annualMonthly float64 // prorated annual items, or the legacy flat fields
}

func normalizeExpenses(in OperatingExpenses) normalizedExpenses {
	n := normalizedExpenses{
		fee:          managementFee{kind: feeFixedMonthly, value: nonNegative(in.ManagementFeeMonthly)},
		fixedMonthly: nonNegative(in.ReservesMonthly) + nonNegative(in.UtilitiesMonthly) + nonNegative(in.OtherMonthly),
	}
	if in.ManagementFeePercent > 0 {
		n.fee = managementFee{kind: feePercentOfRent, value: in.ManagementFeePercent}
	}
	if in.Annual != nil {
		n.annualMonthly = (nonNegative(in.Annual.Insurance) + nonNegative(in.Annual.PropertyTax) + nonNegative(in.Annual.Other)) / 12
	} else {
		n.annualMonthly = nonNegative(in.InsuranceMonthly) + nonNegative(in.PropertyTaxMonthly)
	}
	return n
}

// nonNegative maps missing or negative optional amounts to zero.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
