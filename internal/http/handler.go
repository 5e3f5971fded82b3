package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/buildledger/proforma-service/internal/proforma"
	"github.com/buildledger/proforma-service/internal/service"
)

type Handler struct {
	projections *service.ProjectionService
	log         zerolog.Logger
}

func NewHandler(projections *service.ProjectionService, log zerolog.Logger) *Handler {
	return &Handler{projections: projections, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.POST("/projects/:id/proforma", h.projectCashFlow)
	router.POST("/projects/:id/proforma/milestones", h.defaultMilestones)
}

type milestoneRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Date            string  `json:"date" binding:"required"`
	Amount          float64 `json:"amount"`
	PercentComplete float64 `json:"percent_complete"`
}

type rentalUnitRequest struct {
	SquareFootage      float64 `json:"square_footage"`
	RentType           string  `json:"rent_type"`
	MonthlyRent        float64 `json:"monthly_rent"`
	RentPerSqft        float64 `json:"rent_per_sqft"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	OccupancyStartDate string  `json:"occupancy_start_date"`
}

type annualExpensesRequest struct {
	Insurance   float64 `json:"insurance"`
	PropertyTax float64 `json:"property_tax"`
	Other       float64 `json:"other"`
}

type operatingExpensesRequest struct {
	ManagementFeePercent float64                `json:"management_fee_percent"`
	ManagementFeeMonthly float64                `json:"management_fee_monthly"`
	ReservesMonthly      float64                `json:"reserves_monthly"`
	UtilitiesMonthly     float64                `json:"utilities_monthly"`
	OtherMonthly         float64                `json:"other_monthly"`
	Annual               *annualExpensesRequest `json:"annual"`
	InsuranceMonthly     float64                `json:"insurance_monthly"`
	PropertyTaxMonthly   float64                `json:"property_tax_monthly"`
}

type debtRequest struct {
	LoanAmount     float64 `json:"loan_amount"`
	InterestRate   float64 `json:"interest_rate"`
	LoanTermMonths int     `json:"loan_term_months"`
	PaymentType    string  `json:"payment_type"`
}

type projectionRequest struct {
	ContractValue    float64 `json:"contract_value"`
	ProjectionMonths int     `json:"projection_months" binding:"required"`
	StartDate        string  `json:"start_date"`
	CompletionDate   string  `json:"completion_date"`

	Milestones []milestoneRequest `json:"milestones"`

	OverheadMethod  string  `json:"overhead_method"`
	MonthlyOverhead float64 `json:"monthly_overhead"`

	IncludeRentalIncome bool                `json:"include_rental_income"`
	RentalUnits         []rentalUnitRequest `json:"rental_units"`

	IncludeOperatingExpenses bool                     `json:"include_operating_expenses"`
	OperatingExpenses        operatingExpensesRequest `json:"operating_expenses"`

	IncludeDebtService bool        `json:"include_debt_service"`
	Debt               debtRequest `json:"debt"`

	TotalSquareFootage float64 `json:"total_square_footage"`
}

func (h *Handler) projectCashFlow(c *gin.Context) {
	projectID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req projectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	projection, err := h.projections.ProjectCashFlow(c.Request.Context(), projectID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection)
}

type defaultMilestonesRequest struct {
	Months int `json:"months" binding:"required"`
}

func (h *Handler) defaultMilestones(c *gin.Context) {
	projectID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req defaultMilestonesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestones, err := h.projections.DefaultMilestones(c.Request.Context(), projectID, req.Months)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"milestones": milestones})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("projection failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (r projectionRequest) toInput() (proforma.Input, error) {
	input := proforma.Input{
		ContractValue:            r.ContractValue,
		ProjectionMonths:         r.ProjectionMonths,
		MonthlyOverhead:          r.MonthlyOverhead,
		IncludeRentalIncome:      r.IncludeRentalIncome,
		IncludeOperatingExpenses: r.IncludeOperatingExpenses,
		IncludeDebtService:       r.IncludeDebtService,
		TotalSquareFootage:       r.TotalSquareFootage,
	}

	var err error
	if input.OverheadMethod, err = parseOverheadMethod(r.OverheadMethod); err != nil {
		return proforma.Input{}, err
	}
	if r.StartDate != "" {
		if input.StartDate, err = parseDate(r.StartDate); err != nil {
			return proforma.Input{}, err
		}
	}
	if r.CompletionDate != "" {
		completion, err := parseDate(r.CompletionDate)
		if err != nil {
			return proforma.Input{}, err
		}
		input.CompletionDate = &completion
	}

	for _, m := range r.Milestones {
		milestone := proforma.PaymentMilestone{
			Name:            m.Name,
			Amount:          m.Amount,
			PercentComplete: m.PercentComplete,
		}
		if m.ID != "" {
			if milestone.ID, err = uuid.Parse(strings.TrimSpace(m.ID)); err != nil {
				return proforma.Input{}, service.ErrInvalidInput
			}
		}
		if milestone.Date, err = parseDate(m.Date); err != nil {
			return proforma.Input{}, err
		}
		input.Milestones = append(input.Milestones, milestone)
	}

	for _, u := range r.RentalUnits {
		unit := proforma.RentalUnit{
			SquareFootage: u.SquareFootage,
			MonthlyRent:   u.MonthlyRent,
			RentPerSqft:   u.RentPerSqft,
			OccupancyRate: u.OccupancyRate,
		}
		if unit.RentType, err = parseRentType(u.RentType); err != nil {
			return proforma.Input{}, err
		}
		if u.OccupancyStartDate != "" {
			occupancy, err := parseDate(u.OccupancyStartDate)
			if err != nil {
				return proforma.Input{}, err
			}
			unit.OccupancyStartDate = &occupancy
		}
		input.RentalUnits = append(input.RentalUnits, unit)
	}

	input.OperatingExpenses = proforma.OperatingExpenses{
		ManagementFeePercent: r.OperatingExpenses.ManagementFeePercent,
		ManagementFeeMonthly: r.OperatingExpenses.ManagementFeeMonthly,
		ReservesMonthly:      r.OperatingExpenses.ReservesMonthly,
		UtilitiesMonthly:     r.OperatingExpenses.UtilitiesMonthly,
		OtherMonthly:         r.OperatingExpenses.OtherMonthly,
		InsuranceMonthly:     r.OperatingExpenses.InsuranceMonthly,
		PropertyTaxMonthly:   r.OperatingExpenses.PropertyTaxMonthly,
	}
	if r.OperatingExpenses.Annual != nil {
		input.OperatingExpenses.Annual = &proforma.AnnualExpenses{
			Insurance:   r.OperatingExpenses.Annual.Insurance,
			PropertyTax: r.OperatingExpenses.Annual.PropertyTax,
			Other:       r.OperatingExpenses.Annual.Other,
		}
	}

	input.Debt = proforma.DebtService{
		LoanAmount:     r.Debt.LoanAmount,
		InterestRate:   r.Debt.InterestRate,
		LoanTermMonths: r.Debt.LoanTermMonths,
	}
	if input.Debt.PaymentType, err = parsePaymentType(r.Debt.PaymentType); err != nil {
		return proforma.Input{}, err
	}

	return input, nil
}

func parseOverheadMethod(raw string) (proforma.OverheadMethod, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return proforma.OverheadNone, nil
	case "flat":
		return proforma.OverheadFlat, nil
	case "proportional":
		return proforma.OverheadProportional, nil
	default:
		return "", service.ErrInvalidInput
	}
}

func parseRentType(raw string) (proforma.RentType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "fixed":
		return proforma.RentTypeFixed, nil
	case "per_area", "per_sqft":
		return proforma.RentTypePerArea, nil
	default:
		return "", service.ErrInvalidInput
	}
}

func parsePaymentType(raw string) (proforma.PaymentType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "amortizing":
		return proforma.PaymentTypeAmortizing, nil
	case "interest_only", "interest-only":
		return proforma.PaymentTypeInterestOnly, nil
	default:
		return "", service.ErrInvalidInput
	}
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006-01",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
