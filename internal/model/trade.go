package model

import (
	"time"

	"github.com/google/uuid"
)

// Trade is one estimate line of a project: a scope of work with its cost
// split by labor, material, and subcontractor spend.
type Trade struct {
	ID                uuid.UUID `json:"id"`
	ProjectID         uuid.UUID `json:"project_id"`
	Name              string    `json:"name"`
	TotalCost         float64   `json:"total_cost"`
	LaborCost         float64   `json:"labor_cost"`
	MaterialCost      float64   `json:"material_cost"`
	SubcontractorCost float64   `json:"subcontractor_cost"`
	CreatedAt         time.Time `json:"created_at"`
}
