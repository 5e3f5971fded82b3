package model

import (
	"time"

	"github.com/google/uuid"
)

// Project is the stored record a projection run is anchored to. Contract
// value and dates are the defaults fed to the engine when the caller's
// assumption bundle leaves them unset.
type Project struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Address            string     `json:"address"`
	ContractValue      float64    `json:"contract_value"`
	StartDate          time.Time  `json:"start_date"`
	CompletionDate     *time.Time `json:"completion_date,omitempty"`
	TotalSquareFootage float64    `json:"total_square_footage"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
