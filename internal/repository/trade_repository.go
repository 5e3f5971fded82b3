package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildledger/proforma-service/internal/model"
)

type TradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

// ListByProject returns the project's estimate lines in creation order.
func (r *TradeRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Trade, error) {
	var trades []model.Trade
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			project_id,
			name,
			total_cost,
			labor_cost,
			material_cost,
			subcontractor_cost,
			created_at
		FROM trades
		WHERE project_id = ?
		ORDER BY created_at ASC, id ASC
	`, projectID).Scan(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}
