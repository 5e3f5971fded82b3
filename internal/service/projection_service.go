package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/buildledger/proforma-service/internal/model"
	"github.com/buildledger/proforma-service/internal/proforma"
)

// ProjectStore and TradeStore are the slices of the estimate source the
// projection service needs.
type ProjectStore interface {
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
}

type TradeStore interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Trade, error)
}

type ProjectionService struct {
	projects ProjectStore
	trades   TradeStore
	engine   *proforma.Engine
}

func NewProjectionService(projects ProjectStore, trades TradeStore, engine *proforma.Engine) *ProjectionService {
	return &ProjectionService{
		projects: projects,
		trades:   trades,
		engine:   engine,
	}
}

// ProjectCashFlow loads the project and its estimate lines and runs the
// engine over the caller's assumption bundle. Stored project fields fill any
// identifying or date fields the bundle leaves unset.
func (s *ProjectionService) ProjectCashFlow(ctx context.Context, projectID uuid.UUID, input proforma.Input) (*proforma.Projection, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}

	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	trades, err := s.trades.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if input.ContractValue == 0 {
		input.ContractValue = project.ContractValue
	}
	if input.StartDate.IsZero() {
		input.StartDate = project.StartDate
	}
	if input.CompletionDate == nil {
		input.CompletionDate = project.CompletionDate
	}
	if input.TotalSquareFootage == 0 {
		input.TotalSquareFootage = project.TotalSquareFootage
	}

	lines := make([]proforma.CostLine, 0, len(trades))
	for _, trade := range trades {
		lines = append(lines, proforma.CostLine{
			TotalCost:         trade.TotalCost,
			LaborCost:         trade.LaborCost,
			MaterialCost:      trade.MaterialCost,
			SubcontractorCost: trade.SubcontractorCost,
		})
	}

	projection, err := s.engine.ProjectCashFlow(proforma.ProjectInfo{
		ID:   project.ID,
		Name: project.Name,
	}, lines, input)
	if err != nil {
		if errors.Is(err, proforma.ErrInvalidHorizon) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}
	return projection, nil
}

// DefaultMilestones materializes the standard payment schedule from the
// project's stored contract value and start date.
func (s *ProjectionService) DefaultMilestones(ctx context.Context, projectID uuid.UUID, months int) ([]proforma.PaymentMilestone, error) {
	if projectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is required", ErrInvalidInput)
	}
	if months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive", ErrInvalidInput)
	}

	project, err := s.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.engine.GenerateDefaultMilestones(project.ContractValue, project.StartDate, months), nil
}

func (s *ProjectionService) loadProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	project, err := s.projects.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}
