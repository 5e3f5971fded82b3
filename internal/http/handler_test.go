package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/buildledger/proforma-service/internal/model"
	"github.com/buildledger/proforma-service/internal/proforma"
	"github.com/buildledger/proforma-service/internal/service"
)

type stubProjects struct {
	project *model.Project
	err     error
}

func (s stubProjects) GetProject(_ context.Context, _ uuid.UUID) (*model.Project, error) {
	return s.project, s.err
}

type stubTrades struct {
	trades []model.Trade
}

func (s stubTrades) ListByProject(_ context.Context, _ uuid.UUID) ([]model.Trade, error) {
	return s.trades, nil
}

func testRouter(projects stubProjects, trades stubTrades) http.Handler {
	svc := service.NewProjectionService(projects, trades, proforma.NewEngine(proforma.DefaultConfig()))
	handler := NewHandler(svc, zerolog.Nop())
	return NewRouter(handler, "test")
}

func testStoredProject() *model.Project {
	return &model.Project{
		ID:            uuid.New(),
		Name:          "Cedar Yard Townhomes",
		ContractValue: 500000,
		StartDate:     time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestProjectCashFlowEndpoint(t *testing.T) {
	project := testStoredProject()
	router := testRouter(
		stubProjects{project: project},
		stubTrades{trades: []model.Trade{
			{Name: "General requirements", TotalCost: 400000, LaborCost: 150000, MaterialCost: 150000, SubcontractorCost: 100000},
		}},
	)

	body := map[string]any{
		"projection_months": 12,
		"overhead_method":   "none",
		"milestones": []map[string]any{
			{"name": "Contract signing", "date": "2026-03-01", "amount": 50000},
		},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/projects/"+project.ID.String()+"/proforma", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var projection proforma.Projection
	if err := json.Unmarshal(rec.Body.Bytes(), &projection); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(projection.MonthlyCashFlows) != 12 {
		t.Errorf("got %d rows, want 12", len(projection.MonthlyCashFlows))
	}
	if projection.TotalEstimatedCost != 400000 {
		t.Errorf("TotalEstimatedCost = %v, want 400000", projection.TotalEstimatedCost)
	}
	if projection.MonthlyCashFlows[0].TotalInflow != 50000 {
		t.Errorf("month 0 inflow = %v, want 50000", projection.MonthlyCashFlows[0].TotalInflow)
	}
}

func TestProjectCashFlowEndpointInvalidProjectID(t *testing.T) {
	router := testRouter(stubProjects{project: testStoredProject()}, stubTrades{})

	req := httptest.NewRequest(http.MethodPost, "/projects/not-a-uuid/proforma",
		bytes.NewReader([]byte(`{"projection_months": 12}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestProjectCashFlowEndpointProjectNotFound(t *testing.T) {
	router := testRouter(stubProjects{err: gorm.ErrRecordNotFound}, stubTrades{})

	req := httptest.NewRequest(http.MethodPost, "/projects/"+uuid.NewString()+"/proforma",
		bytes.NewReader([]byte(`{"projection_months": 12}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestProjectCashFlowEndpointRejectsBadEnums(t *testing.T) {
	router := testRouter(stubProjects{project: testStoredProject()}, stubTrades{})

	req := httptest.NewRequest(http.MethodPost, "/projects/"+uuid.NewString()+"/proforma",
		bytes.NewReader([]byte(`{"projection_months": 12, "overhead_method": "s-curve"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDefaultMilestonesEndpoint(t *testing.T) {
	project := testStoredProject()
	router := testRouter(stubProjects{project: project}, stubTrades{})

	req := httptest.NewRequest(http.MethodPost, "/projects/"+project.ID.String()+"/proforma/milestones",
		bytes.NewReader([]byte(`{"months": 12}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Milestones []proforma.PaymentMilestone `json:"milestones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Milestones) != 6 {
		t.Errorf("got %d milestones, want 6", len(resp.Milestones))
	}
}

func TestHealthz(t *testing.T) {
	router := testRouter(stubProjects{project: testStoredProject()}, stubTrades{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
