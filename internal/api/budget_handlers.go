package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/triploapp/triplo-server/internal/domain"
)

func (s *Server) registerBudgetRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getTripBudget",
		Method:      http.MethodGet,
		Path:        "/api/v1/trips/{id}/budget",
		Summary:     "Get trip budget",
		Description: "Returns planned-versus-actual spend per category, derived on every read",
		Tags:        []string{"Budget"},
	}, s.handleGetBudget)
}

// BudgetOutput wraps the derived budget stats for Huma.
type BudgetOutput struct {
	Body domain.BudgetStats
}

func (s *Server) handleGetBudget(ctx context.Context, input *TripIDInput) (*BudgetOutput, error) {
	stats, err := s.services.Trip.Budget(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BudgetOutput{Body: *stats}, nil
}
