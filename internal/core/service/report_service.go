package service

import (
	"context"
	"time"

	"github.com/plantops/manufacturing-ops/internal/core/ports"
)

// ReportService serves the aggregation endpoints straight from the
// production repository's pipelines.
type ReportService struct {
	repo ports.ProductionRepository
}

func NewReportService(repo ports.ProductionRepository) *ReportService {
	return &ReportService{repo: repo}
}

func (s *ReportService) DailySummary(ctx context.Context, from, to time.Time) ([]ports.DailySummary, error) {
	return s.repo.DailySummary(ctx, from, to)
}

func (s *ReportService) MonthlySummary(ctx context.Context, from, to time.Time) ([]ports.MonthlySummary, error) {
	return s.repo.MonthlySummary(ctx, from, to)
}

func (s *ReportService) MachinePerformance(ctx context.Context, from, to time.Time) ([]ports.MachineSummary, error) {
	return s.repo.MachinePerformance(ctx, from, to)
}

func (s *ReportService) Overview(ctx context.Context, from, to time.Time) (*ports.OverviewSummary, error) {
	return s.repo.Overview(ctx, from, to)
}

func (s *ReportService) ByProduct(ctx context.Context, from, to time.Time) ([]ports.ProductSummary, error) {
	return s.repo.ByProduct(ctx, from, to)
}

func (s *ReportService) ByOperator(ctx context.Context, from, to time.Time) ([]ports.OperatorSummary, error) {
	return s.repo.ByOperator(ctx, from, to)
}
