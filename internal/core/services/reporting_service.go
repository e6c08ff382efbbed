package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/parishkeep/church_treasury_app/internal/core/domain"
	portsrepo "github.com/parishkeep/church_treasury_app/internal/core/ports/repositories"
	portssvc "github.com/parishkeep/church_treasury_app/internal/core/ports/services"
)

// reportingService serves derived, read-only reports. Results may be cached
// in redis for a short TTL; a nil client disables caching entirely.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	cache         *redis.Client
	cacheTTL      time.Duration
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, cache *redis.Client, cacheTTL time.Duration) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// fromCache loads a cached report into dest. A miss or an unusable payload
// just reports false; the caller recomputes.
func (s *reportingService) fromCache(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		s.LogDebug(ctx, "discarding unreadable cached report", slog.String("key", key))
		return false
	}
	return true
}

// toCache stores a computed report. Cache failures are logged and swallowed;
// reports must work without redis.
func (s *reportingService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
		s.LogDebug(ctx, "failed to cache report", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// MonthlyTrend returns exactly twelve rows for a year, zero-filled for months
// without activity.
func (s *reportingService) MonthlyTrend(ctx context.Context, year int) ([]domain.MonthlyCashflowRow, error) {
	key := fmt.Sprintf("reports:trend:%d", year)

	var cached []domain.MonthlyCashflowRow
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.reportingRepo.GetMonthlyCashflow(ctx, year)
	if err != nil {
		return nil, err
	}

	trend := make([]domain.MonthlyCashflowRow, 12)
	for i := range trend {
		trend[i] = domain.MonthlyCashflowRow{
			Month:   i + 1,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			trend[row.Month-1] = row
		}
	}

	s.toCache(ctx, key, trend)
	return trend, nil
}

// CategoryBreakdown returns the top categories of a type by yearly total.
func (s *reportingService) CategoryBreakdown(ctx context.Context, year int, categoryType domain.CategoryType, limit int) ([]domain.CategoryTotal, error) {
	if limit <= 0 {
		limit = 10
	}
	key := fmt.Sprintf("reports:breakdown:%d:%s:%d", year, categoryType, limit)

	var cached []domain.CategoryTotal
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	totals, err := s.reportingRepo.GetCategoryTotals(ctx, year, categoryType)
	if err != nil {
		return nil, err
	}
	if len(totals) > limit {
		totals = totals[:limit]
	}

	s.toCache(ctx, key, totals)
	return totals, nil
}
