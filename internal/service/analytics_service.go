// internal/service/analytics_service.go
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/analytics"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/cache"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/dataset"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/domain"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/loader"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/remote"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/internal/storage"
	"github.com/shubhankar-shipowl/Analytics-Dashboard-sub001/pkg/logger"
)

// AnalyticsService is the boundary the HTTP handlers and the CLI consume.
// It owns the dataset snapshot plus the two optimization paths around local
// aggregation: the remote pre-aggregated API and the redis memoization
// cache. Both degrade silently to local computation.
type AnalyticsService struct {
	store   *dataset.Store
	remote  *remote.Client
	cache   cache.ReportCache
	archive storage.ObjectStorage // nil when archival is disabled

	now func() time.Time
}

func NewAnalyticsService(store *dataset.Store, remoteClient *remote.Client, reportCache cache.ReportCache, archive storage.ObjectStorage) *AnalyticsService {
	return &AnalyticsService{
		store:   store,
		remote:  remoteClient,
		cache:   reportCache,
		archive: archive,
		now:     time.Now,
	}
}

// Snapshot exposes the current dataset generation for info endpoints.
func (s *AnalyticsService) Snapshot() *dataset.Snapshot {
	return s.store.Snapshot()
}

// filtered applies the filter pipeline to the current snapshot.
func (s *AnalyticsService) filtered(filter analytics.Filter) (*dataset.Snapshot, []domain.Order) {
	snap := s.store.Snapshot()
	return snap, filter.Apply(snap.Records, s.now())
}

// Report returns the full dashboard payload for a filter. Resolution order:
// remote pre-aggregated API when available, then the memoization cache, then
// local computation. Remote and cache failures are absorbed; local
// computation cannot fail.
func (s *AnalyticsService) Report(ctx context.Context, filter analytics.Filter) analytics.Report {
	log := logger.Component("service")

	if s.remote != nil {
		if report, ok := s.remote.FetchReport(ctx, filter); ok {
			return report
		}
	}

	snap := s.store.Snapshot()
	if cached, hit, err := s.cache.GetReport(ctx, snap.Version, filter); err != nil {
		log.Warn().Err(err).Msg("report cache read failed")
	} else if hit {
		return *cached
	}

	report := analytics.BuildReport(filter.Apply(snap.Records, s.now()))

	if err := s.cache.SetReport(ctx, snap.Version, filter, &report); err != nil {
		log.Warn().Err(err).Msg("report cache write failed")
	}

	return report
}

// Summary returns the KPI card row.
func (s *AnalyticsService) Summary(ctx context.Context, filter analytics.Filter) analytics.KPISummary {
	return s.Report(ctx, filter).Summary
}

// StatusDistribution returns the order-status distribution.
func (s *AnalyticsService) StatusDistribution(ctx context.Context, filter analytics.Filter) []analytics.StatusCount {
	return s.Report(ctx, filter).StatusDistribution
}

// PaymentDistribution returns the payment-method distribution.
func (s *AnalyticsService) PaymentDistribution(ctx context.Context, filter analytics.Filter) []analytics.PaymentCount {
	return s.Report(ctx, filter).PaymentDistribution
}

// Partners returns the fulfillment-partner analysis.
func (s *AnalyticsService) Partners(ctx context.Context, filter analytics.Filter) []analytics.PartnerStats {
	return s.Report(ctx, filter).Partners
}

// DeliveryRatios returns the overall and per-partner delivery ratios.
func (s *AnalyticsService) DeliveryRatios(ctx context.Context, filter analytics.Filter) (analytics.DeliveryRatio, []analytics.PartnerRatio) {
	report := s.Report(ctx, filter)
	return report.DeliveryRatio, report.PartnerDeliveryRatios
}

// PriceRanges returns the price-range distribution.
func (s *AnalyticsService) PriceRanges(ctx context.Context, filter analytics.Filter) []analytics.PriceBucket {
	return s.Report(ctx, filter).PriceRanges
}

// DailyTrend returns the per-day order and revenue series.
func (s *AnalyticsService) DailyTrend(ctx context.Context, filter analytics.Filter) []analytics.TrendPoint {
	return s.Report(ctx, filter).DailyTrend
}

// TopProducts ranks products with caller-supplied ranking options,
// optionally restricted to a single pincode.
func (s *AnalyticsService) TopProducts(ctx context.Context, filter analytics.Filter, pincode string, opts analytics.RankOptions) []analytics.DimensionStats {
	_, records := s.filtered(filter)
	if strings.TrimSpace(pincode) != "" {
		return analytics.TopProductsForPincode(records, pincode, opts)
	}
	return analytics.TopProducts(records, opts)
}

// TopCities ranks cities with caller-supplied ranking options.
func (s *AnalyticsService) TopCities(ctx context.Context, filter analytics.Filter, opts analytics.RankOptions) []analytics.DimensionStats {
	_, records := s.filtered(filter)
	return analytics.TopCities(records, opts)
}

// PincodePerformance scores (product, pincode) delivery combinations,
// optionally restricted to one product.
func (s *AnalyticsService) PincodePerformance(ctx context.Context, filter analytics.Filter, product string) analytics.PincodePerformance {
	_, records := s.filtered(filter)
	return analytics.ScorePincodes(records, product)
}

// Products lists the distinct product values of the current snapshot for
// the multi-select filter widget.
func (s *AnalyticsService) Products() []string {
	return s.distinct(func(r *domain.Order) string { return r.Product })
}

// Pincodes lists the distinct pincode values of the current snapshot.
func (s *AnalyticsService) Pincodes() []string {
	return s.distinct(func(r *domain.Order) string { return r.Pincode })
}

func (s *AnalyticsService) distinct(value func(*domain.Order) string) []string {
	snap := s.store.Snapshot()
	seen := make(map[string]struct{})
	var out []string
	for i := range snap.Records {
		v := strings.TrimSpace(value(&snap.Records[i]))
		if v == "" || v == domain.UnknownLabel {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ReplaceFromRows loads raw rows and installs the result as the new record
// set, wholesale. Derived-view caches and the remote availability flag are
// invalidated afterwards.
func (s *AnalyticsService) ReplaceFromRows(ctx context.Context, rows []loader.RawRow, origin loader.Source) (*dataset.Snapshot, error) {
	records, err := loader.Load(rows, origin)
	if err != nil {
		return nil, err
	}

	snap := s.store.Replace(records)
	s.afterReplace(ctx)

	log := logger.Component("service")
	log.Info().
		Uint64("version", snap.Version).
		Int("records", len(records)).
		Str("origin", string(origin)).
		Msg("dataset replaced")

	return snap, nil
}

// Clear drops the record set (wholesale replacement with an empty one).
func (s *AnalyticsService) Clear(ctx context.Context) *dataset.Snapshot {
	snap := s.store.Clear()
	s.afterReplace(ctx)
	return snap
}

func (s *AnalyticsService) afterReplace(ctx context.Context) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log := logger.Component("service")
		log.Warn().Err(err).Msg("cache invalidation failed")
	}
	if s.remote != nil {
		s.remote.Invalidate()
	}
}

// ArchiveUpload stores the raw upload bytes for audit and re-ingestion.
// Archival is best effort: a storage failure is logged, never surfaced.
func (s *AnalyticsService) ArchiveUpload(ctx context.Context, filename string, data []byte, contentType string) {
	if s.archive == nil {
		return
	}
	key := fmt.Sprintf("uploads/%s/%s", s.now().Format("20060102"), filename)
	if err := s.archive.PutObject(ctx, key, data, contentType); err != nil {
		log := logger.Component("service")
		log.Warn().Err(err).Str("key", key).Msg("upload archival failed")
	}
}
