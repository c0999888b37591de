package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shelfwise-lab/project-shelfwise/internal/core/period"
	"github.com/shelfwise-lab/project-shelfwise/internal/core/storage"
	"golang.org/x/sync/singleflight"
)

// Service implements the year-over-year comparison layer. Each call is
// stateless and read-only: it loads the identifier scope once, resolves the
// reporting period from the scope's dates, aggregates the current and
// prior-year windows in memory, and returns. Nothing is retained between
// calls.
type Service struct {
	store storage.InventoryStore
	group singleflight.Group
}

// NewService creates an insight service over the given inventory store.
func NewService(store storage.InventoryStore) *Service {
	return &Service{store: store}
}

// loadScope fetches the rows for one identifier scope. Concurrent calls for
// the same key share a single store read; results are discarded after the
// call returns, so this is deduplication, not a cache.
func (s *Service) loadScope(ctx context.Context, key string, fetch func() ([]storage.Record, error)) ([]storage.Record, error) {
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return fetch()
	})
	if err != nil {
		return nil, err
	}
	return v.([]storage.Record), nil
}

// CompareProduct aggregates one product for the resolved period and the same
// month one year earlier. monthName may be empty (latest period) and storeID
// may be empty (all stores). The store filter applies only when aggregating;
// period resolution always sees the full product scope.
func (s *Service) CompareProduct(ctx context.Context, productID, monthName, storeID string) (*ProductComparison, error) {
	rows, err := s.loadScope(ctx, "product:"+productID, func() ([]storage.Record, error) {
		return s.store.ListByProduct(ctx, productID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load product scope %s: %w", productID, err)
	}
	if len(rows) == 0 {
		return nil, noProductData(productID)
	}

	current, err := period.Resolve(datesOf(rows), monthName)
	if err != nil {
		return nil, err
	}
	previous := current.Prior()

	currentCtx := aggregateProduct(rows, productID, storeID, current)
	previousCtx := aggregateProduct(rows, productID, storeID, previous)

	// The scope may have rows in neither window, so the name falls back
	// through both aggregates before giving up.
	productName := "N/A"
	switch {
	case currentCtx != nil:
		productName = currentCtx.ProductName
	case previousCtx != nil:
		productName = previousCtx.ProductName
	}

	slog.Debug("[Insight] Product comparison computed",
		"product_id", productID,
		"period", current.Label(),
		"current_absent", currentCtx == nil,
		"previous_absent", previousCtx == nil)

	return &ProductComparison{
		Current:  outcomeOf(currentCtx, current),
		Previous: outcomeOf(previousCtx, previous),
		Parameters: ProductParameters{
			ProductID:      productID,
			ProductName:    productName,
			StoreID:        storeLabel(storeID),
			Month:          current.MonthName(),
			CurrentYear:    current.Year,
			ComparisonYear: previous.Year,
		},
	}, nil
}

// CompareCategory aggregates one category for the resolved period and the
// same month one year earlier.
func (s *Service) CompareCategory(ctx context.Context, category, monthName, storeID string) (*CategoryComparison, error) {
	rows, err := s.loadScope(ctx, "category:"+category, func() ([]storage.Record, error) {
		return s.store.ListByCategory(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load category scope %s: %w", category, err)
	}
	if len(rows) == 0 {
		return nil, noCategoryData(category)
	}

	current, err := period.Resolve(datesOf(rows), monthName)
	if err != nil {
		return nil, err
	}
	previous := current.Prior()

	currentCtx := aggregateCategory(rows, category, storeID, current)
	previousCtx := aggregateCategory(rows, category, storeID, previous)

	slog.Debug("[Insight] Category comparison computed",
		"category", category,
		"period", current.Label(),
		"current_absent", currentCtx == nil,
		"previous_absent", previousCtx == nil)

	return &CategoryComparison{
		Current:  outcomeOf(currentCtx, current),
		Previous: outcomeOf(previousCtx, previous),
		Parameters: CategoryParameters{
			Category:       category,
			StoreID:        storeLabel(storeID),
			Month:          current.MonthName(),
			CurrentYear:    current.Year,
			ComparisonYear: previous.Year,
		},
	}, nil
}

// OverallSummary aggregates the whole dataset, grouped by category, for the
// resolved period and the same month one year earlier.
func (s *Service) OverallSummary(ctx context.Context, monthName, storeID string) (*SummaryComparison, error) {
	rows, err := s.loadScope(ctx, "all", func() ([]storage.Record, error) {
		return s.store.ListAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, noInventoryData()
	}

	current, err := period.Resolve(datesOf(rows), monthName)
	if err != nil {
		return nil, err
	}
	previous := current.Prior()

	currentSummary := aggregateOverall(rows, storeID, current)
	previousSummary := aggregateOverall(rows, storeID, previous)

	slog.Debug("[Insight] Overall summary computed",
		"period", current.Label(),
		"current_absent", currentSummary == nil,
		"previous_absent", previousSummary == nil)

	return &SummaryComparison{
		Current:  outcomeOf(currentSummary, current),
		Previous: outcomeOf(previousSummary, previous),
		Parameters: SummaryParameters{
			Month:          current.MonthName(),
			CurrentYear:    current.Year,
			ComparisonYear: previous.Year,
			StoreID:        storeLabel(storeID),
		},
	}, nil
}

// LookupProduct fetches one raw inventory row for a product.
func (s *Service) LookupProduct(ctx context.Context, productID string) (*storage.Record, error) {
	rec, err := s.store.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, noProductRecord(productID)
		}
		return nil, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	return rec, nil
}
