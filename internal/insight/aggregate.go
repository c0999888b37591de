package insight

import (
	"fmt"
	"sort"
	"time"

	"github.com/shelfwise-lab/project-shelfwise/internal/core/metrics"
	"github.com/shelfwise-lab/project-shelfwise/internal/core/period"
	"github.com/shelfwise-lab/project-shelfwise/internal/core/storage"
)

const allStores = "All Stores"

func storeLabel(storeID string) string {
	if storeID == "" {
		return allStores
	}
	return storeID
}

// windowRows filters a scope to one reporting window, optionally to one
// store. The store filter is applied only here, never during period
// resolution, so the resolved period always reflects the full scope.
func windowRows(rows []storage.Record, p period.Period, storeID string) []storage.Record {
	var out []storage.Record
	for _, r := range rows {
		if !p.Contains(r.Date) {
			continue
		}
		if storeID != "" && r.StoreID != storeID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func datesOf(rows []storage.Record) []time.Time {
	dates := make([]time.Time, len(rows))
	for i, r := range rows {
		dates[i] = r.Date
	}
	return dates
}

func floats(rows []storage.Record, pick func(storage.Record) float64) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = pick(r)
	}
	return out
}

func strs(rows []storage.Record, pick func(storage.Record) string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = pick(r)
	}
	return out
}

// aggregateProduct reduces a product scope to one window's context.
// Returns nil when the window has no rows; callers render that as an absent
// period, never as a zero-filled aggregate. The product name and category
// come from the first matching row, since every row of one product is
// assumed to share them.
func aggregateProduct(rows []storage.Record, productID, storeID string, p period.Period) *ProductContext {
	window := windowRows(rows, p, storeID)
	if len(window) == 0 {
		return nil
	}

	return &ProductContext{
		ProductID:                productID,
		StoreID:                  storeLabel(storeID),
		Year:                     p.Year,
		Month:                    p.MonthName(),
		ProductName:              window[0].ProductName,
		Category:                 window[0].Category,
		Regions:                  metrics.DistinctSorted(strs(window, func(r storage.Record) string { return r.Region })),
		InventoryLevelTotal:      metrics.SumRound2(floats(window, func(r storage.Record) float64 { return r.InventoryLevel })),
		UnitsSoldTotal:           metrics.SumRound2(floats(window, func(r storage.Record) float64 { return r.UnitsSold })),
		UnitsOrderedTotal:        metrics.SumRound2(floats(window, func(r storage.Record) float64 { return r.UnitsOrdered })),
		AveragePrice:             metrics.MeanRound2(floats(window, func(r storage.Record) float64 { return r.Price })),
		AverageDiscount:          metrics.MeanRound2(floats(window, func(r storage.Record) float64 { return r.Discount })),
		AverageCompetitorPricing: metrics.MeanRound2(floats(window, func(r storage.Record) float64 { return r.CompetitorPricing })),
		MostCommonWeather:        metrics.Mode(strs(window, func(r storage.Record) string { return r.WeatherCondition })),
		MostCommonSeasonality:    metrics.Mode(strs(window, func(r storage.Record) string { return r.Seasonality })),
	}
}

// aggregateCategory reduces a category scope to one window's context.
// Returns nil when the window has no rows. Unit totals are truncated to
// integers here, matching the contract rather than the product convention.
func aggregateCategory(rows []storage.Record, category, storeID string, p period.Period) *CategoryContext {
	window := windowRows(rows, p, storeID)
	if len(window) == 0 {
		return nil
	}

	return &CategoryContext{
		Category:                 category,
		StoreID:                  storeLabel(storeID),
		Year:                     p.Year,
		Month:                    p.MonthName(),
		TotalStores:              metrics.CountDistinct(strs(window, func(r storage.Record) string { return r.StoreID })),
		TotalProducts:            metrics.CountDistinct(strs(window, func(r storage.Record) string { return r.ProductID })),
		AveragePrice:             metrics.MeanRound2(floats(window, func(r storage.Record) float64 { return r.Price })),
		AverageDiscount:          metrics.MeanRound2(floats(window, func(r storage.Record) float64 { return r.Discount })),
		TotalUnitsSold:           metrics.SumTruncated(floats(window, func(r storage.Record) float64 { return r.UnitsSold })),
		TotalUnitsOrdered:        metrics.SumTruncated(floats(window, func(r storage.Record) float64 { return r.UnitsOrdered })),
		TotalInventory:           metrics.SumTruncated(floats(window, func(r storage.Record) float64 { return r.InventoryLevel })),
		AverageCompetitorPricing: metrics.MeanRound2(floats(window, func(r storage.Record) float64 { return r.CompetitorPricing })),
		MostCommonWeather:        metrics.Mode(strs(window, func(r storage.Record) string { return r.WeatherCondition })),
		MostCommonSeasonality:    metrics.Mode(strs(window, func(r storage.Record) string { return r.Seasonality })),
		DistinctRegions:          metrics.DistinctSorted(strs(window, func(r storage.Record) string { return r.Region })),
	}
}

// aggregateOverall reduces the whole dataset to one window's summary,
// grouped by category in ascending name order. Returns nil when the window
// has no rows. TotalUniqueProducts deliberately counts the entire dataset,
// not the window; see DESIGN.md before changing it.
func aggregateOverall(rows []storage.Record, storeID string, p period.Period) *OverallSummary {
	window := windowRows(rows, p, storeID)
	if len(window) == 0 {
		return nil
	}

	byCategory := make(map[string][]storage.Record)
	for _, r := range window {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	details := make([]CategoryDetail, 0, len(categories))
	for _, c := range categories {
		group := byCategory[c]
		details = append(details, CategoryDetail{
			Category:                 c,
			UniqueProducts:           metrics.CountDistinct(strs(group, func(r storage.Record) string { return r.ProductID })),
			StoresCount:              metrics.CountDistinct(strs(group, func(r storage.Record) string { return r.StoreID })),
			TotalUnitsSold:           metrics.SumRound2(floats(group, func(r storage.Record) float64 { return r.UnitsSold })),
			TotalUnitsOrdered:        metrics.SumRound2(floats(group, func(r storage.Record) float64 { return r.UnitsOrdered })),
			TotalInventory:           metrics.SumRound2(floats(group, func(r storage.Record) float64 { return r.InventoryLevel })),
			AveragePrice:             metrics.MeanRound2(floats(group, func(r storage.Record) float64 { return r.Price })),
			AverageDiscount:          metrics.MeanRound2(floats(group, func(r storage.Record) float64 { return r.Discount })),
			AverageCompetitorPricing: metrics.MeanRound2(floats(group, func(r storage.Record) float64 { return r.CompetitorPricing })),
		})
	}

	scope := "All Stores Combined"
	if storeID != "" {
		scope = fmt.Sprintf("Store %s", storeID)
	}

	return &OverallSummary{
		Year:                p.Year,
		Month:               p.MonthName(),
		Scope:               scope,
		TotalCategories:     len(details),
		TotalUniqueProducts: metrics.CountDistinct(strs(rows, func(r storage.Record) string { return r.ProductID })),
		OverallUnitsSold:    metrics.SumRound2(floats(window, func(r storage.Record) float64 { return r.UnitsSold })),
		OverallUnitsOrdered: metrics.SumRound2(floats(window, func(r storage.Record) float64 { return r.UnitsOrdered })),
		OverallInventory:    metrics.SumRound2(floats(window, func(r storage.Record) float64 { return r.InventoryLevel })),
		CategoryDetails:     details,
	}
}
