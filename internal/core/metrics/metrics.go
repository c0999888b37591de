// Package metrics holds the shared numeric and categorical reducers used by
// all insight aggregators. Arithmetic runs on shopspring decimals and is
// converted to portable float64/int64 values only at the result boundary, so
// no library numeric type ever reaches callers.
package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Rounding conventions differ between aggregator families and are kept as
// distinct helpers on purpose: the product and overall families report
// 2-decimal floats, the category family reports truncated integer totals.
// Unifying them would silently change the output contract.
const meanPlaces = 2

// Sum returns the exact decimal sum of values.
func Sum(values []float64) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total
}

// SumRound2 returns the sum rounded to 2 decimal places as a float64.
func SumRound2(values []float64) float64 {
	return Sum(values).Round(meanPlaces).InexactFloat64()
}

// SumTruncated returns the sum with any fractional part discarded.
// Category-level totals use this integer convention.
func SumTruncated(values []float64) int64 {
	return Sum(values).IntPart()
}

// MeanRound2 returns the arithmetic mean rounded to 2 decimal places.
// Returns 0 for an empty slice; aggregators never call it on one, since an
// empty window short-circuits to an absent result first.
func MeanRound2(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := decimal.NewFromInt(int64(len(values)))
	return Sum(values).Div(n).Round(meanPlaces).InexactFloat64()
}

// Mode returns the most frequent non-empty value. Ties break on whichever
// value first occurs in the input order, an arbitrary but stable rule;
// callers must not read meaning into it. Returns "" when every value is
// empty.
func Mode(values []string) string {
	counts := make(map[string]int, len(values))
	firstSeen := make(map[string]int, len(values))

	for i, v := range values {
		if v == "" {
			continue
		}
		if _, ok := firstSeen[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	best := ""
	for v, c := range counts {
		if best == "" {
			best = v
			continue
		}
		if c > counts[best] || (c == counts[best] && firstSeen[v] < firstSeen[best]) {
			best = v
		}
	}
	return best
}

// DistinctSorted returns the sorted set of distinct non-empty values.
func DistinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
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

// CountDistinct returns the number of distinct non-empty values.
func CountDistinct(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
