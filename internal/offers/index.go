package offers

import (
	"context"
	"sort"
	"strings"
)

const (
	// DefaultTopK matches the retrieval depth the conversational layer
	// asks for when the caller does not specify one.
	DefaultTopK = 5

	noMatchMessage = "No relevant offers found for the given keywords."
)

// KeywordIndex ranks offers by keyword overlap with the query. The query is
// split on commas and whitespace, lowercased, and each offer scores one
// point per distinct keyword appearing in its name, category, season, or
// text. Score ties keep load order.
type KeywordIndex struct {
	offers []Offer
}

// NewKeywordIndex builds an index over the given offers.
func NewKeywordIndex(offers []Offer) *KeywordIndex {
	return &KeywordIndex{offers: offers}
}

// Search returns the top-k matching offer texts joined by newlines. A query
// with no matching offers yields an explanatory message, not an error.
func (idx *KeywordIndex) Search(_ context.Context, query string, topK int) (*SearchResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	keywords := tokenize(query)

	type scored struct {
		pos   int
		score int
	}
	var matches []scored
	for i, offer := range idx.offers {
		haystack := strings.ToLower(strings.Join([]string{offer.Name, offer.Category, offer.Season, offer.Text}, " "))
		score := 0
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{pos: i, score: score})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score > matches[b].score
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}

	response := noMatchMessage
	if len(matches) > 0 {
		texts := make([]string, len(matches))
		for i, m := range matches {
			texts[i] = idx.offers[m.pos].Text
		}
		response = strings.Join(texts, "\n")
	}

	return &SearchResult{
		Query:    query,
		Response: response,
		TopK:     topK,
	}, nil
}

// tokenize splits a query on commas and whitespace into distinct lowercase
// keywords, preserving first-occurrence order.
func tokenize(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
