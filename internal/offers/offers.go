// Package offers serves promotional-offer retrieval for the conversational
// layer. Offers live as YAML files on disk and are searched with a local
// keyword ranker; the search contract is query in, ranked text out.
package offers

import "context"

// Offer is one promotional offer as written in its YAML file.
type Offer struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Season   string `yaml:"season"`
	Text     string `yaml:"text"`
}

// SearchResult is the retrieval response returned to the caller. Response
// holds the matched offer texts joined by newlines, or an explanatory
// message when nothing matched.
type SearchResult struct {
	Query    string `json:"query"`
	Response string `json:"response"`
	TopK     int    `json:"top_k"`
}

// Index ranks offers against a free-text query.
type Index interface {
	Search(ctx context.Context, query string, topK int) (*SearchResult, error)
}
