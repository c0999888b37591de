package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by GetProduct when no row exists for the product.
var ErrNotFound = errors.New("product not found")

// Record is one inventory observation: a (product, store, date) reading.
// At most one record exists per triple; the aggregators assume this and do
// not deduplicate.
type Record struct {
	ProductID         string    `json:"Product ID"`
	ProductName       string    `json:"Product Name"`
	Category          string    `json:"Category"`
	StoreID           string    `json:"Store ID"`
	Region            string    `json:"Region"`
	Date              time.Time `json:"Date"`
	InventoryLevel    float64   `json:"Inventory Level"`
	UnitsSold         float64   `json:"Units Sold"`
	UnitsOrdered      float64   `json:"Units Ordered"`
	Price             float64   `json:"Price"`
	Discount          float64   `json:"Discount"`
	CompetitorPricing float64   `json:"Competitor Pricing"`
	WeatherCondition  string    `json:"Weather Condition"`
	Seasonality       string    `json:"Seasonality"`
}

// InventoryStore defines read access to the inventory dataset.
// Reads are scope-filtered in SQL; month-window and store filtering happen
// in the aggregators so that period resolution always sees the full
// identifier scope. Rows with a NULL date are excluded at the source.
type InventoryStore interface {
	// GetProduct fetches one arbitrary row for the product, used for raw
	// lookups. Returns ErrNotFound when the product has no rows.
	GetProduct(ctx context.Context, productID string) (*Record, error)

	// ListByProduct fetches every row for one product across all stores.
	ListByProduct(ctx context.Context, productID string) ([]Record, error)

	// ListByCategory fetches every row for one category across all stores.
	ListByCategory(ctx context.Context, category string) ([]Record, error)

	// ListAll fetches the entire dataset.
	ListAll(ctx context.Context) ([]Record, error)
}
