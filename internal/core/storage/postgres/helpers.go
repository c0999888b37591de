package postgres

import (
	"fmt"

	"github.com/shelfwise-lab/project-shelfwise/internal/core/storage"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord scans a database row into a Record.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanRecord(row scanner) (*storage.Record, error) {
	var rec storage.Record

	err := row.Scan(
		&rec.ProductID,
		&rec.ProductName,
		&rec.Category,
		&rec.StoreID,
		&rec.Region,
		&rec.Date,
		&rec.InventoryLevel,
		&rec.UnitsSold,
		&rec.UnitsOrdered,
		&rec.Price,
		&rec.Discount,
		&rec.CompetitorPricing,
		&rec.WeatherCondition,
		&rec.Seasonality,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory row: %w", err)
	}

	return &rec, nil
}
