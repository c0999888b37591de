package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shelfwise-lab/project-shelfwise/internal/core/storage"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"product_id", "product_name", "category", "store_id", "region", "date",
	"inventory_level", "units_sold", "units_ordered",
	"price", "discount", "competitor_pricing",
	"weather_condition", "seasonality",
}

// newTestAdapter wires an Adapter around a sqlmock connection, preparing only
// the statements a test exercises.
func newTestAdapter(t *testing.T, queries ...string) (*Adapter, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := &Adapter{db: db}
	for _, q := range queries {
		mock.ExpectPrepare(regexp.QuoteMeta(q))
		stmt, err := db.Prepare(q)
		require.NoError(t, err)

		switch q {
		case queryGetProduct:
			a.stmtGetProduct = stmt
		case queryListByProduct:
			a.stmtListByProduct = stmt
		case queryListByCategory:
			a.stmtListByCategory = stmt
		case queryListAll:
			a.stmtListAll = stmt
		}
	}
	return a, mock
}

func TestAdapter_ListByProduct(t *testing.T) {
	a, mock := newTestAdapter(t, queryListByProduct)

	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(queryListByProduct)).
		WithArgs("T0002").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("T0002", "Blocks Set", "Toys", "S001", "North", jan2,
				120.0, 10.0, 20.0, 50.00, 5.0, 49.50, "Sunny", "Winter").
			AddRow("T0002", "Blocks Set", "Toys", "S002", "South", jan15,
				80.0, 15.0, 10.0, 52.00, 0.0, 51.75, "Rainy", "Winter"))

	records, err := a.ListByProduct(context.Background(), "T0002")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Blocks Set", records[0].ProductName)
	require.Equal(t, "S002", records[1].StoreID)
	require.Equal(t, 15.0, records[1].UnitsSold)
	require.Equal(t, jan2, records[0].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListByCategory_Empty(t *testing.T) {
	a, mock := newTestAdapter(t, queryListByCategory)

	mock.ExpectQuery(regexp.QuoteMeta(queryListByCategory)).
		WithArgs("Toys").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	records, err := a.ListByCategory(context.Background(), "Toys")
	require.NoError(t, err)
	require.Empty(t, records)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetProduct_NotFound(t *testing.T) {
	a, mock := newTestAdapter(t, queryGetProduct)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetProduct)).
		WithArgs("T9999").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := a.GetProduct(context.Background(), "T9999")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_GetProduct(t *testing.T) {
	a, mock := newTestAdapter(t, queryGetProduct)

	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(queryGetProduct)).
		WithArgs("T0002").
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("T0002", "Blocks Set", "Toys", "S001", "North", jan2,
				120.0, 10.0, 20.0, 50.00, 5.0, 49.50, "Sunny", "Winter"))

	rec, err := a.GetProduct(context.Background(), "T0002")
	require.NoError(t, err)
	require.Equal(t, "T0002", rec.ProductID)
	require.Equal(t, "Toys", rec.Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAdapter_ListAll(t *testing.T) {
	a, mock := newTestAdapter(t, queryListAll)

	jan2 := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(queryListAll)).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("T0002", "Blocks Set", "Toys", "S001", "North", jan2,
				120.0, 10.0, 20.0, 50.00, 5.0, 49.50, "Sunny", "Winter"))

	records, err := a.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
