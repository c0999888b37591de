package postgres

// SQL queries for inventory reads. Every query excludes NULL dates so that
// period resolution never sees a dateless observation.

const (
	inventoryColumns = `
		product_id, product_name, category, store_id, region, date,
		inventory_level, units_sold, units_ordered,
		price, discount, competitor_pricing,
		weather_condition, seasonality`

	// queryGetProduct fetches one arbitrary row for a raw product lookup.
	queryGetProduct = `
		SELECT` + inventoryColumns + `
		FROM inventory
		WHERE product_id = $1
		LIMIT 1
	`

	// queryListByProduct fetches the full product scope across all stores.
	queryListByProduct = `
		SELECT` + inventoryColumns + `
		FROM inventory
		WHERE product_id = $1
		  AND date IS NOT NULL
		ORDER BY date ASC, store_id ASC
	`

	// queryListByCategory fetches the full category scope across all stores.
	queryListByCategory = `
		SELECT` + inventoryColumns + `
		FROM inventory
		WHERE category = $1
		  AND date IS NOT NULL
		ORDER BY date ASC, store_id ASC
	`

	// queryListAll fetches the entire dataset for the overall summary.
	queryListAll = `
		SELECT` + inventoryColumns + `
		FROM inventory
		WHERE date IS NOT NULL
		ORDER BY date ASC, store_id ASC
	`
)
