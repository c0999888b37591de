package insight

import "fmt"

// NoDataError means the requested identifier scope has no rows at all.
// It is recoverable at the request level and maps to HTTP 404; an empty
// resolved window within a non-empty scope is an absent period instead,
// not an error.
type NoDataError struct {
	Message string
}

func (e *NoDataError) Error() string {
	return e.Message
}

func noProductData(productID string) *NoDataError {
	return &NoDataError{Message: fmt.Sprintf("No data found for Product %s", productID)}
}

func noCategoryData(category string) *NoDataError {
	return &NoDataError{Message: fmt.Sprintf("No data found for category '%s'.", category)}
}

func noInventoryData() *NoDataError {
	return &NoDataError{Message: "No inventory data found in the database."}
}

func noProductRecord(productID string) *NoDataError {
	return &NoDataError{Message: fmt.Sprintf("No product found for %s", productID)}
}
