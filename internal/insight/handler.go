package insight

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httperr "github.com/shelfwise-lab/project-shelfwise/internal/core/errors"
	"github.com/shelfwise-lab/project-shelfwise/internal/core/period"
)

// RegisterRoutes registers all insight API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/context/product/:product_id", s.HandleProductContext)
	r.GET("/v1/context/category/:category", s.HandleCategoryContext)
	r.GET("/v1/summary", s.HandleOverallSummary)
	r.GET("/v1/inventory/:product_id", s.HandleInventoryLookup)
}

// comparisonQuery carries the optional arguments shared by every
// comparison endpoint.
type comparisonQuery struct {
	Month   string `form:"month"`
	StoreID string `form:"store_id"`
}

// HandleProductContext handles GET /v1/context/product/:product_id
// Query parameters: month (full English name), store_id
func (s *Service) HandleProductContext(c *gin.Context) {
	productID := c.Param("product_id")
	var query comparisonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.NewToolError(err.Error()))
		return
	}

	requestID := uuid.NewString()
	slog.Info("[Insight] Product context requested",
		"request_id", requestID,
		"product_id", productID,
		"month", query.Month,
		"store_id", query.StoreID)

	result, err := s.CompareProduct(c.Request.Context(), productID, query.Month, query.StoreID)
	if err != nil {
		writeError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleCategoryContext handles GET /v1/context/category/:category
// Query parameters: month, store_id
func (s *Service) HandleCategoryContext(c *gin.Context) {
	category := c.Param("category")
	var query comparisonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.NewToolError(err.Error()))
		return
	}

	requestID := uuid.NewString()
	slog.Info("[Insight] Category context requested",
		"request_id", requestID,
		"category", category,
		"month", query.Month,
		"store_id", query.StoreID)

	result, err := s.CompareCategory(c.Request.Context(), category, query.Month, query.StoreID)
	if err != nil {
		writeError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleOverallSummary handles GET /v1/summary
// Query parameters: month, store_id
func (s *Service) HandleOverallSummary(c *gin.Context) {
	var query comparisonQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.NewToolError(err.Error()))
		return
	}

	requestID := uuid.NewString()
	slog.Info("[Insight] Overall summary requested",
		"request_id", requestID,
		"month", query.Month,
		"store_id", query.StoreID)

	result, err := s.OverallSummary(c.Request.Context(), query.Month, query.StoreID)
	if err != nil {
		writeError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HandleInventoryLookup handles GET /v1/inventory/:product_id
func (s *Service) HandleInventoryLookup(c *gin.Context) {
	productID := c.Param("product_id")

	requestID := uuid.NewString()
	slog.Info("[Insight] Inventory lookup requested",
		"request_id", requestID,
		"product_id", productID)

	rec, err := s.LookupProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, requestID, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// writeError maps service errors to the single-key failure body. Invalid
// month names are client errors, empty scopes are not-found, everything
// else is an internal fault whose message is still surfaced to the caller.
func writeError(c *gin.Context, requestID string, err error) {
	var invalidMonth *period.InvalidMonthError
	var noData *NoDataError

	switch {
	case errors.As(err, &invalidMonth):
		c.JSON(http.StatusBadRequest, httperr.NewToolError(invalidMonth.Error()))
	case errors.As(err, &noData):
		c.JSON(http.StatusNotFound, httperr.NewToolError(noData.Message))
	default:
		slog.Error("[Insight] Request failed",
			"request_id", requestID,
			"error", err)
		c.JSON(http.StatusInternalServerError, httperr.NewToolError(err.Error()))
	}
}
