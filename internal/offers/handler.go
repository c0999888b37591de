package offers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	httperr "github.com/shelfwise-lab/project-shelfwise/internal/core/errors"
)

// Handler exposes offer retrieval over HTTP.
type Handler struct {
	index Index
}

// NewHandler creates an offers handler over the given index.
func NewHandler(index Index) *Handler {
	return &Handler{index: index}
}

// RegisterRoutes registers the offers API routes on the given router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/offers", h.HandleSearch)
}

// HandleSearch handles GET /v1/offers
// Query parameters: q (required), top_k
func (h *Handler) HandleSearch(c *gin.Context) {
	var query struct {
		Q    string `form:"q" binding:"required"`
		TopK int    `form:"top_k"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.NewToolError("missing required query parameter 'q'"))
		return
	}

	requestID := uuid.NewString()
	slog.Info("[Offers] Search requested",
		"request_id", requestID,
		"query", query.Q,
		"top_k", query.TopK)

	result, err := h.index.Search(c.Request.Context(), query.Q, query.TopK)
	if err != nil {
		slog.Error("[Offers] Search failed", "request_id", requestID, "error", err)
		c.JSON(http.StatusInternalServerError, httperr.NewToolError(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result)
}
