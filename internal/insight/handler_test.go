package insight

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService(store).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleProductContext(t *testing.T) {
	r := newTestRouter(&fakeStore{rows: blocksRows()})

	w, body := doRequest(t, r, "/v1/context/product/T0002?month=January")
	require.Equal(t, http.StatusOK, w.Code)

	require.Contains(t, body, "Current Year Context")
	require.Contains(t, body, "Last Year Context")
	require.Contains(t, body, "Parameters Used")

	params := body["Parameters Used"].(map[string]interface{})
	require.Equal(t, "T0002", params["Product ID"])
	require.Equal(t, 2024.0, params["Current Year"])
	require.Equal(t, 2023.0, params["Comparison Year"])
}

func TestHandleProductContext_InvalidMonth(t *testing.T) {
	r := newTestRouter(&fakeStore{rows: blocksRows()})

	w, body := doRequest(t, r, "/v1/context/product/T0002?month=Janu")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, map[string]interface{}{
		"error": "Invalid month name 'Janu'. Use full names (e.g., 'January').",
	}, body)
}

func TestHandleProductContext_UnknownProduct(t *testing.T) {
	r := newTestRouter(&fakeStore{rows: blocksRows()})

	w, body := doRequest(t, r, "/v1/context/product/T9999")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "No data found for Product T9999", body["error"])
}

func TestHandleCategoryContext(t *testing.T) {
	r := newTestRouter(&fakeStore{rows: blocksRows()})

	w, body := doRequest(t, r, "/v1/context/category/Toys?store_id=S002")
	require.Equal(t, http.StatusOK, w.Code)

	params := body["Parameters Used"].(map[string]interface{})
	require.Equal(t, "Toys", params["Category"])
	require.Equal(t, "S002", params["Store ID"])
}

func TestHandleOverallSummary(t *testing.T) {
	r := newTestRouter(&fakeStore{rows: blocksRows()})

	w, body := doRequest(t, r, "/v1/summary")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, body, "Current Year Summary")
	require.Contains(t, body, "Last Year Summary")

	current := body["Current Year Summary"].(map[string]interface{})
	require.Equal(t, "All Stores Combined", current["Scope"])
}

func TestHandleInventoryLookup(t *testing.T) {
	r := newTestRouter(&fakeStore{rows: blocksRows()})

	w, body := doRequest(t, r, "/v1/inventory/T0002")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Blocks Set", body["Product Name"])

	w, body = doRequest(t, r, "/v1/inventory/T9999")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "No product found for T9999", body["error"])
}
