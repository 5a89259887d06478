package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/fleet-inventory-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/fleet-inventory-api/internal/domain"
	"github.com/vietanh2810/fleet-inventory-api/internal/repository"
	"github.com/vietanh2810/fleet-inventory-api/internal/repository/dao"
	"github.com/vietanh2810/fleet-inventory-api/internal/service"
)

func newInventoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalog := service.NewCatalogService([]domain.CatalogItem{
		{ID: 1, Name: "axe"},
		{ID: 2, Name: "extinguisher"},
	})
	svc := service.NewInventoryService(repository.NewInventoryRepository(dao.NewInventoryDAO()), catalog, nil)
	h := NewInventoryHandler(svc, catalog)

	router := gin.New()
	router.GET("/catalog", h.HandleGetCatalog)
	router.GET("/inventory", h.HandleGetInventory)
	router.POST("/inventory", h.HandleAddInventoryItem)
	router.DELETE("/inventory", h.HandleClearInventory)
	router.DELETE("/inventory/:itemID", h.HandleRemoveInventoryItem)

	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestInventoryHandler_AddListRemove(t *testing.T) {
	router := newInventoryRouter()

	w := doJSON(router, http.MethodPost, "/inventory", `{"catalogItemId":2,"quantity":4}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "extinguisher", created.Item.ItemName)
	assert.Equal(t, 4, created.Item.Quantity)

	w = doJSON(router, http.MethodPost, "/inventory", `{"itemName":"halligan bar","quantity":1}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/inventory", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listed response.InventoryItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Items, 2)
	assert.Equal(t, "extinguisher", listed.Items[0].ItemName)
	assert.Equal(t, "halligan bar", listed.Items[1].ItemName)

	w = doJSON(router, http.MethodDelete, "/inventory/"+created.Item.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/inventory/"+created.Item.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = doJSON(router, http.MethodDelete, "/inventory", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/inventory", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Empty(t, listed.Items)
}

func TestInventoryHandler_AddValidation(t *testing.T) {
	router := newInventoryRouter()

	bodies := map[string]string{
		"malformed json":        `{"quantity":`,
		"zero quantity":         `{"catalogItemId":1,"quantity":0}`,
		"no item":               `{"quantity":2}`,
		"unknown catalog item":  `{"catalogItemId":99,"quantity":2}`,
		"wrong type for amount": `{"catalogItemId":1,"quantity":"two"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/inventory", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestInventoryHandler_Catalog(t *testing.T) {
	router := newInventoryRouter()

	w := doJSON(router, http.MethodGet, "/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)

	var catalog response.CatalogItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalog))
	assert.True(t, catalog.Success)
	assert.Equal(t, []domain.CatalogItem{{ID: 1, Name: "axe"}, {ID: 2, Name: "extinguisher"}}, catalog.Items)
}

func TestHandleHealthcheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", HandleHealthcheck)

	w := doJSON(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
