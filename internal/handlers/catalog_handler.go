package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fireclub-api/internal/catalog"
	"fireclub-api/internal/models"
)

// CatalogHandler serves the static product and store-locator tables.
// No store access, nothing here can realistically fail.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    catalog.Products(),
	})
}

func (h *CatalogHandler) GetAllStores(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Store locations retrieved successfully",
		Data:    catalog.StoreLocations(),
	})
}

// GetStoresByState never 404s: an unmapped state gets a soft fallback
// pointing at nationwide availability.
func (h *CatalogHandler) GetStoresByState(c *gin.Context) {
	state := c.Param("state")

	stores, ok := catalog.StoresByState(state)
	if !ok {
		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Message: fmt.Sprintf("No specific stores listed for %s, but Fire Condoms are available at major pharmacies nationwide", state),
			Data:    []string{"Available at major pharmacies and convenience stores"},
		})
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: fmt.Sprintf("Store locations for %s retrieved successfully", state),
		Data:    stores,
	})
}
