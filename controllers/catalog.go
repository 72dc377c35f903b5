// controllers/catalog.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"loon-backend/services"
	"loon-backend/utils"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

// Search finds services by category keyword. A blank keyword returns an empty
// list without touching the store.
func (ctl *CatalogController) Search(c *gin.Context) {
	keyword := c.Query("q")

	entries, err := ctl.Catalog.Search(c.Request.Context(), keyword)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to search services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": entries})
}
