package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luxe-be/internal/models"
	"luxe-be/internal/service"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListProducts handles GET /api/products?category=
func (cc *CatalogController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, cc.catalogService.ListProducts(c.Query("category")))
}

// GetProduct handles GET /api/products/:product_id
func (cc *CatalogController) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id must be an integer"})
		return
	}

	product, err := cc.catalogService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// Categories handles GET /api/categories
func (cc *CatalogController) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, models.CategoriesResponse{Categories: cc.catalogService.Categories()})
}

// Stats handles GET /api/stats
func (cc *CatalogController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, cc.catalogService.Stats())
}
