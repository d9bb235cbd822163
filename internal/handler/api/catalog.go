package api

import (
	"net/http"

	reqdto "gleamshop/internal/handler/dto/request"
	resdto "gleamshop/internal/handler/dto/response"
	"gleamshop/internal/handler/httperr"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	queries queries.CatalogQueries
}

func NewCatalogHandler(queries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{queries: queries}
}

// @Summary Browse the catalog
// @Description List products, optionally narrowed by category and attribute filters
// @Tags catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param min_price query string false "Minimum price"
// @Param max_price query string false "Maximum price"
// @Param metal query string false "Metal"
// @Param gender query string false "Gender"
// @Param stone query string false "Stone"
// @Param color query string false "Color"
// @Param necklace_style query string false "Necklace style"
// @Param brand query string false "Brand"
// @Success 200 {object} resdto.ProductListResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var query reqdto.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	products, err := h.queries.ListProducts(c.Request.Context(), query.ToFilter())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ProductListResponse{Products: products})
}

// @Summary Featured products
// @Description List the products currently promoted on the landing page
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ProductListResponse
// @Router /products/featured [get]
func (h *CatalogHandler) ListFeatured(c *gin.Context) {
	products, err := h.queries.ListFeatured(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ProductListResponse{Products: products})
}

// @Summary Product detail
// @Description Get a product with related items from the same category
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		return
	}

	product, related, err := h.queries.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ProductDetailResponse{Product: product, Related: related})
}
