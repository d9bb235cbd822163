package api

import (
	"net/http"

	"gleamshop/internal/domain/cart"
	reqdto "gleamshop/internal/handler/dto/request"
	"gleamshop/internal/handler/httperr"
	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/cookie"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/commands"
	"gleamshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler works purely off the session cookie; carts exist before login
// and are never tied to a user account.
type CartHandler struct {
	commands commands.CartCommands
	queries  queries.CartQueries
	cfg      config.Config
}

func NewCartHandler(commands commands.CartCommands, queries queries.CartQueries, cfg config.Config) *CartHandler {
	return &CartHandler{
		commands: commands,
		queries:  queries,
		cfg:      cfg,
	}
}

// @Summary Get the session cart
// @Description Return the cart for the browsing session, empty if nothing was added yet
// @Tags cart
// @Produce json
// @Success 200 {object} queries.CartView
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := cookie.GetOrIssueCartSession(c, h.cfg.Cookie)

	view, err := h.queries.GetBySession(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add an item to the cart
// @Description Add a product variant; adding the same variant again increments quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Add item request"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sessionID := cookie.GetOrIssueCartSession(c, h.cfg.Cookie)

	view, err := h.commands.AddItem(c.Request.Context(), sessionID, req.ProductID, req.GetRingSize(), req.GetQuantity())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errs.Is(err, errs.ErrProductUnavailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Product is not available", nil)
		case errs.Is(err, errs.ErrRingSizeRequired):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Ring size is required for this product", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Change a line's quantity
// @Description Increase or decrease the line quantity; decrease stops at 1
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart item ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity action"
// @Success 200 {object} queries.CartView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sessionID := cookie.GetOrIssueCartSession(c, h.cfg.Cookie)

	view, err := h.commands.ChangeQuantity(c.Request.Context(), sessionID, lineID, cart.Action(req.Action))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCartItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Remove a line from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Cart item ID"
// @Success 200 {object} queries.CartView
// @Failure 404 {object} httperr.Response
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
		return
	}

	sessionID := cookie.GetOrIssueCartSession(c, h.cfg.Cookie)

	view, err := h.commands.RemoveItem(c.Request.Context(), sessionID, lineID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrCartItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
