package api

import (
	"net/http"

	resdto "gleamshop/internal/handler/dto/response"
	"gleamshop/internal/handler/httperr"
	"gleamshop/internal/handler/middleware"
	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/cookie"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/commands"
	"gleamshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	commands commands.CheckoutCommands
	orders   queries.OrderQueries
	cfg      config.Config
}

func NewCheckoutHandler(commands commands.CheckoutCommands, orders queries.OrderQueries, cfg config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		commands: commands,
		orders:   orders,
		cfg:      cfg,
	}
}

// @Summary Checkout the session cart
// @Description Freeze the cart into a pending order; later cart edits do not touch it
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 201 {object} queries.OrderView
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, commands.ErrAuthenticationFailed, "Internal server error", nil)
		return
	}
	sessionID := cookie.GetOrIssueCartSession(c, h.cfg.Cookie)

	view, err := h.commands.Checkout(c.Request.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Initiate payment for an order
// @Description Build the signed gateway form fields for a pending order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.PaymentInitiateResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/pay [post]
func (h *CheckoutHandler) InitiatePayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, commands.ErrAuthenticationFailed, "Internal server error", nil)
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		return
	}

	payment, err := h.commands.InitiatePayment(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, errs.ErrOrderNotPending):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is already settled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentInitiateResponse{
		GatewayURL: h.cfg.Esewa.GatewayURL,
		Payment:    payment,
	})
}

// @Summary List own orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OrderListResponse
// @Router /orders [get]
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, commands.ErrAuthenticationFailed, "Internal server error", nil)
		return
	}

	orders, err := h.orders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OrderListResponse{Orders: orders})
}

// @Summary Get one of your orders
// @Description Other users' orders are indistinguishable from missing ones
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} queries.OrderView
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, commands.ErrAuthenticationFailed, "Internal server error", nil)
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		return
	}

	view, err := h.orders.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}
