package api

import (
	"net/http"

	resdto "gleamshop/internal/handler/dto/response"
	"gleamshop/internal/handler/httperr"
	"gleamshop/internal/pkg/errs"
	"gleamshop/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// PaymentHandler terminates the gateway callbacks. These endpoints are hit by
// eSewa's redirect through the customer's browser, so they are unauthenticated
// and must not explain why a payload was rejected.
type PaymentHandler struct {
	commands commands.PaymentCommands
}

func NewPaymentHandler(commands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{commands: commands}
}

// @Summary Gateway success callback
// @Description Verify the signed callback and settle the order as paid
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param data formData string true "Base64-encoded callback payload"
// @Success 200 {object} resdto.PaymentResultResponse
// @Failure 400 {object} httperr.Response
// @Router /payments/esewa/success [post]
func (h *PaymentHandler) Success(c *gin.Context) {
	// The gateway posts a form on redirect but some integrations arrive as a
	// query parameter.
	data := c.PostForm("data")
	if data == "" {
		data = c.Query("data")
	}
	if data == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrPaymentDecode, "Payment verification failed", nil)
		return
	}

	result, err := h.commands.ReconcileSuccess(c.Request.Context(), data)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrPaymentDecode),
			errs.Is(err, errs.ErrSignatureMismatch),
			errs.Is(err, errs.ErrPaymentIncomplete),
			errs.Is(err, errs.ErrOrderNotFound):
			// One opaque rejection for every verification failure; anything
			// more specific lets a caller probe signatures.
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment verification failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentResultResponse{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}

// @Summary Gateway failure callback
// @Description Mark the order failed; unknown transaction ids are ignored
// @Tags payments
// @Produce json
// @Param transaction_uuid query string false "Transaction UUID"
// @Success 200 {object} resdto.PaymentResultResponse
// @Router /payments/esewa/failure [get]
func (h *PaymentHandler) Failure(c *gin.Context) {
	if err := h.commands.ReconcileFailure(c.Request.Context(), c.Query("transaction_uuid")); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentResultResponse{Status: "failed"})
}
