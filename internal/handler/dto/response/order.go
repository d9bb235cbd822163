package response

import (
	"gleamshop/internal/pkg/esewa"
	"gleamshop/internal/usecase/queries"
)

type OrderListResponse struct {
	Orders []*queries.OrderListItem `json:"orders"`
}

// PaymentInitiateResponse holds everything the frontend needs to render the
// self-submitting gateway form.
type PaymentInitiateResponse struct {
	GatewayURL string               `json:"gateway_url"`
	Payment    *esewa.PaymentRequest `json:"payment"`
}

// PaymentResultResponse is deliberately terse: callback endpoints must not
// reveal why a payload was rejected, or they become a signature oracle.
type PaymentResultResponse struct {
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status"`
}
