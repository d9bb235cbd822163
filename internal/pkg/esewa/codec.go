// Package esewa implements the HMAC handshake with the eSewa payment gateway.
//
// The gateway and this service both compute an HMAC-SHA256 over the canonical
// message "total_amount=...,transaction_uuid=...,product_code=..." (key order
// and formatting are part of the protocol). The outbound payment request
// carries our signature; the inbound success callback carries the gateway's,
// which we verify over the callback's own claimed values.
package esewa

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/errs"
)

const SignedFieldNames = "total_amount,transaction_uuid,product_code"

// CallbackPayload is the JSON record the gateway posts back, base64-encoded,
// after a payment attempt. Verification uses the claimed values as-is; the
// order's stored amount is deliberately not substituted in.
type CallbackPayload struct {
	TransactionCode string `json:"transaction_code"`
	Status          string `json:"status"`
	TotalAmount     string `json:"total_amount"`
	TransactionUUID string `json:"transaction_uuid"`
	ProductCode     string `json:"product_code"`
	SignedFields    string `json:"signed_field_names"`
	Signature       string `json:"signature"`
}

// StatusComplete is the only callback status that may flip an order to paid.
const StatusComplete = "COMPLETE"

// PaymentRequest is the full set of form fields the browser posts to the
// gateway. Nothing beyond these fields is ever exposed to eSewa.
type PaymentRequest struct {
	Amount                string `json:"amount"`
	TaxAmount             string `json:"tax_amount"`
	TotalAmount           string `json:"total_amount"`
	TransactionUUID       string `json:"transaction_uuid"`
	ProductCode           string `json:"product_code"`
	ProductServiceCharge  string `json:"product_service_charge"`
	ProductDeliveryCharge string `json:"product_delivery_charge"`
	SuccessURL            string `json:"success_url"`
	FailureURL            string `json:"failure_url"`
	SignedFieldNames      string `json:"signed_field_names"`
	Signature             string `json:"signature"`
}

type Codec struct {
	secretKey   []byte
	productCode string
	successURL  string
	failureURL  string
}

// NewCodec fails fast on missing key material so a misconfigured deployment
// dies at startup, not at the first checkout.
func NewCodec(cfg config.EsewaConfig) (*Codec, error) {
	if cfg.SecretKey == "" {
		return nil, errs.New("esewa secret key is not configured")
	}
	if cfg.ProductCode == "" {
		return nil, errs.New("esewa product code is not configured")
	}
	return &Codec{
		secretKey:   []byte(cfg.SecretKey),
		productCode: cfg.ProductCode,
		successURL:  cfg.SuccessURL,
		failureURL:  cfg.FailureURL,
	}, nil
}

func (c *Codec) ProductCode() string {
	return c.productCode
}

// FormatAmount renders cents as the 2-decimal string the protocol signs.
// Signer and verifier must format through here; drift between the two is a
// signature mismatch in production.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func (c *Codec) Sign(totalAmount, transactionUUID, productCode string) string {
	message := fmt.Sprintf(
		"total_amount=%s,transaction_uuid=%s,product_code=%s",
		totalAmount, transactionUUID, productCode,
	)

	mac := hmac.New(sha256.New, c.secretKey)
	mac.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature and compares in constant time.
func (c *Codec) Verify(claimed, totalAmount, transactionUUID, productCode string) bool {
	expected := c.Sign(totalAmount, transactionUUID, productCode)
	return hmac.Equal([]byte(claimed), []byte(expected))
}

func (c *Codec) DecodeCallback(data string) (*CallbackPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errs.Wrap(err, "invalid base64 in callback data")
	}

	var payload CallbackPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errs.Wrap(err, "invalid JSON in callback data")
	}
	return &payload, nil
}

// BuildPaymentRequest assembles the signed outbound payload for a pending
// order. Tax, service and delivery charges are fixed at zero.
func (c *Codec) BuildPaymentRequest(totalCents int64, transactionUUID string) PaymentRequest {
	total := FormatAmount(totalCents)
	return PaymentRequest{
		Amount:                total,
		TaxAmount:             "0.00",
		TotalAmount:           total,
		TransactionUUID:       transactionUUID,
		ProductCode:           c.productCode,
		ProductServiceCharge:  "0.00",
		ProductDeliveryCharge: "0.00",
		SuccessURL:            c.successURL,
		FailureURL:            c.failureURL,
		SignedFieldNames:      SignedFieldNames,
		Signature:             c.Sign(total, transactionUUID, c.productCode),
	}
}
