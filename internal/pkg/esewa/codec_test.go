//go:build unit

package esewa_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"gleamshop/internal/pkg/config"
	"gleamshop/internal/pkg/esewa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *esewa.Codec {
	t.Helper()
	codec, err := esewa.NewCodec(config.EsewaConfig{
		SecretKey:   "test-esewa-secret",
		ProductCode: "EPAYTEST",
		SuccessURL:  "https://shop.example.com/api/payments/esewa/success",
		FailureURL:  "https://shop.example.com/api/payments/esewa/failure",
	})
	require.NoError(t, err)
	return codec
}

func TestNewCodec(t *testing.T) {
	t.Run("missing secret key fails at construction", func(t *testing.T) {
		_, err := esewa.NewCodec(config.EsewaConfig{ProductCode: "EPAYTEST"})
		assert.Error(t, err)
	})

	t.Run("missing product code fails at construction", func(t *testing.T) {
		_, err := esewa.NewCodec(config.EsewaConfig{SecretKey: "k"})
		assert.Error(t, err)
	})
}

func TestSignVerify(t *testing.T) {
	codec := newTestCodec(t)

	const (
		amount = "150.00"
		txn    = "d4b9319f-0c5c-4b8b-9d3a-2f1a4f9edc01"
		code   = "EPAYTEST"
	)

	t.Run("verify accepts own signature", func(t *testing.T) {
		sig := codec.Sign(amount, txn, code)
		assert.True(t, codec.Verify(sig, amount, txn, code))
	})

	t.Run("signing is deterministic", func(t *testing.T) {
		assert.Equal(t, codec.Sign(amount, txn, code), codec.Sign(amount, txn, code))
	})

	t.Run("signature is base64 of a 32-byte digest", func(t *testing.T) {
		raw, err := base64.StdEncoding.DecodeString(codec.Sign(amount, txn, code))
		require.NoError(t, err)
		assert.Len(t, raw, 32)
	})

	t.Run("changing any single field fails verification", func(t *testing.T) {
		sig := codec.Sign(amount, txn, code)

		assert.False(t, codec.Verify(sig, "150.01", txn, code))
		assert.False(t, codec.Verify(sig, amount, "d4b9319f-0c5c-4b8b-9d3a-2f1a4f9edc02", code))
		assert.False(t, codec.Verify(sig, amount, txn, "EPAYPROD"))
	})

	t.Run("corrupted signature fails verification", func(t *testing.T) {
		assert.False(t, codec.Verify("not-a-signature", amount, txn, code))
		assert.False(t, codec.Verify("", amount, txn, code))
	})

	t.Run("different secrets produce different signatures", func(t *testing.T) {
		other, err := esewa.NewCodec(config.EsewaConfig{
			SecretKey:   "another-secret",
			ProductCode: "EPAYTEST",
		})
		require.NoError(t, err)

		assert.False(t, other.Verify(codec.Sign(amount, txn, code), amount, txn, code))
	})
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		cents    int64
		expected string
	}{
		{cents: 15000, expected: "150.00"},
		{cents: 15001, expected: "150.01"},
		{cents: 99, expected: "0.99"},
		{cents: 5, expected: "0.05"},
		{cents: 0, expected: "0.00"},
		{cents: 100000000, expected: "1000000.00"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, esewa.FormatAmount(tc.cents), "cents=%d", tc.cents)
	}
}

func TestDecodeCallback(t *testing.T) {
	codec := newTestCodec(t)

	t.Run("round trip", func(t *testing.T) {
		body, err := json.Marshal(map[string]string{
			"status":             "COMPLETE",
			"transaction_uuid":   "d4b9319f-0c5c-4b8b-9d3a-2f1a4f9edc01",
			"total_amount":       "150.00",
			"product_code":       "EPAYTEST",
			"signed_field_names": esewa.SignedFieldNames,
			"signature":          "abc",
		})
		require.NoError(t, err)

		payload, err := codec.DecodeCallback(base64.StdEncoding.EncodeToString(body))
		require.NoError(t, err)
		assert.Equal(t, "COMPLETE", payload.Status)
		assert.Equal(t, "150.00", payload.TotalAmount)
		assert.Equal(t, "d4b9319f-0c5c-4b8b-9d3a-2f1a4f9edc01", payload.TransactionUUID)
		assert.Equal(t, "EPAYTEST", payload.ProductCode)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, err := codec.DecodeCallback("%%%not-base64%%%")
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := codec.DecodeCallback(base64.StdEncoding.EncodeToString([]byte("not-json")))
		assert.Error(t, err)
	})
}

func TestBuildPaymentRequest(t *testing.T) {
	codec := newTestCodec(t)

	req := codec.BuildPaymentRequest(15000, "d4b9319f-0c5c-4b8b-9d3a-2f1a4f9edc01")

	assert.Equal(t, "150.00", req.TotalAmount)
	assert.Equal(t, "150.00", req.Amount)
	assert.Equal(t, "0.00", req.TaxAmount)
	assert.Equal(t, "0.00", req.ProductServiceCharge)
	assert.Equal(t, "0.00", req.ProductDeliveryCharge)
	assert.Equal(t, "EPAYTEST", req.ProductCode)
	assert.Equal(t, esewa.SignedFieldNames, req.SignedFieldNames)
	assert.Equal(t, "https://shop.example.com/api/payments/esewa/success", req.SuccessURL)
	assert.Equal(t, "https://shop.example.com/api/payments/esewa/failure", req.FailureURL)

	// The signature must cover exactly the signed field names, so the verifier
	// side of the same codec has to accept it.
	assert.True(t, codec.Verify(req.Signature, req.TotalAmount, req.TransactionUUID, req.ProductCode))
}
