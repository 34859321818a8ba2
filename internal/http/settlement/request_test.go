package settlement

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleRequest_ToPayment(t *testing.T) {
	paymentID := uuid.New()
	orderID := uuid.New()

	body := `{
		"payment_id": "` + paymentID.String() + `",
		"amount": "110.00",
		"currency": "NGN",
		"kind": "sale",
		"order_id": "` + orderID.String() + `",
		"gateway_ref": "FLW-REF-288200108",
		"tx_ref": "jumga-tx-0042",
		"narration": "order 42"
	}`

	var req settleRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	payment := req.toPayment()

	assert.Equal(t, paymentID, payment.ID)
	require.NotNil(t, payment.OrderID)
	assert.Equal(t, orderID, *payment.OrderID)
	assert.Equal(t, "110.00", payment.Amount.StringFixed(2))
	assert.Equal(t, "FLW-REF-288200108", payment.GatewayRef)
	assert.Equal(t, "jumga-tx-0042", payment.TxRef)
	assert.Equal(t, "order 42", payment.Narration)
}
