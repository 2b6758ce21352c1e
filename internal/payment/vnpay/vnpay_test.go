package vnpay

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"hospital-booking/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	c := NewClient(config.VNPayConfig{
		TmnCode:    "TESTCODE",
		HashSecret: "SECRET",
		PayURL:     "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:8080/payments/vnpay/return",
		Expiry:     15 * time.Minute,
	})
	c.now = func() time.Time { return time.Date(2026, 10, 20, 1, 0, 0, 0, time.UTC) }
	return c
}

func callback(c *Client, vals map[string]string) url.Values {
	q := url.Values{}
	for k, v := range vals {
		q.Set(k, v)
	}
	q.Set("vnp_SecureHash", c.sign(q.Encode()))
	return q
}

func TestBuildPaymentURL(t *testing.T) {
	c := newTestClient()

	raw, err := c.BuildPaymentURL(PaymentRequest{
		TxnRef:    "abc123",
		Amount:    150000,
		OrderInfo: "Appointment 42",
		IPAddr:    "127.0.0.1",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(raw, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?"))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "15000000", q.Get("vnp_Amount"))
	assert.Equal(t, "TESTCODE", q.Get("vnp_TmnCode"))
	assert.Equal(t, "20261020080000", q.Get("vnp_CreateDate"))
	assert.Equal(t, "20261020081500", q.Get("vnp_ExpireDate"))
	assert.Len(t, q.Get("vnp_SecureHash"), 128)

	// the generated URL must pass our own verification
	q.Set("vnp_ResponseCode", "00")
	q.Del("vnp_SecureHash")
	q.Set("vnp_SecureHash", c.sign(q.Encode()))
	res, err := c.Verify(q)
	require.NoError(t, err)
	assert.Equal(t, int64(150000), res.Amount)
	assert.Equal(t, "abc123", res.TxnRef)
}

func TestBuildPaymentURLRejectsBadInput(t *testing.T) {
	c := newTestClient()
	_, err := c.BuildPaymentURL(PaymentRequest{Amount: 1000})
	assert.Error(t, err)
	_, err = c.BuildPaymentURL(PaymentRequest{TxnRef: "x", Amount: 0})
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	c := newTestClient()
	base := map[string]string{
		"vnp_TxnRef":            "abc123",
		"vnp_Amount":            "15000000",
		"vnp_ResponseCode":      "00",
		"vnp_TransactionStatus": "00",
		"vnp_TransactionNo":     "14123456",
		"vnp_BankCode":          "NCB",
		"vnp_PayDate":           "20261020083000",
	}

	t.Run("valid success", func(t *testing.T) {
		q := callback(c, base)
		q.Set("vnp_SecureHashType", "HmacSHA512")
		res, err := c.Verify(q)
		require.NoError(t, err)
		assert.True(t, res.Success())
		assert.Equal(t, int64(150000), res.Amount)
		assert.Equal(t, "NCB", res.BankCode)
		assert.Equal(t, 1, res.PayDate.UTC().Hour())
	})

	t.Run("declined", func(t *testing.T) {
		vals := map[string]string{}
		for k, v := range base {
			vals[k] = v
		}
		vals["vnp_ResponseCode"] = "24"
		res, err := c.Verify(callback(c, vals))
		require.NoError(t, err)
		assert.False(t, res.Success())
	})

	t.Run("tampered amount", func(t *testing.T) {
		q := callback(c, base)
		q.Set("vnp_Amount", "100")
		_, err := c.Verify(q)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("missing hash", func(t *testing.T) {
		q := callback(c, base)
		q.Del("vnp_SecureHash")
		_, err := c.Verify(q)
		assert.ErrorIs(t, err, ErrMissingSignature)
	})
}
