package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kriyatec.com/medicare-api/server"
)

func sign(secret string, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignHelperMatchesKnownVector(t *testing.T) {
	assert.Equal(t, "8mX7Qs0+pUkQK2diq7t5MzsMYmuwDQBEY3kob1DOlVw=", sign("cfsecret", "1700000000", []byte(`{"a":1}`)))
}

func TestPaymentRoutes(t *testing.T) {
	f := newFixture(t, nil)
	app := server.Create(server.Config{AppName: "pharmacy-test"})
	SetupRoutes(app, f.svc)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/payments/expenses/"+f.expenses.expense.ID.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	var env struct {
		Data Checkout `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "ord1", env.Data.OrderID)

	n := notification("ord1", "1000.00", "2")
	form := url.Values{
		"merchant_id":      {n.MerchantID},
		"order_id":         {n.OrderID},
		"payment_id":       {n.PaymentID},
		"payhere_amount":   {n.PayhereAmount},
		"payhere_currency": {n.PayhereCurrency},
		"status_code":      {n.StatusCode},
		"md5sig":           {n.Md5sig},
	}
	req := httptest.NewRequest("POST", "/api/payments/payhere/notify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	form.Set("md5sig", "00000000000000000000000000000000")
	req = httptest.NewRequest("POST", "/api/payments/payhere/notify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/payments/ord1", nil))
	require.NoError(t, err)
	var got struct {
		Data Payment `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, StatusSuccess, got.Data.Status)

	req = httptest.NewRequest("POST", "/api/payments/cart/empty@clinic.lk", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
