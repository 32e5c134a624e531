package expenses

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"kriyatec.com/medicare-api/pkg/shared/helper"
	"kriyatec.com/medicare-api/server"
)

func TestExpenseRoutes(t *testing.T) {
	app := server.Create(server.Config{AppName: "pharmacy-test"})
	SetupRoutes(app, newTestService())

	for _, body := range []string{
		`{"title":"Gloves","amount":12.5,"category":"supplies","date":"2024-03-01"}`,
		`{"title":"Power","amount":30,"category":"utilities","date":"2024-03-10","paymentStatus":"paid"}`,
	} {
		req := httptest.NewRequest("POST", "/api/expenses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/expenses?category=supplies", nil))
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Header.Get("X-Total-Count"))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/expenses?from=2024-03-05&to=2024-03-10", nil))
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Header.Get("X-Total-Count"))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/expenses?from=yesterday", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/expenses/summary", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var env struct {
		Data Summary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, 42.5, env.Data.Total)
	assert.Len(t, env.Data.ByPaymentStatus, 2)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/expenses/export", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, helper.XLSXContentType, resp.Header.Get("Content-Type"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Title", rows[0][0])
}
