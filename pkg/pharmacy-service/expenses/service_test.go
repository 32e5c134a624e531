package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

func codeOf(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*helper.Error)
	require.True(t, ok, "expected *helper.Error, got %T", err)
	return apiErr.Code
}

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestService() *Service {
	svc := NewService(newMemRepo())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestCreateDefaults(t *testing.T) {
	svc := newTestService()
	e, err := svc.Create(context.Background(), ExpenseInput{Title: " Electricity ", Amount: 120.456, Category: "Utilities"})
	require.NoError(t, err)
	assert.Equal(t, "Electricity", e.Title)
	assert.Equal(t, "utilities", e.Category)
	assert.Equal(t, 120.46, e.Amount)
	assert.Equal(t, PaymentPending, e.PaymentStatus)
	assert.True(t, e.Date.Equal(fixedNow))
	assert.Equal(t, fixedNow, e.CreatedAt)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, ExpenseInput{Title: "Rent", Amount: 0, Category: "rent"})
	assert.Equal(t, helper.CodeValidation, codeOf(t, err))
	assert.Contains(t, err.Error(), "amount")

	_, err = svc.Create(ctx, ExpenseInput{Title: "Party", Amount: 10, Category: "fun"})
	assert.Contains(t, err.Error(), "category: must be one of")

	_, err = svc.Create(ctx, ExpenseInput{Title: "Rent", Amount: 10, Category: "rent", PaymentMethod: "cheque"})
	assert.Contains(t, err.Error(), "paymentMethod")

	_, err = svc.Create(ctx, ExpenseInput{Amount: 10, Category: "rent"})
	assert.Contains(t, err.Error(), "title: is required")
}

func TestUpdateMerges(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	e, err := svc.Create(ctx, ExpenseInput{Title: "Salaries March", Amount: 5000, Category: "salaries", Description: "staff"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, e.ID.Hex(), []byte(`{"amount":5200,"paymentStatus":"paid","paymentMethod":"cash"}`))
	require.NoError(t, err)
	assert.Equal(t, 5200.0, updated.Amount)
	assert.Equal(t, "staff", updated.Description)
	assert.Equal(t, PaymentPaid, updated.PaymentStatus)

	_, err = svc.Update(ctx, e.ID.Hex(), []byte(`{"paymentStatus":"refunded"}`))
	assert.Equal(t, helper.CodeValidation, codeOf(t, err))

	_, err = svc.Update(ctx, e.ID.Hex(), []byte(`{`))
	assert.Equal(t, helper.CodeBadRequest, codeOf(t, err))
}

func TestDeleteAndMissing(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	e, err := svc.Create(ctx, ExpenseInput{Title: "Mop", Amount: 3, Category: "maintenance"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e.ID.Hex()))
	_, err = svc.Get(ctx, e.ID.Hex())
	assert.Equal(t, helper.CodeNotFound, codeOf(t, err))
	assert.Equal(t, helper.CodeNotFound, codeOf(t, svc.Delete(ctx, e.ID.Hex())))
	assert.Equal(t, helper.CodeInvalidID, codeOf(t, svc.Delete(ctx, "123")))
}

func TestSummary(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, in := range []ExpenseInput{
		{Title: "Gloves", Amount: 10.1, Category: "supplies"},
		{Title: "Masks", Amount: 20.2, Category: "supplies", PaymentStatus: "paid"},
		{Title: "Water", Amount: 5, Category: "utilities", PaymentStatus: "paid"},
	} {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	sum, err := svc.Summary(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 35.3, sum.Total)
	require.Len(t, sum.ByCategory, 2)
	assert.Equal(t, Bucket{Key: "supplies", Total: 30.3, Count: 2}, sum.ByCategory[0])
	assert.Equal(t, Bucket{Key: "paid", Total: 25.2, Count: 2}, sum.ByPaymentStatus[0])

	_, err = svc.Summary(ctx, fixedNow, fixedNow.Add(-time.Hour))
	assert.Equal(t, helper.CodeBadRequest, codeOf(t, err))
}

func TestPaymentLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	e, err := svc.Create(ctx, ExpenseInput{Title: "Rent April", Amount: 900, Category: "rent"})
	require.NoError(t, err)

	started, err := svc.AttachPaymentOrder(ctx, e.ID.Hex(), "ord_1")
	require.NoError(t, err)
	assert.Equal(t, "ord_1", started.PaymentOrderID)
	assert.Equal(t, "online", started.PaymentMethod)

	paid, err := svc.SettlePayment(ctx, "ord_1", "pay_77", true)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, "pay_77", paid.PaymentID)

	_, err = svc.AttachPaymentOrder(ctx, e.ID.Hex(), "ord_2")
	assert.Equal(t, helper.CodeBadRequest, codeOf(t, err))

	_, err = svc.SettlePayment(ctx, "ord_unknown", "", false)
	assert.Equal(t, helper.CodeNotFound, codeOf(t, err))
}

func TestFailedPayment(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	e, err := svc.Create(ctx, ExpenseInput{Title: "Internet", Amount: 40, Category: "utilities"})
	require.NoError(t, err)
	_, err = svc.AttachPaymentOrder(ctx, e.ID.Hex(), "ord_9")
	require.NoError(t, err)

	failed, err := svc.SettlePayment(ctx, "ord_9", "pay_x", false)
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, failed.PaymentStatus)
	assert.Empty(t, failed.PaymentID)
}
