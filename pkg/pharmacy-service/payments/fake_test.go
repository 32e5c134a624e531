package payments

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/cart"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/expenses"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type memRepo struct {
	mu   sync.Mutex
	docs map[string]Payment
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[string]Payment{}}
}

func (m *memRepo) Create(ctx context.Context, p Payment) (Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[p.OrderID]; ok {
		return Payment{}, database.ErrDuplicate
	}
	p.ID = primitive.NewObjectID()
	m.docs[p.OrderID] = p
	return p, nil
}

func (m *memRepo) GetByOrder(ctx context.Context, orderID string) (Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[orderID]
	if !ok {
		return Payment{}, database.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string, gatewayPaymentID string) (Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.docs {
		if p.ID == id {
			p.Status = status
			if gatewayPaymentID != "" {
				p.GatewayPaymentID = gatewayPaymentID
			}
			m.docs[k] = p
			return p, nil
		}
	}
	return Payment{}, database.ErrNotFound
}

type fakeExpenses struct {
	mu      sync.Mutex
	expense expenses.Expense
	settled []bool
}

func (f *fakeExpenses) Payable(ctx context.Context, id string) (expenses.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != f.expense.ID.Hex() {
		return expenses.Expense{}, helper.EntityNotFound("Expense not found")
	}
	if f.expense.PaymentStatus == expenses.PaymentPaid {
		return expenses.Expense{}, helper.BadRequest("Expense is already paid")
	}
	return f.expense, nil
}

func (f *fakeExpenses) AttachPaymentOrder(ctx context.Context, id string, orderID string) (expenses.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expense.PaymentOrderID = orderID
	return f.expense, nil
}

func (f *fakeExpenses) SettlePayment(ctx context.Context, orderID string, paymentID string, paid bool) (expenses.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settled = append(f.settled, paid)
	if paid {
		f.expense.PaymentStatus = expenses.PaymentPaid
		f.expense.PaymentID = paymentID
	} else {
		f.expense.PaymentStatus = expenses.PaymentFailed
	}
	return f.expense, nil
}

type fakeCarts struct {
	mu      sync.Mutex
	views   map[string]cart.View
	cleared []string
}

func (f *fakeCarts) Get(ctx context.Context, email string) (cart.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.views[email]; ok {
		return v, nil
	}
	return cart.View{UserEmail: email, Items: []cart.Line{}}, nil
}

func (f *fakeCarts) Clear(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.views, email)
	f.cleared = append(f.cleared, email)
	return nil
}

type fakeOrders struct {
	last helper.OrderRequest
	err  error
}

func (f *fakeOrders) CreateOrder(request helper.OrderRequest) (helper.OrderResponse, error) {
	f.last = request
	if f.err != nil {
		return helper.OrderResponse{}, f.err
	}
	return helper.OrderResponse{
		OrderId:     request.OrderId,
		OrderToken:  "tok_" + request.OrderId,
		OrderStatus: "ACTIVE",
		PaymentLink: "https://payments-test.cashfree.com/order/#tok_" + request.OrderId,
	}, nil
}
