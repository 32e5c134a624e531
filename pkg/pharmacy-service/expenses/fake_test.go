package expenses

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type memRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]Expense
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]Expense{}}
}

func (m *memRepo) matching(f ListFilter) []Expense {
	rows := []Expense{}
	for _, id := range m.order {
		e, ok := m.docs[id]
		if !ok {
			continue
		}
		if (f.Category != "" && e.Category != f.Category) || (f.PaymentStatus != "" && e.PaymentStatus != f.PaymentStatus) {
			continue
		}
		if (!f.From.IsZero() && e.Date.Before(f.From)) || (!f.To.IsZero() && e.Date.After(f.To)) {
			continue
		}
		rows = append(rows, e)
	}
	return rows
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]Expense, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.matching(f)
	return rows, int64(len(rows)), nil
}

func (m *memRepo) All(ctx context.Context, f ListFilter) ([]Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matching(f), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.docs[id]
	if !ok {
		return Expense{}, database.ErrNotFound
	}
	return e, nil
}

func (m *memRepo) GetByPaymentOrder(ctx context.Context, orderID string) (Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.docs {
		if e.PaymentOrderID == orderID {
			return e, nil
		}
	}
	return Expense{}, database.ErrNotFound
}

func (m *memRepo) Create(ctx context.Context, e Expense) (Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = primitive.NewObjectID()
	m.docs[e.ID] = e
	m.order = append(m.order, e.ID)
	return e, nil
}

func (m *memRepo) mutate(id primitive.ObjectID, fn func(*Expense)) (Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.docs[id]
	if !ok {
		return Expense{}, database.ErrNotFound
	}
	fn(&e)
	m.docs[id] = e
	return e, nil
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, in ExpenseInput) (Expense, error) {
	return m.mutate(id, func(e *Expense) {
		e.Title, e.Amount, e.Category, e.Description = in.Title, in.Amount, in.Category, in.Description
		e.Date, e.PaymentStatus, e.PaymentMethod = in.Date, in.PaymentStatus, in.PaymentMethod
	})
}

func (m *memRepo) SetPayment(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (Expense, error) {
	return m.mutate(id, func(e *Expense) {
		for k, v := range set {
			switch k {
			case "paymentStatus":
				e.PaymentStatus = v.(string)
			case "paymentOrderId":
				e.PaymentOrderID = v.(string)
			case "paymentId":
				e.PaymentID = v.(string)
			case "paymentMethod":
				e.PaymentMethod = v.(string)
			}
		}
	})
}

func (m *memRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.docs, id)
	return nil
}

func buckets(in map[string]*Bucket) []Bucket {
	out := []Bucket{}
	for _, b := range in {
		b.Total = helper.Round2(b.Total)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func add(group map[string]*Bucket, key string, amount float64) {
	if group[key] == nil {
		group[key] = &Bucket{Key: key}
	}
	group[key].Total += amount
	group[key].Count++
}

func (m *memRepo) Summary(ctx context.Context, from time.Time, to time.Time) (Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum Summary
	byCat, byStatus := map[string]*Bucket{}, map[string]*Bucket{}
	for _, e := range m.matching(ListFilter{From: from, To: to}) {
		sum.Total += e.Amount
		sum.Count++
		add(byCat, e.Category, e.Amount)
		add(byStatus, e.PaymentStatus, e.Amount)
	}
	sum.Total = helper.Round2(sum.Total)
	sum.ByCategory, sum.ByPaymentStatus = buckets(byCat), buckets(byStatus)
	return sum, nil
}

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Expense], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.matching(ListFilter{})
	return helper.GridResult[Expense]{Rows: rows, TotalDocs: int64(len(rows))}, nil
}
