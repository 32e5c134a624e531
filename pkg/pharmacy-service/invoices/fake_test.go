package invoices

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type memRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]InventoryInvoice
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]InventoryInvoice{}}
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]InventoryInvoice, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []InventoryInvoice{}
	for _, id := range m.order {
		inv, ok := m.docs[id]
		if !ok || (f.Status != "" && inv.Status != f.Status) || (f.SupplierEmail != "" && inv.SupplierEmail != f.SupplierEmail) {
			continue
		}
		rows = append(rows, inv)
	}
	return rows, int64(len(rows)), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (InventoryInvoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.docs[id]
	if !ok {
		return InventoryInvoice{}, database.ErrNotFound
	}
	return inv, nil
}

func (m *memRepo) Create(ctx context.Context, inv InventoryInvoice) (InventoryInvoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv.ID = primitive.NewObjectID()
	m.docs[inv.ID] = inv
	m.order = append(m.order, inv.ID)
	return inv, nil
}

func (m *memRepo) mutate(id primitive.ObjectID, fn func(*InventoryInvoice)) (InventoryInvoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.docs[id]
	if !ok {
		return InventoryInvoice{}, database.ErrNotFound
	}
	fn(&inv)
	m.docs[id] = inv
	return inv, nil
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, f fields) (InventoryInvoice, error) {
	return m.mutate(id, func(inv *InventoryInvoice) {
		inv.SupplierEmail, inv.RequestID, inv.Medicines = f.SupplierEmail, f.RequestID, f.Medicines
		inv.Status, inv.TotalAmount, inv.Notes = f.Status, f.TotalAmount, f.Notes
	})
}

func (m *memRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (InventoryInvoice, error) {
	return m.mutate(id, func(inv *InventoryInvoice) { inv.Status = status })
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

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryInvoice], error) {
	rows, total, err := m.List(ctx, ListFilter{})
	return helper.GridResult[InventoryInvoice]{Rows: rows, TotalDocs: total}, err
}

type counter struct {
	mu sync.Mutex
	n  int64
}

func (c *counter) Next(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return c.n, nil
}

type memDocs struct {
	keys []string
}

func (d *memDocs) Upload(ctx context.Context, key string, file []byte) (string, error) {
	d.keys = append(d.keys, key)
	return "https://cdn.test/" + key, nil
}
