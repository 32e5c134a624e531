package requests

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
	docs  map[primitive.ObjectID]InventoryRequest
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]InventoryRequest{}}
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]InventoryRequest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []InventoryRequest{}
	for _, id := range m.order {
		r := m.docs[id]
		if r.IsDeleted || (f.Status != "" && r.Status != f.Status) || (f.SupplierEmail != "" && r.SupplierEmail != f.SupplierEmail) {
			continue
		}
		rows = append(rows, r)
	}
	return rows, int64(len(rows)), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (InventoryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.docs[id]
	if !ok || r.IsDeleted {
		return InventoryRequest{}, database.ErrNotFound
	}
	return r, nil
}

func (m *memRepo) Create(ctx context.Context, req InventoryRequest) (InventoryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req.ID = primitive.NewObjectID()
	m.docs[req.ID] = req
	m.order = append(m.order, req.ID)
	return req, nil
}

func (m *memRepo) mutate(id primitive.ObjectID, fn func(*InventoryRequest)) (InventoryRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.docs[id]
	if !ok || r.IsDeleted {
		return InventoryRequest{}, database.ErrNotFound
	}
	fn(&r)
	m.docs[id] = r
	return r, nil
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, d draft) (InventoryRequest, error) {
	return m.mutate(id, func(r *InventoryRequest) {
		r.SupplierEmail, r.Items, r.Message, r.Status = d.SupplierEmail, d.Items, d.Message, d.Status
	})
}

func (m *memRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (InventoryRequest, error) {
	return m.mutate(id, func(r *InventoryRequest) { r.Status = status })
}

func (m *memRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (InventoryRequest, error) {
	return m.mutate(id, func(r *InventoryRequest) { r.IsDeleted = true })
}

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryRequest], error) {
	rows, total, err := m.List(ctx, ListFilter{})
	return helper.GridResult[InventoryRequest]{Rows: rows, TotalDocs: total}, err
}

type counter struct {
	mu sync.Mutex
	n  map[string]int64
}

func (c *counter) Next(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = map[string]int64{}
	}
	c.n[key]++
	return c.n[key], nil
}
