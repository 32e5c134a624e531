package clients

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

// memRepo keeps clients in memory and honours the soft delete flag like the mongo repository.
type memRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]Client
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]Client{}}
}

func (m *memRepo) active() []Client {
	rows := []Client{}
	for _, c := range m.docs {
		if !c.IsDeleted {
			rows = append(rows, c)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

func (m *memRepo) List(ctx context.Context, q helper.ListQuery) ([]Client, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []Client{}
	for _, c := range m.active() {
		if q.Search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(q.Search)) {
			rows = append(rows, c)
		}
	}
	return rows, int64(len(rows)), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[id]
	if !ok || c.IsDeleted {
		return Client{}, database.ErrNotFound
	}
	return c, nil
}

func (m *memRepo) Create(ctx context.Context, client Client) (Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	client.ID = primitive.NewObjectID()
	m.docs[client.ID] = client
	return client, nil
}

func (m *memRepo) update(id primitive.ObjectID, fn func(*Client)) (Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[id]
	if !ok || c.IsDeleted {
		return Client{}, database.ErrNotFound
	}
	fn(&c)
	c.UpdatedAt = time.Now()
	m.docs[id] = c
	return c, nil
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, in ClientInput) (Client, error) {
	return m.update(id, func(c *Client) {
		c.Name, c.Email, c.Phone = in.Name, in.Email, in.Phone
		c.Address, c.Company = in.Address, in.Company
		c.Rating, c.TotalOrders, c.TotalSpent = in.Rating, in.TotalOrders, in.TotalSpent
	})
}

func (m *memRepo) SoftDelete(ctx context.Context, id primitive.ObjectID) (Client, error) {
	return m.update(id, func(c *Client) { c.IsDeleted = true })
}

func (m *memRepo) RecordOrder(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) (Client, error) {
	return m.update(id, func(c *Client) {
		c.TotalOrders++
		c.TotalSpent += amount
		c.LastOrderDate = helper.NewDate(at)
	})
}

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Client], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.active()
	return helper.GridResult[Client]{Rows: rows, TotalDocs: int64(len(rows))}, nil
}

// stored reads a document regardless of the soft delete flag.
func (m *memRepo) stored(id primitive.ObjectID) (Client, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.docs[id]
	return c, ok
}
