package cart

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/inventory"
	"kriyatec.com/medicare-api/pkg/shared/database"
)

type memRepo struct {
	mu    sync.Mutex
	carts map[string]Cart
}

func newMemRepo() *memRepo {
	return &memRepo{carts: map[string]Cart{}}
}

func (m *memRepo) Get(ctx context.Context, email string) (Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[email]
	if !ok {
		return Cart{}, database.ErrNotFound
	}
	c.Items = append([]CartItem{}, c.Items...)
	return c, nil
}

func (m *memRepo) Save(ctx context.Context, c Cart) (Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.carts[c.UserEmail]; ok {
		c.ID = existing.ID
	} else {
		c.ID = primitive.NewObjectID()
	}
	c.Items = append([]CartItem{}, c.Items...)
	m.carts[c.UserEmail] = c
	return c, nil
}

func (m *memRepo) Delete(ctx context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[email]; !ok {
		return database.ErrNotFound
	}
	delete(m.carts, email)
	return nil
}

type memCatalog struct {
	items map[primitive.ObjectID]inventory.Item
}

func newCatalog(items ...inventory.Item) *memCatalog {
	c := &memCatalog{items: map[primitive.ObjectID]inventory.Item{}}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

func (c *memCatalog) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]inventory.Item, error) {
	out := []inventory.Item{}
	for _, id := range ids {
		if it, ok := c.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}
