package inventory

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

type memRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]Item
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]Item{}}
}

func (m *memRepo) sorted() []Item {
	rows := []Item{}
	for _, i := range m.docs {
		rows = append(rows, i)
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].Code < rows[b].Code })
	return rows
}

func (m *memRepo) codeTaken(code string, except primitive.ObjectID) bool {
	for id, i := range m.docs {
		if i.Code == code && id != except {
			return true
		}
	}
	return false
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]Item, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []Item{}
	for _, i := range m.sorted() {
		if f.Search != "" && !strings.Contains(strings.ToLower(i.Name+" "+i.Code), strings.ToLower(f.Search)) {
			continue
		}
		if f.SupplierEmail != "" && i.SupplierEmail != f.SupplierEmail {
			continue
		}
		if f.LowStock >= 0 && i.Quantity > f.LowStock {
			continue
		}
		rows = append(rows, i)
	}
	return rows, int64(len(rows)), nil
}

func (m *memRepo) All(ctx context.Context) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.docs[id]
	if !ok {
		return Item{}, database.ErrNotFound
	}
	return i, nil
}

func (m *memRepo) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []Item{}
	for _, id := range ids {
		if i, ok := m.docs[id]; ok {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

func (m *memRepo) Create(ctx context.Context, item Item) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.codeTaken(item.Code, primitive.NilObjectID) {
		return Item{}, database.ErrDuplicate
	}
	item.ID = primitive.NewObjectID()
	m.docs[item.ID] = item
	return item, nil
}

func apply(i *Item, in ItemInput) {
	i.Name, i.Code, i.Description = in.Name, in.Code, in.Description
	i.Category, i.Manufacturer = in.Category, in.Manufacturer
	i.Price, i.Quantity, i.SupplierEmail = in.Price, in.Quantity, in.SupplierEmail
	i.ExpiryDate = in.ExpiryDate
	if in.ImageURL != "" {
		i.ImageURL = in.ImageURL
	}
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, in ItemInput) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.docs[id]
	if !ok {
		return Item{}, database.ErrNotFound
	}
	if m.codeTaken(in.Code, id) {
		return Item{}, database.ErrDuplicate
	}
	apply(&i, in)
	m.docs[id] = i
	return i, nil
}

func (m *memRepo) UpsertByCode(ctx context.Context, in ItemInput, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, i := range m.docs {
		if i.Code == in.Code {
			apply(&i, in)
			m.docs[id] = i
			return false, nil
		}
	}
	i := Item{ID: primitive.NewObjectID(), CreatedAt: now}
	apply(&i, in)
	m.docs[i.ID] = i
	return true, nil
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

func (m *memRepo) AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.docs[id]
	if !ok || i.Quantity+delta < 0 {
		return Item{}, database.ErrNotFound
	}
	i.Quantity += delta
	m.docs[id] = i
	return i, nil
}

func (m *memRepo) SetImage(ctx context.Context, id primitive.ObjectID, url string) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.docs[id]
	if !ok {
		return Item{}, database.ErrNotFound
	}
	i.ImageURL = url
	m.docs[id] = i
	return i, nil
}

func (m *memRepo) ExpiringBefore(ctx context.Context, before time.Time) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []Item{}
	for _, i := range m.sorted() {
		if !i.ExpiryDate.After(before) {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Item], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.sorted()
	return helper.GridResult[Item]{Rows: rows, TotalDocs: int64(len(rows))}, nil
}

// memImages records uploads under a fake public url.
type memImages struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newMemImages() *memImages {
	return &memImages{objects: map[string][]byte{}}
}

const imageBase = "https://cdn.test/medicare/"

func (s *memImages) Upload(ctx context.Context, key string, file []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = file
	return imageBase + key, nil
}

func (s *memImages) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *memImages) KeyFromURL(link string) string {
	if !strings.HasPrefix(link, imageBase) {
		return ""
	}
	return strings.TrimPrefix(link, imageBase)
}
