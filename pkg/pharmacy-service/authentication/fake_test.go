package authentication

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
)

type memRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]User
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[primitive.ObjectID]User{}}
}

func (m *memRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, database.ErrNotFound
}

func (m *memRepo) GetByID(ctx context.Context, id primitive.ObjectID) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, database.ErrNotFound
	}
	return u, nil
}

func (m *memRepo) Create(ctx context.Context, u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return User{}, database.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	m.users[u.ID] = u
	return u, nil
}

func (m *memRepo) UpdateProfile(ctx context.Context, id primitive.ObjectID, in ProfileInput) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, database.ErrNotFound
	}
	u.Name, u.Company, u.Phone, u.Address = in.Name, in.Company, in.Phone, in.Address
	m.users[id] = u
	return u, nil
}

func (m *memRepo) SetPassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return database.ErrNotFound
	}
	u.Password = hash
	m.users[id] = u
	return nil
}
