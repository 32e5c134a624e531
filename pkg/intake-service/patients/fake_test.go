package patients

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type memRepo struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]PatientForm
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]PatientForm{}}
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]PatientForm, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []PatientForm{}
	for _, id := range m.order {
		p, ok := m.docs[id]
		if !ok || (f.Status != "" && p.Status != f.Status) || (f.Email != "" && p.Email != f.Email) {
			continue
		}
		rows = append(rows, p)
	}
	return rows, int64(len(rows)), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (PatientForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[id]
	if !ok {
		return PatientForm{}, database.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) Create(ctx context.Context, p PatientForm) (PatientForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = primitive.NewObjectID()
	m.docs[p.ID] = p
	m.order = append(m.order, p.ID)
	return p, nil
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, in PatientInput) (PatientForm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.docs[id]
	if !ok {
		return PatientForm{}, database.ErrNotFound
	}
	p.FullName, p.Email, p.Phone, p.DateOfBirth = in.FullName, in.Email, in.Phone, in.DateOfBirth
	p.Gender, p.Address, p.Reason = in.Gender, in.Address, in.Reason
	p.PreferredDate, p.Status = in.PreferredDate, in.Status
	m.docs[id] = p
	return p, nil
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

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[PatientForm], error) {
	rows, total, _ := m.List(ctx, ListFilter{})
	return helper.GridResult[PatientForm]{Rows: rows, TotalDocs: total}, nil
}

type confirmation struct {
	to, name, reason string
	date             time.Time
}

type fakeConfirmer struct {
	mu   sync.Mutex
	sent []confirmation
	err  error
}

func (f *fakeConfirmer) SendIntakeConfirmation(ctx context.Context, to string, fullName string, reason string, preferredDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, confirmation{to, fullName, reason, preferredDate})
	return nil
}

var errMailDown = errors.New("smtp down")
