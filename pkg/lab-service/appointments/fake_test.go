package appointments

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
	docs  map[primitive.ObjectID]Appointment
}

func newMemRepo() *memRepo {
	return &memRepo{docs: map[primitive.ObjectID]Appointment{}}
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]Appointment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := []Appointment{}
	for _, id := range m.order {
		a, ok := m.docs[id]
		if !ok || (f.Status != "" && a.Status != f.Status) || (f.Email != "" && a.Email != f.Email) {
			continue
		}
		if !f.Date.IsZero() {
			day := f.Date.UTC().Truncate(24 * time.Hour)
			if a.AppointmentDate.Before(day) || !a.AppointmentDate.Before(day.Add(24*time.Hour)) {
				continue
			}
		}
		rows = append(rows, a)
	}
	return rows, int64(len(rows)), nil
}

func (m *memRepo) Get(ctx context.Context, id primitive.ObjectID) (Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.docs[id]
	if !ok {
		return Appointment{}, database.ErrNotFound
	}
	return a, nil
}

func (m *memRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = primitive.NewObjectID()
	m.docs[a.ID] = a
	m.order = append(m.order, a.ID)
	return a, nil
}

func (m *memRepo) mutate(id primitive.ObjectID, fn func(*Appointment)) (Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.docs[id]
	if !ok {
		return Appointment{}, database.ErrNotFound
	}
	fn(&a)
	m.docs[id] = a
	return a, nil
}

func (m *memRepo) Update(ctx context.Context, id primitive.ObjectID, in AppointmentInput) (Appointment, error) {
	return m.mutate(id, func(a *Appointment) {
		a.PatientName, a.Email, a.Phone, a.TestType = in.PatientName, in.Email, in.Phone, in.TestType
		a.AppointmentDate, a.AppointmentTime, a.DoctorName = in.AppointmentDate, in.AppointmentTime, in.DoctorName
		a.Notes, a.Status = in.Notes, in.Status
	})
}

func (m *memRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (Appointment, error) {
	return m.mutate(id, func(a *Appointment) { a.Status = status })
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

func (m *memRepo) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Appointment], error) {
	rows, total, _ := m.List(ctx, ListFilter{})
	return helper.GridResult[Appointment]{Rows: rows, TotalDocs: total}, nil
}

type sentSMS struct {
	to  string
	msg string
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []sentSMS
	fail bool
}

func (f *fakeSMS) Send(ctx context.Context, mobileNo string, msg string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return "", errors.New("gateway down")
	}
	f.sent = append(f.sent, sentSMS{to: mobileNo, msg: msg})
	return "sms-1", nil
}
