package appointments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Appointment"

// Notifier delivers text messages; helper.SMSClient implements it.
type Notifier interface {
	Send(ctx context.Context, mobileNo string, msg string) (string, error)
}

type Service struct {
	repo Repository
	sms  Notifier
	now  func() time.Time
}

// NewService accepts a nil notifier, in which case status changes are not texted.
func NewService(repo Repository, sms Notifier) *Service {
	return &Service{repo: repo, sms: sms, now: time.Now}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Appointment, int64, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Appointment, error) {
	oid, err := helper.ParseObjectID(id, "appointment")
	if err != nil {
		return Appointment{}, err
	}
	a, err := s.repo.Get(ctx, oid)
	return a, database.Normalize(err, entity, "FETCH_ERROR")
}

func prepare(in *AppointmentInput) error {
	in.PatientName = strings.TrimSpace(in.PatientName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.AppointmentTime = strings.TrimSpace(in.AppointmentTime)
	if in.Status == "" {
		in.Status = StatusPending
	}
	return helper.ValidateStruct(entity, *in)
}

func (s *Service) Create(ctx context.Context, in AppointmentInput) (Appointment, error) {
	if err := prepare(&in); err != nil {
		return Appointment{}, err
	}
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, Appointment{
		PatientName:     in.PatientName,
		Email:           in.Email,
		Phone:           in.Phone,
		TestType:        in.TestType,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		DoctorName:      in.DoctorName,
		Notes:           in.Notes,
		Status:          in.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	return created, database.Normalize(err, entity, "CREATE_ERROR")
}

// Update merges the body over the stored appointment.
func (s *Service) Update(ctx context.Context, id string, body []byte) (Appointment, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return Appointment{}, err
	}
	if err := prepare(&in); err != nil {
		return Appointment{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, in)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

// SetStatus changes the status and texts the patient when the booking is confirmed or cancelled.
// A failed SMS is logged, the status change still stands.
func (s *Service) SetStatus(ctx context.Context, id string, in StatusInput) (Appointment, error) {
	oid, err := helper.ParseObjectID(id, "appointment")
	if err != nil {
		return Appointment{}, err
	}
	if err := helper.ValidateStruct(entity, in); err != nil {
		return Appointment{}, err
	}
	updated, err := s.repo.SetStatus(ctx, oid, in.Status)
	if err != nil {
		return Appointment{}, database.Normalize(err, entity, "UPDATE_ERROR")
	}
	if msg := statusMessage(updated); msg != "" && s.sms != nil {
		if _, err := s.sms.Send(ctx, updated.Phone, msg); err != nil {
			helper.Logger.Warn().Err(err).Str("appointment", updated.ID.Hex()).Msg("status sms not sent")
		}
	}
	return updated, nil
}

func statusMessage(a Appointment) string {
	when := a.AppointmentDate.Format("02 Jan 2006") + " at " + a.AppointmentTime
	switch a.Status {
	case StatusConfirmed:
		return fmt.Sprintf("Dear %s, your %s appointment on %s is confirmed.", a.PatientName, a.TestType, when)
	case StatusCancelled:
		return fmt.Sprintf("Dear %s, your %s appointment on %s has been cancelled.", a.PatientName, a.TestType, when)
	}
	return ""
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := helper.ParseObjectID(id, "appointment")
	if err != nil {
		return err
	}
	return database.Normalize(s.repo.Delete(ctx, oid), entity, "DELETE_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Appointment], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}
