package patients

import (
	"context"
	"strings"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Patient form"

// Confirmer acknowledges a new form by email; email.Service implements it.
type Confirmer interface {
	SendIntakeConfirmation(ctx context.Context, to string, fullName string, reason string, preferredDate time.Time) error
}

type Service struct {
	repo     Repository
	confirm  Confirmer
	// dispatch runs background work; tests swap it for a synchronous call
	dispatch func(func())
	now      func() time.Time
}

func NewService(repo Repository, confirm Confirmer) *Service {
	return &Service{
		repo:     repo,
		confirm:  confirm,
		dispatch: func(f func()) { go f() },
		now:      time.Now,
	}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]PatientForm, int64, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (PatientForm, error) {
	oid, err := helper.ParseObjectID(id, "patient")
	if err != nil {
		return PatientForm{}, err
	}
	p, err := s.repo.Get(ctx, oid)
	return p, database.Normalize(err, entity, "FETCH_ERROR")
}

func prepare(in *PatientInput) error {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Gender = strings.ToLower(strings.TrimSpace(in.Gender))
	if in.Status == "" {
		in.Status = StatusPending
	}
	return helper.ValidateStruct(entity, *in)
}

// Create stores the form and mails the confirmation in the background; a mail failure is only logged.
func (s *Service) Create(ctx context.Context, in PatientInput) (PatientForm, error) {
	if err := prepare(&in); err != nil {
		return PatientForm{}, err
	}
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, PatientForm{
		FullName:      in.FullName,
		Email:         in.Email,
		Phone:         in.Phone,
		DateOfBirth:   in.DateOfBirth,
		Gender:        in.Gender,
		Address:       in.Address,
		Reason:        in.Reason,
		PreferredDate: in.PreferredDate,
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return PatientForm{}, database.Normalize(err, entity, "CREATE_ERROR")
	}
	if s.confirm != nil {
		s.dispatch(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.confirm.SendIntakeConfirmation(ctx, created.Email, created.FullName, created.Reason, created.PreferredDate.Time); err != nil {
				helper.Logger.Warn().Err(err).Str("patient", created.ID.Hex()).Msg("confirmation email not sent")
			}
		})
	}
	return created, nil
}

// Update merges the body over the stored form.
func (s *Service) Update(ctx context.Context, id string, body []byte) (PatientForm, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return PatientForm{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return PatientForm{}, err
	}
	if err := prepare(&in); err != nil {
		return PatientForm{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, in)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := helper.ParseObjectID(id, "patient")
	if err != nil {
		return err
	}
	return database.Normalize(s.repo.Delete(ctx, oid), entity, "DELETE_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[PatientForm], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}
