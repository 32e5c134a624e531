package clients

import (
	"context"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Client"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, q helper.ListQuery) ([]Client, int64, error) {
	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Client, error) {
	oid, err := helper.ParseObjectID(id, "client")
	if err != nil {
		return Client{}, err
	}
	client, err := s.repo.Get(ctx, oid)
	return client, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) Create(ctx context.Context, in ClientInput) (Client, error) {
	if err := helper.ValidateStruct(entity, in); err != nil {
		return Client{}, err
	}
	now := s.now().UTC()
	client := Client{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		Company:     in.Company,
		Rating:      in.Rating,
		TotalOrders: in.TotalOrders,
		TotalSpent:  in.TotalSpent,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := s.repo.Create(ctx, client)
	return created, database.Normalize(err, entity, "CREATE_ERROR")
}

// Update merges the JSON body over the stored client, so omitted fields keep their values.
func (s *Service) Update(ctx context.Context, id string, body []byte) (Client, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Client{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return Client{}, err
	}
	if err := helper.ValidateStruct(entity, in); err != nil {
		return Client{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, in)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

// Delete only flags the client; the document stays in storage.
func (s *Service) Delete(ctx context.Context, id string) (Client, error) {
	oid, err := helper.ParseObjectID(id, "client")
	if err != nil {
		return Client{}, err
	}
	deleted, err := s.repo.SoftDelete(ctx, oid)
	return deleted, database.Normalize(err, entity, "DELETE_ERROR")
}

func (s *Service) RecordOrder(ctx context.Context, id string, in OrderInput) (Client, error) {
	oid, err := helper.ParseObjectID(id, "client")
	if err != nil {
		return Client{}, err
	}
	if err := helper.ValidateStruct("Order", in); err != nil {
		return Client{}, err
	}
	at := in.Date.Time
	if at.IsZero() {
		at = s.now()
	}
	client, err := s.repo.RecordOrder(ctx, oid, in.Amount, at.UTC())
	return client, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Client], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}
