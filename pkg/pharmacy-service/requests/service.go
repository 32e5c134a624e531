package requests

import (
	"context"
	"strings"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Inventory request"

// Numberer hands out document numbers; database.Sequence implements it.
type Numberer interface {
	Next(ctx context.Context, key string) (int64, error)
}

type Service struct {
	repo Repository
	seq  Numberer
	now  func() time.Time
}

func NewService(repo Repository, seq Numberer) *Service {
	return &Service{repo: repo, seq: seq, now: time.Now}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]InventoryRequest, int64, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (InventoryRequest, error) {
	oid, err := helper.ParseObjectID(id, "request")
	if err != nil {
		return InventoryRequest{}, err
	}
	req, err := s.repo.Get(ctx, oid)
	return req, database.Normalize(err, entity, "FETCH_ERROR")
}

func prepare(in RequestInput) (draft, error) {
	in.SupplierEmail = strings.ToLower(strings.TrimSpace(in.SupplierEmail))
	d := in.toDraft()
	if err := helper.ValidateStruct(entity, d); err != nil {
		return draft{}, err
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, in RequestInput) (InventoryRequest, error) {
	d, err := prepare(in)
	if err != nil {
		return InventoryRequest{}, err
	}
	n, err := s.seq.Next(ctx, sequenceKey)
	if err != nil {
		return InventoryRequest{}, helper.Unexpected("CREATE_ERROR", err.Error())
	}
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, InventoryRequest{
		RequestNumber: database.FormatNumber("REQ", n),
		SupplierEmail: d.SupplierEmail,
		Items:         d.Items,
		Message:       d.Message,
		Status:        d.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return created, database.Normalize(err, entity, "CREATE_ERROR")
}

func (s *Service) Update(ctx context.Context, id string, body []byte) (InventoryRequest, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return InventoryRequest{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return InventoryRequest{}, err
	}
	d, err := prepare(in)
	if err != nil {
		return InventoryRequest{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, d)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) SetStatus(ctx context.Context, id string, in StatusInput) (InventoryRequest, error) {
	oid, err := helper.ParseObjectID(id, "request")
	if err != nil {
		return InventoryRequest{}, err
	}
	if err := helper.ValidateStruct(entity, in); err != nil {
		return InventoryRequest{}, err
	}
	updated, err := s.repo.SetStatus(ctx, oid, in.Status)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) Delete(ctx context.Context, id string) (InventoryRequest, error) {
	oid, err := helper.ParseObjectID(id, "request")
	if err != nil {
		return InventoryRequest{}, err
	}
	deleted, err := s.repo.SoftDelete(ctx, oid)
	return deleted, database.Normalize(err, entity, "DELETE_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryRequest], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}
