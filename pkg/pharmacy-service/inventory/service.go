package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Inventory item"

// ImageStore is satisfied by helper.S3Store.
type ImageStore interface {
	Upload(ctx context.Context, key string, file []byte) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFromURL(link string) string
}

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}

type Service struct {
	repo   Repository
	images ImageStore
	now    func() time.Time
}

// NewService accepts a nil image store; uploads then fail with UPLOAD_ERROR.
func NewService(repo Repository, images ImageStore) *Service {
	return &Service{repo: repo, images: images, now: time.Now}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Item, int64, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	oid, err := helper.ParseObjectID(id, "inventory")
	if err != nil {
		return Item{}, err
	}
	item, err := s.repo.Get(ctx, oid)
	return item, database.Normalize(err, entity, "FETCH_ERROR")
}

func normalize(in *ItemInput) {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.SupplierEmail = strings.ToLower(strings.TrimSpace(in.SupplierEmail))
}

func (s *Service) Create(ctx context.Context, in ItemInput) (Item, error) {
	normalize(&in)
	if err := helper.ValidateStruct(entity, in); err != nil {
		return Item{}, err
	}
	now := s.now().UTC()
	item := Item{
		Name:          in.Name,
		Code:          in.Code,
		Description:   in.Description,
		Category:      in.Category,
		Manufacturer:  in.Manufacturer,
		Price:         in.Price,
		Quantity:      in.Quantity,
		SupplierEmail: in.SupplierEmail,
		ExpiryDate:    in.ExpiryDate,
		ImageURL:      in.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return Item{}, codeConflict(err, in.Code, "CREATE_ERROR")
	}
	return created, nil
}

func codeConflict(err error, code string, fallback string) error {
	if err == database.ErrDuplicate {
		return helper.Duplicate(fmt.Sprintf("Inventory item with code %s already exists", code))
	}
	return database.Normalize(err, entity, fallback)
}

func (s *Service) Update(ctx context.Context, id string, body []byte) (Item, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return Item{}, err
	}
	normalize(&in)
	if err := helper.ValidateStruct(entity, in); err != nil {
		return Item{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, in)
	if err != nil {
		return Item{}, codeConflict(err, in.Code, "UPDATE_ERROR")
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := helper.ParseObjectID(id, "inventory")
	if err != nil {
		return err
	}
	item, err := s.repo.Get(ctx, oid)
	if err != nil {
		return database.Normalize(err, entity, "DELETE_ERROR")
	}
	if err := s.repo.Delete(ctx, oid); err != nil {
		return database.Normalize(err, entity, "DELETE_ERROR")
	}
	s.dropImage(ctx, item.ImageURL)
	return nil
}

// AdjustStock adds delta (negative to consume) and never lets quantity go below zero.
func (s *Service) AdjustStock(ctx context.Context, id string, in StockInput) (Item, error) {
	if err := helper.ValidateStruct("Stock", in); err != nil {
		return Item{}, err
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if item.Quantity+in.Delta < 0 {
		return Item{}, helper.BadRequest(fmt.Sprintf("Insufficient stock for %s: %d available", item.Code, item.Quantity))
	}
	updated, err := s.repo.AdjustStock(ctx, item.ID, in.Delta)
	if err == database.ErrNotFound {
		// stock moved between the read and the conditional update
		return Item{}, helper.BadRequest(fmt.Sprintf("Insufficient stock for %s", item.Code))
	}
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

// Expiring lists items whose expiry date falls within the next days (expired ones included).
func (s *Service) Expiring(ctx context.Context, days int) ([]Item, error) {
	if days < 0 {
		return nil, helper.BadRequest("days must not be negative")
	}
	rows, err := s.repo.ExpiringBefore(ctx, s.now().UTC().AddDate(0, 0, days))
	return rows, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) UploadImage(ctx context.Context, id string, fileName string, data []byte) (Item, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExt[ext] {
		return Item{}, helper.BadRequest("Unsupported image type: " + ext)
	}
	if len(data) == 0 {
		return Item{}, helper.BadRequest("Image file is empty")
	}
	item, err := s.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if s.images == nil {
		return Item{}, helper.Unexpected("UPLOAD_ERROR", "image storage is not configured")
	}
	key := fmt.Sprintf("inventory/%s/%s%s", item.ID.Hex(), uuid.NewString(), ext)
	url, err := s.images.Upload(ctx, key, data)
	if err != nil {
		return Item{}, helper.Unexpected("UPLOAD_ERROR", err.Error())
	}
	updated, err := s.repo.SetImage(ctx, item.ID, url)
	if err != nil {
		return Item{}, database.Normalize(err, entity, "UPDATE_ERROR")
	}
	s.dropImage(ctx, item.ImageURL)
	return updated, nil
}

func (s *Service) dropImage(ctx context.Context, url string) {
	if s.images == nil || url == "" {
		return
	}
	key := s.images.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.images.Delete(ctx, key); err != nil {
		helper.Logger.Warn().Err(err).Str("key", key).Msg("unable to delete inventory image")
	}
}

// Import upserts every valid spreadsheet row by code; invalid rows are reported, not fatal.
func (s *Service) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	rows, err := helper.ReadSheet(r, sheetColumns)
	if err != nil {
		return ImportResult{}, helper.BadRequest("Unable to read spreadsheet: " + err.Error())
	}
	result := ImportResult{Failed: []ImportFailure{}}
	now := s.now().UTC()
	for _, row := range rows {
		code, _ := row.Values["code"].(string)
		if len(row.Errors) > 0 {
			result.Failed = append(result.Failed, ImportFailure{Line: row.Line, Code: code, Errors: row.Errors})
			continue
		}
		in, err := inputFromRow(row.Values)
		if err == nil {
			normalize(&in)
			err = helper.ValidateStruct(entity, in)
		}
		if err == nil {
			var created bool
			created, err = s.repo.UpsertByCode(ctx, in, now)
			if err == nil && created {
				result.Created++
			} else if err == nil {
				result.Updated++
			}
		}
		if err != nil {
			result.Failed = append(result.Failed, ImportFailure{Line: row.Line, Code: code, Errors: []string{err.Error()}})
		}
	}
	helper.Logger.Info().Int("created", result.Created).Int("updated", result.Updated).Int("failed", len(result.Failed)).Msg("inventory import")
	return result, nil
}

func inputFromRow(values map[string]interface{}) (ItemInput, error) {
	var in ItemInput
	raw, err := json.Marshal(values)
	if err != nil {
		return in, err
	}
	err = json.Unmarshal(raw, &in)
	return in, err
}

var exportHeaders = []string{"Name", "Code", "Description", "Category", "Manufacturer", "Price", "Quantity", "Supplier Email", "Expiry Date", "Image URL"}

func (s *Service) Export(ctx context.Context) ([]byte, error) {
	items, err := s.repo.All(ctx)
	if err != nil {
		return nil, database.Normalize(err, entity, "FETCH_ERROR")
	}
	rows := make([][]interface{}, 0, len(items))
	for _, i := range items {
		expiry := ""
		if !i.ExpiryDate.IsZero() {
			expiry = i.ExpiryDate.Format("2006-01-02")
		}
		rows = append(rows, []interface{}{i.Name, i.Code, i.Description, i.Category, i.Manufacturer, i.Price, i.Quantity, i.SupplierEmail, expiry, i.ImageURL})
	}
	data, err := helper.WriteSheet("Inventory", exportHeaders, rows)
	if err != nil {
		return nil, helper.Unexpected("EXPORT_ERROR", err.Error())
	}
	return data, nil
}

func (s *Service) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]Item, error) {
	items, err := s.repo.GetMany(ctx, ids)
	return items, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Item], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}
