package invoices

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Inventory invoice"

type Numberer interface {
	Next(ctx context.Context, key string) (int64, error)
}

// DocumentStore keeps rendered PDFs; helper.S3Store implements it.
type DocumentStore interface {
	Upload(ctx context.Context, key string, file []byte) (string, error)
}

type Service struct {
	repo    Repository
	seq     Numberer
	docs    DocumentStore
	company []string
	now     func() time.Time
}

func NewService(repo Repository, seq Numberer, docs DocumentStore) *Service {
	return &Service{
		repo: repo,
		seq:  seq,
		docs: docs,
		company: []string{
			helper.GetenvStr("COMPANY_NAME", "MediCare Pharmacy"),
			helper.GetenvStr("COMPANY_ADDRESS", ""),
			helper.GetenvStr("COMPANY_PHONE", ""),
		},
		now: time.Now,
	}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]InventoryInvoice, int64, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (InventoryInvoice, error) {
	oid, err := helper.ParseObjectID(id, "invoice")
	if err != nil {
		return InventoryInvoice{}, err
	}
	inv, err := s.repo.Get(ctx, oid)
	return inv, database.Normalize(err, entity, "FETCH_ERROR")
}

func prepare(in InvoiceInput) (fields, error) {
	in.SupplierEmail = strings.ToLower(strings.TrimSpace(in.SupplierEmail))
	if err := helper.ValidateStruct(entity, in); err != nil {
		return fields{}, err
	}
	f := fields{
		SupplierEmail: in.SupplierEmail,
		Medicines:     in.Medicines,
		Status:        in.Status,
		TotalAmount:   TotalAmount(in.Medicines),
		Notes:         in.Notes,
	}
	if f.Status == "" {
		f.Status = StatusPending
	}
	if in.RequestID != "" {
		oid, _ := primitive.ObjectIDFromHex(in.RequestID)
		f.RequestID = &oid
	}
	return f, nil
}

func (s *Service) Create(ctx context.Context, in InvoiceInput) (InventoryInvoice, error) {
	f, err := prepare(in)
	if err != nil {
		return InventoryInvoice{}, err
	}
	n, err := s.seq.Next(ctx, sequenceKey)
	if err != nil {
		return InventoryInvoice{}, helper.Unexpected("CREATE_ERROR", err.Error())
	}
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, InventoryInvoice{
		InvoiceNumber: database.FormatNumber("INV", n),
		SupplierEmail: f.SupplierEmail,
		RequestID:     f.RequestID,
		Medicines:     f.Medicines,
		Status:        f.Status,
		TotalAmount:   f.TotalAmount,
		Notes:         f.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return created, database.Normalize(err, entity, "CREATE_ERROR")
}

// Update merges the body over the stored invoice and recomputes totalAmount.
func (s *Service) Update(ctx context.Context, id string, body []byte) (InventoryInvoice, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return InventoryInvoice{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return InventoryInvoice{}, err
	}
	f, err := prepare(in)
	if err != nil {
		return InventoryInvoice{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, f)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) SetStatus(ctx context.Context, id string, in StatusInput) (InventoryInvoice, error) {
	oid, err := helper.ParseObjectID(id, "invoice")
	if err != nil {
		return InventoryInvoice{}, err
	}
	if err := helper.ValidateStruct(entity, in); err != nil {
		return InventoryInvoice{}, err
	}
	updated, err := s.repo.SetStatus(ctx, oid, in.Status)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := helper.ParseObjectID(id, "invoice")
	if err != nil {
		return err
	}
	return database.Normalize(s.repo.Delete(ctx, oid), entity, "DELETE_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryInvoice], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}

// PDF renders the invoice and returns the file name with its content.
func (s *Service) PDF(ctx context.Context, id string) (string, []byte, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return "", nil, err
	}
	doc := helper.PdfDocument{
		Title:   "INVOICE",
		Company: nonEmpty(s.company),
		Number:  inv.InvoiceNumber,
		Date:    inv.CreatedAt.Format("02 Jan 2006"),
		Status:  strings.ToUpper(inv.Status),
		Headers: []string{"#", "Medicine", "Unit Price", "Qty", "Amount"},
		Widths:  []float64{12, 88, 32, 20, 38},
		Aligns:  []string{"C", "L", "R", "R", "R"},
		Totals:  [][2]string{{"Total Amount", fmt.Sprintf("%.2f", inv.TotalAmount)}},
	}
	if inv.SupplierEmail != "" {
		doc.BillTo = []string{inv.SupplierEmail}
	}
	for i, m := range inv.Medicines {
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprint(i + 1),
			m.Name,
			fmt.Sprintf("%.2f", m.Price),
			fmt.Sprint(m.Quantity),
			fmt.Sprintf("%.2f", helper.Round2(m.Price*float64(m.Quantity))),
		})
	}
	if inv.Notes != "" {
		doc.Footnote = inv.Notes
	}
	data, err := helper.GeneratePDF(doc)
	if err != nil {
		return "", nil, helper.Unexpected("PDF_ERROR", err.Error())
	}
	return inv.InvoiceNumber + ".pdf", data, nil
}

// StorePDF renders the invoice and uploads it, returning the public link.
func (s *Service) StorePDF(ctx context.Context, id string) (string, error) {
	name, data, err := s.PDF(ctx, id)
	if err != nil {
		return "", err
	}
	if s.docs == nil {
		return "", helper.Unexpected("UPLOAD_ERROR", "document storage is not configured")
	}
	url, err := s.docs.Upload(ctx, "invoices/"+name, data)
	if err != nil {
		return "", helper.Unexpected("UPLOAD_ERROR", err.Error())
	}
	return url, nil
}

func nonEmpty(lines []string) []string {
	out := []string{}
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
