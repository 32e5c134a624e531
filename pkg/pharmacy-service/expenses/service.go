package expenses

import (
	"context"
	"strings"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

const entity = "Expense"

var exportHeaders = []string{"Title", "Amount", "Category", "Description", "Date", "Payment Status", "Payment Method", "Payment Id"}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Expense, int64, error) {
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, database.Normalize(err, entity, "FETCH_ERROR")
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (Expense, error) {
	oid, err := helper.ParseObjectID(id, "expense")
	if err != nil {
		return Expense{}, err
	}
	e, err := s.repo.Get(ctx, oid)
	return e, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) normalize(in *ExpenseInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	if in.PaymentStatus == "" {
		in.PaymentStatus = PaymentPending
	}
	if in.Date.IsZero() {
		in.Date = helper.NewDate(s.now())
	}
	in.Amount = helper.Round2(in.Amount)
	return helper.ValidateStruct(entity, *in)
}

func (s *Service) Create(ctx context.Context, in ExpenseInput) (Expense, error) {
	if err := s.normalize(&in); err != nil {
		return Expense{}, err
	}
	now := s.now().UTC()
	created, err := s.repo.Create(ctx, Expense{
		Title:         in.Title,
		Amount:        in.Amount,
		Category:      in.Category,
		Description:   in.Description,
		Date:          in.Date,
		PaymentStatus: in.PaymentStatus,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	return created, database.Normalize(err, entity, "CREATE_ERROR")
}

// Update merges the body over the stored expense.
func (s *Service) Update(ctx context.Context, id string, body []byte) (Expense, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	in := existing.input()
	if err := helper.MergeBody(&in, body); err != nil {
		return Expense{}, err
	}
	if err := s.normalize(&in); err != nil {
		return Expense{}, err
	}
	updated, err := s.repo.Update(ctx, existing.ID, in)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := helper.ParseObjectID(id, "expense")
	if err != nil {
		return err
	}
	return database.Normalize(s.repo.Delete(ctx, oid), entity, "DELETE_ERROR")
}

func (s *Service) Summary(ctx context.Context, from time.Time, to time.Time) (Summary, error) {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return Summary{}, helper.BadRequest("to must not be before from")
	}
	sum, err := s.repo.Summary(ctx, from, to)
	return sum, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Expense], error) {
	res, err := s.repo.Search(ctx, req)
	return res, database.Normalize(err, entity, "FETCH_ERROR")
}

func (s *Service) Export(ctx context.Context, f ListFilter) ([]byte, error) {
	rows, err := s.repo.All(ctx, f)
	if err != nil {
		return nil, database.Normalize(err, entity, "FETCH_ERROR")
	}
	out := make([][]interface{}, 0, len(rows))
	for _, e := range rows {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		out = append(out, []interface{}{e.Title, e.Amount, e.Category, e.Description, date, e.PaymentStatus, e.PaymentMethod, e.PaymentID})
	}
	data, err := helper.WriteSheet("Expenses", exportHeaders, out)
	if err != nil {
		return nil, helper.Unexpected("EXPORT_ERROR", err.Error())
	}
	return data, nil
}

// Payable loads an expense that can still be paid online.
func (s *Service) Payable(ctx context.Context, id string) (Expense, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	if e.PaymentStatus == PaymentPaid {
		return Expense{}, helper.BadRequest("Expense is already paid")
	}
	return e, nil
}

// AttachPaymentOrder records the gateway order created for the expense.
func (s *Service) AttachPaymentOrder(ctx context.Context, id string, orderID string) (Expense, error) {
	e, err := s.Payable(ctx, id)
	if err != nil {
		return Expense{}, err
	}
	updated, err := s.repo.SetPayment(ctx, e.ID, map[string]interface{}{
		"paymentOrderId": orderID,
		"paymentStatus":  PaymentPending,
		"paymentMethod":  "online",
	})
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}

// SettlePayment marks the expense behind orderID as paid or failed.
func (s *Service) SettlePayment(ctx context.Context, orderID string, paymentID string, paid bool) (Expense, error) {
	e, err := s.repo.GetByPaymentOrder(ctx, orderID)
	if err != nil {
		return Expense{}, database.Normalize(err, entity, "FETCH_ERROR")
	}
	set := map[string]interface{}{"paymentStatus": PaymentFailed}
	if paid {
		set["paymentStatus"] = PaymentPaid
		set["paymentId"] = paymentID
	}
	updated, err := s.repo.SetPayment(ctx, e.ID, set)
	return updated, database.Normalize(err, entity, "UPDATE_ERROR")
}
