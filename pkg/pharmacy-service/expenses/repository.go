package expenses

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]Expense, int64, error)
	All(ctx context.Context, f ListFilter) ([]Expense, error)
	Get(ctx context.Context, id primitive.ObjectID) (Expense, error)
	GetByPaymentOrder(ctx context.Context, orderID string) (Expense, error)
	Create(ctx context.Context, e Expense) (Expense, error)
	Update(ctx context.Context, id primitive.ObjectID, in ExpenseInput) (Expense, error)
	// SetPayment writes the given payment fields (paymentStatus, paymentOrderId, paymentId, paymentMethod).
	SetPayment(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (Expense, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Summary(ctx context.Context, from time.Time, to time.Time) (Summary, error)
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Expense], error)
}

type mongoRepository struct {
	expenses *database.Collection[Expense]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{expenses: database.NewCollection[Expense](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "paymentOrderId", Value: 1}}},
	{Collection: collectionName, Keys: bson.D{{Key: "date", Value: -1}}},
}

func dateRange(from time.Time, to time.Time) bson.M {
	r := bson.M{}
	if !from.IsZero() {
		r["$gte"] = from
	}
	if !to.IsZero() {
		r["$lte"] = to
	}
	return r
}

func (r *mongoRepository) List(ctx context.Context, f ListFilter) ([]Expense, int64, error) {
	filter := bson.M{}
	if or := helper.SearchClauses(f.Search, "title", "description"); or != nil {
		filter["$or"] = or
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.PaymentStatus != "" {
		filter["paymentStatus"] = f.PaymentStatus
	}
	if dr := dateRange(f.From, f.To); len(dr) > 0 {
		filter["date"] = dr
	}
	total, err := r.expenses.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.expenses.Find(ctx, filter, f.FindOptions("date"))
	return rows, total, err
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (Expense, error) {
	return r.expenses.FindOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) GetByPaymentOrder(ctx context.Context, orderID string) (Expense, error) {
	return r.expenses.FindOne(ctx, bson.M{"paymentOrderId": orderID})
}

func (r *mongoRepository) Create(ctx context.Context, e Expense) (Expense, error) {
	e.ID = primitive.NewObjectID()
	if _, err := r.expenses.Insert(ctx, e); err != nil {
		return Expense{}, err
	}
	return e, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, in ExpenseInput) (Expense, error) {
	return r.expenses.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         in,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SetPayment(ctx context.Context, id primitive.ObjectID, set map[string]interface{}) (Expense, error) {
	return r.expenses.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         bson.M(set),
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.expenses.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Summary(ctx context.Context, from time.Time, to time.Time) (Summary, error) {
	pipeline := []bson.D{}
	if dr := dateRange(from, to); len(dr) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"date": dr}}})
	}
	group := func(field string) bson.A {
		return bson.A{
			bson.M{"$group": bson.M{"_id": "$" + field, "total": bson.M{"$sum": "$amount"}, "count": bson.M{"$sum": 1}}},
			bson.M{"$sort": bson.M{"_id": 1}},
		}
	}
	pipeline = append(pipeline, bson.D{{Key: "$facet", Value: bson.M{
		"overall":         bson.A{bson.M{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}, "count": bson.M{"$sum": 1}}}},
		"byCategory":      group("category"),
		"byPaymentStatus": group("paymentStatus"),
	}}})

	var facets []struct {
		Overall         []Bucket `bson:"overall"`
		ByCategory      []Bucket `bson:"byCategory"`
		ByPaymentStatus []Bucket `bson:"byPaymentStatus"`
	}
	summary := Summary{ByCategory: []Bucket{}, ByPaymentStatus: []Bucket{}}
	if err := r.expenses.Aggregate(ctx, pipeline, &facets); err != nil {
		return summary, err
	}
	if len(facets) == 0 {
		return summary, nil
	}
	f := facets[0]
	if len(f.Overall) > 0 {
		summary.Total = helper.Round2(f.Overall[0].Total)
		summary.Count = f.Overall[0].Count
	}
	if f.ByCategory != nil {
		summary.ByCategory = f.ByCategory
	}
	if f.ByPaymentStatus != nil {
		summary.ByPaymentStatus = f.ByPaymentStatus
	}
	return summary, nil
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Expense], error) {
	return r.expenses.Grid(ctx, helper.GridPipeline(req, nil, gridColumns))
}

// All returns every expense in the date range, newest first.
func (r *mongoRepository) All(ctx context.Context, f ListFilter) ([]Expense, error) {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.PaymentStatus != "" {
		filter["paymentStatus"] = f.PaymentStatus
	}
	if dr := dateRange(f.From, f.To); len(dr) > 0 {
		filter["date"] = dr
	}
	return r.expenses.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}
