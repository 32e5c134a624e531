package invoices

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]InventoryInvoice, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (InventoryInvoice, error)
	Create(ctx context.Context, inv InventoryInvoice) (InventoryInvoice, error)
	Update(ctx context.Context, id primitive.ObjectID, f fields) (InventoryInvoice, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (InventoryInvoice, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryInvoice], error)
}

type mongoRepository struct {
	invoices *database.Collection[InventoryInvoice]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{invoices: database.NewCollection[InventoryInvoice](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "invoiceNumber", Value: 1}}, Unique: true},
}

func (r *mongoRepository) List(ctx context.Context, f ListFilter) ([]InventoryInvoice, int64, error) {
	filter := bson.M{}
	if or := helper.SearchClauses(f.Search, "invoiceNumber", "supplierEmail", "medicines.name"); or != nil {
		filter["$or"] = or
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.SupplierEmail != "" {
		filter["supplierEmail"] = f.SupplierEmail
	}
	total, err := r.invoices.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.invoices.Find(ctx, filter, f.FindOptions("createdAt"))
	return rows, total, err
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (InventoryInvoice, error) {
	return r.invoices.FindOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Create(ctx context.Context, inv InventoryInvoice) (InventoryInvoice, error) {
	inv.ID = primitive.NewObjectID()
	if _, err := r.invoices.Insert(ctx, inv); err != nil {
		return InventoryInvoice{}, err
	}
	return inv, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, f fields) (InventoryInvoice, error) {
	return r.invoices.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         f,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (InventoryInvoice, error) {
	return r.invoices.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         bson.M{"status": status},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.invoices.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryInvoice], error) {
	return r.invoices.Grid(ctx, helper.GridPipeline(req, nil, gridColumns))
}
