package requests

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

// Repository hides soft-deleted requests from every read and write.
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]InventoryRequest, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (InventoryRequest, error)
	Create(ctx context.Context, req InventoryRequest) (InventoryRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, d draft) (InventoryRequest, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (InventoryRequest, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (InventoryRequest, error)
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryRequest], error)
}

type mongoRepository struct {
	requests *database.Collection[InventoryRequest]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{requests: database.NewCollection[InventoryRequest](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "requestNumber", Value: 1}}, Unique: true},
}

func activeByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}}
}

func (r *mongoRepository) List(ctx context.Context, f ListFilter) ([]InventoryRequest, int64, error) {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if or := helper.SearchClauses(f.Search, "requestNumber", "supplierEmail", "items.medicineName"); or != nil {
		filter["$or"] = or
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.SupplierEmail != "" {
		filter["supplierEmail"] = f.SupplierEmail
	}
	total, err := r.requests.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.requests.Find(ctx, filter, f.FindOptions("createdAt"))
	return rows, total, err
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (InventoryRequest, error) {
	return r.requests.FindOne(ctx, activeByID(id))
}

func (r *mongoRepository) Create(ctx context.Context, req InventoryRequest) (InventoryRequest, error) {
	req.ID = primitive.NewObjectID()
	if _, err := r.requests.Insert(ctx, req); err != nil {
		return InventoryRequest{}, err
	}
	return req, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, d draft) (InventoryRequest, error) {
	return r.requests.UpdateOne(ctx, activeByID(id), bson.M{
		"$set":         d,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (InventoryRequest, error) {
	return r.requests.UpdateOne(ctx, activeByID(id), bson.M{
		"$set":         bson.M{"status": status},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (InventoryRequest, error) {
	return r.requests.UpdateOne(ctx, activeByID(id), bson.M{
		"$set":         bson.M{"isDeleted": true},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[InventoryRequest], error) {
	base := bson.M{"isDeleted": bson.M{"$ne": true}}
	return r.requests.Grid(ctx, helper.GridPipeline(req, base, gridColumns))
}
