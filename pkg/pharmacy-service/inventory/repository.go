package inventory

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
	List(ctx context.Context, f ListFilter) ([]Item, int64, error)
	All(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id primitive.ObjectID) (Item, error)
	GetMany(ctx context.Context, ids []primitive.ObjectID) ([]Item, error)
	Create(ctx context.Context, item Item) (Item, error)
	Update(ctx context.Context, id primitive.ObjectID, in ItemInput) (Item, error)
	// UpsertByCode reports whether a new item was created.
	UpsertByCode(ctx context.Context, in ItemInput, now time.Time) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AdjustStock fails with database.ErrNotFound when the result would go below zero.
	AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) (Item, error)
	SetImage(ctx context.Context, id primitive.ObjectID, url string) (Item, error)
	ExpiringBefore(ctx context.Context, before time.Time) ([]Item, error)
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Item], error)
}

type mongoRepository struct {
	items *database.Collection[Item]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{items: database.NewCollection[Item](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "code", Value: 1}}, Unique: true},
	{Collection: collectionName, Keys: bson.D{{Key: "expiryDate", Value: 1}}},
}

func (r *mongoRepository) List(ctx context.Context, f ListFilter) ([]Item, int64, error) {
	filter := bson.M{}
	if or := helper.SearchClauses(f.Search, "name", "code"); or != nil {
		filter["$or"] = or
	}
	if f.SupplierEmail != "" {
		filter["supplierEmail"] = f.SupplierEmail
	}
	if f.LowStock >= 0 {
		filter["quantity"] = bson.M{"$lte": f.LowStock}
	}
	total, err := r.items.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.items.Find(ctx, filter, f.FindOptions("createdAt"))
	return rows, total, err
}

func (r *mongoRepository) All(ctx context.Context) ([]Item, error) {
	return r.items.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (Item, error) {
	return r.items.FindOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]Item, error) {
	if len(ids) == 0 {
		return []Item{}, nil
	}
	return r.items.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoRepository) Create(ctx context.Context, item Item) (Item, error) {
	item.ID = primitive.NewObjectID()
	if _, err := r.items.Insert(ctx, item); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, in ItemInput) (Item, error) {
	return r.items.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         in,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) UpsertByCode(ctx context.Context, in ItemInput, now time.Time) (bool, error) {
	raw, err := bson.Marshal(in)
	if err != nil {
		return false, err
	}
	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return false, err
	}
	// spreadsheets carry no image; keep the stored one
	if in.ImageURL == "" {
		delete(set, "imageUrl")
	}
	res, err := r.items.Raw().UpdateOne(ctx, bson.M{"code": in.Code}, bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"createdAt": now},
		"$currentDate": bson.M{"updatedAt": true},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *mongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.items.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *mongoRepository) AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) (Item, error) {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["quantity"] = bson.M{"$gte": -delta}
	}
	return r.items.UpdateOne(ctx, filter, bson.M{
		"$inc":         bson.M{"quantity": delta},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SetImage(ctx context.Context, id primitive.ObjectID, url string) (Item, error) {
	return r.items.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         bson.M{"imageUrl": url},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) ExpiringBefore(ctx context.Context, before time.Time) ([]Item, error) {
	return r.items.Find(ctx,
		bson.M{"expiryDate": bson.M{"$lte": before}},
		options.Find().SetSort(bson.D{{Key: "expiryDate", Value: 1}}))
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Item], error) {
	return r.items.Grid(ctx, helper.GridPipeline(req, nil, gridColumns))
}
