package clients

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

// Repository only ever sees clients that are not soft deleted.
type Repository interface {
	List(ctx context.Context, q helper.ListQuery) ([]Client, int64, error)
	Get(ctx context.Context, id primitive.ObjectID) (Client, error)
	Create(ctx context.Context, client Client) (Client, error)
	Update(ctx context.Context, id primitive.ObjectID, in ClientInput) (Client, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID) (Client, error)
	RecordOrder(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) (Client, error)
	Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Client], error)
}

type mongoRepository struct {
	clients *database.Collection[Client]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{clients: database.NewCollection[Client](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "email", Value: 1}}},
	{Collection: collectionName, Keys: bson.D{{Key: "isDeleted", Value: 1}, {Key: "createdAt", Value: -1}}},
}

var notDeleted = bson.M{"isDeleted": bson.M{"$ne": true}}

func activeByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id, "isDeleted": bson.M{"$ne": true}}
}

func (r *mongoRepository) List(ctx context.Context, q helper.ListQuery) ([]Client, int64, error) {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if or := helper.SearchClauses(q.Search, "name", "email", "phone", "company"); or != nil {
		filter["$or"] = or
	}
	total, err := r.clients.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.clients.Find(ctx, filter, q.FindOptions("createdAt"))
	return rows, total, err
}

func (r *mongoRepository) Get(ctx context.Context, id primitive.ObjectID) (Client, error) {
	return r.clients.FindOne(ctx, activeByID(id))
}

func (r *mongoRepository) Create(ctx context.Context, client Client) (Client, error) {
	client.ID = primitive.NewObjectID()
	if _, err := r.clients.Insert(ctx, client); err != nil {
		return Client{}, err
	}
	return client, nil
}

func (r *mongoRepository) Update(ctx context.Context, id primitive.ObjectID, in ClientInput) (Client, error) {
	return r.clients.UpdateOne(ctx, activeByID(id), bson.M{
		"$set":         in,
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (Client, error) {
	return r.clients.UpdateOne(ctx, activeByID(id), bson.M{
		"$set":         bson.M{"isDeleted": true},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) RecordOrder(ctx context.Context, id primitive.ObjectID, amount float64, at time.Time) (Client, error) {
	return r.clients.UpdateOne(ctx, activeByID(id), bson.M{
		"$inc":         bson.M{"totalOrders": 1, "totalSpent": amount},
		"$set":         bson.M{"lastOrderDate": at},
		"$currentDate": bson.M{"updatedAt": true},
	})
}

func (r *mongoRepository) Search(ctx context.Context, req helper.GridRequest) (helper.GridResult[Client], error) {
	return r.clients.Grid(ctx, helper.GridPipeline(req, notDeleted, gridColumns))
}
