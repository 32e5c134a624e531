package payments

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
)

type Repository interface {
	Create(ctx context.Context, p Payment) (Payment, error)
	GetByOrder(ctx context.Context, orderID string) (Payment, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string, gatewayPaymentID string) (Payment, error)
}

type mongoRepository struct {
	payments *database.Collection[Payment]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{payments: database.NewCollection[Payment](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "orderId", Value: 1}}, Unique: true},
	{Collection: collectionName, Keys: bson.D{{Key: "purpose", Value: 1}, {Key: "referenceId", Value: 1}}},
}

func (r *mongoRepository) Create(ctx context.Context, p Payment) (Payment, error) {
	p.ID = primitive.NewObjectID()
	if _, err := r.payments.Insert(ctx, p); err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (r *mongoRepository) GetByOrder(ctx context.Context, orderID string) (Payment, error) {
	return r.payments.FindOne(ctx, bson.M{"orderId": orderID})
}

func (r *mongoRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string, gatewayPaymentID string) (Payment, error) {
	set := bson.M{"status": status}
	if gatewayPaymentID != "" {
		set["gatewayPaymentId"] = gatewayPaymentID
	}
	return r.payments.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updatedAt": true},
	})
}
