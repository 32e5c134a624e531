package cart

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"kriyatec.com/medicare-api/pkg/shared/database"
)

type Repository interface {
	Get(ctx context.Context, email string) (Cart, error)
	Save(ctx context.Context, c Cart) (Cart, error)
	Delete(ctx context.Context, email string) error
}

type mongoRepository struct {
	carts *database.Collection[Cart]
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{carts: database.NewCollection[Cart](db, collectionName)}
}

var Indexes = []database.IndexSpec{
	{Collection: collectionName, Keys: bson.D{{Key: "userEmail", Value: 1}}, Unique: true},
}

func (r *mongoRepository) Get(ctx context.Context, email string) (Cart, error) {
	return r.carts.FindOne(ctx, bson.M{"userEmail": email})
}

// Save replaces the cart owned by c.UserEmail, creating it on first use.
func (r *mongoRepository) Save(ctx context.Context, c Cart) (Cart, error) {
	return r.carts.Upsert(ctx, bson.M{"userEmail": c.UserEmail}, c)
}

func (r *mongoRepository) Delete(ctx context.Context, email string) error {
	return r.carts.DeleteOne(ctx, bson.M{"userEmail": email})
}
