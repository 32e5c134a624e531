package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Collection is a mongo collection whose documents decode into T.
type Collection[T any] struct {
	coll *mongo.Collection
}

func NewCollection[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{coll: db.Collection(name)}
}

func Wrap[T any](coll *mongo.Collection) *Collection[T] {
	return &Collection[T]{coll: coll}
}

func (c *Collection[T]) Raw() *mongo.Collection {
	return c.coll
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	}
	return err
}

func (c *Collection[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := c.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	results := []T{}
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Collection[T]) FindOne(ctx context.Context, filter interface{}) (T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	return doc, translate(err)
}

// Insert stores doc and returns the generated ObjectID (NilObjectID for non-ObjectID keys).
func (c *Collection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, translate(err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateOne applies update to the first match and returns the document after the update.
func (c *Collection[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	return doc, translate(err)
}

// Upsert replaces the matching document (or inserts doc) and returns the stored version.
func (c *Collection[T]) Upsert(ctx context.Context, filter interface{}, doc T) (T, error) {
	var out T
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)
	err := c.coll.FindOneAndReplace(ctx, filter, doc, opts).Decode(&out)
	return out, translate(err)
}

func (c *Collection[T]) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	res, err := c.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, translate(err)
	}
	return res.ModifiedCount, nil
}

// DeleteOne removes the first match; ErrNotFound when nothing matched.
func (c *Collection[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}

// Aggregate decodes the pipeline output into results, which must be a pointer to a slice.
func (c *Collection[T]) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	cur, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, results)
}

type gridFacet[T any] struct {
	Response   []T `bson:"response"`
	Pagination []struct {
		TotalDocs int64 `bson:"totalDocs"`
	} `bson:"pagination"`
}

// Grid runs a pipeline built by helper.GridPipeline and unpacks its $facet stage.
func (c *Collection[T]) Grid(ctx context.Context, pipeline []bson.D) (helper.GridResult[T], error) {
	result := helper.GridResult[T]{Rows: []T{}}
	var facets []gridFacet[T]
	if err := c.Aggregate(ctx, pipeline, &facets); err != nil {
		return result, err
	}
	if len(facets) == 0 {
		return result, nil
	}
	if facets[0].Response != nil {
		result.Rows = facets[0].Response
	}
	if len(facets[0].Pagination) > 0 {
		result.TotalDocs = facets[0].Pagination[0].TotalDocs
	}
	return result, nil
}

// Normalize turns a storage error into the API error for entity: ErrNotFound becomes NOT_FOUND,
// ErrDuplicate becomes DUPLICATE and anything else is reported under code.
func Normalize(err error, entity string, code string) error {
	if err == nil {
		return nil
	}
	var apiErr *helper.Error
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, ErrNotFound):
		return helper.EntityNotFound(entity + " not found")
	case errors.Is(err, ErrDuplicate):
		return helper.Duplicate(entity + " already exists")
	}
	return helper.Unexpected(code, err.Error())
}
