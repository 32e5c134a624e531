package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"kriyatec.com/medicare-api/pkg/shared/helper"
)

type widget struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Qty  int                `bson:"qty"`
}

func TestCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()
	ctx := context.Background()

	mt.Run("find decodes every document", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{{Key: "name", Value: "a"}, {Key: "qty", Value: 1}}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{{Key: "name", Value: "b"}, {Key: "qty", Value: 2}}),
		)
		rows, err := Wrap[widget](mt.Coll).Find(ctx, bson.M{})
		require.NoError(mt, err)
		require.Len(mt, rows, 2)
		assert.Equal(mt, "b", rows[1].Name)
	})

	mt.Run("find returns an empty slice when nothing matches", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		rows, err := Wrap[widget](mt.Coll).Find(ctx, bson.M{})
		require.NoError(mt, err)
		assert.NotNil(mt, rows)
		assert.Empty(mt, rows)
	})

	mt.Run("find one maps no documents to ErrNotFound", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := Wrap[widget](mt.Coll).FindOne(ctx, bson.M{"name": "missing"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("insert returns the generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		id, err := Wrap[widget](mt.Coll).Insert(ctx, widget{Name: "a"})
		require.NoError(mt, err)
		assert.False(mt, id.IsZero())
	})

	mt.Run("insert maps duplicate key errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))
		_, err := Wrap[widget](mt.Coll).Insert(ctx, widget{Name: "a"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("update one returns the updated document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "name", Value: "a"}, {Key: "qty", Value: 7}}}))
		doc, err := Wrap[widget](mt.Coll).UpdateOne(ctx, bson.M{"name": "a"}, bson.M{"$set": bson.M{"qty": 7}})
		require.NoError(mt, err)
		assert.Equal(mt, 7, doc.Qty)
	})

	mt.Run("update one on a missing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		_, err := Wrap[widget](mt.Coll).UpdateOne(ctx, bson.M{"name": "x"}, bson.M{"$set": bson.M{"qty": 1}})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete one reports missing documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		err := Wrap[widget](mt.Coll).DeleteOne(ctx, bson.M{"name": "x"})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("grid unpacks the facet", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		facet := bson.D{
			{Key: "response", Value: bson.A{bson.D{{Key: "name", Value: "a"}}, bson.D{{Key: "name", Value: "b"}}}},
			{Key: "pagination", Value: bson.A{bson.D{{Key: "totalDocs", Value: int32(12)}}}},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, facet))
		pipeline := helper.GridPipeline(helper.GridRequest{Start: 0, End: 2}, nil, nil)
		res, err := Wrap[widget](mt.Coll).Grid(ctx, pipeline)
		require.NoError(mt, err)
		assert.Len(mt, res.Rows, 2)
		assert.Equal(mt, int64(12), res.TotalDocs)
	})
}

func TestSequenceNext(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	defer mt.Close()

	mt.Run("returns the incremented counter", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{{Key: "_id", Value: "invoice"}, {Key: "seq", Value: int64(42)}}}))
		seq := &Sequence{coll: mt.Coll}
		n, err := seq.Next(context.Background(), "invoice")
		require.NoError(mt, err)
		assert.Equal(mt, int64(42), n)
		assert.Equal(mt, "INV-000042", FormatNumber("INV", n))
	})
}

func TestBuildURI(t *testing.T) {
	assert.Equal(t, "mongodb://localhost:27017/medicare", BuildURI("localhost", 27017, "medicare", "", ""))
	assert.Equal(t,
		"mongodb://admin:p%40ss@db:27017/medicare?retryWrites=true&authSource=admin&w=majority&authMechanism=SCRAM-SHA-256",
		BuildURI("db", 27017, "medicare", "admin", "p@ss"))
}
