package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGridPipeline(t *testing.T) {
	req := GridRequest{
		Start: 10,
		End:   30,
		Filter: []FilterClause{{
			Clause: "AND",
			Conditions: []FilterCondition{
				{Column: "name", Operator: "CONTAINS", Value: "a.b"},
				{Column: "secret", Operator: "EQUALS", Value: "x"},
			},
		}},
		Sort: []SortCriteria{{Sort: "desc", ColID: "name"}, {Sort: "asc", ColID: "secret"}},
	}
	base := bson.M{"isDeleted": bson.M{"$ne": true}}
	p := GridPipeline(req, base, map[string]bool{"name": true})
	require.Len(t, p, 3)

	match := bson.D{{Key: "$match", Value: bson.M{"$and": []bson.M{
		base,
		{"$and": []bson.M{{"name": bson.M{"$regex": `a\.b`, "$options": "i"}}}},
	}}}}
	assert.Equal(t, match, p[0])
	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "name", Value: -1}}}}, p[1])

	facet := p[2][0].Value.(bson.D)
	assert.Equal(t, bson.A{bson.M{"$skip": 10}, bson.M{"$limit": 20}}, facet[0].Value)
}

func TestGridPipelineDefaultsToEverything(t *testing.T) {
	p := GridPipeline(GridRequest{}, nil, nil)
	require.Len(t, p, 1)
	facet := p[0][0].Value.(bson.D)
	assert.Equal(t, bson.A{bson.M{"$skip": 0}, bson.M{"$limit": defaultGridEnd}}, facet[0].Value)
}

func TestBuildCondition(t *testing.T) {
	endOfDay := time.Date(2024, 1, 1, 23, 59, 59, 999999999, time.UTC)
	startOfDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, bson.M{"date": bson.M{"$gt": endOfDay}},
		buildCondition(FilterCondition{Column: "date", Operator: "GREATERTHAN", Type: "date", Value: "2024-01-01"}))
	assert.Equal(t, bson.M{"date": bson.M{"$gte": startOfDay, "$lte": endOfDay}},
		buildCondition(FilterCondition{Column: "date", Operator: "EQUALS", Type: "date", Value: "2024-01-01"}))
	assert.Equal(t, bson.M{"price": bson.M{"$gte": 1.0, "$lte": 5.0}},
		buildCondition(FilterCondition{Column: "price", Operator: "INRANGE", Value: []interface{}{1.0, 5.0}}))
	assert.Equal(t, bson.M{"status": bson.M{"$in": []interface{}{"a", "b"}}},
		buildCondition(FilterCondition{Column: "status", Operator: "IN", Value: []interface{}{"a", "b"}}))
	assert.Nil(t, buildCondition(FilterCondition{Column: "date", Operator: "EQUALS", Type: "date", Value: "garbage"}))
	assert.Nil(t, buildCondition(FilterCondition{Column: "x", Operator: "LIKE", Value: "y"}))
}

func TestListQuery(t *testing.T) {
	t.Setenv("DEFAULT_FETCH_ROWS", "")
	assert.Equal(t, int64(200), Limit(""))
	assert.Equal(t, int64(200), Limit("-3"))
	assert.Equal(t, int64(1), Page("0"))
	assert.Equal(t, int64(40), ListQuery{Page: 3, Limit: 20}.Skip())
	assert.Equal(t, int64(0), ListQuery{Page: 1, Limit: 20}.Skip())
	assert.Equal(t, -1, SortOrdering("DESC"))
	assert.Equal(t, 1, SortOrdering("whatever"))

	t.Setenv("DEFAULT_FETCH_ROWS", "25")
	assert.Equal(t, int64(25), Limit(""))
}

func TestSearchClauses(t *testing.T) {
	assert.Nil(t, SearchClauses("", "name"))
	assert.Equal(t, bson.A{
		bson.M{"name": bson.M{"$regex": `a\+`, "$options": "i"}},
		bson.M{"code": bson.M{"$regex": `a\+`, "$options": "i"}},
	}, SearchClauses("a+", "name", "code"))
}
