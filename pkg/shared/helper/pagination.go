package helper

import (
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// GridRequest is the server-side row model sent by the admin tables.
type GridRequest struct {
	Start  int            `json:"start" validate:"gte=0"`
	End    int            `json:"end" validate:"gte=0"`
	Filter []FilterClause `json:"filter" validate:"omitempty,dive"`
	Sort   []SortCriteria `json:"sort" validate:"omitempty,dive"`
}

type FilterClause struct {
	Clause     string            `json:"clause" validate:"oneof=AND OR"`
	Conditions []FilterCondition `json:"conditions,omitempty"`
}

type FilterCondition struct {
	Column   string      `json:"column"`
	Operator string      `json:"operator"`
	Type     string      `json:"type,omitempty"`
	Value    interface{} `json:"value,omitempty"`
}

type SortCriteria struct {
	Sort  string `json:"sort"`
	ColID string `json:"colId"`
}

// GridResult is one page of rows plus the number of rows matching the filter.
type GridResult[T any] struct {
	Rows      []T   `json:"rows"`
	TotalDocs int64 `json:"totalDocs"`
}

const defaultGridEnd = 50000

// ParseListQuery reads ?page=&limit=&sort=&order=&search=.
func ParseListQuery(c *fiber.Ctx) ListQuery {
	return ListQuery{
		Page:   Page(c.Query("page")),
		Limit:  Limit(c.Query("limit")),
		Sort:   c.Query("sort"),
		Order:  SortOrdering(c.Query("order")),
		Search: c.Query("search"),
	}
}

// GridPipeline builds the aggregation for a grid request. base is always applied (e.g. the soft
// delete filter) and allowed restricts filterable/sortable columns; unknown columns are ignored.
func GridPipeline(request GridRequest, base bson.M, allowed map[string]bool) []bson.D {
	pipeline := []bson.D{}
	matchConditions := []bson.M{}
	if len(base) > 0 {
		matchConditions = append(matchConditions, base)
	}

	for _, filter := range request.Filter {
		conditions := []bson.M{}
		for _, condition := range filter.Conditions {
			if !allowed[condition.Column] {
				continue
			}
			if cond := buildCondition(condition); cond != nil {
				conditions = append(conditions, cond)
			}
		}
		if len(conditions) == 0 {
			continue
		}
		if filter.Clause == "OR" {
			matchConditions = append(matchConditions, bson.M{"$or": conditions})
		} else {
			matchConditions = append(matchConditions, bson.M{"$and": conditions})
		}
	}

	if len(matchConditions) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"$and": matchConditions}}})
	}

	sortConditions := bson.D{}
	for _, sort := range request.Sort {
		if !allowed[sort.ColID] {
			continue
		}
		order := 1
		if sort.Sort == "desc" {
			order = -1
		}
		sortConditions = append(sortConditions, bson.E{Key: sort.ColID, Value: order})
	}
	if len(sortConditions) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: sortConditions}})
	}

	start, end := request.Start, request.End
	if end <= start {
		start, end = 0, defaultGridEnd
	}

	pipeline = append(pipeline, bson.D{{
		Key: "$facet",
		Value: bson.D{
			{Key: "response", Value: bson.A{
				bson.M{"$skip": start},
				bson.M{"$limit": end - start},
			}},
			{Key: "pagination", Value: bson.A{
				bson.D{{Key: "$count", Value: "totalDocs"}},
			}},
		},
	}})
	return pipeline
}

func buildCondition(condition FilterCondition) bson.M {
	column := condition.Column
	value := condition.Value
	isDate := condition.Type == "date"

	switch condition.Operator {
	case "EQUALS":
		if isDate {
			start, end, ok := dayBounds(value)
			if !ok {
				return nil
			}
			return bson.M{column: bson.M{"$gte": start, "$lte": end}}
		}
		return bson.M{column: value}
	case "NOTEQUAL":
		if isDate {
			start, end, ok := dayBounds(value)
			if !ok {
				return nil
			}
			return bson.M{column: bson.M{"$not": bson.M{"$gte": start, "$lte": end}}}
		}
		return bson.M{column: bson.M{"$ne": value}}
	case "CONTAINS":
		if s, ok := value.(string); ok {
			return bson.M{column: bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}}
		}
	case "NOTCONTAINS":
		if s, ok := value.(string); ok {
			return bson.M{column: bson.M{"$not": bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}}}
		}
	case "STARTSWITH":
		if s, ok := value.(string); ok {
			return bson.M{column: bson.M{"$regex": "^" + regexp.QuoteMeta(s), "$options": "i"}}
		}
	case "ENDSWITH":
		if s, ok := value.(string); ok {
			return bson.M{column: bson.M{"$regex": regexp.QuoteMeta(s) + "$", "$options": "i"}}
		}
	case "IN", "NIN":
		if values, ok := value.([]interface{}); ok {
			op := "$in"
			if condition.Operator == "NIN" {
				op = "$nin"
			}
			return bson.M{column: bson.M{op: values}}
		}
	case "LESSTHAN", "GREATERTHAN", "LESSTHANOREQUAL", "GREATERTHANOREQUAL":
		op := map[string]string{
			"LESSTHAN":           "$lt",
			"GREATERTHAN":        "$gt",
			"LESSTHANOREQUAL":    "$lte",
			"GREATERTHANOREQUAL": "$gte",
		}[condition.Operator]
		if isDate {
			start, end, ok := dayBounds(value)
			if !ok {
				return nil
			}
			// whole-day semantics: "> 2024-01-01" starts after the end of that day
			if op == "$gt" || op == "$lte" {
				return bson.M{column: bson.M{op: end}}
			}
			return bson.M{column: bson.M{op: start}}
		}
		return bson.M{column: bson.M{op: value}}
	case "INRANGE":
		values, ok := value.([]interface{})
		if !ok || len(values) != 2 {
			return nil
		}
		if isDate {
			from, _, ok1 := dayBounds(values[0])
			_, to, ok2 := dayBounds(values[1])
			if !ok1 || !ok2 {
				return nil
			}
			return bson.M{column: bson.M{"$gte": from, "$lte": to}}
		}
		return bson.M{column: bson.M{"$gte": values[0], "$lte": values[1]}}
	case "BLANK":
		return bson.M{column: bson.M{"$exists": false}}
	case "NOTBLANK":
		return bson.M{column: bson.M{"$exists": true, "$ne": nil}}
	}
	return nil
}

func dayBounds(value interface{}) (time.Time, time.Time, bool) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	d, err := ParseDate(s)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	t := d.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
	return start, end, true
}
