package helper

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ParseBody decodes the request body into out, answering BAD_REQUEST on malformed input.
func ParseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return BadRequest("Invalid request body: " + err.Error())
	}
	return nil
}

// MergeBody overlays a JSON body onto dst, a pointer to the stored input. Arrays present in the
// body replace the stored ones outright, so every element is decoded and validated from scratch.
func MergeBody(dst interface{}, body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return BadRequest("Invalid request body: " + err.Error())
	}
	if v := reflect.ValueOf(dst); v.Kind() == reflect.Pointer && v.Elem().Kind() == reflect.Struct {
		resetSlices(v.Elem(), fields)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return BadRequest("Invalid request body: " + err.Error())
	}
	return nil
}

func resetSlices(v reflect.Value, fields map[string]json.RawMessage) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			resetSlices(v.Field(i), fields)
			continue
		}
		if f.Type.Kind() != reflect.Slice || !v.Field(i).CanSet() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = f.Name
		}
		for key := range fields {
			if strings.EqualFold(key, name) {
				v.Field(i).Set(reflect.Zero(f.Type))
				break
			}
		}
	}
}

// ParseGridRequest reads and validates a grid search body.
func ParseGridRequest(c *fiber.Ctx) (GridRequest, error) {
	var req GridRequest
	if len(c.Body()) == 0 {
		return req, nil
	}
	if err := ParseBody(c, &req); err != nil {
		return req, err
	}
	if err := ValidateStruct("Search", req); err != nil {
		return req, err
	}
	return req, nil
}

// FindOptions applies paging and sorting; without an explicit sort, defaultSort is used descending.
func (q ListQuery) FindOptions(defaultSort string) *options.FindOptions {
	sort := bson.D{{Key: defaultSort, Value: -1}}
	if q.Sort != "" {
		sort = bson.D{{Key: q.Sort, Value: q.Order}}
	}
	return options.Find().SetSkip(q.Skip()).SetLimit(q.Limit).SetSort(sort)
}

// SearchClauses builds case-insensitive "contains" clauses for $or; nil when search is empty.
func SearchClauses(search string, fields ...string) bson.A {
	if search == "" {
		return nil
	}
	pattern := regexp.QuoteMeta(search)
	clauses := bson.A{}
	for _, f := range fields {
		clauses = append(clauses, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return clauses
}
