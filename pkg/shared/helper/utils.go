package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListQuery carries the common list parameters (?page=&limit=&sort=&order=&search=).
type ListQuery struct {
	Page   int64
	Limit  int64
	Sort   string
	Order  int
	Search string
}

func (q ListQuery) Skip() int64 {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

func Toint64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func Page(s string) int64 {
	if p := Toint64(s); p > 0 {
		return p
	}
	return 1
}

func Limit(s string) int64 {
	if s == "" {
		s = GetenvStr("DEFAULT_FETCH_ROWS", "200")
	}
	if l := Toint64(s); l > 0 {
		return l
	}
	return 200
}

func SortOrdering(s string) int {
	switch strings.ToLower(s) {
	case "-1", "desc":
		return -1
	default:
		return 1
	}
}

// ParseObjectID converts a path id into an ObjectID, answering INVALID_ID otherwise.
func ParseObjectID(id string, entity string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, InvalidID(fmt.Sprintf("Invalid %s id: %s", entity, id))
	}
	return oid, nil
}

func ToString(input interface{}) string {
	return fmt.Sprintf("%v", input)
}

// Round2 rounds an amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ConvertToDataType turns a spreadsheet cell into the column's declared type.
func ConvertToDataType(dataType string, value string) (interface{}, error) {
	value = strings.TrimSpace(value)
	switch dataType {
	case "int":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		return int(math.Floor(f)), nil
	case "float64":
		return strconv.ParseFloat(value, 64)
	case "bool":
		return strconv.ParseBool(value)
	case "date":
		return ParseDate(value)
	case "string":
		return value, nil
	default:
		return nil, fmt.Errorf("unsupported data type: %s", dataType)
	}
}
