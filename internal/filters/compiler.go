package filters

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Predicate is a compiled MongoDB query: the filter document plus the sort
// and projection a text search imposes. An empty predicate matches every
// record; IsEmpty lets the caller distinguish "no constraints supplied" and
// apply its own policy.
type Predicate struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.M
}

// IsEmpty reports whether the predicate carries no clauses at all.
func (p Predicate) IsEmpty() bool {
	return len(p.Filter) == 0
}

// HasTextSearch reports whether the predicate includes a full-text directive,
// in which case results must be ranked by text score.
func (p Predicate) HasTextSearch() bool {
	_, ok := p.Filter["$text"]
	return ok
}

// Compile translates criteria into a predicate. Pure: no I/O, and identical
// criteria always yield an identical predicate.
func Compile(c *SearchCriteria) Predicate {
	filter := bson.M{}

	if c.PropertyType != nil {
		filter["propertyType"] = *c.PropertyType
	}
	if c.BuildingClass != nil {
		filter["buildingClass"] = *c.BuildingClass
	}
	if c.WallMaterial != nil {
		filter["wallMaterial"] = *c.WallMaterial
	}
	if c.PaymentPeriod != nil {
		filter["price.paymentPeriod"] = *c.PaymentPeriod
	}
	if c.Floor != nil {
		filter["floor"] = *c.Floor
	}

	// Location fields match as case-insensitive substrings, never exactly:
	// "bish" finds "Bishkek". QuoteMeta keeps the substring semantics literal.
	if c.City != nil {
		filter["location.city"] = substringMatch(*c.City)
	}
	if c.District != nil {
		filter["location.district"] = substringMatch(*c.District)
	}
	if c.Microdistrict != nil {
		filter["location.microdistrict"] = substringMatch(*c.Microdistrict)
	}

	// Room counts are minimum thresholds: users ask for "at least N bedrooms".
	if c.Bedrooms != nil {
		filter["bedrooms"] = bson.M{"$gte": *c.Bedrooms}
	}
	if c.Bathrooms != nil {
		filter["bathrooms"] = bson.M{"$gte": *c.Bathrooms}
	}

	rangeClause(filter, "price.amount", c.MinPrice, c.MaxPrice)
	rangeClause(filter, "area", c.MinArea, c.MaxArea)
	rangeClause(filter, "landArea", c.MinLandArea, c.MaxLandArea)

	if c.SeparateBathroom != nil {
		filter["separateBathroom"] = *c.SeparateBathroom
	}
	if c.Parking != nil {
		filter["parking"] = *c.Parking
	}

	p := Predicate{Filter: filter}

	if c.Query != nil {
		filter["$text"] = bson.M{"$search": *c.Query}
		// Rank by relevance only when a text query is present; otherwise the
		// result order is left to the store.
		p.Sort = bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
		p.Projection = bson.M{"score": bson.M{"$meta": "textScore"}}
	}

	return p
}

func substringMatch(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// rangeClause emits independent lower/upper bounds on a shared path. Both
// bounds absent emits nothing for that path.
func rangeClause(filter bson.M, path string, min, max *float64) {
	if min == nil && max == nil {
		return
	}
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	filter[path] = bounds
}
