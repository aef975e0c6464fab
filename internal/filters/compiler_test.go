package filters

import (
	"net/url"
	"regexp"
	"testing"

	"easyrent-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func criteriaFromQuery(t *testing.T, rawQuery string) *SearchCriteria {
	t.Helper()
	values, err := url.ParseQuery(rawQuery)
	require.NoError(t, err)
	c, err := ParseCriteria(values)
	require.NoError(t, err)
	return c
}

func TestCompileIsDeterministic(t *testing.T) {
	c := criteriaFromQuery(t, "propertyType=apartment&city=Bishkek&minPrice=100&maxPrice=500&bedrooms=2&parking=true&query=panorama")

	first := Compile(c)
	second := Compile(c)
	assert.Equal(t, first, second)
}

func TestCompileEmptyCriteria(t *testing.T) {
	p := Compile(&SearchCriteria{})
	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Filter)
	assert.Nil(t, p.Sort)
	assert.False(t, p.HasTextSearch())
}

func TestCompileMinPriceOnly(t *testing.T) {
	c := criteriaFromQuery(t, "minPrice=100")
	p := Compile(c)

	require.Contains(t, p.Filter, "price.amount")
	bounds, ok := p.Filter["price.amount"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 100.0, bounds["$gte"])
	assert.NotContains(t, bounds, "$lte")
}

func TestCompilePriceRangeBothBounds(t *testing.T) {
	c := criteriaFromQuery(t, "minPrice=100&maxPrice=500")
	p := Compile(c)

	bounds := p.Filter["price.amount"].(bson.M)
	assert.Equal(t, 100.0, bounds["$gte"])
	assert.Equal(t, 500.0, bounds["$lte"])
}

func TestCompileCitySubstringMatch(t *testing.T) {
	c := criteriaFromQuery(t, "city=bish")
	p := Compile(c)

	clause, ok := p.Filter["location.city"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "i", clause["$options"])

	// the pattern must behave as a case-insensitive substring match
	re := regexp.MustCompile("(?i)" + clause["$regex"].(string))
	assert.True(t, re.MatchString("Bishkek"))
	assert.True(t, re.MatchString("BISHKEK"))
	assert.True(t, re.MatchString("New Bishkek District"))
	assert.False(t, re.MatchString("Osh"))
}

func TestCompileRoomCountsAreMinimumThresholds(t *testing.T) {
	c := criteriaFromQuery(t, "bedrooms=2&bathrooms=1")
	p := Compile(c)

	assert.Equal(t, bson.M{"$gte": 2}, p.Filter["bedrooms"])
	assert.Equal(t, bson.M{"$gte": 1}, p.Filter["bathrooms"])
}

func TestCompileScalarEquality(t *testing.T) {
	c := criteriaFromQuery(t, "propertyType=apartment&buildingClass=comfort&wallMaterial=brick&floor=3&paymentPeriod=monthly")
	p := Compile(c)

	assert.Equal(t, "apartment", p.Filter["propertyType"])
	assert.Equal(t, "comfort", p.Filter["buildingClass"])
	assert.Equal(t, "brick", p.Filter["wallMaterial"])
	assert.Equal(t, 3, p.Filter["floor"])
	assert.Equal(t, "monthly", p.Filter["price.paymentPeriod"])
}

func TestCompileBooleanFacilities(t *testing.T) {
	c := criteriaFromQuery(t, "parking=true&separateBathroom=false")
	p := Compile(c)

	assert.Equal(t, true, p.Filter["parking"])
	assert.Equal(t, false, p.Filter["separateBathroom"])

	// absence means "don't care": no clause at all
	p = Compile(criteriaFromQuery(t, "city=Osh"))
	assert.NotContains(t, p.Filter, "parking")
	assert.NotContains(t, p.Filter, "separateBathroom")
}

func TestCompileTextSearchImposesRelevanceSort(t *testing.T) {
	c := criteriaFromQuery(t, "query=cozy+studio+downtown")
	p := Compile(c)

	assert.True(t, p.HasTextSearch())
	assert.Equal(t, bson.M{"$search": "cozy studio downtown"}, p.Filter["$text"])
	require.Len(t, p.Sort, 1)
	assert.Equal(t, "score", p.Sort[0].Key)
	assert.Equal(t, bson.M{"$meta": "textScore"}, p.Projection["score"])

	// without a text query no ordering is imposed
	p = Compile(criteriaFromQuery(t, "city=Bishkek"))
	assert.False(t, p.HasTextSearch())
	assert.Nil(t, p.Sort)
}

func TestParseCriteriaRejectsMalformedNumbers(t *testing.T) {
	for _, param := range []string{"floor=three", "bedrooms=2.5", "minPrice=abc", "maxArea=12m"} {
		values, err := url.ParseQuery(param)
		require.NoError(t, err)
		_, err = ParseCriteria(values)
		require.Error(t, err, param)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidParameter), param)
	}
}

func TestParseCriteriaRejectsUnknownEnumValues(t *testing.T) {
	for _, param := range []string{"propertyType=castle", "buildingClass=luxury", "wallMaterial=straw", "paymentPeriod=hourly", "parking=yes"} {
		values, err := url.ParseQuery(param)
		require.NoError(t, err)
		_, err = ParseCriteria(values)
		require.Error(t, err, param)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidParameter), param)
	}
}

func TestParseCriteriaAbsentFieldsStayNil(t *testing.T) {
	c := criteriaFromQuery(t, "city=Bishkek")

	assert.NotNil(t, c.City)
	assert.Nil(t, c.PropertyType)
	assert.Nil(t, c.MinPrice)
	assert.Nil(t, c.MaxPrice)
	assert.Nil(t, c.Bedrooms)
	assert.Nil(t, c.Parking)
	assert.Nil(t, c.Query)
}
