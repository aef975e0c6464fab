package cache

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertySearchKeyIgnoresParameterOrder(t *testing.T) {
	a, _ := url.ParseQuery("city=Bishkek&minPrice=10000&propertyType=apartment")
	b, _ := url.ParseQuery("propertyType=apartment&city=Bishkek&minPrice=10000")

	assert.Equal(t, PropertySearchKey(a), PropertySearchKey(b))
}

func TestPropertySearchKeyDistinguishesQueries(t *testing.T) {
	a, _ := url.ParseQuery("city=Bishkek")
	b, _ := url.ParseQuery("city=Osh")

	assert.NotEqual(t, PropertySearchKey(a), PropertySearchKey(b))
	assert.NotEqual(t, PropertySearchKey(a), PropertySearchKey(url.Values{}))
}

func TestPropertyKeyFormat(t *testing.T) {
	assert.Equal(t, "property:64f1", PropertyKey("64f1"))
}
