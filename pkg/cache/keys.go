package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// PropertyKey is the cache key for a single property.
func PropertyKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}

// PropertySearchKey is the cache key for a filtered search. The raw query
// parameters are normalized (sorted, lowercased keys) and hashed so that
// parameter order does not produce distinct keys.
func PropertySearchKey(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		vals := append([]string(nil), params[k]...)
		sort.Strings(vals)
		for _, v := range vals {
			b.WriteString(strings.ToLower(k))
			b.WriteByte('=')
			b.WriteString(v)
			b.WriteByte('&')
		}
	}
	sum := sha1.Sum([]byte(b.String()))
	return fmt.Sprintf("properties:search:%s", hex.EncodeToString(sum[:]))
}
