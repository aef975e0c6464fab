package cache

import (
	"github.com/go-redis/redis/v8"
)

// Lua scripts for multi-key cache maintenance
var (
	setSearchResultScript         *redis.Script
	invalidatePropertyCacheScript *redis.Script
)

func init() {
	// store search results and associate the search key with each property ID
	// so a later write to any of those properties can drop the cached search.
	setSearchResultScript = redis.NewScript(`
		local search_key = ARGV[1]
		local property_ids_json = ARGV[2]
		local search_expiration = tonumber(ARGV[3])
		redis.call('SET', search_key, property_ids_json)
		redis.call('EXPIRE', search_key, search_expiration)
		for i = 4, #ARGV do
			local property_id = ARGV[i]
			local set_key = 'property:keys:' .. property_id
			redis.call('SADD', set_key, search_key)
			redis.call('EXPIRE', set_key, 3600)
		end
		return 1
	`)

	// remove all cache keys associated with a property.
	invalidatePropertyCacheScript = redis.NewScript(`
		local set_key = 'property:keys:' .. ARGV[1]
		local cache_keys = redis.call('SMEMBERS', set_key)
		if #cache_keys > 0 then
			redis.call('DEL', unpack(cache_keys))
		end
		redis.call('DEL', set_key)
		return 1
	`)
}

// SetSearchResultScript exposes the search-result script for repositories.
func SetSearchResultScript() *redis.Script {
	return setSearchResultScript
}

// InvalidatePropertyCacheScript exposes the invalidation script for repositories.
func InvalidatePropertyCacheScript() *redis.Script {
	return invalidatePropertyCacheScript
}
