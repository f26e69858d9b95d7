package kvstore

// KVStore is the key-value surface the services depend on. Redis backs it in
// production; tests can swap in anything that satisfies the interface.
type KVStore interface {
	Get(key string) (string, error)
	Set(key string, value interface{}) error
	Delete(key string) error
	RPush(key string, values ...interface{}) error
	LRem(key string, count int64, value interface{}) error
	LRange(key string, start, stop int64) ([]string, error)
}
