package cacher

// Table is the key-value storage behind a GenericCacher.
//
// Entries are write-once: InsertIfAbsent never replaces the value of a key
// that is already present, and there is no delete.
type Table[K comparable, V any] interface {
	Load(key K) (V, bool)
	InsertIfAbsent(key K, value V) (inserted bool)
	Len() int
}

// MapTable is the default Table, a plain Go map.
type MapTable[K comparable, V any] map[K]V

var _ Table[string, int] = MapTable[string, int]{}

// NewMapTable returns an empty MapTable.
func NewMapTable[K comparable, V any]() MapTable[K, V] {
	return make(MapTable[K, V])
}

// Load returns the value stored for key, if any.
func (t MapTable[K, V]) Load(key K) (V, bool) {
	v, ok := t[key]
	return v, ok
}

// InsertIfAbsent stores value for key unless key is already present.
func (t MapTable[K, V]) InsertIfAbsent(key K, value V) bool {
	if _, ok := t[key]; ok {
		return false
	}
	t[key] = value
	return true
}

// Len returns the number of stored keys.
func (t MapTable[K, V]) Len() int {
	return len(t)
}
