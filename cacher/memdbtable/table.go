// Package memdbtable provides a cacher.Table stored in an in-memory
// go-memdb database.
//
// Rows are indexed by an xxhash digest of the key. A lookup walks the rows
// sharing that digest and compares keys with ==, so colliding digests never
// alias two different keys.
package memdbtable

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/cacher_go/cacher"
	"github.com/on-the-ground/cacher_go/shared/helper"
)

const (
	tableName   = "memo"
	idIndex     = "id"
	digestIndex = "digest"
)

type row[K comparable, V any] struct {
	ID     string
	Digest uint64
	Key    K
	Value  V
}

// Table is a cacher.Table backed by go-memdb.
type Table[K comparable, V any] struct {
	db *memdb.MemDB
}

var _ cacher.Table[string, int] = (*Table[string, int])(nil)

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableName: {
				Name: tableName,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					digestIndex: {
						Name:    digestIndex,
						Indexer: &memdb.UintFieldIndex{Field: "Digest"},
					},
				},
			},
		},
	}
}

// New returns an empty Table.
func New[K comparable, V any]() (*Table[K, V], error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("memdbtable: %w", err)
	}
	return &Table[K, V]{db: db}, nil
}

// Digest hashes the Go-syntax representation of key. Float and complex keys
// are hashed with negative zero folded into zero, since the two are ==.
// Composite keys print their fields as is, so a struct or array key holding a
// negative zero float gets its own row.
func Digest[K comparable](key K) uint64 {
	canon := canonical(key)
	return xxhash.Sum64String(fmt.Sprintf("%T:%#v", canon, canon))
}

func canonical(key any) any {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 {
			return reflect.Zero(v.Type()).Interface()
		}
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		re, im := real(c), imag(c)
		if re == 0 {
			re = 0
		}
		if im == 0 {
			im = 0
		}
		z := reflect.New(v.Type()).Elem()
		z.SetComplex(complex(re, im))
		return z.Interface()
	}
	return key
}

// Load returns the value stored for key, if any.
func (t *Table[K, V]) Load(key K) (V, bool) {
	txn := t.db.Txn(false)
	defer txn.Abort()

	r := t.find(txn, key)
	if r == nil {
		var zero V
		return zero, false
	}
	return r.Value, true
}

// InsertIfAbsent adds a row for key unless one already exists; an existing
// row is never rewritten. Index errors mean the schema is broken and are
// raised as panics.
func (t *Table[K, V]) InsertIfAbsent(key K, value V) bool {
	txn := t.db.Txn(true)
	defer txn.Abort()

	if t.find(txn, key) != nil {
		return false
	}
	next := &row[K, V]{
		ID:     uuid.New().String(),
		Digest: Digest(key),
		Key:    key,
		Value:  value,
	}
	if err := txn.Insert(tableName, next); err != nil {
		panic(fmt.Errorf("memdbtable: insert %v: %w", key, err))
	}
	txn.Commit()
	return true
}

// Len returns the number of rows.
func (t *Table[K, V]) Len() int {
	txn := t.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableName, idIndex)
	if err != nil {
		panic(fmt.Errorf("memdbtable: scan: %w", err))
	}
	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n
}

func (t *Table[K, V]) find(txn *memdb.Txn, key K) *row[K, V] {
	it, err := txn.Get(tableName, digestIndex, Digest(key))
	if err != nil {
		panic(fmt.Errorf("memdbtable: lookup %v: %w", key, err))
	}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		r, ok := raw.(*row[K, V])
		if !ok {
			panic(fmt.Errorf("memdbtable: %w: row %T", helper.ErrUnexpectedType, raw))
		}
		if r.Key == key {
			return r
		}
	}
	return nil
}
