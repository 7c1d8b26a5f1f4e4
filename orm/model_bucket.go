package orm

import (
	"reflect"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
)

// ModelBucket is implemented by buckets that operate on Models rather than
// Objects.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity,
	// ErrInvalidType is returned.
	One(db tranche.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db tranche.ReadOnlyKVStore, key []byte) bool

	// Put saves given model in the database under given key.
	Put(db tranche.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db tranche.KVStore, key []byte) error

	// Register registers this buckets content to be accessible via query
	// requests under the given name.
	Register(name string, r tranche.QueryRouter)
}

// NewModelBucket returns a ModelBucket instance. Given model is used as a
// prototype of the persistent entity kept in this bucket.
func NewModelBucket(name string, m Model) ModelBucket {
	return &modelBucket{
		b: NewBucket(name, NewSimpleObj(nil, m)),
	}
}

type modelBucket struct {
	b Bucket
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db tranche.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	res := obj.Value()

	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrInvalidType, "%T cannot be represented as %T", res, dest)
	}

	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (mb *modelBucket) Has(db tranche.ReadOnlyKVStore, key []byte) bool {
	return db.Has(mb.b.DBKey(key))
}

func (mb *modelBucket) Put(db tranche.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	obj := NewSimpleObj(key, m)
	if err := mb.b.Save(db, obj); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db tranche.KVStore, key []byte) error {
	if !mb.Has(db, key) {
		return errors.ErrNotFound
	}
	return mb.b.Delete(db, key)
}

func (mb *modelBucket) Register(name string, r tranche.QueryRouter) {
	mb.b.Register(name, r)
}
