/*
Package store provides an in-memory implementation of the tranche store
interfaces, backed by a btree.

MemStore is used by tests and can back a simple deployment. CacheWrap
provides the scratch-pad the hosting runtime needs to apply an operation
atomically: all writes go to the cache and are either written through as a
whole or discarded.
*/
package store

import (
	"bytes"

	"github.com/google/btree"

	"github.com/iov-one/tranche"
)

// item is a key-value pair stored in a btree. A nil value with delete set
// marks a deletion shadowing the parent store.
type item struct {
	key    []byte
	value  []byte
	delete bool
}

var _ btree.Item = (*item)(nil)

// Less implements btree.Item, ordering items by key.
func (i *item) Less(other btree.Item) bool {
	return bytes.Compare(i.key, other.(*item).key) < 0
}

func assertValidKey(key []byte) {
	if key == nil {
		panic("nil key is not allowed")
	}
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() tranche.CacheableKVStore {
	return &memStore{
		bt: btree.New(2),
	}
}

type memStore struct {
	bt *btree.BTree
}

var _ tranche.CacheableKVStore = (*memStore)(nil)

func (s *memStore) Get(key []byte) []byte {
	assertValidKey(key)
	if res := s.bt.Get(&item{key: key}); res != nil {
		return res.(*item).value
	}
	return nil
}

func (s *memStore) Has(key []byte) bool {
	assertValidKey(key)
	return s.bt.Has(&item{key: key})
}

func (s *memStore) Set(key, value []byte) {
	assertValidKey(key)
	s.bt.ReplaceOrInsert(&item{key: key, value: value})
}

func (s *memStore) Delete(key []byte) {
	assertValidKey(key)
	s.bt.Delete(&item{key: key})
}

func (s *memStore) Iterator(start, end []byte) tranche.Iterator {
	return newSliceIterator(collectRange(s.bt, start, end, false))
}

// CacheWrap returns a cache layer on top of this store that can be later
// written back, or discarded.
func (s *memStore) CacheWrap() tranche.KVCacheWrap {
	return newCacheWrap(s)
}

// cacheWrap layers a btree of uncommitted changes over any KVStore. Deletes
// are recorded as shadowing items so that they mask the parent value during
// reads and iteration.
type cacheWrap struct {
	bt     *btree.BTree
	parent tranche.KVStore
}

var _ tranche.KVCacheWrap = (*cacheWrap)(nil)

func newCacheWrap(parent tranche.KVStore) *cacheWrap {
	return &cacheWrap{
		bt:     btree.New(2),
		parent: parent,
	}
}

func (c *cacheWrap) Get(key []byte) []byte {
	assertValidKey(key)
	if res := c.bt.Get(&item{key: key}); res != nil {
		it := res.(*item)
		if it.delete {
			return nil
		}
		return it.value
	}
	return c.parent.Get(key)
}

func (c *cacheWrap) Has(key []byte) bool {
	assertValidKey(key)
	if res := c.bt.Get(&item{key: key}); res != nil {
		return !res.(*item).delete
	}
	return c.parent.Has(key)
}

func (c *cacheWrap) Set(key, value []byte) {
	assertValidKey(key)
	c.bt.ReplaceOrInsert(&item{key: key, value: value})
}

func (c *cacheWrap) Delete(key []byte) {
	assertValidKey(key)
	c.bt.ReplaceOrInsert(&item{key: key, delete: true})
}

// Iterator combines uncommitted changes with the parent store. Shadowed
// deletes are skipped, overwrites hide the parent value.
func (c *cacheWrap) Iterator(start, end []byte) tranche.Iterator {
	ours := collectRange(c.bt, start, end, true)
	parent := c.parent.Iterator(start, end)
	defer parent.Close()

	var theirs []tranche.Model
	for ; parent.Valid(); parent.Next() {
		theirs = append(theirs, tranche.Pair(parent.Key(), parent.Value()))
	}
	return newSliceIterator(mergeModels(ours, theirs))
}

// CacheWrap layers another cache on top of this one.
// Don't change horses in mid-stream....
func (c *cacheWrap) CacheWrap() tranche.KVCacheWrap {
	return newCacheWrap(c)
}

// Write syncs with the parent store and invalidates this wrap.
func (c *cacheWrap) Write() {
	c.bt.Ascend(func(i btree.Item) bool {
		it := i.(*item)
		if it.delete {
			c.parent.Delete(it.key)
		} else {
			c.parent.Set(it.key, it.value)
		}
		return true
	})
	c.Discard()
}

// Discard invalidates this CacheWrap and releases all cached data.
func (c *cacheWrap) Discard() {
	c.bt = btree.New(2)
}

// collectRange reads all items within [start, end) in ascending order. With
// withDeleted set, deletion markers are included so a merge can use them to
// mask parent values.
func collectRange(bt *btree.BTree, start, end []byte, withDeleted bool) []tranche.Model {
	var res []tranche.Model
	insert := func(i btree.Item) bool {
		it := i.(*item)
		if it.delete && !withDeleted {
			return true
		}
		res = append(res, tranche.Model{Key: it.key, Value: markValue(it)})
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(insert)
	case start == nil:
		bt.AscendLessThan(&item{key: end}, insert)
	case end == nil:
		bt.AscendGreaterOrEqual(&item{key: start}, insert)
	default:
		bt.AscendRange(&item{key: start}, &item{key: end}, insert)
	}
	return res
}

// markValue returns nil for deletion markers. Within a merge a nil value is
// unambiguous because serialized models are never empty.
func markValue(it *item) []byte {
	if it.delete {
		return nil
	}
	return it.value
}

// mergeModels zips our changes with the parent snapshot, ours winning on
// equal keys and nil-valued entries (deletes) dropping the pair entirely.
func mergeModels(ours, theirs []tranche.Model) []tranche.Model {
	res := make([]tranche.Model, 0, len(ours)+len(theirs))
	for len(ours) > 0 || len(theirs) > 0 {
		switch {
		case len(ours) == 0:
			return append(res, theirs...)
		case len(theirs) == 0:
			ours, res = appendLive(ours, res)
		default:
			switch cmp := bytes.Compare(ours[0].Key, theirs[0].Key); {
			case cmp < 0:
				ours, res = appendLive(ours, res)
			case cmp > 0:
				res = append(res, theirs[0])
				theirs = theirs[1:]
			default:
				ours, res = appendLive(ours, res)
				theirs = theirs[1:]
			}
		}
	}
	return res
}

func appendLive(from, to []tranche.Model) ([]tranche.Model, []tranche.Model) {
	if from[0].Value != nil {
		to = append(to, from[0])
	}
	return from[1:], to
}
