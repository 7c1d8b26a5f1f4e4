package store

import (
	"bytes"
	"testing"

	"github.com/iov-one/tranche"
)

func TestMemStoreGetSetDelete(t *testing.T) {
	db := MemStore()

	k, v := []byte("french"), []byte("fry")

	if db.Has(k) {
		t.Fatal("key must not exist in an empty store")
	}
	if got := db.Get(k); got != nil {
		t.Fatalf("empty store returned %q", got)
	}

	db.Set(k, v)
	if !db.Has(k) {
		t.Fatal("key must exist after set")
	}
	if got := db.Get(k); !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}

	db.Delete(k)
	if db.Has(k) {
		t.Fatal("key must not exist after delete")
	}
}

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))
	db.Set([]byte("b"), []byte("2"))

	// Discarded changes leave no trace.
	cache := db.CacheWrap()
	cache.Set([]byte("c"), []byte("3"))
	cache.Delete([]byte("a"))
	if got := cache.Get([]byte("a")); got != nil {
		t.Fatalf("delete must shadow the parent value, got %q", got)
	}
	cache.Discard()
	if got := db.Get([]byte("a")); !bytes.Equal(got, []byte("1")) {
		t.Fatalf("discard must not modify the parent, got %q", got)
	}
	if db.Has([]byte("c")) {
		t.Fatal("discard must drop pending writes")
	}

	// Written changes are applied as a whole.
	cache = db.CacheWrap()
	cache.Set([]byte("c"), []byte("3"))
	cache.Delete([]byte("a"))
	cache.Write()
	if db.Has([]byte("a")) {
		t.Fatal("write must apply deletes")
	}
	if got := db.Get([]byte("c")); !bytes.Equal(got, []byte("3")) {
		t.Fatalf("write must apply sets, got %q", got)
	}
}

func TestCacheWrapIsolation(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))

	cache := db.CacheWrap()
	cache.Set([]byte("a"), []byte("overwritten"))

	if got := db.Get([]byte("a")); !bytes.Equal(got, []byte("1")) {
		t.Fatalf("parent must not observe pending writes, got %q", got)
	}
	if got := cache.Get([]byte("a")); !bytes.Equal(got, []byte("overwritten")) {
		t.Fatalf("cache must observe its own writes, got %q", got)
	}

	// A recursive wrap sees through to both layers.
	inner := cache.CacheWrap()
	if got := inner.Get([]byte("a")); !bytes.Equal(got, []byte("overwritten")) {
		t.Fatalf("inner cache must read through, got %q", got)
	}
}

func TestIteratorRange(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))
	db.Set([]byte("b"), []byte("2"))
	db.Set([]byte("c"), []byte("3"))
	db.Set([]byte("d"), []byte("4"))

	itr := db.Iterator([]byte("b"), []byte("d"))
	defer itr.Close()

	want := []tranche.Model{
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("3")},
	}
	for i := 0; itr.Valid(); itr.Next() {
		if i >= len(want) {
			t.Fatalf("iterator returned too many entries")
		}
		if !bytes.Equal(itr.Key(), want[i].Key) || !bytes.Equal(itr.Value(), want[i].Value) {
			t.Fatalf("entry %d: got %q=%q", i, itr.Key(), itr.Value())
		}
		i++
	}
}

func TestCacheWrapIteratorMergesAndShadows(t *testing.T) {
	db := MemStore()
	db.Set([]byte("a"), []byte("1"))
	db.Set([]byte("b"), []byte("2"))
	db.Set([]byte("c"), []byte("3"))

	cache := db.CacheWrap()
	cache.Delete([]byte("b"))
	cache.Set([]byte("c"), []byte("999"))
	cache.Set([]byte("d"), []byte("4"))

	itr := cache.Iterator(nil, nil)
	defer itr.Close()

	want := []tranche.Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("c"), Value: []byte("999")},
		{Key: []byte("d"), Value: []byte("4")},
	}
	var got []tranche.Model
	for ; itr.Valid(); itr.Next() {
		got = append(got, tranche.Pair(itr.Key(), itr.Value()))
	}
	if len(got) != len(want) {
		t.Fatalf("want %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if !bytes.Equal(got[i].Key, want[i].Key) || !bytes.Equal(got[i].Value, want[i].Value) {
			t.Fatalf("entry %d: got %q=%q", i, got[i].Key, got[i].Value)
		}
	}
}

func TestNilKeyPanics(t *testing.T) {
	db := MemStore()
	defer func() {
		if recover() == nil {
			t.Fatal("nil key must panic")
		}
	}()
	db.Set(nil, []byte("boom"))
}
