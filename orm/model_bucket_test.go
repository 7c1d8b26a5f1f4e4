package orm

import (
	"encoding/binary"
	"testing"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/store"
)

// counter is a minimal Model implementation for testing buckets.
type counter struct {
	Count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.Count))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInvalidInput, "invalid length: %d", len(raw))
	}
	c.Count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.Count < 0 {
		return errors.Wrap(errors.ErrInvalidState, "negative count")
	}
	return nil
}

func (c *counter) Copy() Model {
	return &counter{Count: c.Count}
}

func TestModelBucketPutOneDelete(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("c1"), &counter{Count: 42}); err != nil {
		t.Fatalf("cannot put: %+v", err)
	}
	if !b.Has(db, []byte("c1")) {
		t.Fatal("stored entity must be reported by Has")
	}

	var c counter
	if err := b.One(db, []byte("c1"), &c); err != nil {
		t.Fatalf("cannot get: %+v", err)
	}
	if c.Count != 42 {
		t.Fatalf("want 42, got %d", c.Count)
	}

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete: %+v", err)
	}
	if b.Has(db, []byte("c1")) {
		t.Fatal("deleted entity must be gone")
	}
	if err := b.One(db, []byte("c1"), &c); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketDeleteMissing(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Delete(db, []byte("nope")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found, got %+v", err)
	}
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("c1"), &counter{Count: -1}); !errors.ErrInvalidState.Is(err) {
		t.Fatalf("want invalid state, got %+v", err)
	}
	if b.Has(db, []byte("c1")) {
		t.Fatal("invalid model must not be persisted")
	}
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("one"), &counter{Count: 1}); err != nil {
		t.Fatalf("cannot put: %+v", err)
	}
	if err := b.Put(db, []byte("two"), &counter{Count: 2}); err != nil {
		t.Fatalf("cannot put: %+v", err)
	}

	qr := tranche.NewQueryRouter()
	b.Register("counters", qr)

	h := qr.Handler("/counters")
	if h == nil {
		t.Fatal("bucket must register a query handler")
	}

	// query by exact key
	models, err := h.Query(db, tranche.KeyQueryMod, []byte("one"))
	if err != nil {
		t.Fatalf("key query failed: %+v", err)
	}
	if len(models) != 1 {
		t.Fatalf("want 1 result, got %d", len(models))
	}

	// prefix query returns both, in key order
	models, err = h.Query(db, tranche.PrefixQueryMod, nil)
	if err != nil {
		t.Fatalf("prefix query failed: %+v", err)
	}
	if len(models) != 2 {
		t.Fatalf("want 2 results, got %d", len(models))
	}

	// miss returns nothing
	models, err = h.Query(db, tranche.KeyQueryMod, []byte("gone"))
	if err != nil {
		t.Fatalf("miss query failed: %+v", err)
	}
	if len(models) != 0 {
		t.Fatalf("want no results, got %d", len(models))
	}
}
