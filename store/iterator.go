package store

import (
	"github.com/iov-one/tranche"
)

// sliceIterator wraps an already materialized range of key-value pairs. All
// our stores are in-memory, so loading the range upfront is both correct
// under the no-writes-during-iteration contract and much simpler than
// cursor bookkeeping.
type sliceIterator struct {
	data []tranche.Model
	idx  int
}

var _ tranche.Iterator = (*sliceIterator)(nil)

func newSliceIterator(data []tranche.Model) *sliceIterator {
	return &sliceIterator{
		data: data,
	}
}

func (s *sliceIterator) Valid() bool {
	return s.idx < len(s.data)
}

func (s *sliceIterator) Next() {
	if !s.Valid() {
		panic("Advanced past the end!")
	}
	s.idx++
}

func (s *sliceIterator) Key() []byte {
	if !s.Valid() {
		panic("Advanced past the end!")
	}
	return s.data[s.idx].Key
}

func (s *sliceIterator) Value() []byte {
	if !s.Valid() {
		panic("Advanced past the end!")
	}
	return s.data[s.idx].Value
}

func (s *sliceIterator) Close() {
	s.data = nil
	s.idx = 0
}
