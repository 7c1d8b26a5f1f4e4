/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket contains only one type of object, has a primary key and
supports key as well as prefix queries.
*/
package orm

import (
	"github.com/iov-one/tranche"
)

// Validater is any struct that can be validated. Not the same as a
// Validator, which votes on the blocks.
type Validater interface {
	Validate() error
}

// Object is what is stored in the bucket.
// Key is joined with the prefix to set the full key.
// Value is the data stored.
//
// This can be a light wrapper around a protobuf-defined type.
type Object interface {
	Keyed
	Cloneable
	// Validate returns error if the object is not in a valid
	// state to save to the db (eg. field missing, out of range, ...)
	Validater
	Value() tranche.Persistent
}

// Keyed is anything that can identify itself
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into
type Cloneable interface {
	Clone() Object
}

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	tranche.Persistent
	Validater
	Copy() Model
}
