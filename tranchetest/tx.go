package tranchetest

import (
	"github.com/iov-one/tranche"
)

// Tx is a mock implementing tranche.Tx interface.
type Tx struct {
	// Msg is the message held by this transaction.
	Msg tranche.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ tranche.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (tranche.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg.Marshal()
}

func (tx *Tx) Unmarshal(raw []byte) error {
	if tx.Err != nil {
		return tx.Err
	}
	return tx.Msg.Unmarshal(raw)
}

// Msg is a mock implementing tranche.Msg interface.
type Msg struct {
	// RoutePath is returned by the Path method.
	RoutePath string
	// Serialized is returned by the Marshal method.
	Serialized []byte
	// Err if set is returned by Marshal, Unmarshal and Validate.
	Err error
}

var _ tranche.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	if m.Err == nil {
		m.Serialized = raw
	}
	return m.Err
}

func (m *Msg) Validate() error {
	return m.Err
}
