package tranchetest

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	"github.com/iov-one/tranche"
)

// NewCondition returns a newly generated signature condition backed by
// a random ed25519 public key. Each call returns a different condition.
func NewCondition() tranche.Condition {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return tranche.NewCondition("sigs", "ed25519", pub)
}
