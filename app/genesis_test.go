package app

import (
	"testing"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/store"
	"github.com/iov-one/tranche/tranchetest"
	"github.com/iov-one/tranche/x/funds"
	"github.com/iov-one/tranche/x/vesting"
)

func TestChainInitializers(t *testing.T) {
	admin := tranchetest.NewCondition().Address()

	opts := tranche.Options{
		"funds":   []byte(`[{"address": "` + admin.String() + `", "balance": 1000000}]`),
		"vesting": []byte(`{"admin": "` + admin.String() + `"}`),
	}
	db := store.MemStore()

	ini := ChainInitializers(
		&funds.Initializer{},
		&vesting.Initializer{},
	)
	if err := ini.FromGenesis(opts, db); err != nil {
		t.Fatalf("cannot initialize: %+v", err)
	}

	balance, err := funds.NewController().Balance(db, admin)
	if err != nil {
		t.Fatalf("cannot get balance: %+v", err)
	}
	if balance != 1000000 {
		t.Fatalf("want a funded admin, got %d", balance)
	}

	control := vesting.NewController(funds.NewController())
	pool, err := control.Pool(db)
	if err != nil {
		t.Fatalf("cannot get pool: %+v", err)
	}
	if !pool.Admin.Equals(admin) {
		t.Fatalf("unexpected pool admin: %q", pool.Admin)
	}
}
