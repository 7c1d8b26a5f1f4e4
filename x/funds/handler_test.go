package funds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/app"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/store"
	"github.com/iov-one/tranche/tranchetest"
)

func TestSendHandler(t *testing.T) {
	alice := tranchetest.NewCondition()
	bob := tranchetest.NewCondition()

	cases := map[string]struct {
		signer      tranche.Condition
		msg         *SendMsg
		wantErr     *errors.Error
		wantAlice   uint64
		wantBob     uint64
	}{
		"authorized transfer": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      30,
			},
			wantAlice: 70,
			wantBob:   30,
		},
		"wrong signer": {
			signer: bob,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      30,
			},
			wantErr:   errors.ErrUnauthorized,
			wantAlice: 100,
		},
		"invalid message": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
			},
			wantErr:   errors.ErrInvalidAmount,
			wantAlice: 100,
		},
		"insufficient funds": {
			signer: alice,
			msg: &SendMsg{
				Source:      alice.Address(),
				Destination: bob.Address(),
				Amount:      101,
			},
			wantErr:   errors.ErrInsufficientAmount,
			wantAlice: 100,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			control := NewController()
			require.NoError(t, control.IssueFunds(db, alice.Address(), 100))

			auth := &tranchetest.Auth{Signer: tc.signer}
			rt := app.NewRouter()
			RegisterRoutes(rt, auth, control)

			ctx := context.Background()
			tx := &tranchetest.Tx{Msg: tc.msg}

			_, err := rt.Check(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "check: %+v", err)
			} else {
				require.NoError(t, err)
			}

			_, err = rt.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "deliver: %+v", err)
			} else {
				require.NoError(t, err)
			}

			balance, err := control.Balance(db, alice.Address())
			require.NoError(t, err)
			assert.Equal(t, tc.wantAlice, balance)
			balance, err = control.Balance(db, bob.Address())
			require.NoError(t, err)
			assert.Equal(t, tc.wantBob, balance)
		})
	}
}

func TestInitializerFromGenesis(t *testing.T) {
	addr := tranchetest.NewCondition().Address()

	opts := tranche.Options{
		"funds": []byte(`[{"address": "` + addr.String() + `", "balance": 8888}]`),
	}
	db := store.MemStore()

	var ini Initializer
	require.NoError(t, ini.FromGenesis(opts, db))

	balance, err := NewController().Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(8888), balance)
}
