package vesting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/errors"
	"github.com/iov-one/tranche/store"
	"github.com/iov-one/tranche/tranchetest"
	"github.com/iov-one/tranche/x/funds"
)

func TestInitPool(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()

	_, err := control.Pool(db)
	assert.True(t, ErrNoPool.Is(err))

	require.NoError(t, control.InitPool(db, admin, 0))

	pool, err := control.Pool(db)
	require.NoError(t, err)
	assert.Equal(t, admin, pool.Admin)
	// zero delay falls back to the default
	assert.Equal(t, tranche.UnixDuration(100), pool.ActivationDelay)

	err = control.InitPool(db, admin, 5)
	assert.True(t, ErrPoolExists.Is(err))
}

func TestCreateStream(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()
	beneficiary := tranchetest.NewCondition().Address()

	require.NoError(t, bank.IssueFunds(db, admin, 1000))

	msg := &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     600,
		CliffDuration:   100,
		VestingDuration: 1000,
	}

	// no pool yet
	_, err := control.CreateStream(db, 5000, msg)
	assert.True(t, ErrNoPool.Is(err))

	require.NoError(t, control.InitPool(db, admin, 100))

	stream, err := control.CreateStream(db, 5000, msg)
	require.NoError(t, err)
	// the activation delay pushes the start time forward
	assert.Equal(t, tranche.UnixTime(5100), stream.StartTime)
	assert.Equal(t, uint64(0), stream.ClaimedAmount)

	// tokens are moved into custody
	balance, err := bank.Balance(db, admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), balance)
	balance, err = bank.Balance(db, PoolAddress())
	require.NoError(t, err)
	assert.Equal(t, uint64(600), balance)

	// one stream per beneficiary
	_, err = control.CreateStream(db, 5000, msg)
	assert.True(t, ErrStreamExists.Is(err))
}

func TestClaimOnCenturiesLongSchedule(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()
	beneficiary := tranchetest.NewCondition().Address()

	require.NoError(t, bank.IssueFunds(db, admin, 1000))
	require.NoError(t, control.InitPool(db, admin, 100))

	msg := &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     1000,
		CliffDuration:   0,
		VestingDuration: 10000000000,
	}
	stream, err := control.CreateStream(db, 5000, msg)
	require.NoError(t, err)

	// nothing is released right after the start
	_, err = control.Claim(db, stream.StartTime+1, beneficiary)
	assert.True(t, ErrNothingToClaim.Is(err))

	released, err := control.Claim(db, stream.StartTime+5000000000, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), released)
}

func TestCreateStreamFailuresLeaveNoTrace(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()
	beneficiary := tranchetest.NewCondition().Address()

	require.NoError(t, bank.IssueFunds(db, admin, 100))
	require.NoError(t, control.InitPool(db, admin, 100))

	// an invalid schedule must not move tokens or store a stream
	_, err := control.CreateStream(db, 5000, &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     50,
		CliffDuration:   200,
		VestingDuration: 100,
	})
	assert.True(t, ErrInvalidSchedule.Is(err))

	// an underfunded admin must not store a stream
	_, err = control.CreateStream(db, 5000, &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     101,
		VestingDuration: 100,
	})
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	balance, err := bank.Balance(db, admin)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)
	balance, err = bank.Balance(db, PoolAddress())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
	_, err = control.VestedBalance(db, 10000, beneficiary)
	assert.True(t, ErrNoStream.Is(err))
}

func TestClaimLifecycle(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()
	beneficiary := tranchetest.NewCondition().Address()

	require.NoError(t, bank.IssueFunds(db, admin, 300000000))
	require.NoError(t, control.InitPool(db, admin, 100))

	_, err := control.CreateStream(db, 900, &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     300000000,
		CliffDuration:   100,
		VestingDuration: 1100,
	})
	require.NoError(t, err)
	// stream starts at 1000, cliff at 1100, end at 2100

	// unknown beneficiary
	_, err = control.Claim(db, 1600, admin)
	assert.True(t, ErrNoStream.Is(err))

	// before the cliff there is nothing to claim
	_, err = control.Claim(db, 1099, beneficiary)
	assert.True(t, ErrNothingToClaim.Is(err))

	// exactly at the cliff the vested amount is still zero
	_, err = control.Claim(db, 1100, beneficiary)
	assert.True(t, ErrNothingToClaim.Is(err))

	// halfway through the linear segment
	released, err := control.Claim(db, 1600, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), released)

	balance, err := bank.Balance(db, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), balance)

	// claiming again at the same moment releases nothing
	_, err = control.Claim(db, 1600, beneficiary)
	assert.True(t, ErrNothingToClaim.Is(err))
	balance, err = bank.Balance(db, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), balance)

	// the final claim drains and removes the stream
	released, err = control.Claim(db, 2100, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(150000000), released)

	balance, err = bank.Balance(db, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(300000000), balance)
	balance, err = bank.Balance(db, PoolAddress())
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	_, err = control.Claim(db, 2200, beneficiary)
	assert.True(t, ErrNoStream.Is(err))
}

func TestClaimWithDrainedCustody(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()
	beneficiary := tranchetest.NewCondition().Address()

	require.NoError(t, bank.IssueFunds(db, admin, 1000))
	require.NoError(t, control.InitPool(db, admin, 100))
	_, err := control.CreateStream(db, 900, &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     1000,
		VestingDuration: 1000,
	})
	require.NoError(t, err)

	// sabotage the custody wallet
	require.NoError(t, bank.BurnFunds(db, PoolAddress(), 600))

	_, err = control.Claim(db, 2000, beneficiary)
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	// the failed claim must not modify the stream or any wallet
	var stream VestingStream
	require.NoError(t, control.streams.One(db, beneficiary, &stream))
	assert.Equal(t, uint64(0), stream.ClaimedAmount)
	balance, err := bank.Balance(db, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestVestedBalance(t *testing.T) {
	db := store.MemStore()
	bank := funds.NewController()
	control := NewController(bank)
	admin := tranchetest.NewCondition().Address()
	beneficiary := tranchetest.NewCondition().Address()

	require.NoError(t, bank.IssueFunds(db, admin, 1000))
	require.NoError(t, control.InitPool(db, admin, 100))
	_, err := control.CreateStream(db, 900, &CreateStreamMsg{
		Beneficiary:     beneficiary,
		TotalAmount:     1000,
		CliffDuration:   100,
		VestingDuration: 1100,
	})
	require.NoError(t, err)

	vested, err := control.VestedBalance(db, 1100, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), vested)

	vested, err = control.VestedBalance(db, 1600, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), vested)

	// claimed tokens no longer count as vested balance
	_, err = control.Claim(db, 1600, beneficiary)
	require.NoError(t, err)
	vested, err = control.VestedBalance(db, 1600, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), vested)

	// they vest again as time goes on
	vested, err = control.VestedBalance(db, 1850, beneficiary)
	require.NoError(t, err)
	assert.Equal(t, uint64(250), vested)

	_, err = control.VestedBalance(db, 1600, admin)
	assert.True(t, ErrNoStream.Is(err))
}
