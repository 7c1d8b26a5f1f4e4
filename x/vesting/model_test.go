package vesting

import (
	"math"
	"testing"

	"github.com/iov-one/tranche"
	"github.com/iov-one/tranche/tranchetest"
)

func TestVestedCurve(t *testing.T) {
	start := tranche.UnixTime(5000)
	stream := VestingStream{
		Beneficiary:     tranchetest.NewCondition().Address(),
		TotalAmount:     1000,
		StartTime:       start,
		CliffDuration:   1100,
		VestingDuration: 2100,
	}

	cases := map[string]struct {
		now  tranche.UnixTime
		want uint64
	}{
		"before start":           {now: start - 1, want: 0},
		"at start":               {now: start, want: 0},
		"before the cliff":       {now: start + 1099, want: 0},
		"at the cliff":           {now: start + 1100, want: 0},
		"halfway":                {now: start + 1600, want: 500},
		"at the end":             {now: start + 2100, want: 1000},
		"long after the end":     {now: start + 1000000, want: 1000},
		"one second of progress": {now: start + 1101, want: 1},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := stream.Vested(tc.now); got != tc.want {
				t.Fatalf("want %d vested, got %d", tc.want, got)
			}
		})
	}
}

func TestVestedIsMonotonicAndBounded(t *testing.T) {
	stream := VestingStream{
		Beneficiary:     tranchetest.NewCondition().Address(),
		TotalAmount:     333333,
		StartTime:       1000,
		CliffDuration:   70,
		VestingDuration: 777,
	}

	var prev uint64
	for now := tranche.UnixTime(0); now < 2000; now++ {
		got := stream.Vested(now)
		if got < prev {
			t.Fatalf("vested amount dropped from %d to %d at %d", prev, got, now)
		}
		if got > stream.TotalAmount {
			t.Fatalf("vested %d exceeds the total at %d", got, now)
		}
		prev = got
	}
	if prev != stream.TotalAmount {
		t.Fatalf("full amount must be vested at the end, got %d", prev)
	}
}

func TestVestedHugeAmounts(t *testing.T) {
	// a naive uint64 multiplication would overflow here
	stream := VestingStream{
		Beneficiary:     tranchetest.NewCondition().Address(),
		TotalAmount:     math.MaxUint64,
		StartTime:       0,
		CliffDuration:   0,
		VestingDuration: 1000000,
	}

	if got := stream.Vested(500000); got != math.MaxUint64/2 {
		t.Fatalf("want half of the total, got %d", got)
	}
	if got := stream.Vested(1000000); got != math.MaxUint64 {
		t.Fatalf("want the full total, got %d", got)
	}
}

func TestVestedCenturiesLongSchedule(t *testing.T) {
	// a duration this long does not fit in time.Duration nanoseconds
	stream := VestingStream{
		Beneficiary:     tranchetest.NewCondition().Address(),
		TotalAmount:     1000,
		StartTime:       5000,
		CliffDuration:   0,
		VestingDuration: 10000000000,
	}

	if got := stream.Vested(5001); got != 0 {
		t.Fatalf("want nothing one second in, got %d", got)
	}
	if got := stream.Vested(5000 + 5000000000); got != 500 {
		t.Fatalf("want half of the total, got %d", got)
	}
	if got := stream.Vested(5000 + 10000000000); got != 1000 {
		t.Fatalf("want the full total, got %d", got)
	}
}

func TestVestedDegenerateSchedule(t *testing.T) {
	// cliff spanning the whole vesting period means all-or-nothing
	stream := VestingStream{
		Beneficiary:     tranchetest.NewCondition().Address(),
		TotalAmount:     100,
		StartTime:       1000,
		CliffDuration:   500,
		VestingDuration: 500,
	}

	if got := stream.Vested(1499); got != 0 {
		t.Fatalf("want nothing before the end, got %d", got)
	}
	if got := stream.Vested(1500); got != 100 {
		t.Fatalf("want everything at the end, got %d", got)
	}
}

func TestVestingStreamValidate(t *testing.T) {
	beneficiary := tranchetest.NewCondition().Address()

	cases := map[string]struct {
		stream  VestingStream
		wantErr error
	}{
		"valid stream": {
			stream: VestingStream{
				Beneficiary:     beneficiary,
				TotalAmount:     100,
				StartTime:       1000,
				CliffDuration:   10,
				VestingDuration: 100,
			},
		},
		"zero cliff is allowed": {
			stream: VestingStream{
				Beneficiary:     beneficiary,
				TotalAmount:     100,
				StartTime:       1000,
				VestingDuration: 100,
			},
		},
		"zero total": {
			stream: VestingStream{
				Beneficiary:     beneficiary,
				StartTime:       1000,
				VestingDuration: 100,
			},
			wantErr: ErrInvalidSchedule,
		},
		"zero vesting duration": {
			stream: VestingStream{
				Beneficiary: beneficiary,
				TotalAmount: 100,
				StartTime:   1000,
			},
			wantErr: ErrInvalidSchedule,
		},
		"schedule end out of range": {
			stream: VestingStream{
				Beneficiary:     beneficiary,
				TotalAmount:     100,
				StartTime:       1000,
				VestingDuration: math.MaxInt64 - 999,
			},
			wantErr: ErrInvalidSchedule,
		},
		"cliff after the end": {
			stream: VestingStream{
				Beneficiary:     beneficiary,
				TotalAmount:     100,
				StartTime:       1000,
				CliffDuration:   101,
				VestingDuration: 100,
			},
			wantErr: ErrInvalidSchedule,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.stream.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %+v", err)
				}
			} else if !ErrInvalidSchedule.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
