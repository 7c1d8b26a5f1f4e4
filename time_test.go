package tranche

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestUnixTimeUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  bool
		wantTime UnixTime
	}{
		"number": {
			json:     `1234567`,
			wantTime: 1234567,
		},
		"zero": {
			json:     `0`,
			wantTime: 0,
		},
		"negative number": {
			json:    `-4`,
			wantErr: true,
		},
		"RFC 3339": {
			json:     `"2019-04-01T10:00:00Z"`,
			wantTime: 1554112800,
		},
		"garbage": {
			json:    `"not a time"`,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.json), &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot unmarshal: %+v", err)
			}
			if got != tc.wantTime {
				t.Fatalf("want %d, got %d", tc.wantTime, got)
			}
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := UnixTime(1000)

	if got := now.Add(5 * time.Minute); got != 1300 {
		t.Fatalf("want 1300, got %d", got)
	}
	if got := now.Add(-time.Second); got != 999 {
		t.Fatalf("want 999, got %d", got)
	}
	// sub-second precision is dropped
	if got := now.Add(600 * time.Millisecond); got != 1000 {
		t.Fatalf("want 1000, got %d", got)
	}
}

func TestUnixDurationUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json    string
		wantErr bool
		wantDur UnixDuration
	}{
		"number of seconds": {
			json:    `321`,
			wantDur: 321,
		},
		"human readable": {
			json:    `"5m"`,
			wantDur: 300,
		},
		"human readable mixed": {
			json:    `"1h30s"`,
			wantDur: 3630,
		},
		"garbage string": {
			json:    `"five minutes"`,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixDuration
			err := json.Unmarshal([]byte(tc.json), &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("cannot unmarshal: %+v", err)
			}
			if got != tc.wantDur {
				t.Fatalf("want %d, got %d", tc.wantDur, got)
			}
		})
	}
}

func TestInTheFuture(t *testing.T) {
	now := time.Unix(1000, 0)
	ctx := WithBlockTime(context.Background(), now)

	if !InTheFuture(ctx, now.Add(time.Second)) {
		t.Fatal("one second ahead must be in the future")
	}
	if InTheFuture(ctx, now) {
		t.Fatal("the block time itself is not in the future")
	}
	if InTheFuture(ctx, now.Add(-time.Second)) {
		t.Fatal("the past is not in the future")
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	ctx := WithBlockTime(context.Background(), now)

	if !IsExpired(ctx, AsUnixTime(now.Add(-time.Minute))) {
		t.Fatal("a moment in the past must be expired")
	}
	// expiration is inclusive of the current block time
	if !IsExpired(ctx, AsUnixTime(now)) {
		t.Fatal("the current block time must be expired")
	}
	if IsExpired(ctx, AsUnixTime(now.Add(time.Minute))) {
		t.Fatal("a moment in the future must not be expired")
	}
}

func TestIsExpiredRequiresBlockTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when block time is not in the context")
		}
	}()
	IsExpired(context.Background(), 12345)
}
