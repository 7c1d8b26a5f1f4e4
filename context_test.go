package tranche

import (
	"context"
	"testing"
	"time"
)

func TestChainID(t *testing.T) {
	ctx := context.Background()

	ctx = WithChainID(ctx, "my-chain-1")
	if got := GetChainID(ctx); got != "my-chain-1" {
		t.Fatalf("unexpected chain ID: %q", got)
	}
}

func TestChainIDCannotBeSetTwice(t *testing.T) {
	ctx := WithChainID(context.Background(), "my-chain-1")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when overwriting the chain ID")
		}
	}()
	WithChainID(ctx, "my-chain-2")
}

func TestInvalidChainID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on an invalid chain ID")
		}
	}()
	WithChainID(context.Background(), "g@rbage!")
}

func TestUnsetChainIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when chain ID is not set")
		}
	}()
	GetChainID(context.Background())
}

func TestHeight(t *testing.T) {
	ctx := context.Background()

	if _, ok := GetHeight(ctx); ok {
		t.Fatal("height must not be set on an empty context")
	}

	ctx = WithHeight(ctx, 42)
	height, ok := GetHeight(ctx)
	if !ok || height != 42 {
		t.Fatalf("unexpected height: %d (%v)", height, ok)
	}
}

func TestBlockTime(t *testing.T) {
	ctx := context.Background()

	if _, err := BlockTime(ctx); err == nil {
		t.Fatal("block time must not be present on an empty context")
	}

	now := time.Now()
	ctx = WithBlockTime(ctx, now)
	got, err := BlockTime(ctx)
	if err != nil {
		t.Fatalf("cannot get block time: %+v", err)
	}
	if !got.Equal(now) {
		t.Fatalf("want %v, got %v", now, got)
	}
}

func TestLogger(t *testing.T) {
	ctx := context.Background()

	// an empty context falls back to the default logger
	if GetLogger(ctx) == nil {
		t.Fatal("default logger must never be nil")
	}

	ctx = WithLogInfo(ctx, "path", "vesting/claim")
	if GetLogger(ctx) == nil {
		t.Fatal("logger with context must not be nil")
	}
}
