package tranchetest

import (
	"sync"

	"github.com/iov-one/tranche"
)

// Handler is a mock implementing tranche.Handler interface.
type Handler struct {
	mu sync.Mutex

	checkCall int
	// CheckResult is returned by the Check method.
	CheckResult tranche.CheckResult
	// CheckErr if set is returned by the Check method.
	CheckErr error

	deliverCall int
	// DeliverResult is returned by the Deliver method.
	DeliverResult tranche.DeliverResult
	// DeliverErr if set is returned by the Deliver method.
	DeliverErr error
}

var _ tranche.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.CheckResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx tranche.Context, db tranche.KVStore, tx tranche.Tx) (*tranche.DeliverResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCall
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliverCall
}

// CallCount returns the total number of times Check and Deliver were
// called.
func (h *Handler) CallCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.checkCall + h.deliverCall
}
