package memory

import (
	"context"
	"sync"
)

// TxRunner is the in-memory stand-in for a database transaction: it only
// serializes callers, since the map-backed repositories mutate atomically
// under their own locks.
type TxRunner struct {
	mu sync.Mutex
}

func NewTxRunner() *TxRunner {
	return &TxRunner{}
}

func (t *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
