package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/store"
)

type StoreRepository struct {
	mu     sync.RWMutex
	stores map[string]store.Store
}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{
		stores: make(map[string]store.Store),
	}
}

func (r *StoreRepository) List(ctx context.Context) ([]store.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]store.Store, 0, len(r.stores))
	for _, st := range r.stores {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *StoreRepository) GetByCode(ctx context.Context, code string) (store.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.stores[code]
	if !ok {
		return store.Store{}, store.ErrStoreNotFound
	}
	return st, nil
}

func (r *StoreRepository) Create(ctx context.Context, st store.Store) (store.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[st.Code]; exists {
		return store.Store{}, store.ErrStoreCodeExists
	}
	now := time.Now()
	st.CreatedAt = now
	st.UpdatedAt = now
	r.stores[st.Code] = st
	return st, nil
}

func (r *StoreRepository) Update(ctx context.Context, st store.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.stores[st.Code]
	if !ok {
		return store.ErrStoreNotFound
	}
	st.CreatedAt = existing.CreatedAt
	st.UpdatedAt = time.Now()
	r.stores[st.Code] = st
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[code]; !ok {
		return store.ErrStoreNotFound
	}
	delete(r.stores, code)
	return nil
}
