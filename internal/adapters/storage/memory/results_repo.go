package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawstars-api/internal/domain/results"
)

type resultRepo struct {
	mu   sync.RWMutex
	byID map[string]results.Result
}

// NewResultRepo se pierde al reiniciar; alcanza para dev y para correr sin DB_DSN.
func NewResultRepo() results.Repository {
	return &resultRepo{
		byID: make(map[string]results.Result),
	}
}

func (r *resultRepo) Create(ctx context.Context, res results.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(res.ID) == "" {
		return errors.New("result id required")
	}
	if _, exists := r.byID[res.ID]; exists {
		return errors.New("result already exists")
	}
	r.byID[res.ID] = res
	return nil
}

func (r *resultRepo) GetByID(ctx context.Context, id string) (results.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return results.Result{}, results.ErrNotFound
	}
	return res, nil
}
