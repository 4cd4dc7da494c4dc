package results

import (
	"context"
	"errors"
)

// ErrNotFound lo devuelven todas las implementaciones de Repository.
var ErrNotFound = errors.New("result not found")

type Repository interface {
	Create(ctx context.Context, r Result) error
	GetByID(ctx context.Context, id string) (Result, error)
}
