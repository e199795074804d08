package memory

import (
	"context"

	"gravehold/internal/app/ports"
)

type ExecutionRepo struct {
	store *Store
}

func NewExecutionRepo(store *Store) ExecutionRepo {
	return ExecutionRepo{store: store}
}

func (r ExecutionRepo) GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ports.ExecutionRecord, error) {
	var out *ports.ExecutionRecord
	var err error
	r.store.read(ctx, func() {
		exec, ok := r.store.execution[execKey(playerID, key)]
		if !ok {
			err = ports.ErrNotFound
			return
		}
		copied := exec
		out = &copied
	})
	return out, err
}

func (r ExecutionRepo) SaveExecution(ctx context.Context, execution ports.ExecutionRecord) error {
	r.store.write(ctx, func() {
		r.store.execution[execKey(execution.PlayerID, execution.IdempotencyKey)] = execution
	})
	return nil
}
