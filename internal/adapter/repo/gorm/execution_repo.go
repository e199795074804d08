package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gravehold/internal/adapter/repo/gorm/model"
	"gravehold/internal/app/ports"
	"gravehold/internal/domain/economy"

	"gorm.io/gorm"
)

type ExecutionRepo struct {
	db *gorm.DB
}

func NewExecutionRepo(db *gorm.DB) ExecutionRepo {
	return ExecutionRepo{db: db}
}

func (r ExecutionRepo) GetByIdempotencyKey(ctx context.Context, playerID, key string) (*ports.ExecutionRecord, error) {
	var m model.Execution
	err := getDBFromCtx(ctx, r.db).
		Where(&model.Execution{PlayerID: playerID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}

	var events []economy.DomainEvent
	if len(m.Events) > 0 {
		_ = json.Unmarshal(m.Events, &events)
	}
	return &ports.ExecutionRecord{
		ID:             m.ID,
		PlayerID:       m.PlayerID,
		IdempotencyKey: m.IdempotencyKey,
		Operation:      m.Operation,
		Result:         ports.ExecutionResult{Reason: m.Reason, Events: events},
		AppliedAt:      m.AppliedAt,
	}, nil
}

func (r ExecutionRepo) SaveExecution(ctx context.Context, execution ports.ExecutionRecord) error {
	eventsJSON, _ := json.Marshal(execution.Result.Events)
	m := model.Execution{
		ID:             execution.ID,
		PlayerID:       execution.PlayerID,
		IdempotencyKey: execution.IdempotencyKey,
		Operation:      execution.Operation,
		Reason:         execution.Result.Reason,
		Events:         eventsJSON,
		AppliedAt:      execution.AppliedAt,
	}
	if err := getDBFromCtx(ctx, r.db).Create(&m).Error; err != nil {
		return err
	}
	return nil
}
