package model

import "time"

const TableNameExecution = "executions"

type Execution struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	PlayerID       string    `gorm:"column:player_id;not null" json:"player_id"`
	IdempotencyKey string    `gorm:"column:idempotency_key;not null" json:"idempotency_key"`
	Operation      string    `gorm:"column:operation;not null" json:"operation"`
	Reason         string    `gorm:"column:reason;not null" json:"reason"`
	Events         []byte    `gorm:"column:events" json:"events"`
	AppliedAt      time.Time `gorm:"column:applied_at;not null" json:"applied_at"`
}

func (*Execution) TableName() string { return TableNameExecution }
