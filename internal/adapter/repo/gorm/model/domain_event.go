package model

import "time"

const TableNameDomainEvent = "domain_events"

type DomainEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	PlayerID   string    `gorm:"column:player_id;not null" json:"player_id"`
	Type       string    `gorm:"column:type;not null" json:"type"`
	OccurredAt time.Time `gorm:"column:occurred_at;not null" json:"occurred_at"`
	Payload    []byte    `gorm:"column:payload" json:"payload"`
}

func (*DomainEvent) TableName() string { return TableNameDomainEvent }
