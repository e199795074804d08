package model

import "time"

const TableNamePlayerState = "player_states"

// PlayerState mirrors the player_states table. Container contents are
// stored as JSON slot records; the capacities travel alongside so the
// aggregate can be restored without a second lookup.
type PlayerState struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	PlayerID     string    `gorm:"column:player_id;not null" json:"player_id"`
	Currency     int64     `gorm:"column:currency;not null" json:"currency"`
	CarriedCap   int32     `gorm:"column:carried_cap;not null" json:"carried_cap"`
	StashCap     int32     `gorm:"column:stash_cap;not null" json:"stash_cap"`
	CarriedSlots []byte    `gorm:"column:carried_slots" json:"carried_slots"`
	StashSlots   []byte    `gorm:"column:stash_slots" json:"stash_slots"`
	Version      int64     `gorm:"column:version;not null" json:"version"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (*PlayerState) TableName() string { return TableNamePlayerState }
