package model

import (
	"time"
)

// AccountModel is a named value-bearing ledger account. Balances move only
// through the ledger transfer primitive, never by direct writes.
type AccountModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address string `json:"address" gorm:"not null;uniqueIndex"`
	Balance uint64 `json:"balance" gorm:"not null;default:0"`
}

// TableName overrides the default table name
func (AccountModel) TableName() string {
	return "account"
}
