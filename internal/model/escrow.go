package model

import (
	"time"
)

// EscrowModel pairs a campaign with its value-holding ledger account.
// Address is derived deterministically from the campaign id; CampaignId is
// a back-pointer used only for identity cross-checks. The balance itself
// lives in the ledger's account table and is moved exclusively through the
// ledger transfer primitive.
type EscrowModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64  `json:"campaign_id" gorm:"not null;uniqueIndex"`
	Address    string `json:"address" gorm:"not null;uniqueIndex"`
}

// TableName overrides the default table name
func (EscrowModel) TableName() string {
	return "escrow"
}
