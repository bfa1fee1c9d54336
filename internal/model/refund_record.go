package model

import (
	"time"
)

// RefundRecordModel is one successful refund, recorded in the same
// transaction as the escrow debit.
type RefundRecordModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64     `json:"campaign_id" gorm:"not null;index"`
	Donor      string    `json:"donor" gorm:"not null;index"`
	Amount     uint64    `json:"amount" gorm:"not null"`
	RefundedAt time.Time `json:"refunded_at" gorm:"not null"`
}

// TableName overrides the default table name
func (RefundRecordModel) TableName() string {
	return "refund_record"
}
