package model

import (
	"time"
)

// ContributionModel is one successful donation, recorded in the same
// transaction as the escrow credit. It is the per-donor history a refund
// eligibility policy would consult; the engine itself does not read it.
type ContributionModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64     `json:"campaign_id" gorm:"not null;index"`
	Donor      string    `json:"donor" gorm:"not null;index"`
	Amount     uint64    `json:"amount" gorm:"not null"`
	DonatedAt  time.Time `json:"donated_at" gorm:"not null"`
}

// TableName overrides the default table name
func (ContributionModel) TableName() string {
	return "contribution"
}
