package model

import (
	"time"
)

// CampaignModel is one fundraising campaign. Creator, title, description,
// image and goal are fixed at creation; only AmountDonated moves, through
// donations and refunds. EscrowAccount references the paired escrow's
// ledger address and never changes after creation.
type CampaignModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Creator     string `json:"creator" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`

	AmountGoal    uint64 `json:"amount_goal" gorm:"not null"`
	AmountDonated uint64 `json:"amount_donated" gorm:"not null;default:0"`

	// IsCompleted is carried for compatibility with the on-chain layout.
	// No operation ever sets it.
	IsCompleted bool `json:"is_completed" gorm:"default:false"`

	EscrowAccount string `json:"escrow_account" gorm:"not null"`

	Milestones []MilestoneModel `json:"milestones,omitempty" gorm:"foreignKey:CampaignId"`
}

// TableName overrides the default table name
func (CampaignModel) TableName() string {
	return "campaign"
}
