package model

import (
	"time"
)

// MilestoneModel is one element of a campaign's milestone sequence.
// Milestones are append-only and identified by their 0-based position,
// stable once assigned. Title, description and amount are fixed at append
// time. Completed only ever transitions false -> true; VerificationProof
// is overwritten on every verification. Released guards against paying
// the same milestone out twice.
type MilestoneModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64 `json:"campaign_id" gorm:"not null;uniqueIndex:idx_campaign_milestone"`
	Index      int   `json:"index" gorm:"column:milestone_index;not null;uniqueIndex:idx_campaign_milestone"`

	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Amount      uint64 `json:"amount" gorm:"not null"`

	Completed         bool   `json:"completed" gorm:"default:false"`
	VerificationProof string `json:"verification_proof" gorm:"type:text"`
	Verifier          string `json:"verifier"`

	Released   bool       `json:"released" gorm:"default:false"`
	ReleasedAt *time.Time `json:"released_at"`
}

// TableName overrides the default table name
func (MilestoneModel) TableName() string {
	return "milestone"
}
