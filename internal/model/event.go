package model

import (
	"time"
)

// EventModel is one immutable notification record, appended in the same
// transaction as the state transition it describes. Events are ordered by
// commit order and are informational only; Processed tracks webhook
// dispatch, nothing in the lifecycle engine reads events back.
type EventModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CampaignId int64  `json:"campaign_id" gorm:"not null;index"`
	EventType  string `json:"event_type" gorm:"not null"`
	Data       string `json:"data" gorm:"type:text"`
	Processed  bool   `json:"processed" gorm:"default:false"`
}

// TableName overrides the default table name
func (EventModel) TableName() string {
	return "event"
}

// Event types, one per lifecycle transition.
const (
	EventTypeCampaignCreated   = "campaign_created"
	EventTypeMilestoneAdded    = "milestone_added"
	EventTypeDonation          = "donation"
	EventTypeMilestoneVerified = "milestone_verified"
	EventTypeFundsReleased     = "funds_released"
	EventTypeRefund            = "refund"
)

// Payloads below are serialized into EventModel.Data as JSON.

// CampaignCreatedEvent announces a new campaign and its escrow.
type CampaignCreatedEvent struct {
	CampaignId int64  `json:"campaign_id"`
	Creator    string `json:"creator"`
	Title      string `json:"title"`
	AmountGoal uint64 `json:"amount_goal"`
}

// MilestoneAddedEvent announces a milestone appended by the creator.
type MilestoneAddedEvent struct {
	CampaignId     int64  `json:"campaign_id"`
	MilestoneIndex int    `json:"milestone_index"`
	Title          string `json:"title"`
	Amount         uint64 `json:"amount"`
}

// DonationEvent announces value credited to a campaign's escrow.
type DonationEvent struct {
	CampaignId int64  `json:"campaign_id"`
	Donor      string `json:"donor"`
	Amount     uint64 `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}

// MilestoneVerifiedEvent announces a milestone certified complete.
type MilestoneVerifiedEvent struct {
	CampaignId     int64  `json:"campaign_id"`
	MilestoneIndex int    `json:"milestone_index"`
	Verifier       string `json:"verifier"`
	Timestamp      int64  `json:"timestamp"`
}

// FundsReleasedEvent announces a milestone payout to the creator.
type FundsReleasedEvent struct {
	CampaignId     int64  `json:"campaign_id"`
	MilestoneIndex int    `json:"milestone_index"`
	Amount         uint64 `json:"amount"`
	Recipient      string `json:"recipient"`
	Timestamp      int64  `json:"timestamp"`
}

// RefundEvent announces value returned from escrow to a donor.
type RefundEvent struct {
	CampaignId int64  `json:"campaign_id"`
	Donor      string `json:"donor"`
	Amount     uint64 `json:"amount"`
	Timestamp  int64  `json:"timestamp"`
}
