package logic

import (
	"errors"
	"fmt"

	"github.com/DishankChauhan/ChainImpact/internal/config"
	"github.com/DishankChauhan/ChainImpact/internal/escrow"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/model"
	"gorm.io/gorm"
)

// MilestoneLogic owns the milestone sequence of a campaign: appending by
// the creator, verification by any caller, and milestone-gated release of
// escrowed funds to the creator.
type MilestoneLogic struct {
	db     *gorm.DB
	ledger *ledger.Ledger
	events *EventLogic
	cfg    config.CampaignConfig
}

// NewMilestoneLogic creates the milestone logic.
func NewMilestoneLogic(db *gorm.DB, ldg *ledger.Ledger, cfg config.CampaignConfig) *MilestoneLogic {
	return &MilestoneLogic{
		db:     db,
		ledger: ldg,
		events: NewEventLogic(db),
		cfg:    cfg,
	}
}

// AddMilestone appends a milestone to the campaign. Only the campaign
// creator may append; the position is the current sequence length and
// never changes afterwards.
func (m *MilestoneLogic) AddMilestone(campaignId int64, caller, title, description string, amount uint64) (*model.MilestoneModel, error) {
	if err := m.validateMilestone(title, description); err != nil {
		return nil, err
	}

	var milestone model.MilestoneModel
	err := m.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, campaignId)
		if err != nil {
			return err
		}

		if escrow.NormalizeAddress(caller) != campaign.Creator {
			return model.ErrUnauthorized
		}

		var count int64
		if err := tx.Model(&model.MilestoneModel{}).
			Where("campaign_id = ?", campaignId).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count milestones: %w", err)
		}
		if int(count) >= m.cfg.MaxMilestones {
			return model.ErrMilestoneLimitReached
		}

		milestone = model.MilestoneModel{
			CampaignId:        campaignId,
			Index:             int(count),
			Title:             title,
			Description:       description,
			Amount:            amount,
			Completed:         false,
			VerificationProof: "",
		}
		if err := tx.Create(&milestone).Error; err != nil {
			return fmt.Errorf("failed to create milestone: %w", err)
		}

		return m.events.Emit(tx, campaignId, model.EventTypeMilestoneAdded, model.MilestoneAddedEvent{
			CampaignId:     campaignId,
			MilestoneIndex: milestone.Index,
			Title:          milestone.Title,
			Amount:         milestone.Amount,
		})
	})
	if err != nil {
		return nil, err
	}

	return &milestone, nil
}

// VerifyMilestone certifies a milestone complete and records the proof.
// Re-verification is not an error: the proof is overwritten and the
// completed flag stays true. No caller restriction is enforced here; the
// verifier role is gated outside this service.
func (m *MilestoneLogic) VerifyMilestone(campaignId int64, index int, verifier, proof string) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadCampaign(tx, campaignId); err != nil {
			return err
		}

		milestone, err := m.loadMilestone(tx, campaignId, index)
		if err != nil {
			return err
		}

		verifier = escrow.NormalizeAddress(verifier)
		updates := map[string]interface{}{
			"verification_proof": proof,
			"completed":          true,
			"verifier":           verifier,
		}
		if err := tx.Model(milestone).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update milestone: %w", err)
		}

		return m.events.Emit(tx, campaignId, model.EventTypeMilestoneVerified, model.MilestoneVerifiedEvent{
			CampaignId:     campaignId,
			MilestoneIndex: index,
			Verifier:       verifier,
			Timestamp:      m.ledger.Now(),
		})
	})
}

// ReleaseFunds pays a verified milestone's amount out of escrow to the
// campaign creator. Preconditions run in order: the index must exist, the
// milestone must be completed and not yet released, and the escrow must
// cover the amount. The released marker is set with a guarded update
// before any value moves; a concurrent release loses that race and pays
// nothing. Marker, debit and credit commit as one step.
func (m *MilestoneLogic) ReleaseFunds(campaignId int64, index int) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, campaignId)
		if err != nil {
			return err
		}

		milestone, err := m.loadMilestone(tx, campaignId, index)
		if err != nil {
			return err
		}

		if !milestone.Completed {
			return model.ErrMilestoneNotCompleted
		}
		if milestone.Released {
			return model.ErrMilestoneAlreadyReleased
		}

		pair, err := loadEscrow(tx, campaign)
		if err != nil {
			return err
		}

		// Guarded marker: the released predicate re-checks at write time
		// so an overlapping release cannot slip between read and update.
		now := m.ledger.NowTime()
		marked := tx.Model(&model.MilestoneModel{}).
			Where("id = ? AND released = ?", milestone.Id, false).
			Updates(map[string]interface{}{
				"released":    true,
				"released_at": &now,
			})
		if marked.Error != nil {
			return fmt.Errorf("failed to mark milestone released: %w", marked.Error)
		}
		if marked.RowsAffected == 0 {
			return model.ErrMilestoneAlreadyReleased
		}

		if err := m.ledger.Transfer(tx, pair.Address, campaign.Creator, milestone.Amount); err != nil {
			return err
		}

		return m.events.Emit(tx, campaignId, model.EventTypeFundsReleased, model.FundsReleasedEvent{
			CampaignId:     campaignId,
			MilestoneIndex: index,
			Amount:         milestone.Amount,
			Recipient:      campaign.Creator,
			Timestamp:      now.Unix(),
		})
	})
}

// loadMilestone fetches one milestone by campaign and position.
func (m *MilestoneLogic) loadMilestone(tx *gorm.DB, campaignId int64, index int) (*model.MilestoneModel, error) {
	if index < 0 {
		return nil, model.ErrInvalidMilestoneIndex
	}

	var milestone model.MilestoneModel
	err := tx.Where("campaign_id = ? AND milestone_index = ?", campaignId, index).
		First(&milestone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrInvalidMilestoneIndex
		}
		return nil, fmt.Errorf("failed to fetch milestone: %w", err)
	}
	return &milestone, nil
}

// validateMilestone checks milestone text against the storage budgets.
// The amount is deliberately unbounded: milestone amounts are never
// reconciled against the goal or the funds donated, release is gated by
// escrow balance alone.
func (m *MilestoneLogic) validateMilestone(title, description string) error {
	if title == "" {
		return errors.New("milestone title is required")
	}
	if len(title) > m.cfg.MaxTitleLen {
		return fmt.Errorf("milestone title exceeds %d bytes", m.cfg.MaxTitleLen)
	}
	if len(description) > m.cfg.MaxDescriptionLen {
		return fmt.Errorf("milestone description exceeds %d bytes", m.cfg.MaxDescriptionLen)
	}
	return nil
}

// loadCampaign fetches a campaign inside the given transaction.
func loadCampaign(tx *gorm.DB, id int64) (*model.CampaignModel, error) {
	var campaign model.CampaignModel
	if err := tx.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to fetch campaign: %w", err)
	}
	return &campaign, nil
}

// loadEscrow fetches the campaign's escrow row and cross-checks the
// pairing in both directions before any value moves through it.
func loadEscrow(tx *gorm.DB, campaign *model.CampaignModel) (*model.EscrowModel, error) {
	var pair model.EscrowModel
	if err := tx.Where("campaign_id = ?", campaign.Id).First(&pair).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("escrow for campaign %d not found", campaign.Id)
		}
		return nil, fmt.Errorf("failed to fetch escrow: %w", err)
	}
	if pair.Address != campaign.EscrowAccount {
		return nil, fmt.Errorf("escrow mismatch for campaign %d: %s != %s",
			campaign.Id, pair.Address, campaign.EscrowAccount)
	}
	return &pair, nil
}
