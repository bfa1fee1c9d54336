package logic

import (
	"fmt"

	"github.com/DishankChauhan/ChainImpact/internal/escrow"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/model"
	"gorm.io/gorm"
)

// DonationLogic moves value between donors and campaign escrows: deposits
// in, refunds out. Each call is one all-or-nothing transaction; the
// balance transfer, the amount_donated bookkeeping, the history record
// and the event commit together or not at all.
type DonationLogic struct {
	db     *gorm.DB
	ledger *ledger.Ledger
	events *EventLogic
}

// NewDonationLogic creates the donation logic.
func NewDonationLogic(db *gorm.DB, ldg *ledger.Ledger) *DonationLogic {
	return &DonationLogic{
		db:     db,
		ledger: ldg,
		events: NewEventLogic(db),
	}
}

// Donate transfers amount from the donor's account into the campaign's
// escrow and raises amount_donated by the same amount with checked
// addition. A zero amount is accepted. Over-funding past the goal is
// allowed.
func (d *DonationLogic) Donate(campaignId int64, donor string, amount uint64) error {
	donor = escrow.NormalizeAddress(donor)

	return d.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, campaignId)
		if err != nil {
			return err
		}

		pair, err := loadEscrow(tx, campaign)
		if err != nil {
			return err
		}

		if err := d.ledger.Transfer(tx, donor, pair.Address, amount); err != nil {
			return err
		}

		if _, err := ledger.CheckedAdd(campaign.AmountDonated, amount); err != nil {
			// Rolls back the transfer above as well.
			return err
		}
		// Increment in the database so overlapping donations never
		// clobber each other's bookkeeping.
		if err := tx.Model(&model.CampaignModel{}).
			Where("id = ?", campaign.Id).
			UpdateColumn("amount_donated", gorm.Expr("amount_donated + ?", amount)).Error; err != nil {
			return fmt.Errorf("failed to update amount donated: %w", err)
		}

		now := d.ledger.NowTime()
		record := model.ContributionModel{
			CampaignId: campaignId,
			Donor:      donor,
			Amount:     amount,
			DonatedAt:  now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record contribution: %w", err)
		}

		return d.events.Emit(tx, campaignId, model.EventTypeDonation, model.DonationEvent{
			CampaignId: campaignId,
			Donor:      donor,
			Amount:     amount,
			Timestamp:  now.Unix(),
		})
	})
}

// Refund transfers amount from the campaign's escrow back to the donor
// and lowers amount_donated with checked subtraction. The escrow balance
// is the first gate; a refund larger than the donations recorded so far
// fails on the subtraction. No linkage to the donor's own contribution
// history is enforced here.
func (d *DonationLogic) Refund(campaignId int64, donor string, amount uint64) error {
	donor = escrow.NormalizeAddress(donor)

	return d.db.Transaction(func(tx *gorm.DB) error {
		campaign, err := loadCampaign(tx, campaignId)
		if err != nil {
			return err
		}

		pair, err := loadEscrow(tx, campaign)
		if err != nil {
			return err
		}

		if err := d.ledger.Transfer(tx, pair.Address, donor, amount); err != nil {
			return err
		}

		if _, err := ledger.CheckedSub(campaign.AmountDonated, amount); err != nil {
			return err
		}
		// Guarded decrement: the predicate re-checks amount_donated at
		// write time so an overlapping refund cannot drive it below zero.
		decrement := tx.Model(&model.CampaignModel{}).
			Where("id = ? AND amount_donated >= ?", campaign.Id, amount).
			UpdateColumn("amount_donated", gorm.Expr("amount_donated - ?", amount))
		if decrement.Error != nil {
			return fmt.Errorf("failed to update amount donated: %w", decrement.Error)
		}
		if decrement.RowsAffected == 0 {
			return model.ErrAmountOverflow
		}

		now := d.ledger.NowTime()
		record := model.RefundRecordModel{
			CampaignId: campaignId,
			Donor:      donor,
			Amount:     amount,
			RefundedAt: now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record refund: %w", err)
		}

		return d.events.Emit(tx, campaignId, model.EventTypeRefund, model.RefundEvent{
			CampaignId: campaignId,
			Donor:      donor,
			Amount:     amount,
			Timestamp:  now.Unix(),
		})
	})
}

// GetContributions returns a page of a campaign's donation history,
// newest first.
func (d *DonationLogic) GetContributions(campaignId int64, page, pageSize int) ([]model.ContributionModel, int64, error) {
	var total int64
	if err := d.db.Model(&model.ContributionModel{}).
		Where("campaign_id = ?", campaignId).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contributions: %w", err)
	}

	var contributions []model.ContributionModel
	if err := d.db.Where("campaign_id = ?", campaignId).
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&contributions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch contributions: %w", err)
	}

	return contributions, total, nil
}
