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

// CampaignLogic owns campaign creation and the campaign read surfaces.
// Every write runs as one all-or-nothing database transaction.
type CampaignLogic struct {
	db     *gorm.DB
	ledger *ledger.Ledger
	events *EventLogic
	cfg    config.CampaignConfig
}

// NewCampaignLogic creates the campaign logic.
func NewCampaignLogic(db *gorm.DB, ldg *ledger.Ledger, cfg config.CampaignConfig) *CampaignLogic {
	return &CampaignLogic{
		db:     db,
		ledger: ldg,
		events: NewEventLogic(db),
		cfg:    cfg,
	}
}

// CreateCampaign allocates a campaign together with its escrow: the
// escrow address is derived from the fresh campaign id, its ledger
// account is opened empty, and the back-pointers are set both ways. The
// creator's own ledger account is provisioned here too when missing, so
// later releases have somewhere to land.
func (c *CampaignLogic) CreateCampaign(creator, title, description, imageURL string, amountGoal uint64) (*model.CampaignModel, error) {
	if err := c.validateCampaign(title, description, imageURL); err != nil {
		return nil, err
	}

	campaign := model.CampaignModel{
		Creator:       escrow.NormalizeAddress(creator),
		Title:         title,
		Description:   description,
		ImageURL:      imageURL,
		AmountGoal:    amountGoal,
		AmountDonated: 0,
		IsCompleted:   false,
	}

	err := c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&campaign).Error; err != nil {
			return fmt.Errorf("failed to create campaign: %w", err)
		}

		address := escrow.DeriveAddress(campaign.Id)
		campaign.EscrowAccount = address
		if err := tx.Model(&model.CampaignModel{}).
			Where("id = ?", campaign.Id).
			UpdateColumn("escrow_account", address).Error; err != nil {
			return fmt.Errorf("failed to set escrow account: %w", err)
		}

		pair := model.EscrowModel{
			CampaignId: campaign.Id,
			Address:    address,
		}
		if err := tx.Create(&pair).Error; err != nil {
			return fmt.Errorf("failed to create escrow: %w", err)
		}

		if err := c.ledger.Provision(tx, address, 0); err != nil {
			return fmt.Errorf("failed to provision escrow account: %w", err)
		}
		if err := c.ledger.Provision(tx, campaign.Creator, 0); err != nil &&
			!errors.Is(err, model.ErrAccountExists) {
			return fmt.Errorf("failed to provision creator account: %w", err)
		}

		return c.events.Emit(tx, campaign.Id, model.EventTypeCampaignCreated, model.CampaignCreatedEvent{
			CampaignId: campaign.Id,
			Creator:    campaign.Creator,
			Title:      campaign.Title,
			AmountGoal: campaign.AmountGoal,
		})
	})
	if err != nil {
		return nil, err
	}

	return &campaign, nil
}

// GetCampaigns returns a page of campaigns, optionally filtered by
// creator.
func (c *CampaignLogic) GetCampaigns(creator string, page, pageSize int) ([]model.CampaignModel, int64, error) {
	query := c.db.Model(&model.CampaignModel{})
	if creator != "" {
		query = query.Where("creator = ?", escrow.NormalizeAddress(creator))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	var campaigns []model.CampaignModel
	if err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&campaigns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch campaigns: %w", err)
	}

	return campaigns, total, nil
}

// GetCampaign returns one campaign with its milestones in positional
// order, plus the current escrow balance.
func (c *CampaignLogic) GetCampaign(id int64) (*model.CampaignModel, uint64, error) {
	var campaign model.CampaignModel
	err := c.db.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("milestone_index ASC")
	}).First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, model.ErrCampaignNotFound
		}
		return nil, 0, fmt.Errorf("failed to fetch campaign: %w", err)
	}

	balance, err := c.ledger.Balance(c.db, campaign.EscrowAccount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read escrow balance: %w", err)
	}

	return &campaign, balance, nil
}

// GetCampaignStats aggregates progress figures for one campaign.
func (c *CampaignLogic) GetCampaignStats(id int64) (map[string]interface{}, error) {
	campaign, balance, err := c.GetCampaign(id)
	if err != nil {
		return nil, err
	}

	var donorCount int64
	if err := c.db.Model(&model.ContributionModel{}).
		Where("campaign_id = ?", id).
		Distinct("donor").
		Count(&donorCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count donors: %w", err)
	}

	var donationCount int64
	if err := c.db.Model(&model.ContributionModel{}).
		Where("campaign_id = ?", id).
		Count(&donationCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count donations: %w", err)
	}

	completed := 0
	released := 0
	for _, m := range campaign.Milestones {
		if m.Completed {
			completed++
		}
		if m.Released {
			released++
		}
	}

	progress := float64(0)
	if campaign.AmountGoal > 0 {
		progress = float64(campaign.AmountDonated) / float64(campaign.AmountGoal) * 100
	}

	return map[string]interface{}{
		"campaign_id":          campaign.Id,
		"amount_goal":          campaign.AmountGoal,
		"amount_donated":       campaign.AmountDonated,
		"escrow_balance":       balance,
		"progress_percentage":  progress,
		"donor_count":          donorCount,
		"donation_count":       donationCount,
		"milestone_count":      len(campaign.Milestones),
		"milestones_completed": completed,
		"milestones_released":  released,
	}, nil
}

// validateCampaign checks the creator-supplied text against the
// configured storage budgets.
func (c *CampaignLogic) validateCampaign(title, description, imageURL string) error {
	if title == "" {
		return errors.New("campaign title is required")
	}
	if len(title) > c.cfg.MaxTitleLen {
		return fmt.Errorf("campaign title exceeds %d bytes", c.cfg.MaxTitleLen)
	}
	if len(description) > c.cfg.MaxDescriptionLen {
		return fmt.Errorf("campaign description exceeds %d bytes", c.cfg.MaxDescriptionLen)
	}
	if len(imageURL) > c.cfg.MaxImageURLLen {
		return fmt.Errorf("campaign image url exceeds %d bytes", c.cfg.MaxImageURLLen)
	}
	return nil
}
