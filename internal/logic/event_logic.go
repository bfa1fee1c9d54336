package logic

import (
	"encoding/json"
	"fmt"

	"github.com/DishankChauhan/ChainImpact/internal/model"
	"gorm.io/gorm"
)

// EventLogic appends and reads lifecycle notification records. Emission
// always happens on the caller's transaction handle so the event commits
// or aborts together with the state transition it describes.
type EventLogic struct {
	db *gorm.DB
}

// NewEventLogic creates the event logic.
func NewEventLogic(db *gorm.DB) *EventLogic {
	return &EventLogic{db: db}
}

// Emit appends one event record on the given transaction.
func (e *EventLogic) Emit(tx *gorm.DB, campaignId int64, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	event := model.EventModel{
		CampaignId: campaignId,
		EventType:  eventType,
		Data:       string(data),
	}
	if err := tx.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	return nil
}

// GetCampaignEvents returns a campaign's events in commit order.
func (e *EventLogic) GetCampaignEvents(campaignId int64, page, pageSize int) ([]model.EventModel, int64, error) {
	var total int64
	if err := e.db.Model(&model.EventModel{}).
		Where("campaign_id = ?", campaignId).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	var events []model.EventModel
	if err := e.db.Where("campaign_id = ?", campaignId).
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&events).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch events: %w", err)
	}

	return events, total, nil
}

// FetchUnprocessed returns up to limit events not yet dispatched, oldest
// first.
func (e *EventLogic) FetchUnprocessed(limit int) ([]model.EventModel, error) {
	var events []model.EventModel
	if err := e.db.Where("processed = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch unprocessed events: %w", err)
	}
	return events, nil
}

// MarkProcessed flags an event as dispatched. Delivery is fire-and-forget,
// so this runs regardless of webhook outcome.
func (e *EventLogic) MarkProcessed(eventId int64) error {
	if err := e.db.Model(&model.EventModel{}).
		Where("id = ?", eventId).
		UpdateColumn("processed", true).Error; err != nil {
		return fmt.Errorf("failed to mark event %d processed: %w", eventId, err)
	}
	return nil
}
