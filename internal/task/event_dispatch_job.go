package task

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/DishankChauhan/ChainImpact/internal/config"
	"github.com/DishankChauhan/ChainImpact/internal/logger"
	"github.com/DishankChauhan/ChainImpact/internal/logic"
	"github.com/DishankChauhan/ChainImpact/internal/model"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// EventDispatchJob fans unprocessed lifecycle events out to the
// configured webhooks. Delivery is fire-and-forget: an event is marked
// processed after its dispatch attempt regardless of outcome, and no
// lifecycle logic depends on it.
type EventDispatchJob struct {
	db     *gorm.DB
	config *config.Config
	events *logic.EventLogic
	client *http.Client
}

// NewEventDispatchJob creates the dispatcher.
func NewEventDispatchJob(db *gorm.DB, cfg *config.Config) *EventDispatchJob {
	return &EventDispatchJob{
		db:     db,
		config: cfg,
		events: logic.NewEventLogic(db),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetName returns the job name.
func (j *EventDispatchJob) GetName() string {
	return "event_dispatcher"
}

// GetSchedule returns the job schedule.
func (j *EventDispatchJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Dispatch.Interval) * time.Second)
}

// Execute runs one dispatch round.
func (j *EventDispatchJob) Execute() {
	if len(j.config.Dispatch.Webhooks) == 0 {
		return
	}

	events, err := j.events.FetchUnprocessed(j.config.Dispatch.BatchSize)
	if err != nil {
		logger.Error("Failed to fetch events for dispatch: %v", err)
		return
	}
	if len(events) == 0 {
		return
	}

	pool, err := ants.NewPool(j.config.Dispatch.Workers)
	if err != nil {
		logger.Error("Failed to create dispatch pool: %v", err)
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, event := range events {
		event := event
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			j.dispatch(event)
		}); err != nil {
			wg.Done()
			logger.Error("Failed to submit event %d for dispatch: %v", event.Id, err)
		}
	}
	wg.Wait()

	logger.Info("Event dispatch round completed. Dispatched %d events", len(events))
}

// dispatch delivers one event to every webhook, then marks it processed.
func (j *EventDispatchJob) dispatch(event model.EventModel) {
	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode event %d: %v", event.Id, err)
		return
	}

	for _, url := range j.config.Dispatch.Webhooks {
		resp, err := j.client.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			logger.Warn("Failed to deliver event %d to %s: %v", event.Id, url, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			logger.Warn("Webhook %s rejected event %d with status %d", url, event.Id, resp.StatusCode)
		}
	}

	if err := j.events.MarkProcessed(event.Id); err != nil {
		logger.Error("Failed to mark event %d processed: %v", event.Id, err)
	}
}
