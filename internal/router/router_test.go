package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DishankChauhan/ChainImpact/internal/config"
	"github.com/DishankChauhan/ChainImpact/internal/database"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testCreator = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testDonor   = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		Campaign: config.CampaignConfig{
			MaxMilestones:     16,
			MaxTitleLen:       64,
			MaxDescriptionLen: 256,
			MaxImageURLLen:    128,
		},
	}
	return Setup(db, ledger.New(), cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d", w.Code)
	}
}

func TestCampaignLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// Provision a funded donor account.
	w := doJSON(t, r, http.MethodPost, "/api/v1/accounts", map[string]interface{}{
		"address": testDonor,
		"balance": 500,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("provision status = %d: %s", w.Code, w.Body.String())
	}

	// Create the campaign.
	w = doJSON(t, r, http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
		"creator":     testCreator,
		"title":       "Clean water",
		"description": "Wells for the valley",
		"image_url":   "https://img.example/well.png",
		"amount_goal": 1000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create campaign status = %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Data struct {
			Id            int64  `json:"id"`
			EscrowAccount string `json:"escrow_account"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	campaignId := created.Data.Id

	// Milestone append by a non-creator is forbidden.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/milestones", campaignId), map[string]interface{}{
		"caller": testDonor,
		"title":  "Drill site",
		"amount": 400,
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("unauthorized milestone status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/milestones", campaignId), map[string]interface{}{
		"caller": testCreator,
		"title":  "Drill site",
		"amount": 400,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add milestone status = %d: %s", w.Code, w.Body.String())
	}

	// Donate, verify, release.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/donations", campaignId), map[string]interface{}{
		"donor":  testDonor,
		"amount": 500,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("donate status = %d: %s", w.Code, w.Body.String())
	}

	// Release before verification conflicts.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/milestones/0/release", campaignId), nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("early release status = %d, want 409", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/milestones/0/verify", campaignId), map[string]interface{}{
		"verifier": testCreator,
		"proof":    "inspection report",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("verify status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/milestones/0/release", campaignId), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("release status = %d: %s", w.Code, w.Body.String())
	}

	// Refund part of the remaining escrow.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/campaigns/%d/refunds", campaignId), map[string]interface{}{
		"donor":  testDonor,
		"amount": 50,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("refund status = %d: %s", w.Code, w.Body.String())
	}

	// The event log carries one entry per operation.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/campaigns/%d/events", campaignId), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("events status = %d", w.Code)
	}
	var eventsResp struct {
		Data struct {
			Pagination struct {
				Total int64 `json:"total"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &eventsResp); err != nil {
		t.Fatalf("failed to decode events response: %v", err)
	}
	if eventsResp.Data.Pagination.Total != 6 {
		t.Errorf("event total = %d, want 6", eventsResp.Data.Pagination.Total)
	}
}

func TestBadAddressesRejected(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/campaigns", map[string]interface{}{
		"creator":     "not-an-address",
		"title":       "x",
		"amount_goal": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad creator status = %d, want 400", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/not-an-address", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad account status = %d, want 400", w.Code)
	}
}

func TestUnknownCampaign(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/campaigns/999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown campaign status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/campaigns/999/donations", map[string]interface{}{
		"donor":  testDonor,
		"amount": 5,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("donation to unknown campaign status = %d, want 404", w.Code)
	}
}
