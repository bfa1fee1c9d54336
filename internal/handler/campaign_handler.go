package handler

import (
	"net/http"
	"strconv"

	"github.com/DishankChauhan/ChainImpact/internal/config"
	"github.com/DishankChauhan/ChainImpact/internal/escrow"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CampaignHandler struct {
	campaignLogic *logic.CampaignLogic
}

func NewCampaignHandler(db *gorm.DB, ldg *ledger.Ledger, cfg config.CampaignConfig) *CampaignHandler {
	return &CampaignHandler{
		campaignLogic: logic.NewCampaignLogic(db, ldg, cfg),
	}
}

// CreateCampaign creates a campaign together with its escrow account.
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !escrow.ValidAddress(req.Creator) {
		ErrorResponse(c, http.StatusBadRequest, "invalid creator address")
		return
	}

	campaign, err := h.campaignLogic.CreateCampaign(
		req.Creator, req.Title, req.Description, req.ImageURL, req.AmountGoal)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "campaign created", campaign)
}

// GetCampaigns returns a page of campaigns.
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	creator := c.Query("creator")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	campaigns, total, err := h.campaignLogic.GetCampaigns(creator, page, pageSize)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"campaigns": campaigns,
		"pagination": Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

// GetCampaign returns one campaign with milestones and escrow balance.
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	campaign, balance, err := h.campaignLogic.GetCampaign(id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"campaign":       campaign,
		"escrow_balance": balance,
	})
}

// GetCampaignStats returns progress figures for one campaign.
func (h *CampaignHandler) GetCampaignStats(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	stats, err := h.campaignLogic.GetCampaignStats(id)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", stats)
}
