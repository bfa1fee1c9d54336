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

type MilestoneHandler struct {
	milestoneLogic *logic.MilestoneLogic
}

func NewMilestoneHandler(db *gorm.DB, ldg *ledger.Ledger, cfg config.CampaignConfig) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneLogic: logic.NewMilestoneLogic(db, ldg, cfg),
	}
}

// AddMilestone appends a milestone; creator-only.
func (h *MilestoneHandler) AddMilestone(c *gin.Context) {
	campaignId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !escrow.ValidAddress(req.Caller) {
		ErrorResponse(c, http.StatusBadRequest, "invalid caller address")
		return
	}

	milestone, err := h.milestoneLogic.AddMilestone(
		campaignId, req.Caller, req.Title, req.Description, req.Amount)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "milestone added", milestone)
}

// VerifyMilestone certifies a milestone complete with a proof.
func (h *MilestoneHandler) VerifyMilestone(c *gin.Context) {
	campaignId, index, ok := milestoneParams(c)
	if !ok {
		return
	}

	var req VerifyMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !escrow.ValidAddress(req.Verifier) {
		ErrorResponse(c, http.StatusBadRequest, "invalid verifier address")
		return
	}

	if err := h.milestoneLogic.VerifyMilestone(campaignId, index, req.Verifier, req.Proof); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "milestone verified", nil)
}

// ReleaseFunds pays a verified milestone out of escrow to the creator.
func (h *MilestoneHandler) ReleaseFunds(c *gin.Context) {
	campaignId, index, ok := milestoneParams(c)
	if !ok {
		return
	}

	if err := h.milestoneLogic.ReleaseFunds(campaignId, index); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "funds released", nil)
}

// milestoneParams parses the campaign id and milestone index path params.
func milestoneParams(c *gin.Context) (int64, int, bool) {
	campaignId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return 0, 0, false
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid milestone index")
		return 0, 0, false
	}
	return campaignId, index, true
}
