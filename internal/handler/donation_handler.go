package handler

import (
	"net/http"
	"strconv"

	"github.com/DishankChauhan/ChainImpact/internal/escrow"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DonationHandler struct {
	donationLogic *logic.DonationLogic
}

func NewDonationHandler(db *gorm.DB, ldg *ledger.Ledger) *DonationHandler {
	return &DonationHandler{
		donationLogic: logic.NewDonationLogic(db, ldg),
	}
}

// Donate deposits value from the donor into the campaign's escrow.
func (h *DonationHandler) Donate(c *gin.Context) {
	campaignId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req DonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !escrow.ValidAddress(req.Donor) {
		ErrorResponse(c, http.StatusBadRequest, "invalid donor address")
		return
	}

	if err := h.donationLogic.Donate(campaignId, req.Donor, req.Amount); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "donation accepted", nil)
}

// Refund returns value from the campaign's escrow to a donor.
func (h *DonationHandler) Refund(c *gin.Context) {
	campaignId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	var req RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !escrow.ValidAddress(req.Donor) {
		ErrorResponse(c, http.StatusBadRequest, "invalid donor address")
		return
	}

	if err := h.donationLogic.Refund(campaignId, req.Donor, req.Amount); err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "refund issued", nil)
}

// GetContributions returns a page of a campaign's donation history.
func (h *DonationHandler) GetContributions(c *gin.Context) {
	campaignId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid campaign id")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	contributions, total, err := h.donationLogic.GetContributions(campaignId, page, pageSize)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"contributions": contributions,
		"pagination": Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}
