package handler

import (
	"net/http"

	"github.com/DishankChauhan/ChainImpact/internal/escrow"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AccountHandler struct {
	accountLogic *logic.AccountLogic
}

func NewAccountHandler(db *gorm.DB, ldg *ledger.Ledger) *AccountHandler {
	return &AccountHandler{
		accountLogic: logic.NewAccountLogic(db, ldg),
	}
}

// ProvisionAccount opens a ledger account with an opening balance.
func (h *AccountHandler) ProvisionAccount(c *gin.Context) {
	var req ProvisionAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if !escrow.ValidAddress(req.Address) {
		ErrorResponse(c, http.StatusBadRequest, "invalid account address")
		return
	}

	account, err := h.accountLogic.Provision(req.Address, req.Balance)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "account provisioned", account)
}

// GetAccount returns one account's balance.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	address := c.Param("address")
	if !escrow.ValidAddress(address) {
		ErrorResponse(c, http.StatusBadRequest, "invalid account address")
		return
	}

	balance, err := h.accountLogic.GetBalance(address)
	if err != nil {
		FailWith(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"address": escrow.NormalizeAddress(address),
		"balance": balance,
	})
}
