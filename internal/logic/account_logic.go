package logic

import (
	"github.com/DishankChauhan/ChainImpact/internal/escrow"
	"github.com/DishankChauhan/ChainImpact/internal/ledger"
	"github.com/DishankChauhan/ChainImpact/internal/model"
	"gorm.io/gorm"
)

// AccountLogic is the account-provisioning glue around the ledger. It
// exists so callers can open funded accounts and read balances; the
// lifecycle engine itself only ever moves value through transfers.
type AccountLogic struct {
	db     *gorm.DB
	ledger *ledger.Ledger
}

// NewAccountLogic creates the account logic.
func NewAccountLogic(db *gorm.DB, ldg *ledger.Ledger) *AccountLogic {
	return &AccountLogic{db: db, ledger: ldg}
}

// Provision opens a ledger account with an opening balance.
func (a *AccountLogic) Provision(address string, opening uint64) (*model.AccountModel, error) {
	address = escrow.NormalizeAddress(address)

	err := a.db.Transaction(func(tx *gorm.DB) error {
		return a.ledger.Provision(tx, address, opening)
	})
	if err != nil {
		return nil, err
	}

	var account model.AccountModel
	if err := a.db.Where("address = ?", address).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// GetBalance returns the balance of one account.
func (a *AccountLogic) GetBalance(address string) (uint64, error) {
	return a.ledger.Balance(a.db, escrow.NormalizeAddress(address))
}
