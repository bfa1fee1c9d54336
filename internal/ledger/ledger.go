package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/DishankChauhan/ChainImpact/internal/model"
	"gorm.io/gorm"
)

// Ledger provides atomic read/modify of named value-bearing accounts. All
// mutating methods take the caller's transaction handle so the balance
// movement commits or aborts together with the rest of the operation;
// serialization across operations is inherited from the database
// transaction.
type Ledger struct {
	clock Clock
}

// New creates a ledger on the system clock.
func New() *Ledger {
	return &Ledger{clock: SystemClock()}
}

// NewWithClock creates a ledger with an injected clock.
func NewWithClock(clock Clock) *Ledger {
	return &Ledger{clock: clock}
}

// Now returns the ledger's wall-clock time.
func (l *Ledger) Now() int64 {
	return l.clock.Now().Unix()
}

// NowTime returns the ledger's wall-clock time as time.Time.
func (l *Ledger) NowTime() time.Time {
	return l.clock.Now()
}

// Provision opens a new account with an opening balance.
func (l *Ledger) Provision(tx *gorm.DB, address string, opening uint64) error {
	var count int64
	if err := tx.Model(&model.AccountModel{}).
		Where("address = ?", address).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check account %s: %w", address, err)
	}
	if count > 0 {
		return model.ErrAccountExists
	}

	account := model.AccountModel{
		Address: address,
		Balance: opening,
	}
	if err := tx.Create(&account).Error; err != nil {
		// A concurrent duplicate slips past the count and lands on the
		// unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.ErrAccountExists
		}
		return fmt.Errorf("failed to create account %s: %w", address, err)
	}
	return nil
}

// Balance returns the current balance of an account.
func (l *Ledger) Balance(tx *gorm.DB, address string) (uint64, error) {
	var account model.AccountModel
	if err := tx.Where("address = ?", address).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, model.ErrAccountNotFound
		}
		return 0, fmt.Errorf("failed to load account %s: %w", address, err)
	}
	return account.Balance, nil
}

// Transfer debits amount from one account and credits it to another as a
// single step inside the caller's transaction. It fails with
// ErrInsufficientFunds when the source cannot cover the amount and
// ErrAmountOverflow when the credit would wrap; either failure leaves both
// balances untouched once the enclosing transaction rolls back.
func (l *Ledger) Transfer(tx *gorm.DB, from, to string, amount uint64) error {
	fromBalance, err := l.Balance(tx, from)
	if err != nil {
		return err
	}
	toBalance, err := l.Balance(tx, to)
	if err != nil {
		return err
	}

	if _, err := CheckedSub(fromBalance, amount); err != nil {
		return model.ErrInsufficientFunds
	}
	if _, err := CheckedAdd(toBalance, amount); err != nil {
		return err
	}

	// Guarded debit: the balance predicate re-checks funds at write time
	// so a concurrent spender cannot slip between read and update.
	debit := tx.Model(&model.AccountModel{}).
		Where("address = ? AND balance >= ?", from, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if debit.Error != nil {
		return fmt.Errorf("failed to debit account %s: %w", from, debit.Error)
	}
	if debit.RowsAffected == 0 {
		return model.ErrInsufficientFunds
	}

	credit := tx.Model(&model.AccountModel{}).
		Where("address = ?", to).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if credit.Error != nil {
		return fmt.Errorf("failed to credit account %s: %w", to, credit.Error)
	}
	if credit.RowsAffected == 0 {
		return model.ErrAccountNotFound
	}

	return nil
}
