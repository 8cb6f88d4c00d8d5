package repositories

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/infrastructure/models"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// tokenLedger implements repositories.TokenLedger on top of gorm.
// Accounts are rows keyed by (owner, mint); a debit only succeeds when the
// presented authority matches the source account owner, which is how pool
// and escrow custody stays module-private.
type tokenLedger struct {
	db *gorm.DB
}

// NewTokenLedger creates a new token ledger
func NewTokenLedger(db *gorm.DB) repositories.TokenLedger {
	return &tokenLedger{db: db}
}

func (l *tokenLedger) EnsureAccount(ctx context.Context, owner, mint string) error {
	db := GetDB(ctx, l.db)

	var m models.TokenAccount
	err := db.WithContext(ctx).Where("owner = ? AND mint = ?", owner, mint).First(&m).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return err
	}
	account := models.TokenAccount{ID: id, Owner: owner, Mint: mint, Balance: 0}
	return db.WithContext(ctx).Create(&account).Error
}

func (l *tokenLedger) Balance(ctx context.Context, owner, mint string) (uint64, error) {
	db := GetDB(ctx, l.db)

	var m models.TokenAccount
	err := db.WithContext(ctx).Where("owner = ? AND mint = ?", owner, mint).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domainerrors.ErrNotFound
		}
		return 0, err
	}
	return m.Balance, nil
}

func (l *tokenLedger) Transfer(ctx context.Context, from, to, mint, authority string, amount uint64) error {
	if authority != from {
		return domainerrors.ErrUnauthorized
	}
	if amount == 0 {
		return domainerrors.ErrInvalidInput
	}

	db := GetDB(ctx, l.db)

	var source models.TokenAccount
	err := db.WithContext(ctx).Where("owner = ? AND mint = ?", from, mint).First(&source).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrNotFound
		}
		return err
	}
	if source.Balance < amount {
		return domainerrors.ErrInsufficientTokenAmount
	}

	if err := l.EnsureAccount(ctx, to, mint); err != nil {
		return err
	}
	if err := l.checkCredit(ctx, to, mint, amount); err != nil {
		return err
	}

	// The balance guard in the WHERE clause keeps concurrent debits from
	// taking the account below zero.
	res := db.WithContext(ctx).Model(&models.TokenAccount{}).
		Where("owner = ? AND mint = ? AND balance >= ?", from, mint, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrInsufficientTokenAmount
	}

	return db.WithContext(ctx).Model(&models.TokenAccount{}).
		Where("owner = ? AND mint = ?", to, mint).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}

// checkCredit rejects a credit that would wrap the destination balance.
func (l *tokenLedger) checkCredit(ctx context.Context, owner, mint string, amount uint64) error {
	balance, err := l.Balance(ctx, owner, mint)
	if err != nil {
		return err
	}
	if balance > math.MaxUint64-amount {
		return domainerrors.ErrCalculationOverflow
	}
	return nil
}

func (l *tokenLedger) Deposit(ctx context.Context, owner, mint string, amount uint64) error {
	if amount == 0 {
		return domainerrors.ErrInvalidInput
	}

	if err := l.EnsureAccount(ctx, owner, mint); err != nil {
		return err
	}
	if err := l.checkCredit(ctx, owner, mint, amount); err != nil {
		return err
	}

	db := GetDB(ctx, l.db)
	return db.WithContext(ctx).Model(&models.TokenAccount{}).
		Where("owner = ? AND mint = ?", owner, mint).
		Update("balance", gorm.Expr("balance + ?", amount)).Error
}
