package repositories

import (
	"context"
	"errors"

	"bankcore/internal/adapters/persistence/models"
	"bankcore/internal/core/domain"

	"gorm.io/gorm"
)

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create inserts a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// GetByNumber gets an account by account number
func (r *accountRepository) GetByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetByID gets an account by its storage-assigned id
func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// List lists non-deleted accounts in insertion order with pagination
func (r *accountRepository) List(ctx context.Context, offset, limit int) ([]*models.Account, error) {
	var accounts []*models.Account
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.AccountStatusDeleted).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&accounts).Error
	return accounts, err
}

// ExistsByNumber checks if account number exists
func (r *accountRepository) ExistsByNumber(ctx context.Context, accountNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("account_number = ?", accountNumber).Count(&count).Error
	return count > 0, err
}

// ExistsByTaxID checks if tax id exists
func (r *accountRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("tax_id = ?", taxID).Count(&count).Error
	return count > 0, err
}

// ExistsByNationalID checks if national id exists
func (r *accountRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Account{}).Where("national_id = ?", nationalID).Count(&count).Error
	return count > 0, err
}
