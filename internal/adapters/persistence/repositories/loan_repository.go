package repositories

import (
	"context"
	"errors"

	"bankcore/internal/adapters/persistence/models"
	"bankcore/internal/core/domain"

	"gorm.io/gorm"
)

// loanRepository implements LoanRepository interface
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

// Create inserts a new loan application
func (r *loanRepository) Create(ctx context.Context, loan *models.LoanApplication) error {
	return r.db.WithContext(ctx).Create(loan).Error
}

// GetByLoanID gets a loan application by loan id
func (r *loanRepository) GetByLoanID(ctx context.Context, loanID string) (*models.LoanApplication, error) {
	var loan models.LoanApplication
	err := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&loan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &loan, nil
}

// GetByAccountNumber gets all loans linked to an account, in insertion order
func (r *loanRepository) GetByAccountNumber(ctx context.Context, accountNumber string) ([]*models.LoanApplication, error) {
	var loans []*models.LoanApplication
	err := r.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		Order("id ASC").
		Find(&loans).Error
	return loans, err
}

// GetByIdentifier gets loans whose tax id or phone number equals the
// identifier (guest status lookup)
func (r *loanRepository) GetByIdentifier(ctx context.Context, identifier string) ([]*models.LoanApplication, error) {
	var loans []*models.LoanApplication
	err := r.db.WithContext(ctx).
		Where("tax_id = ? OR phone_number = ?", identifier, identifier).
		Order("id ASC").
		Find(&loans).Error
	return loans, err
}

// ExistsByLoanID checks if loan id exists
func (r *loanRepository) ExistsByLoanID(ctx context.Context, loanID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanApplication{}).Where("loan_id = ?", loanID).Count(&count).Error
	return count > 0, err
}

// ExistsPendingByTaxID checks if the tax id has a loan awaiting salary
// verification
func (r *loanRepository) ExistsPendingByTaxID(ctx context.Context, taxID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.LoanApplication{}).
		Where("tax_id = ? AND status = ?", taxID, domain.LoanStatusPendingSalaryVerification).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatus merges the patch into the loan record and reports whether a
// record was actually modified. updated_at is stamped by GORM on update.
func (r *loanRepository) UpdateStatus(ctx context.Context, loanID string, patch map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.LoanApplication{}).
		Where("loan_id = ?", loanID).
		Updates(patch)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
