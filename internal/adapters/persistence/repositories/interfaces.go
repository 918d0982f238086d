package repositories

import (
	"context"

	"bankcore/internal/adapters/persistence/models"
)

// AccountRepository defines account repository interface.
// Lookup misses return domain.ErrNotFound; any other error means the
// backing store failed.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByNumber(ctx context.Context, accountNumber string) (*models.Account, error)
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	List(ctx context.Context, offset, limit int) ([]*models.Account, error)
	ExistsByNumber(ctx context.Context, accountNumber string) (bool, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
}

// LoanRepository defines loan application repository interface
type LoanRepository interface {
	Create(ctx context.Context, loan *models.LoanApplication) error
	GetByLoanID(ctx context.Context, loanID string) (*models.LoanApplication, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) ([]*models.LoanApplication, error)
	GetByIdentifier(ctx context.Context, identifier string) ([]*models.LoanApplication, error)
	ExistsByLoanID(ctx context.Context, loanID string) (bool, error)
	ExistsPendingByTaxID(ctx context.Context, taxID string) (bool, error)
	UpdateStatus(ctx context.Context, loanID string, patch map[string]interface{}) (bool, error)
}
