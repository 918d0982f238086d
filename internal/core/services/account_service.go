package services

import (
	"context"
	"strconv"
	"strings"

	"bankcore/internal/adapters/persistence/models"
	"bankcore/internal/adapters/persistence/repositories"
	"bankcore/internal/core/domain"
	"bankcore/internal/pkg/accountnum"
)

// Number generation is retried this many times when the generated account
// number collides with an existing one.
const accountNumberAttempts = 3

// AccountService handles account onboarding and lookups
type AccountService struct {
	accountRepo repositories.AccountRepository
	validator   *DocumentValidator
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo repositories.AccountRepository, validator *DocumentValidator) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		validator:   validator,
	}
}

// CreateAccountInput represents create account input
type CreateAccountInput struct {
	Name            string  `json:"name"`
	DateOfBirth     string  `json:"dob"`
	TaxID           string  `json:"tax_id"`
	NationalID      string  `json:"national_id"`
	Balance         float64 `json:"balance"`
	AccountType     string  `json:"account_type"`
	Image           string  `json:"image,omitempty"`
	TaxIDImage      string  `json:"tax_id_image,omitempty"`
	NationalIDImage string  `json:"national_id_image,omitempty"`
}

// Create validates the application, enforces uniqueness of account number,
// tax id and national id (in that order), and persists the account. The
// generated account number is regenerated a bounded number of times if it
// collides before the request fails.
func (s *AccountService) Create(ctx context.Context, input *CreateAccountInput) (*models.Account, error) {
	vr := s.validator.ValidateAccountApplication(&AccountApplication{
		Name:        input.Name,
		DateOfBirth: input.DateOfBirth,
		TaxID:       input.TaxID,
		NationalID:  input.NationalID,
		Balance:     input.Balance,
		AccountType: input.AccountType,
	})
	if !vr.Valid {
		return nil, &domain.ValidationError{Errors: vr.Errors}
	}

	accountType := strings.ToLower(strings.TrimSpace(input.AccountType))
	taxID := strings.ToUpper(strings.TrimSpace(input.TaxID))
	nationalID := nationalIDStrip.ReplaceAllString(input.NationalID, "")

	accountNumber, err := s.generateAccountNumber(ctx, accountType)
	if err != nil {
		return nil, err
	}

	if exists, err := s.accountRepo.ExistsByTaxID(ctx, taxID); err != nil {
		return nil, err
	} else if exists {
		return nil, &domain.DuplicateKeyError{Field: "tax_id"}
	}
	if exists, err := s.accountRepo.ExistsByNationalID(ctx, nationalID); err != nil {
		return nil, err
	} else if exists {
		return nil, &domain.DuplicateKeyError{Field: "national_id"}
	}

	account := &models.Account{
		AccountNumber:   accountNumber,
		Name:            strings.TrimSpace(input.Name),
		DateOfBirth:     input.DateOfBirth,
		TaxID:           taxID,
		NationalID:      nationalID,
		Balance:         input.Balance,
		AccountType:     accountType,
		Status:          domain.AccountStatusActive,
		KYCVerified:     false,
		Image:           input.Image,
		TaxIDImage:      input.TaxIDImage,
		NationalIDImage: input.NationalIDImage,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// generateAccountNumber returns a fresh account number, regenerating on
// collision up to accountNumberAttempts times.
func (s *AccountService) generateAccountNumber(ctx context.Context, accountType string) (string, error) {
	for i := 0; i < accountNumberAttempts; i++ {
		number := accountnum.Generate(accountType)
		exists, err := s.accountRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", &domain.DuplicateKeyError{Field: "account_number"}
}

// GetByNumber gets an account by account number
func (s *AccountService) GetByNumber(ctx context.Context, accountNumber string) (*models.Account, error) {
	return s.accountRepo.GetByNumber(ctx, accountNumber)
}

// GetByID gets an account by its storage-assigned identifier
func (s *AccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	parsed, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return s.accountRepo.GetByID(ctx, uint(parsed))
}

// List lists non-deleted accounts in insertion order. Limit defaults to 100.
func (s *AccountService) List(ctx context.Context, limit, offset int) ([]*models.Account, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.accountRepo.List(ctx, offset, limit)
}

// DocumentValidation is the result of the standalone document check.
type DocumentValidation struct {
	TaxIDValid      bool `json:"tax_id_valid"`
	NationalIDValid bool `json:"national_id_valid"`
	BothValid       bool `json:"both_valid"`
}

// ValidateDocuments checks the tax id format and the national id checksum
// without touching the store.
func (s *AccountService) ValidateDocuments(taxID, nationalID string) *DocumentValidation {
	taxOK := s.validator.ValidateTaxID(taxID)
	natOK := s.validator.ValidateNationalID(nationalID)
	return &DocumentValidation{
		TaxIDValid:      taxOK,
		NationalIDValid: natOK,
		BothValid:       taxOK && natOK,
	}
}
