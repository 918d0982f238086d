package services

import (
	"context"
	"errors"
	"strings"

	"bankcore/internal/adapters/persistence/models"
	"bankcore/internal/adapters/persistence/repositories"
	"bankcore/internal/core/domain"

	"github.com/google/uuid"
)

// LoanService handles loan applications and the salary-verification
// transition of the approval state machine.
type LoanService struct {
	loanRepo repositories.LoanRepository
	scorer   CreditScorer
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository, scorer CreditScorer) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		scorer:   scorer,
	}
}

// ApplyInput represents a loan application
type ApplyInput struct {
	Amount           float64 `json:"amount"`
	PreApprovedLimit float64 `json:"pre_approved_limit"`
	TaxID            string  `json:"tax_id"`
	PhoneNumber      string  `json:"phone_number"`
	AccountNumber    *string `json:"account_number,omitempty"`
}

// generateLoanID builds a loan identifier: LN- plus the first 8 hex chars of
// a UUID, uppercased.
func generateLoanID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "LN-" + strings.ToUpper(raw[:8])
}

// Apply runs the instant decision matrix against a fresh credit score and
// persists the application with its initial status. Applicants without an
// account number ("new to bank") must supply both tax id and phone number
// and may hold at most one pending application at a time.
func (s *LoanService) Apply(ctx context.Context, input *ApplyInput) (*models.LoanApplication, error) {
	taxID := strings.ToUpper(strings.TrimSpace(input.TaxID))
	phone := strings.TrimSpace(input.PhoneNumber)

	var accountNumber *string
	if input.AccountNumber != nil && strings.TrimSpace(*input.AccountNumber) != "" {
		trimmed := strings.TrimSpace(*input.AccountNumber)
		accountNumber = &trimmed
	}

	loanID := generateLoanID()
	if exists, err := s.loanRepo.ExistsByLoanID(ctx, loanID); err != nil {
		return nil, err
	} else if exists {
		return nil, &domain.DuplicateKeyError{Field: "loan_id"}
	}

	customerType := domain.CustomerTypeExisting
	if accountNumber == nil {
		customerType = domain.CustomerTypeNTB
		if taxID == "" || phone == "" {
			return nil, domain.ErrMissingIdentity
		}
		if pending, err := s.loanRepo.ExistsPendingByTaxID(ctx, taxID); err != nil {
			return nil, err
		} else if pending {
			return nil, domain.ErrDuplicatePending
		}
	}

	score, err := s.scorer.Score(ctx, taxID)
	if err != nil {
		return nil, err
	}
	decision := InstantDecision(input.Amount, input.PreApprovedLimit, score)

	loan := &models.LoanApplication{
		LoanID:                 loanID,
		AccountNumber:          accountNumber,
		TaxID:                  taxID,
		PhoneNumber:            phone,
		Amount:                 input.Amount,
		PreApprovedLimit:       input.PreApprovedLimit,
		CreditScore:            score,
		CustomerType:           customerType,
		Status:                 decision.Status,
		InitialDecisionMessage: decision.Message,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// VerifySalary advances a pending application to its terminal status based
// on the EMI-to-income check. Only PENDING_SALARY_VERIFICATION may
// transition; any other status fails with InvalidStateError and leaves the
// record untouched.
func (s *LoanService) VerifySalary(ctx context.Context, loanID string, monthlySalary float64) (*models.LoanApplication, error) {
	loan, err := s.loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status != domain.LoanStatusPendingSalaryVerification {
		return nil, &domain.InvalidStateError{Current: loan.Status}
	}

	decision, emi := SalaryEligibility(loan.Amount, monthlySalary)

	patch := map[string]interface{}{
		"status":                decision.Status,
		"verified_salary":       monthlySalary,
		"estimated_emi":         emi,
		"final_decision_reason": decision.Message,
	}
	modified, err := s.loanRepo.UpdateStatus(ctx, loanID, patch)
	if err != nil {
		return nil, err
	}
	if !modified {
		return nil, domain.ErrNotFound
	}

	return s.loanRepo.GetByLoanID(ctx, loanID)
}

// GetByLoanID gets a loan application by loan id
func (s *LoanService) GetByLoanID(ctx context.Context, loanID string) (*models.LoanApplication, error) {
	return s.loanRepo.GetByLoanID(ctx, loanID)
}

// GetByAccount gets all loans linked to an account number
func (s *LoanService) GetByAccount(ctx context.Context, accountNumber string) ([]*models.LoanApplication, error) {
	return s.loanRepo.GetByAccountNumber(ctx, accountNumber)
}

// GetByIdentifier resolves a status lookup. Identifiers with the LN- prefix
// are tried as loan ids first, then the identifier is matched against tax id
// and phone number.
func (s *LoanService) GetByIdentifier(ctx context.Context, identifier string) ([]*models.LoanApplication, error) {
	identifier = strings.TrimSpace(identifier)
	if strings.HasPrefix(identifier, "LN-") {
		loan, err := s.loanRepo.GetByLoanID(ctx, identifier)
		if err == nil {
			return []*models.LoanApplication{loan}, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return s.loanRepo.GetByIdentifier(ctx, identifier)
}
