package services_test

import (
	"context"

	"bankcore/internal/adapters/persistence/models"
	"bankcore/internal/core/domain"
)

// fakeAccountRepo is an in-memory AccountRepository for service tests.
type fakeAccountRepo struct {
	accounts []*models.Account
	nextID   uint

	// numberCollisions makes ExistsByNumber report a hit this many times
	// before behaving normally, to exercise the regeneration loop.
	numberCollisions int

	// failure, when set, is returned by every call.
	failure error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{nextID: 1}
}

func (f *fakeAccountRepo) Create(_ context.Context, account *models.Account) error {
	if f.failure != nil {
		return f.failure
	}
	account.ID = f.nextID
	f.nextID++
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) GetByNumber(_ context.Context, accountNumber string) (*models.Account, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	for _, a := range f.accounts {
		if a.AccountNumber == accountNumber {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id uint) (*models.Account, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAccountRepo) List(_ context.Context, offset, limit int) ([]*models.Account, error) {
	if f.failure != nil {
		return nil, f.failure
	}
	live := []*models.Account{}
	for _, a := range f.accounts {
		if a.Status != domain.AccountStatusDeleted {
			live = append(live, a)
		}
	}
	if offset >= len(live) {
		return []*models.Account{}, nil
	}
	live = live[offset:]
	if limit < len(live) {
		live = live[:limit]
	}
	return live, nil
}

func (f *fakeAccountRepo) ExistsByNumber(_ context.Context, accountNumber string) (bool, error) {
	if f.failure != nil {
		return false, f.failure
	}
	if f.numberCollisions > 0 {
		f.numberCollisions--
		return true, nil
	}
	for _, a := range f.accounts {
		if a.AccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) ExistsByTaxID(_ context.Context, taxID string) (bool, error) {
	if f.failure != nil {
		return false, f.failure
	}
	for _, a := range f.accounts {
		if a.TaxID == taxID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) ExistsByNationalID(_ context.Context, nationalID string) (bool, error) {
	if f.failure != nil {
		return false, f.failure
	}
	for _, a := range f.accounts {
		if a.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

// fakeLoanRepo is an in-memory LoanRepository for service tests.
type fakeLoanRepo struct {
	loans  []*models.LoanApplication
	nextID uint
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{nextID: 1}
}

func (f *fakeLoanRepo) Create(_ context.Context, loan *models.LoanApplication) error {
	loan.ID = f.nextID
	f.nextID++
	f.loans = append(f.loans, loan)
	return nil
}

func (f *fakeLoanRepo) GetByLoanID(_ context.Context, loanID string) (*models.LoanApplication, error) {
	for _, l := range f.loans {
		if l.LoanID == loanID {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLoanRepo) GetByAccountNumber(_ context.Context, accountNumber string) ([]*models.LoanApplication, error) {
	matches := []*models.LoanApplication{}
	for _, l := range f.loans {
		if l.AccountNumber != nil && *l.AccountNumber == accountNumber {
			matches = append(matches, l)
		}
	}
	return matches, nil
}

func (f *fakeLoanRepo) GetByIdentifier(_ context.Context, identifier string) ([]*models.LoanApplication, error) {
	matches := []*models.LoanApplication{}
	for _, l := range f.loans {
		if l.TaxID == identifier || l.PhoneNumber == identifier {
			matches = append(matches, l)
		}
	}
	return matches, nil
}

func (f *fakeLoanRepo) ExistsByLoanID(_ context.Context, loanID string) (bool, error) {
	for _, l := range f.loans {
		if l.LoanID == loanID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLoanRepo) ExistsPendingByTaxID(_ context.Context, taxID string) (bool, error) {
	for _, l := range f.loans {
		if l.TaxID == taxID && l.Status == domain.LoanStatusPendingSalaryVerification {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLoanRepo) UpdateStatus(_ context.Context, loanID string, patch map[string]interface{}) (bool, error) {
	for _, l := range f.loans {
		if l.LoanID != loanID {
			continue
		}
		if v, ok := patch["status"].(string); ok {
			l.Status = v
		}
		if v, ok := patch["verified_salary"].(float64); ok {
			l.VerifiedSalary = &v
		}
		if v, ok := patch["estimated_emi"].(float64); ok {
			l.EstimatedEMI = &v
		}
		if v, ok := patch["final_decision_reason"].(string); ok {
			l.FinalDecisionReason = v
		}
		return true, nil
	}
	return false, nil
}

// stubScorer returns a fixed credit score.
type stubScorer struct {
	score int
	err   error
}

func (s *stubScorer) Score(_ context.Context, _ string) (int, error) {
	return s.score, s.err
}
