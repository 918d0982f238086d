package domain

// Account types
const (
	AccountTypeSavings      = "savings"
	AccountTypeCurrent      = "current"
	AccountTypeSalary       = "salary"
	AccountTypeFixedDeposit = "fixed_deposit"
)

// ValidAccountTypes lists every accepted account type.
var ValidAccountTypes = []string{
	AccountTypeSavings,
	AccountTypeCurrent,
	AccountTypeSalary,
	AccountTypeFixedDeposit,
}

// MinimumBalance maps account type to the minimum opening balance.
var MinimumBalance = map[string]float64{
	AccountTypeSavings:      1000,
	AccountTypeCurrent:      5000,
	AccountTypeSalary:       0,
	AccountTypeFixedDeposit: 10000,
}

// Account status
const (
	AccountStatusActive  = "active"
	AccountStatusDeleted = "deleted"
)

// Loan statuses. PendingSalaryVerification is the only non-terminal status;
// Approved and Rejected are terminal.
const (
	LoanStatusPendingSalaryVerification = "PENDING_SALARY_VERIFICATION"
	LoanStatusApproved                  = "APPROVED"
	LoanStatusRejected                  = "REJECTED"
)

// Customer types
const (
	CustomerTypeExisting = "EXISTING"
	CustomerTypeNTB      = "NTB"
)

// IsValidAccountType reports whether t is an accepted account type.
func IsValidAccountType(t string) bool {
	for _, v := range ValidAccountTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsTerminalLoanStatus reports whether a loan status admits no further
// transitions.
func IsTerminalLoanStatus(status string) bool {
	return status == LoanStatusApproved || status == LoanStatusRejected
}
