package services

import (
	"fmt"
	"math"

	"bankcore/internal/core/domain"
)

// Loan decision constants
const (
	MinimumCreditScore  = 700
	AnnualInterestRate  = 0.12
	DefaultTenureMonths = 24
	// EMI must stay within this share of monthly salary.
	DebtToIncomeCeiling = 0.5
)

// Decision is the outcome of a decision-engine evaluation.
type Decision struct {
	Status  string
	Message string
}

// ComputeEMI calculates the equated monthly installment for an amortized
// loan: P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate. Returns 0 when
// months <= 0. float64 arithmetic, rounded half away from zero to 2 decimals.
func ComputeEMI(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12
	factor := math.Pow(1+r, float64(months))
	emi := principal * r * factor / (factor - 1)
	return math.Round(emi*100) / 100
}

// InstantDecision evaluates the decision matrix in precedence order: credit
// score floor, hard 2x-limit ceiling, instant approval within the limit,
// otherwise salary verification is required.
func InstantDecision(amount, preApprovedLimit float64, creditScore int) Decision {
	switch {
	case creditScore < MinimumCreditScore:
		return Decision{
			Status: domain.LoanStatusRejected,
			Message: fmt.Sprintf("REJECTED. Credit Score (%d) is below the minimum requirement of %d.",
				creditScore, MinimumCreditScore),
		}
	case amount > 2*preApprovedLimit:
		return Decision{
			Status: domain.LoanStatusRejected,
			Message: fmt.Sprintf("REJECTED. Loan amount (%.2f) exceeds 2x the pre-approved limit (%.2f).",
				amount, preApprovedLimit),
		}
	case amount <= preApprovedLimit:
		return Decision{
			Status: domain.LoanStatusApproved,
			Message: fmt.Sprintf("APPROVED INSTANTLY. Credit Score: %d. Amount is within pre-approved limit.",
				creditScore),
		}
	default:
		// limit < amount <= 2x limit
		return Decision{
			Status: domain.LoanStatusPendingSalaryVerification,
			Message: fmt.Sprintf("PENDING_SALARY_VERIFICATION. Credit Score: %d. "+
				"Loan amount is > limit but <= 2x limit. "+
				"Action Required: Please call 'verify_salary_eligibility' with loan_id and monthly_salary.",
				creditScore),
		}
	}
}

// SalaryEligibility applies the EMI-to-income rule: approve only when the
// estimated EMI stays within half the monthly salary. Returns the decision
// and the computed EMI for persistence.
func SalaryEligibility(amount, monthlySalary float64) (Decision, float64) {
	emi := ComputeEMI(amount, AnnualInterestRate, DefaultTenureMonths)
	if emi <= DebtToIncomeCeiling*monthlySalary {
		return Decision{
			Status: domain.LoanStatusApproved,
			Message: fmt.Sprintf("APPROVED. Salary verification successful. EMI (%.2f) is within 50%% of salary (%.2f).",
				emi, monthlySalary),
		}, emi
	}
	return Decision{
		Status: domain.LoanStatusRejected,
		Message: fmt.Sprintf("REJECTED. High Debt-to-Income ratio. Estimated EMI (%.2f) exceeds 50%% of monthly salary (%.2f).",
			emi, monthlySalary),
	}, emi
}
