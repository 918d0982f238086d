package handlers

import (
	"errors"

	"bankcore/internal/core/domain"
	"bankcore/internal/core/services"
	"bankcore/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
	}
}

// ApplyRequest represents loan application request
type ApplyRequest struct {
	Amount           float64 `json:"amount"`
	PreApprovedLimit float64 `json:"pre_approved_limit"`
	TaxID            string  `json:"tax_id"`
	PhoneNumber      string  `json:"phone_number"`
	AccountNumber    *string `json:"account_number,omitempty"`
}

// Apply submits a loan application
// @Summary Apply for loan
// @Description Evaluate a loan application through the instant decision matrix and persist it
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body ApplyRequest true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans [post]
func (h *LoanHandler) Apply(c *fiber.Ctx) error {
	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Amount <= 0 {
		return response.BadRequest(c, "Amount must be greater than 0")
	}
	if req.PreApprovedLimit < 0 {
		return response.BadRequest(c, "Pre-approved limit cannot be negative")
	}

	loan, err := h.loanService.Apply(c.Context(), &services.ApplyInput{
		Amount:           req.Amount,
		PreApprovedLimit: req.PreApprovedLimit,
		TaxID:            req.TaxID,
		PhoneNumber:      req.PhoneNumber,
		AccountNumber:    req.AccountNumber,
	})
	if err != nil {
		var duplicateErr *domain.DuplicateKeyError
		switch {
		case errors.Is(err, domain.ErrMissingIdentity):
			return response.BadRequest(c, err.Error())
		case errors.Is(err, domain.ErrDuplicatePending):
			return response.Conflict(c, err.Error())
		case errors.As(err, &duplicateErr):
			return response.Conflict(c, duplicateErr.Error())
		default:
			return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
		}
	}

	return response.Created(c, loan.InitialDecisionMessage, fiber.Map{
		"loan": loan.ToResponse(),
	})
}

// VerifySalaryRequest represents salary verification request
type VerifySalaryRequest struct {
	MonthlySalary float64 `json:"monthly_salary"`
}

// VerifySalary advances a pending loan through salary verification
// @Summary Verify salary eligibility
// @Description Apply the EMI-to-income check to a loan awaiting salary verification
// @Tags Loans
// @Accept json
// @Produce json
// @Param loan_id path string true "Loan id"
// @Param body body VerifySalaryRequest true "Monthly salary"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /loans/{loan_id}/verify-salary [post]
func (h *LoanHandler) VerifySalary(c *fiber.Ctx) error {
	var req VerifySalaryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.MonthlySalary <= 0 {
		return response.BadRequest(c, "Monthly salary must be greater than 0")
	}

	loan, err := h.loanService.VerifySalary(c.Context(), c.Params("loan_id"), req.MonthlySalary)
	if err != nil {
		var stateErr *domain.InvalidStateError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.As(err, &stateErr):
			return response.Conflict(c, stateErr.Error())
		default:
			return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
		}
	}

	return response.Success(c, loan.FinalDecisionReason, fiber.Map{
		"loan": loan.ToResponse(),
	})
}

// GetStatus checks loan applications by identifier
// @Summary Get loan status
// @Description Look up applications by loan id, tax id or phone number
// @Tags Loans
// @Accept json
// @Produce json
// @Param identifier path string true "Loan id, tax id or phone number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /loans/status/{identifier} [get]
func (h *LoanHandler) GetStatus(c *fiber.Ctx) error {
	loans, err := h.loanService.GetByIdentifier(c.Context(), c.Params("identifier"))
	if err != nil {
		return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
	}
	if len(loans) == 0 {
		return response.NotFound(c, "No applications found for this identifier")
	}

	result := make([]interface{}, 0, len(loans))
	for _, l := range loans {
		result = append(result, l.ToResponse())
	}

	return response.Success(c, "Applications retrieved successfully", fiber.Map{
		"loans": result,
	})
}

// GetByAccount lists loans linked to an account
// @Summary Get loans by account
// @Description List all loan applications linked to an account number
// @Tags Loans
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} response.Response
// @Router /accounts/{number}/loans [get]
func (h *LoanHandler) GetByAccount(c *fiber.Ctx) error {
	loans, err := h.loanService.GetByAccount(c.Context(), c.Params("number"))
	if err != nil {
		return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
	}

	result := make([]interface{}, 0, len(loans))
	for _, l := range loans {
		result = append(result, l.ToResponse())
	}

	return response.Success(c, "Loans retrieved successfully", fiber.Map{
		"loans": result,
	})
}
