package handlers

import (
	"errors"
	"strconv"

	"bankcore/internal/core/domain"
	"bankcore/internal/core/services"
	"bankcore/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles account endpoints
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccountRequest represents create account request
type CreateAccountRequest struct {
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

// Create creates a new account
// @Summary Create account
// @Description Open a bank account with identity-document validation
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body CreateAccountRequest true "Account data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var req CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	account, err := h.accountService.Create(c.Context(), &services.CreateAccountInput{
		Name:            req.Name,
		DateOfBirth:     req.DateOfBirth,
		TaxID:           req.TaxID,
		NationalID:      req.NationalID,
		Balance:         req.Balance,
		AccountType:     req.AccountType,
		Image:           req.Image,
		TaxIDImage:      req.TaxIDImage,
		NationalIDImage: req.NationalIDImage,
	})
	if err != nil {
		var validationErr *domain.ValidationError
		var duplicateErr *domain.DuplicateKeyError
		switch {
		case errors.As(err, &validationErr):
			return response.ValidationFailed(c, validationErr.Errors)
		case errors.As(err, &duplicateErr):
			return response.Conflict(c, duplicateErr.Error())
		default:
			return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
		}
	}

	return response.Created(c, "Account created successfully", fiber.Map{
		"account": account.ToResponse(),
	})
}

// Get gets an account by number
// @Summary Get account
// @Description Get account details by account number
// @Tags Accounts
// @Accept json
// @Produce json
// @Param number path string true "Account number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{number} [get]
func (h *AccountHandler) Get(c *fiber.Ctx) error {
	account, err := h.accountService.GetByNumber(c.Context(), c.Params("number"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"account": account.ToResponse(),
	})
}

// Lookup gets an account by its storage-assigned id
// @Summary Lookup account by id
// @Description Get account details by internal account id
// @Tags Accounts
// @Accept json
// @Produce json
// @Param account_id query string true "Account id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/lookup [get]
func (h *AccountHandler) Lookup(c *fiber.Ctx) error {
	accountID := c.Query("account_id")
	if accountID == "" {
		return response.BadRequest(c, "Provide account_id")
	}

	account, err := h.accountService.GetByID(c.Context(), accountID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid account id")
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Account not found")
		default:
			return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
		}
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"account": account.ToResponse(),
	})
}

// List lists accounts
// @Summary List accounts
// @Description List non-deleted accounts in insertion order
// @Tags Accounts
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response
// @Router /accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	accounts, err := h.accountService.List(c.Context(), limit, offset)
	if err != nil {
		return response.ServiceUnavailable(c, domain.ErrStoreUnavailable.Error())
	}

	result := make([]interface{}, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, a.ToResponse())
	}

	return response.Success(c, "Accounts retrieved successfully", fiber.Map{
		"accounts": result,
	})
}

// ValidateDocumentsRequest represents document validation request
type ValidateDocumentsRequest struct {
	TaxID      string `json:"tax_id"`
	NationalID string `json:"national_id"`
}

// ValidateDocuments validates identity documents
// @Summary Validate documents
// @Description Validate tax id format and national id checksum
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body ValidateDocumentsRequest true "Documents"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /documents/validate [post]
func (h *AccountHandler) ValidateDocuments(c *fiber.Ctx) error {
	var req ValidateDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	validation := h.accountService.ValidateDocuments(req.TaxID, req.NationalID)
	return response.Success(c, "Documents validated", fiber.Map{
		"validation": validation,
	})
}
