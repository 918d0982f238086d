package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"bankcore/internal/core/domain"
)

var (
	taxIDPattern      = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	nationalIDPattern = regexp.MustCompile(`^[0-9]{12}$`)
	nationalIDStrip   = regexp.MustCompile(`[\s-]`)
	namePattern       = regexp.MustCompile(`^[a-zA-Z\s.']+$`)
)

// Verhoeff multiplication table (dihedral group D5).
var verhoeffD = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// Verhoeff permutation table, applied by digit position mod 8.
var verhoeffP = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// DocumentValidator validates identity documents and basic demographic
// fields for account onboarding. It is stateless and safe for concurrent use.
type DocumentValidator struct{}

// NewDocumentValidator creates a new document validator
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{}
}

// AccountApplication carries the fields checked by ValidateAccountApplication.
type AccountApplication struct {
	Name        string
	DateOfBirth string
	TaxID       string
	NationalID  string
	Balance     float64
	AccountType string
}

// ValidationResult aggregates every failing rule from a validation pass.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidateTaxID normalizes (trim, uppercase) and checks the tax id format:
// 5 letters, 4 digits, 1 letter.
func (v *DocumentValidator) ValidateTaxID(taxID string) bool {
	if taxID == "" {
		return false
	}
	return taxIDPattern.MatchString(strings.ToUpper(strings.TrimSpace(taxID)))
}

// ValidateNationalID strips whitespace and hyphens, requires exactly 12
// digits and runs the Verhoeff checksum over them.
func (v *DocumentValidator) ValidateNationalID(nationalID string) bool {
	if nationalID == "" {
		return false
	}
	stripped := nationalIDStrip.ReplaceAllString(nationalID, "")
	if !nationalIDPattern.MatchString(stripped) {
		return false
	}
	return verhoeffChecksum(stripped) == 0
}

// verhoeffChecksum processes digits from least-significant to most-significant;
// the input is valid iff the result is 0.
func verhoeffChecksum(digits string) int {
	c := 0
	n := len(digits)
	for i := 0; i < n; i++ {
		d := int(digits[n-1-i] - '0')
		c = verhoeffD[c][verhoeffP[i%8][d]]
	}
	return c
}

// ValidateDateOfBirth parses dob as YYYY-MM-DD and enforces the 18–120 year
// age window. Returns a success flag and a human-readable reason on failure.
func (v *DocumentValidator) ValidateDateOfBirth(dob string) (bool, string) {
	parsed, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return false, "Invalid date format. Use YYYY-MM-DD"
	}
	now := time.Now()
	if parsed.After(now) {
		return false, "Date of birth cannot be in the future"
	}
	age := now.Sub(parsed).Hours() / 24 / 365.25
	if age < 18 {
		return false, "Minimum age requirement is 18 years"
	}
	if age > 120 {
		return false, "Invalid date of birth"
	}
	return true, ""
}

// ValidateBalance checks the opening balance against the account type's
// minimum.
func (v *DocumentValidator) ValidateBalance(balance float64, accountType string) (bool, string) {
	if balance < 0 {
		return false, "Balance cannot be negative"
	}
	min := domain.MinimumBalance[accountType]
	if balance < min {
		return false, fmt.Sprintf("Minimum balance for %s account is %.0f", accountType, min)
	}
	return true, ""
}

// ValidateName checks the applicant name: non-blank, 2–100 characters,
// letters/spaces/periods/apostrophes only.
func (v *DocumentValidator) ValidateName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Name is required"
	}
	if len(trimmed) < 2 {
		return false, "Name must be at least 2 characters long"
	}
	if len(trimmed) > 100 {
		return false, "Name cannot exceed 100 characters"
	}
	if !namePattern.MatchString(trimmed) {
		return false, "Name contains invalid characters"
	}
	return true, ""
}

// ValidateAccountApplication runs every rule and reports all failures
// together; it never short-circuits.
func (v *DocumentValidator) ValidateAccountApplication(app *AccountApplication) *ValidationResult {
	errs := []string{}

	if ok, msg := v.ValidateName(app.Name); !ok {
		errs = append(errs, "Name: "+msg)
	}
	if ok, msg := v.ValidateDateOfBirth(app.DateOfBirth); !ok {
		errs = append(errs, "Date of Birth: "+msg)
	}
	if !v.ValidateTaxID(app.TaxID) {
		errs = append(errs, "Invalid tax id format")
	}
	if !v.ValidateNationalID(app.NationalID) {
		errs = append(errs, "Invalid national id")
	}

	accountType := strings.ToLower(app.AccountType)
	if !domain.IsValidAccountType(accountType) {
		errs = append(errs, "Invalid account type")
	}
	if ok, msg := v.ValidateBalance(app.Balance, accountType); !ok {
		errs = append(errs, "Balance: "+msg)
	}

	return &ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
