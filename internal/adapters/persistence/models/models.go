package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// Account represents accounts table
type Account struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	AccountNumber   string    `gorm:"uniqueIndex;size:12;not null" json:"account_number"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	DateOfBirth     string    `gorm:"size:10;not null" json:"dob"`
	TaxID           string    `gorm:"uniqueIndex;size:10;not null" json:"tax_id"`
	NationalID      string    `gorm:"uniqueIndex;size:12;not null" json:"national_id"`
	Balance         float64   `gorm:"type:decimal(15,2);not null" json:"balance"`
	AccountType     string    `gorm:"size:20;not null" json:"account_type"`
	Status          string    `gorm:"size:20;not null;default:'active'" json:"status"`
	KYCVerified     bool      `gorm:"default:false" json:"kyc_verified"`
	Image           string    `gorm:"type:text" json:"image,omitempty"`
	TaxIDImage      string    `gorm:"type:text" json:"tax_id_image,omitempty"`
	NationalIDImage string    `gorm:"type:text" json:"national_id_image,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountResponse DTO
type AccountResponse struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	DateOfBirth   string    `json:"dob"`
	TaxID         string    `json:"tax_id"`
	NationalID    string    `json:"national_id"`
	Balance       float64   `json:"balance"`
	AccountType   string    `json:"account_type"`
	Status        string    `json:"status"`
	KYCVerified   bool      `json:"kyc_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (a *Account) ToResponse() *AccountResponse {
	return &AccountResponse{
		ID:            strconv.FormatUint(uint64(a.ID), 10),
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		DateOfBirth:   a.DateOfBirth,
		TaxID:         a.TaxID,
		NationalID:    a.NationalID,
		Balance:       a.Balance,
		AccountType:   a.AccountType,
		Status:        a.Status,
		KYCVerified:   a.KYCVerified,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ============================================================
// Loan applications
// ============================================================

// LoanApplication represents loan_applications table
type LoanApplication struct {
	ID                     uint      `gorm:"primaryKey" json:"-"`
	LoanID                 string    `gorm:"uniqueIndex;size:20;not null" json:"loan_id"`
	AccountNumber          *string   `gorm:"size:12;index" json:"account_number"`
	TaxID                  string    `gorm:"size:10;index" json:"tax_id"`
	PhoneNumber            string    `gorm:"size:20;index" json:"phone_number"`
	Amount                 float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	PreApprovedLimit       float64   `gorm:"type:decimal(15,2);not null" json:"pre_approved_limit"`
	CreditScore            int       `gorm:"not null" json:"credit_score"`
	CustomerType           string    `gorm:"size:10;not null" json:"customer_type"`
	Status                 string    `gorm:"size:30;not null;index" json:"status"`
	InitialDecisionMessage string    `gorm:"type:text" json:"initial_decision_message"`
	VerifiedSalary         *float64  `gorm:"type:decimal(15,2)" json:"verified_salary,omitempty"`
	EstimatedEMI           *float64  `gorm:"type:decimal(15,2)" json:"estimated_emi,omitempty"`
	FinalDecisionReason    string    `gorm:"type:text" json:"final_decision_reason,omitempty"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (LoanApplication) TableName() string {
	return "loan_applications"
}

// LoanApplicationResponse DTO
type LoanApplicationResponse struct {
	ID                     string    `json:"id"`
	LoanID                 string    `json:"loan_id"`
	AccountNumber          *string   `json:"account_number"`
	TaxID                  string    `json:"tax_id"`
	PhoneNumber            string    `json:"phone_number"`
	Amount                 float64   `json:"amount"`
	PreApprovedLimit       float64   `json:"pre_approved_limit"`
	CreditScore            int       `json:"credit_score"`
	CustomerType           string    `json:"customer_type"`
	Status                 string    `json:"status"`
	InitialDecisionMessage string    `json:"initial_decision_message"`
	VerifiedSalary         *float64  `json:"verified_salary,omitempty"`
	EstimatedEMI           *float64  `json:"estimated_emi,omitempty"`
	FinalDecisionReason    string    `json:"final_decision_reason,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (l *LoanApplication) ToResponse() *LoanApplicationResponse {
	return &LoanApplicationResponse{
		ID:                     strconv.FormatUint(uint64(l.ID), 10),
		LoanID:                 l.LoanID,
		AccountNumber:          l.AccountNumber,
		TaxID:                  l.TaxID,
		PhoneNumber:            l.PhoneNumber,
		Amount:                 l.Amount,
		PreApprovedLimit:       l.PreApprovedLimit,
		CreditScore:            l.CreditScore,
		CustomerType:           l.CustomerType,
		Status:                 l.Status,
		InitialDecisionMessage: l.InitialDecisionMessage,
		VerifiedSalary:         l.VerifiedSalary,
		EstimatedEMI:           l.EstimatedEMI,
		FinalDecisionReason:    l.FinalDecisionReason,
		CreatedAt:              l.CreatedAt,
		UpdatedAt:              l.UpdatedAt,
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates the tables. The unique indexes declared on the models
// are the authoritative uniqueness guard; the application-level checks in the
// services only provide friendlier errors.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&LoanApplication{},
	)
}
