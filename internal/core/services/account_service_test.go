package services_test

import (
	"context"
	"errors"
	"testing"

	"bankcore/internal/core/domain"
	"bankcore/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccountInput() *services.CreateAccountInput {
	return &services.CreateAccountInput{
		Name:        "Jane Doe",
		DateOfBirth: dobYearsAgo(30),
		TaxID:       "abcde1234f",
		NationalID:  "2345 6789 0124",
		Balance:     5000,
		AccountType: "Savings",
	}
}

func TestAccountServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a normalized account", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		account, err := svc.Create(ctx, validAccountInput())
		require.NoError(t, err)

		assert.Equal(t, "ABCDE1234F", account.TaxID)
		assert.Equal(t, "234567890124", account.NationalID)
		assert.Equal(t, "savings", account.AccountType)
		assert.Equal(t, domain.AccountStatusActive, account.Status)
		assert.False(t, account.KYCVerified)
		assert.Len(t, account.AccountNumber, 12)
		assert.Equal(t, "50", account.AccountNumber[:2])
		assert.Len(t, repo.accounts, 1)
	})

	t.Run("invalid application reports every failure and persists nothing", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		_, err := svc.Create(ctx, &services.CreateAccountInput{
			Name:        "J",
			DateOfBirth: "garbage",
			TaxID:       "bad",
			NationalID:  "123",
			Balance:     -5,
			AccountType: "premium",
		})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Errors, 6)
		assert.Empty(t, repo.accounts)
	})

	t.Run("duplicate tax id rejected", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		_, err := svc.Create(ctx, validAccountInput())
		require.NoError(t, err)

		// Same tax id, fresh national id.
		input := validAccountInput()
		input.NationalID = "998877665548"
		_, err = svc.Create(ctx, input)

		var dup *domain.DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "tax_id", dup.Field)
		assert.Len(t, repo.accounts, 1)
	})

	t.Run("duplicate national id rejected", func(t *testing.T) {
		repo := newFakeAccountRepo()
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		_, err := svc.Create(ctx, validAccountInput())
		require.NoError(t, err)

		input := validAccountInput()
		input.TaxID = "FGHIJ5678K"
		_, err = svc.Create(ctx, input)

		var dup *domain.DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "national_id", dup.Field)
	})

	t.Run("account number regenerated on collision", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.numberCollisions = 2
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		account, err := svc.Create(ctx, validAccountInput())
		require.NoError(t, err)
		assert.Len(t, account.AccountNumber, 12)
	})

	t.Run("collision on every attempt fails the request", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.numberCollisions = 3
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		_, err := svc.Create(ctx, validAccountInput())

		var dup *domain.DuplicateKeyError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "account_number", dup.Field)
		assert.Empty(t, repo.accounts)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := newFakeAccountRepo()
		repo.failure = errors.New("connection refused")
		svc := services.NewAccountService(repo, services.NewDocumentValidator())

		_, err := svc.Create(ctx, validAccountInput())
		assert.EqualError(t, err, "connection refused")
	})
}

func TestAccountServiceLookups(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, services.NewDocumentValidator())

	created, err := svc.Create(ctx, validAccountInput())
	require.NoError(t, err)

	t.Run("by number", func(t *testing.T) {
		got, err := svc.GetByNumber(ctx, created.AccountNumber)
		require.NoError(t, err)
		assert.Equal(t, created.TaxID, got.TaxID)
	})

	t.Run("by number miss", func(t *testing.T) {
		_, err := svc.GetByNumber(ctx, "509999999999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("by id", func(t *testing.T) {
		got, err := svc.GetByID(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, created.AccountNumber, got.AccountNumber)
	})

	t.Run("by id miss", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-a-number")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAccountServiceList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	svc := services.NewAccountService(repo, services.NewDocumentValidator())

	fixtures := []struct{ taxID, nationalID string }{
		{"ABCDE1234F", "234567890124"},
		{"FGHIJ5678K", "998877665548"},
		{"KLMNO9012P", "123456789010"},
	}
	for _, fx := range fixtures {
		input := validAccountInput()
		input.TaxID = fx.taxID
		input.NationalID = fx.nationalID
		_, err := svc.Create(ctx, input)
		require.NoError(t, err)
	}

	t.Run("returns accounts in insertion order", func(t *testing.T) {
		accounts, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, accounts, 3)
		assert.Equal(t, "ABCDE1234F", accounts[0].TaxID)
		assert.Equal(t, "KLMNO9012P", accounts[2].TaxID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		accounts, err := svc.List(ctx, 1, 1)
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, "FGHIJ5678K", accounts[0].TaxID)
	})

	t.Run("excludes deleted accounts", func(t *testing.T) {
		repo.accounts[1].Status = domain.AccountStatusDeleted
		defer func() { repo.accounts[1].Status = domain.AccountStatusActive }()

		accounts, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, accounts, 2)
	})
}

func TestAccountServiceValidateDocuments(t *testing.T) {
	svc := services.NewAccountService(newFakeAccountRepo(), services.NewDocumentValidator())

	tests := []struct {
		name       string
		taxID      string
		nationalID string
		wantTax    bool
		wantNat    bool
	}{
		{"both valid", "ABCDE1234F", "234567890124", true, true},
		{"tax invalid", "ABCDE123F", "234567890124", false, true},
		{"national invalid", "ABCDE1234F", "637678011892", true, false},
		{"both invalid", "bad", "123", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.ValidateDocuments(tt.taxID, tt.nationalID)
			assert.Equal(t, tt.wantTax, result.TaxIDValid)
			assert.Equal(t, tt.wantNat, result.NationalIDValid)
			assert.Equal(t, tt.wantTax && tt.wantNat, result.BothValid)
		})
	}
}
