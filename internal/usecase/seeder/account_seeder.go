package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account defines an account to be opened at startup
type Account struct {
	ID      uuid.UUID
	Balance decimal.Decimal
}

// AccountOpener creates an account unless it already exists
type AccountOpener interface {
	OpenAccount(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error
}

// AccountSeeder handles seeding of development accounts
type AccountSeeder struct {
	opener AccountOpener
}

// NewAccountSeeder creates a new AccountSeeder instance
func NewAccountSeeder(opener AccountOpener) *AccountSeeder {
	return &AccountSeeder{
		opener: opener,
	}
}

// Seed ensures every account exists. Existing accounts keep their balance,
// so seeding is safe to repeat on every start.
func (s *AccountSeeder) Seed(ctx context.Context, accounts []Account) error {
	for _, account := range accounts {
		// Validate before creating
		if account.ID == uuid.Nil {
			return errors.New("seed account ID cannot be empty")
		}
		if account.Balance.IsNegative() {
			return fmt.Errorf("seed account %s cannot have a negative balance", account.ID)
		}

		if err := s.opener.OpenAccount(ctx, account.ID, account.Balance); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.ID, err)
		}
	}

	return nil
}
