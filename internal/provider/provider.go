package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// Provider fetches the account balance from one cloud vendor's billing
// API. Implementations must never panic across this boundary: a missing
// credential, network failure, or unrecognized payload is an error
// return, which the registry downgrades to a failed BalanceResult.
type Provider interface {
	ID() Kind
	DisplayName() string
	ValidateCredentials(account Account) error
	FetchBalance(ctx context.Context, account Account) (decimal.Decimal, error)
}
