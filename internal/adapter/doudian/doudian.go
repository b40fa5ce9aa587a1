// Package doudian queries Doudian (抖店) account balances. The Doudian
// billing endpoint speaks the Volcengine open-API protocol with its own
// app key pair, so the adapter drives the volcengine client with a
// doudian credential mapping.
package doudian

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/user/cloud-balance-monitor/internal/adapter/volcengine"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

// Overrides the volcengine endpoint when set; used by tests.
var baseURL = ""

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ID() provider.Kind {
	return provider.KindDoudian
}

func (a *Adapter) DisplayName() string {
	return provider.KindDoudian.Label()
}

func (a *Adapter) ValidateCredentials(account provider.Account) error {
	if account.Credentials["app_key"] == "" || account.Credentials["app_secret"] == "" {
		return fmt.Errorf("doudian account %q requires app_key and app_secret credentials", account.Name)
	}
	return nil
}

func (a *Adapter) FetchBalance(ctx context.Context, account provider.Account) (decimal.Decimal, error) {
	if err := a.ValidateCredentials(account); err != nil {
		return decimal.Zero, err
	}

	client := volcengine.NewClient(account.Credentials["app_key"], account.Credentials["app_secret"])
	if baseURL != "" {
		client.BaseURL = baseURL
	}

	resp, err := client.QueryBalanceAcct(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("doudian balance query: %w", err)
	}

	return volcengine.ExtractAvailableBalance(resp)
}
