package huawei

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

// Huawei BSS reports balances in fen; divide by 100 to get yuan.
var fenPerYuan = decimal.NewFromInt(100)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ID() provider.Kind {
	return provider.KindHuawei
}

func (a *Adapter) DisplayName() string {
	return provider.KindHuawei.Label()
}

func (a *Adapter) ValidateCredentials(account provider.Account) error {
	if account.Credentials["ak"] == "" || account.Credentials["sk"] == "" {
		return fmt.Errorf("huawei account %q requires ak and sk credentials", account.Name)
	}
	return nil
}

func (a *Adapter) FetchBalance(ctx context.Context, account provider.Account) (decimal.Decimal, error) {
	if err := a.ValidateCredentials(account); err != nil {
		return decimal.Zero, err
	}

	client := NewClient(account.Credentials["ak"], account.Credentials["sk"])

	resp, err := client.ShowCustomerAccountBalances(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("huawei balance query: %w", err)
	}

	if len(resp.AccountBalances) == 0 {
		return decimal.Zero, fmt.Errorf("huawei response missing account_balances: %s", resp.raw)
	}

	amount, err := decimal.NewFromString(resp.AccountBalances[0].Amount.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("huawei amount %q not parseable: %w", resp.AccountBalances[0].Amount, err)
	}
	return amount.Div(fenPerYuan), nil
}
