package tencent

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

// Tencent reports balances in fen; divide by 100 to get yuan.
var fenPerYuan = decimal.NewFromInt(100)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ID() provider.Kind {
	return provider.KindTencent
}

func (a *Adapter) DisplayName() string {
	return provider.KindTencent.Label()
}

func (a *Adapter) ValidateCredentials(account provider.Account) error {
	if account.Credentials["secret_id"] == "" || account.Credentials["secret_key"] == "" {
		return fmt.Errorf("tencent account %q requires secret_id and secret_key credentials", account.Name)
	}
	return nil
}

func (a *Adapter) FetchBalance(ctx context.Context, account provider.Account) (decimal.Decimal, error) {
	if err := a.ValidateCredentials(account); err != nil {
		return decimal.Zero, err
	}

	client := NewClient(account.Credentials["secret_id"], account.Credentials["secret_key"])

	resp, err := client.DescribeAccountBalance(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tencent balance query: %w", err)
	}

	if resp.Response.Error != nil {
		return decimal.Zero, fmt.Errorf("tencent api error %s: %s", resp.Response.Error.Code, resp.Response.Error.Message)
	}

	// Balance is the current field; BalanceAmount appears on older API
	// revisions.
	raw := resp.Response.Balance
	if raw == nil {
		raw = resp.Response.BalanceAmount
	}
	if raw == nil {
		return decimal.Zero, fmt.Errorf("tencent response missing Response.Balance: %s", resp.raw)
	}

	return decimal.NewFromInt(*raw).Div(fenPerYuan), nil
}
