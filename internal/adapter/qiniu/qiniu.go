package qiniu

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

// Qiniu reports the new balance-overview figure in "fen-li"
// (1e-8 yuan); divide by 1e8 to get yuan.
var fenLiPerYuan = decimal.New(1, 8)

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ID() provider.Kind {
	return provider.KindQiniu
}

func (a *Adapter) DisplayName() string {
	return provider.KindQiniu.Label()
}

func (a *Adapter) ValidateCredentials(account provider.Account) error {
	if account.Credentials["ak"] == "" || account.Credentials["sk"] == "" {
		return fmt.Errorf("qiniu account %q requires ak and sk credentials", account.Name)
	}
	return nil
}

func (a *Adapter) FetchBalance(ctx context.Context, account provider.Account) (decimal.Decimal, error) {
	if err := a.ValidateCredentials(account); err != nil {
		return decimal.Zero, err
	}

	client := NewClient(account.Credentials["ak"], account.Credentials["sk"])

	resp, err := client.GetBalanceOverview(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("qiniu balance query: %w", err)
	}

	// available_balance is the documented field; older responses carry
	// balance instead.
	raw := resp.Data.AvailableBalance
	if raw == nil {
		raw = resp.Data.Balance
	}
	if raw == nil {
		return decimal.Zero, fmt.Errorf("qiniu response missing data.available_balance: %s", resp.raw)
	}

	return decimal.NewFromInt(*raw).Div(fenLiPerYuan), nil
}
