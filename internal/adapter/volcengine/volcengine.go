package volcengine

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

var amountCleaner = strings.NewReplacer(",", "", "元", "")

type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ID() provider.Kind {
	return provider.KindVolcengine
}

func (a *Adapter) DisplayName() string {
	return provider.KindVolcengine.Label()
}

func (a *Adapter) ValidateCredentials(account provider.Account) error {
	if account.Credentials["ak"] == "" || account.Credentials["sk"] == "" {
		return fmt.Errorf("volcengine account %q requires ak and sk credentials", account.Name)
	}
	return nil
}

func (a *Adapter) FetchBalance(ctx context.Context, account provider.Account) (decimal.Decimal, error) {
	if err := a.ValidateCredentials(account); err != nil {
		return decimal.Zero, err
	}

	client := NewClient(account.Credentials["ak"], account.Credentials["sk"])

	resp, err := client.QueryBalanceAcct(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("volcengine balance query: %w", err)
	}

	return ExtractAvailableBalance(resp)
}

// ExtractAvailableBalance normalizes a QueryBalanceAcct result. The
// balance fields arrive as either JSON numbers or display strings with
// thousands separators; AvailableBalance is preferred, CashBalance is
// the documented fallback.
func ExtractAvailableBalance(resp *QueryBalanceAcctResponse) (decimal.Decimal, error) {
	raw := resp.Result.AvailableBalance
	if raw == nil {
		raw = resp.Result.CashBalance
	}
	if raw == nil {
		return decimal.Zero, fmt.Errorf("volcengine response missing Result.AvailableBalance: %s", resp.Raw)
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("volcengine balance field has unexpected type %T", raw)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(amountCleaner.Replace(s)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("volcengine amount %q not parseable: %w", s, err)
	}
	return amount, nil
}
