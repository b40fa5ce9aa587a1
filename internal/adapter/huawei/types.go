package huawei

import "encoding/json"

// accountBalancesResponse ShowCustomerAccountBalances 响应（金额单位为分）
type accountBalancesResponse struct {
	AccountBalances []accountBalance `json:"account_balances"`
	DebtAmount      json.Number      `json:"debt_amount"`
	MeasureID       int              `json:"measure_id"`

	raw string
}

type accountBalance struct {
	AccountID        string      `json:"account_id"`
	AccountType      int         `json:"account_type"`
	Amount           json.Number `json:"amount"`
	Currency         string      `json:"currency"`
	DesignatedAmount json.Number `json:"designated_amount"`
}

type apiError struct {
	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}
