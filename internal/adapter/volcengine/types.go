package volcengine

// QueryBalanceAcctResponse QueryBalanceAcct 响应。余额字段在不同版本间
// 既可能是数字也可能是带千分位的字符串。
type QueryBalanceAcctResponse struct {
	ResponseMetadata struct {
		RequestID string    `json:"RequestId"`
		Action    string    `json:"Action"`
		Error     *apiError `json:"Error"`
	} `json:"ResponseMetadata"`
	Result struct {
		AccountID        int64 `json:"AccountID"`
		AvailableBalance any   `json:"AvailableBalance"`
		CashBalance      any   `json:"CashBalance"`
	} `json:"Result"`

	Raw string `json:"-"`
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
