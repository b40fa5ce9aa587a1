package aliyun

// queryAccountBalanceResponse QueryAccountBalance 响应。金额为带千分位
// 的字符串，如 "12,345.67"。
type queryAccountBalanceResponse struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
	Success bool   `json:"Success"`
	Data    struct {
		AvailableAmount     string `json:"AvailableAmount"`
		AvailableCashAmount string `json:"AvailableCashAmount"`
		Currency            string `json:"Currency"`
	} `json:"Data"`

	raw string
}
