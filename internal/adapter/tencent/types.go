package tencent

// describeAccountBalanceResponse DescribeAccountBalance 响应（余额单位为分）
type describeAccountBalanceResponse struct {
	Response struct {
		Balance       *int64    `json:"Balance"`
		BalanceAmount *int64    `json:"BalanceAmount"`
		Error         *apiError `json:"Error"`
		RequestID     string    `json:"RequestId"`
	} `json:"Response"`

	raw string
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}
