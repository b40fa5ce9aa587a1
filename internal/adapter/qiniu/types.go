package qiniu

// balanceOverviewResponse 账户余额概览响应（余额单位为分厘，1e-8 元）
type balanceOverviewResponse struct {
	Data struct {
		AvailableBalance *int64 `json:"available_balance"`
		Balance          *int64 `json:"balance"`
		Currency         string `json:"currency"`
	} `json:"data"`

	raw string
}
