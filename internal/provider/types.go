package provider

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies a cloud vendor whose billing API we can query.
type Kind string

const (
	KindAliyun     Kind = "aliyun"
	KindVolcengine Kind = "volcengine"
	KindTencent    Kind = "tencent"
	KindDoudian    Kind = "doudian"
	KindHuawei     Kind = "huawei"
	KindQiniu      Kind = "qiniu"
)

// Label returns the Chinese display label used in reports.
func (k Kind) Label() string {
	switch k {
	case KindAliyun:
		return "阿里云"
	case KindVolcengine:
		return "火山云"
	case KindTencent:
		return "腾讯云"
	case KindDoudian:
		return "抖店云"
	case KindHuawei:
		return "华为云"
	case KindQiniu:
		return "七牛云"
	default:
		return string(k)
	}
}

// Icon returns the decorative emoji for a vendor. Unknown kinds get a
// generic cloud.
func (k Kind) Icon() string {
	switch k {
	case KindAliyun:
		return "🐪"
	case KindVolcengine:
		return "🌋"
	case KindTencent:
		return "🐧"
	case KindDoudian:
		return "🛒"
	case KindHuawei:
		return "🌸"
	case KindQiniu:
		return "🦒"
	default:
		return "☁️"
	}
}

type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Account is one configured billing account. Credential values are
// vendor-specific named fields (access_key/access_secret, ak/sk, ...)
// and are never serialized back out.
type Account struct {
	Provider    Kind              `yaml:"provider" json:"provider"`
	Name        string            `yaml:"name" json:"name"`
	Credentials map[string]string `yaml:"credentials" json:"-"`
}

// BalanceResult is the outcome of one balance query. Exactly one of
// Amount and Error is meaningful, discriminated by Status; Amount is
// always denominated in whole yuan.
type BalanceResult struct {
	Provider    Kind            `json:"provider"`
	DisplayName string          `json:"display_name"`
	Icon        string          `json:"icon"`
	Name        string          `json:"name"`
	Timestamp   time.Time       `json:"timestamp"`
	Status      Status          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Error       string          `json:"error,omitempty"`
}
