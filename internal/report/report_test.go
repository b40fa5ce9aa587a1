package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

func okResult(kind provider.Kind, name, amount string) provider.BalanceResult {
	return provider.BalanceResult{
		Provider:    kind,
		DisplayName: kind.Label(),
		Icon:        kind.Icon(),
		Name:        name,
		Status:      provider.StatusOK,
		Amount:      decimal.RequireFromString(amount),
	}
}

func failedResult(kind provider.Kind, name, msg string) provider.BalanceResult {
	return provider.BalanceResult{
		Provider:    kind,
		DisplayName: kind.Label(),
		Icon:        kind.Icon(),
		Name:        name,
		Status:      provider.StatusError,
		Error:       msg,
	}
}

func TestRender_Header(t *testing.T) {
	generatedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.Local)

	out := Render(nil, generatedAt)

	assert.Contains(t, out, "### 云平台余额通知")
	assert.Contains(t, out, "> 时间：2025-06-01 09:30")
}

func TestRender_OneLinePerResult(t *testing.T) {
	results := []provider.BalanceResult{
		okResult(provider.KindAliyun, "prod", "12345.67"),
		okResult(provider.KindAliyun, "staging", "88"),
		okResult(provider.KindTencent, "prod", "1234.56"),
	}

	out := Render(results, time.Now())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var itemLines []string
	for _, l := range lines {
		if strings.HasPrefix(l, "- ") {
			itemLines = append(itemLines, l)
		}
	}

	assert.Len(t, itemLines, 3)
	assert.Equal(t, "- 🐪阿里云【prod】：12345.67 元", itemLines[0])
	assert.Equal(t, "- 🐪阿里云【staging】：88 元", itemLines[1])
	assert.Equal(t, "- 🐧腾讯云【prod】：1234.56 元", itemLines[2])
	assert.NotContains(t, out, "连接超时")
}

func TestRender_FailureInline(t *testing.T) {
	results := []provider.BalanceResult{
		okResult(provider.KindQiniu, "cdn", "42"),
		failedResult(provider.KindHuawei, "prod", "huawei balance query: 连接超时"),
	}

	out := Render(results, time.Now())

	assert.Contains(t, out, "- 🦒七牛云【cdn】：42 元")
	assert.Contains(t, out, "- 🌸华为云【prod】：huawei balance query: 连接超时 元")
}

func TestRender_PreservesInputOrder(t *testing.T) {
	results := []provider.BalanceResult{
		okResult(provider.KindQiniu, "b", "1"),
		okResult(provider.KindAliyun, "a", "2"),
	}

	out := Render(results, time.Now())

	assert.Less(t, strings.Index(out, "【b】"), strings.Index(out, "【a】"),
		"results must render in configuration order, not provider order")
}

func TestRender_UnknownKindFallsBack(t *testing.T) {
	results := []provider.BalanceResult{
		{Provider: provider.Kind("somecloud"), Name: "x", Status: provider.StatusError, Error: "provider \"somecloud\" not registered"},
	}

	out := Render(results, time.Now())

	assert.Contains(t, out, "☁️somecloud【x】")
}
