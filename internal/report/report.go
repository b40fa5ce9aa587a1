// Package report renders aggregated balance results into the DingTalk
// markdown message body.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/user/cloud-balance-monitor/internal/provider"
)

const Title = "云平台余额通知"

// Render builds the markdown report: a timestamp header followed by one
// line per result in input order. Failures are rendered inline in the
// amount position so broken integrations stay visible to the recipient.
func Render(results []provider.BalanceResult, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", Title)
	fmt.Fprintf(&b, "> 时间：%s\n\n", generatedAt.Format("2006-01-02 15:04"))

	for _, r := range results {
		icon := r.Icon
		if icon == "" {
			icon = r.Provider.Icon()
		}
		label := r.DisplayName
		if label == "" {
			label = r.Provider.Label()
		}

		value := r.Error
		if r.Status == provider.StatusOK {
			value = r.Amount.String()
		}

		fmt.Fprintf(&b, "- %s%s【%s】：%s 元\n", icon, label, r.Name, value)
	}

	return b.String()
}
