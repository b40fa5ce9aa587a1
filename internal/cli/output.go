package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

func PrintJSON(data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data to JSON: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func PrintTable(results []provider.BalanceResult) error {
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Headers("PROVIDER", "ACCOUNT", "BALANCE (元)", "STATUS")

	for _, r := range results {
		t.Row(
			fmt.Sprintf("%s%s", r.Icon, r.DisplayName),
			r.Name,
			formatBalance(r),
			formatStatus(r),
		)
	}

	header := "Cloud Account Balances"
	footer := fmt.Sprintf("Updated: %s", time.Now().Format(time.RFC1123))

	fmt.Println(header)
	fmt.Println(t)
	fmt.Println(footer)

	return nil
}

func formatBalance(r provider.BalanceResult) string {
	if r.Status != provider.StatusOK {
		return "-"
	}
	return r.Amount.StringFixed(2)
}

func formatStatus(r provider.BalanceResult) string {
	if r.Status == provider.StatusOK {
		return "ok"
	}
	return r.Error
}
