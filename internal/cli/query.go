package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query account balances",
	Long:  `Fetches and displays the current balance of every configured cloud account.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, registry, err := setup(cmd)
		if err != nil {
			return err
		}

		providerFilter, _ := cmd.Flags().GetString("provider")
		nameFilter, _ := cmd.Flags().GetString("name")
		accounts := filterAccounts(cfg.Accounts, providerFilter, nameFilter)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Settings.Timeout)
		defer cancel()

		results := registry.FetchAll(ctx, accounts)

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return PrintJSON(results)
		}

		PrintTable(results)
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	queryCmd.Flags().StringP("provider", "p", "", "Filter by provider kind")
	queryCmd.Flags().StringP("name", "n", "", "Filter by account name")
}
