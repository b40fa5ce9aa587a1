package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/cloud-balance-monitor/internal/adapter"
	"github.com/user/cloud-balance-monitor/internal/config"
	"github.com/user/cloud-balance-monitor/internal/provider"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "balance-mon",
		Short: "Cloud Balance Monitor",
		Long:  `A tool to poll account balances across cloud vendors and deliver a signed DingTalk report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return queryCmd.RunE(cmd, args)
		},
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/balance-mon/config.yaml)")

	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	rootCmd.Flags().StringP("provider", "p", "", "Filter by provider kind")
	rootCmd.Flags().StringP("name", "n", "", "Filter by account name")
}

func setup(cmd *cobra.Command) (*config.Config, *provider.Registry, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry := provider.NewRegistry()
	adapter.RegisterAll(registry)

	return cfg, registry, nil
}

func filterAccounts(accounts []provider.Account, providerFilter, nameFilter string) []provider.Account {
	var filtered []provider.Account
	for _, acc := range accounts {
		if providerFilter != "" && string(acc.Provider) != providerFilter {
			continue
		}
		if nameFilter != "" && acc.Name != nameFilter {
			continue
		}
		filtered = append(filtered, acc)
	}
	return filtered
}
