package commands

import (
	"github.com/spf13/cobra"
	"github.com/wanderbot/trip-cli/internal/config"
	"github.com/wanderbot/trip-cli/internal/output"
)

func ProvidersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List plan providers and their status",
		RunE: func(cmd *cobra.Command, args []string) error {
			modeFlag, _ := cmd.Flags().GetString("mode")
			cfg := config.Load().WithMode(modeFlag)

			router := buildRouter(cfg)
			return output.JSON(router.ProviderInfos())
		},
	}
	return cmd
}
