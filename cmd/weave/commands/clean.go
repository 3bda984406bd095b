package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove generated proxies and the compilation cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			proxies, _ := cmd.Flags().GetBool("proxies")
			cache, _ := cmd.Flags().GetBool("cache")

			opts := app.CleanOptions{ConfigPath: configPath(cmd)}
			switch {
			case proxies || cache:
				opts.Proxies = proxies
				opts.Cache = cache
			default:
				opts.Proxies = true
				opts.Cache = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("proxies", false, "Only remove generated proxy files")
	cmd.Flags().Bool("cache", false, "Only remove the compilation cache and compiled container")

	return cmd
}
