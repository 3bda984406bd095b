package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Weave the container and generate proxies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), runOptions(cmd))
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the compilation cache and recompute every class")
	cmd.Flags().StringP("provider", "p", "", "Override the compilation cache provider (file, badger, sqlite, memory, none)")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	noCache, _ := cmd.Flags().GetBool("no-cache")
	provider, _ := cmd.Flags().GetString("provider")
	return app.RunOptions{
		ConfigPath: configPath(cmd),
		NoCache:    noCache,
		Provider:   provider,
	}
}
