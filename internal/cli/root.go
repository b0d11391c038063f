package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sitekit",
		Short: "Sitekit publishes a static documentation site and prepares its pages",
		Long: `Sitekit publishes a static documentation site and prepares its pages.

"sitekit deploy" stages, commits and pushes the site repository.
"sitekit nav prepare" makes sure pages ship with the sidebar overlay.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newNavCmd())

	return rootCmd
}
