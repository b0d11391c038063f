package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"sitekit.dev/sitekit/internal/deploy"
	"sitekit.dev/sitekit/internal/git"
	"sitekit.dev/sitekit/internal/output"
)

// newDeployCmd creates the deploy command
func newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Stage, commit and push the site repository",
		Long: `Stage every change, commit it as "deploy: update site" and push.

If there is nothing to commit the existing commits are pushed anyway.
The remote and branch are whatever git has configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunDeploy(cmd.Context(), "")
		},
	}
}

// RunDeploy runs the deploy helper in dir (the process working directory
// when empty), with git's output going straight to the terminal.
func RunDeploy(ctx context.Context, dir string) error {
	splog := newSplog()
	defer splog.Close()

	inspectDir := dir
	if inspectDir == "" {
		inspectDir = "."
	}
	deploy.Preflight(inspectDir, splog)

	_, err := deploy.Run(ctx, git.NewCommandRunner(dir), splog)
	if err != nil {
		splog.Debug("deploy failed: %v", err)
	}
	return err
}

func newSplog() *output.Splog {
	splog, err := output.NewSplogWithConfig(os.Stdout, output.GetLogFilePath())
	if err != nil {
		return output.NewSplog()
	}
	return splog
}
