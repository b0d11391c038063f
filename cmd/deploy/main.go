// Command deploy stages, commits and pushes the repository in the current
// directory. It takes no arguments; its exit status is that of the first
// failing git step.
package main

import (
	"context"
	"fmt"
	"os"

	"sitekit.dev/sitekit/internal/cli"
	"sitekit.dev/sitekit/internal/deploy"
)

func main() {
	if err := cli.RunDeploy(context.Background(), ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(deploy.ExitCode(err))
	}
}
