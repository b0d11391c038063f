package main

import (
	"fmt"
	"os"

	"sitekit.dev/sitekit/internal/cli"
	"sitekit.dev/sitekit/internal/deploy"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(deploy.ExitCode(err))
	}
}
