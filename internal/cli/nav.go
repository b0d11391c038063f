package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sitekit.dev/sitekit/internal/nav"
	"sitekit.dev/sitekit/internal/output"
)

// newNavCmd creates the nav command
func newNavCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Work with the mobile navigation sidebar markup",
	}
	cmd.AddCommand(newNavPrepareCmd())
	return cmd
}

func newNavPrepareCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "prepare <file>...",
		Short: "Insert the sidebar overlay into pages that lack one",
		Long: `Insert <div class="sidebar-overlay"></div> right after the .sidebar element
of every page that has a sidebar but no overlay. Pages are rewritten in place.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog, err := output.NewSplogWithConfig(cmd.OutOrStdout(), "")
			if err != nil {
				return err
			}
			return preparePages(splog, args, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "report pages missing the overlay without writing them")
	return cmd
}

func preparePages(splog *output.Splog, paths []string, check bool) error {
	var pending []string

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var out bytes.Buffer
		changed, err := nav.PrepareMarkup(bytes.NewReader(data), &out)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !changed {
			splog.Debug("%s: up to date", path)
			continue
		}

		if check {
			pending = append(pending, path)
			splog.Warn("%s: missing sidebar overlay", path)
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, out.Bytes(), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		splog.Info("%s: added sidebar overlay", path)
	}

	if len(pending) > 0 {
		return fmt.Errorf("%d page(s) missing the sidebar overlay", len(pending))
	}
	return nil
}
