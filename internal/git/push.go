package git

import (
	"context"
	"fmt"
)

// Push pushes the current branch using git's configured remote and upstream
func (r *CommandRunner) Push(ctx context.Context) error {
	if err := r.Passthrough(ctx, "push"); err != nil {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}
