package git

import (
	"context"
	"fmt"
)

// Commit records the staged changes with the given message.
// Git exits non-zero when there is nothing to commit; that surfaces here as an
// error like any other failure.
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	if err := r.Passthrough(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
