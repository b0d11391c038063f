// Package git provides low-level Git operations.
//
// It wraps git command execution for the deploy helper:
//   - Staging the working tree (add)
//   - Recording a commit
//   - Pushing to the configured remote
//   - Read-only repository inspection through go-git
//
// This package should be the only place where git commands are executed.
package git
