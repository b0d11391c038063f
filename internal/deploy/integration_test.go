package deploy_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"sitekit.dev/sitekit/internal/deploy"
	"sitekit.dev/sitekit/internal/git"
	"sitekit.dev/sitekit/testhelpers"
)

// countingRunner wraps a real runner and counts pushes
type countingRunner struct {
	*git.CommandRunner
	calls []string
}

func (c *countingRunner) StageAll(ctx context.Context) error {
	c.calls = append(c.calls, "stage")
	return c.CommandRunner.StageAll(ctx)
}

func (c *countingRunner) Commit(ctx context.Context, message string) error {
	c.calls = append(c.calls, "commit")
	return c.CommandRunner.Commit(ctx, message)
}

func (c *countingRunner) Push(ctx context.Context) error {
	c.calls = append(c.calls, "push")
	return c.CommandRunner.Push(ctx)
}

func newRealRunner(dir string) *countingRunner {
	var out bytes.Buffer
	return &countingRunner{CommandRunner: git.NewCommandRunner(dir).WithOutput(&out, &out)}
}

func TestRunAgainstRepository(t *testing.T) {
	t.Run("publishes working tree changes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("new page", "page", true))

		runner := newRealRunner(scene.Dir)
		log, _ := newLogger(t)

		result, err := deploy.Run(context.Background(), runner, log)
		require.NoError(t, err)
		require.True(t, result.Committed())
		require.Equal(t, []string{"stage", "commit", "push"}, runner.calls)

		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
		require.NoError(t, err)
		require.Equal(t, "deploy: update site", subject)

		ahead, err := scene.Repo.GetCommitCount("origin/main", "main")
		require.NoError(t, err)
		require.Zero(t, ahead)

		local, err := scene.Repo.GetRevision("main")
		require.NoError(t, err)
		remote, err := testhelpers.RemoteRevision(scene.Dir+"-origin.git", "main")
		require.NoError(t, err)
		require.Equal(t, local, remote)
	})

	t.Run("clean tree pushes existing commits", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		// A local commit the remote has not seen yet
		require.NoError(t, scene.Repo.CreateChangeAndCommit("unpushed", "2"))

		runner := newRealRunner(scene.Dir)
		log, buf := newLogger(t)

		result, err := deploy.Run(context.Background(), runner, log)
		require.NoError(t, err)
		require.False(t, result.Committed())
		require.Equal(t, []string{"stage", "commit", "push"}, runner.calls)
		require.Contains(t, buf.String(), "Nothing new to commit")

		repo, err := git.OpenRepository(scene.Dir)
		require.NoError(t, err)
		total, err := repo.CommitCount()
		require.NoError(t, err)
		require.Equal(t, 2, total)

		remote, err := testhelpers.RemoteRevision(scene.Dir+"-origin.git", "main")
		require.NoError(t, err)
		local, err := scene.Repo.GetRevision("main")
		require.NoError(t, err)
		require.Equal(t, local, remote)
	})

	t.Run("missing remote fails with git's status", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChange("change", "page", true))

		runner := newRealRunner(scene.Dir)
		log, buf := newLogger(t)

		_, err := deploy.Run(context.Background(), runner, log)
		require.Error(t, err)
		require.Equal(t, []string{"stage", "commit", "push"}, runner.calls)
		require.NotZero(t, deploy.ExitCode(err))
		require.NotContains(t, buf.String(), "Done.")
	})
}

func TestPreflight(t *testing.T) {
	t.Run("notes a clean tree", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		log, buf := newLogger(t)

		deploy.Preflight(scene.Dir, log)
		require.Contains(t, buf.String(), "Working tree is clean")
	})

	t.Run("debug output describes HEAD", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
		t.Setenv("DEBUG", "1")
		log, buf := newLogger(t)

		deploy.Preflight(scene.Dir, log)
		require.Contains(t, buf.String(), "commits on HEAD: 2")
		require.Regexp(t, `HEAD: [0-9a-f]{7} 2`, buf.String())
	})

	t.Run("silent outside a repository", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		log, buf := newLogger(t)

		deploy.Preflight(t.TempDir(), log)
		require.Empty(t, buf.String())
	})
}
