package git_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	sitekiterrors "sitekit.dev/sitekit/internal/errors"
	"sitekit.dev/sitekit/internal/git"
	"sitekit.dev/sitekit/testhelpers"
)

func newQuietRunner(dir string) (*git.CommandRunner, *bytes.Buffer) {
	var out bytes.Buffer
	return git.NewCommandRunner(dir).WithOutput(&out, &out), &out
}

func TestStageAll(t *testing.T) {
	t.Run("stages modified and untracked files", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner, _ := newQuietRunner(scene.Dir)

		require.NoError(t, scene.Repo.CreateChange("modified", "1", true))
		require.NoError(t, scene.Repo.CreateChange("untracked", "new", true))

		hasStaged, err := runner.HasStagedChanges(context.Background())
		require.NoError(t, err)
		require.False(t, hasStaged)

		require.NoError(t, runner.StageAll(context.Background()))

		hasStaged, err = runner.HasStagedChanges(context.Background())
		require.NoError(t, err)
		require.True(t, hasStaged)
	})
}

func TestCommit(t *testing.T) {
	t.Run("records staged changes", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner, _ := newQuietRunner(scene.Dir)

		require.NoError(t, scene.Repo.CreateChange("second", "2", false))
		require.NoError(t, runner.Commit(context.Background(), "deploy: update site"))

		subject, err := scene.Repo.RunGitCommandAndGetOutput("log", "-1", "--format=%s")
		require.NoError(t, err)
		require.Equal(t, "deploy: update site", subject)
	})

	t.Run("fails with nothing to commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner, out := newQuietRunner(scene.Dir)

		err := runner.Commit(context.Background(), "deploy: update site")
		require.Error(t, err)
		require.ErrorIs(t, err, sitekiterrors.ErrGitCommand)
		require.Contains(t, out.String(), "nothing to commit")

		var gitErr *sitekiterrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		require.Equal(t, 1, gitErr.ExitCode())
	})
}

func TestPush(t *testing.T) {
	t.Run("pushes to upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.RemoteSceneSetup)
		runner, _ := newQuietRunner(scene.Dir)

		require.NoError(t, scene.Repo.CreateChangeAndCommit("second", "2"))
		require.NoError(t, runner.Push(context.Background()))

		local, err := scene.Repo.GetRevision("main")
		require.NoError(t, err)
		remote, err := testhelpers.RemoteRevision(scene.Dir+"-origin.git", "main")
		require.NoError(t, err)
		require.Equal(t, local, remote)
	})

	t.Run("fails without a remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		runner, _ := newQuietRunner(scene.Dir)

		err := runner.Push(context.Background())
		require.Error(t, err)

		var gitErr *sitekiterrors.GitCommandError
		require.ErrorAs(t, err, &gitErr)
		require.NotZero(t, gitErr.ExitCode())
	})
}

func TestRunCapturesOutput(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	runner := git.NewCommandRunner(scene.Dir)

	branch, err := runner.Run(context.Background(), "rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "main", branch)
}
