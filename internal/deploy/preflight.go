package deploy

import (
	"sitekit.dev/sitekit/internal/git"
)

// Preflight logs what is about to be deployed. It only reads the repository
// and never fails; problems are left for git itself to report.
func Preflight(dir string, log Logger) {
	repo, err := git.OpenRepository(dir)
	if err != nil {
		log.Debug("skipping preflight: %v", err)
		return
	}

	log.Debug("repository: %s", repo.GetRepoRoot())

	if summary, err := repo.HeadSummary(); err != nil {
		log.Debug("could not read HEAD: %v", err)
	} else if summary != "" {
		log.Debug("HEAD: %s", summary)
	}

	if count, err := repo.CommitCount(); err != nil {
		log.Debug("could not count commits: %v", err)
	} else {
		log.Debug("commits on HEAD: %d", count)
	}

	clean, err := repo.IsClean()
	switch {
	case err != nil:
		log.Debug("could not read status: %v", err)
	case clean:
		log.Info("Working tree is clean; only existing commits will be pushed.")
	default:
		log.Debug("working tree has changes")
	}
}
