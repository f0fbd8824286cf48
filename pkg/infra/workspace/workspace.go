package workspace

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/champ-oss/action-update-app/pkg/domain/interfaces"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/champ-oss/action-update-app/pkg/utils/safe"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
)

// Local is a working copy of one branch of the target repository,
// cloned over HTTPS with installation-token auth. The pull in
// CloneOrUpdate completes before Read is called, so substitutions
// never see stale bytes.
type Local struct {
	remoteURL string
	dir       string
	auth      *githttp.BasicAuth
}

var _ interfaces.Workspace = (*Local)(nil)

func New(owner, repo, dir string, token types.GitHubToken) (*Local, error) {
	if owner == "" || repo == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner and repo must be set")
	}
	if dir == "" {
		dir = repo
	}

	return NewFromURL("https://github.com/"+owner+"/"+repo+".git", dir, token)
}

// NewFromURL builds a workspace over an explicit remote URL. Token
// auth is applied only when a token is given, so local and SSH
// remotes keep working.
func NewFromURL(remoteURL, dir string, token types.GitHubToken) (*Local, error) {
	if remoteURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "remote URL is empty")
	}
	if dir == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "local directory is empty")
	}

	ws := &Local{
		remoteURL: remoteURL,
		dir:       dir,
	}
	if token != "" {
		ws.auth = &githttp.BasicAuth{
			Username: "x-access-token",
			Password: string(token),
		}
	}

	return ws, nil
}

// Dir returns the local path of the working copy.
func (x *Local) Dir() string {
	return x.dir
}

// CloneOrUpdate clones branch into the local directory, or pulls it
// when a clone already exists there.
func (x *Local) CloneOrUpdate(ctx context.Context, branch types.BranchName) error {
	refName := plumbing.NewBranchReferenceName(string(branch))

	logging.From(ctx).Info("preparing workspace",
		slog.String("url", x.remoteURL),
		slog.String("dir", x.dir),
		slog.Any("branch", branch),
	)

	_, err := git.PlainCloneContext(ctx, x.dir, false, &git.CloneOptions{
		URL:           x.remoteURL,
		ReferenceName: refName,
		SingleBranch:  true,
		Auth:          x.auth,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return goerr.Wrap(err, "failed to clone repository",
			goerr.V("url", x.remoteURL), goerr.V("branch", branch))
	}

	repo, err := git.PlainOpen(x.dir)
	if err != nil {
		return goerr.Wrap(err, "failed to open existing workspace", goerr.V("dir", x.dir))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("dir", x.dir))
	}

	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName:    "origin",
		ReferenceName: refName,
		SingleBranch:  true,
		Auth:          x.auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return goerr.Wrap(err, "failed to pull branch",
			goerr.V("dir", x.dir), goerr.V("branch", branch))
	}

	return nil
}

// Read returns the content of a tracked file, by path relative to the
// repository root.
func (x *Local) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(x.dir, filepath.Clean(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "file not found in workspace",
				goerr.T(types.TagNotFound), goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read workspace file", goerr.V("path", path))
	}

	return data, nil
}

// Clean removes the local clone. Called on fatal exit paths so a
// failed run leaves no working copy behind.
func (x *Local) Clean() {
	safe.RemoveAll(x.dir)
}
