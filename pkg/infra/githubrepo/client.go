package githubrepo

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/champ-oss/action-update-app/pkg/domain/interfaces"
	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// Client is a thin typed wrapper over the GitHub content and git-data
// endpoints for one repository. It does no retrying and holds no
// state; it only executes calls and classifies failures.
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

var _ interfaces.RepoClient = (*Client)(nil)

// New builds a Client on top of httpClient, which is expected to
// carry installation credentials in its transport.
func New(httpClient *http.Client, owner, repo string) (*Client, error) {
	if httpClient == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "httpClient is nil")
	}
	if owner == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner is empty")
	}
	if repo == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repo is empty")
	}

	return &Client{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
	}, nil
}

func (x *Client) GetBranchHead(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
	ref, resp, err := x.client.Git.GetRef(ctx, x.owner, x.repo, "heads/"+string(branch))
	if err != nil {
		return nil, wrapAPIError(err, resp, "failed to get branch head", goerr.V("branch", branch))
	}

	return &model.BranchRef{
		Name:    branch,
		HeadSHA: types.CommitSHA(ref.GetObject().GetSHA()),
	}, nil
}

func (x *Client) GetFile(ctx context.Context, path, ref string) ([]byte, string, error) {
	opt := &github.RepositoryContentGetOptions{Ref: ref}

	file, dir, resp, err := x.client.Repositories.GetContents(ctx, x.owner, x.repo, path, opt)
	if err != nil {
		return nil, "", wrapAPIError(err, resp, "failed to get file content",
			goerr.V("path", path), goerr.V("ref", ref))
	}
	if file == nil || dir != nil {
		return nil, "", goerr.New("path is not a regular file",
			goerr.T(types.TagNotFound), goerr.V("path", path), goerr.V("ref", ref))
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to decode file content",
			goerr.T(types.TagTransient), goerr.V("path", path))
	}

	return []byte(content), file.GetSHA(), nil
}

func (x *Client) CreateBlob(ctx context.Context, content []byte) (string, error) {
	blob := &github.Blob{
		Content:  github.String(string(content)),
		Encoding: github.String("utf-8"),
	}

	created, resp, err := x.client.Git.CreateBlob(ctx, x.owner, x.repo, blob)
	if err != nil {
		return "", wrapAPIError(err, resp, "failed to create blob")
	}

	return created.GetSHA(), nil
}

func (x *Client) GetTreeSHA(ctx context.Context, commit types.CommitSHA) (string, error) {
	c, resp, err := x.client.Git.GetCommit(ctx, x.owner, x.repo, string(commit))
	if err != nil {
		return "", wrapAPIError(err, resp, "failed to get commit", goerr.V("commit", commit))
	}

	return c.GetTree().GetSHA(), nil
}

func (x *Client) CreateTree(ctx context.Context, baseTreeSHA string, entries []model.TreeEntry) (string, error) {
	treeEntries := make([]*github.TreeEntry, 0, len(entries))
	for _, e := range entries {
		treeEntries = append(treeEntries, &github.TreeEntry{
			Path: github.String(e.Path),
			Mode: github.String(e.Mode),
			Type: github.String("blob"),
			SHA:  github.String(e.BlobSHA),
		})
	}

	tree, resp, err := x.client.Git.CreateTree(ctx, x.owner, x.repo, baseTreeSHA, treeEntries)
	if err != nil {
		return "", wrapAPIError(err, resp, "failed to create tree",
			goerr.V("baseTree", baseTreeSHA), goerr.V("entries", len(entries)))
	}

	return tree.GetSHA(), nil
}

func (x *Client) CreateCommit(ctx context.Context, treeSHA string, parent types.CommitSHA, message string) (*model.CommitRecord, error) {
	commit := &github.Commit{
		Message: github.String(message),
		Tree:    &github.Tree{SHA: github.String(treeSHA)},
		Parents: []*github.Commit{{SHA: github.String(string(parent))}},
	}

	created, resp, err := x.client.Git.CreateCommit(ctx, x.owner, x.repo, commit)
	if err != nil {
		return nil, wrapAPIError(err, resp, "failed to create commit",
			goerr.V("tree", treeSHA), goerr.V("parent", parent))
	}

	return &model.CommitRecord{
		SHA:       types.CommitSHA(created.GetSHA()),
		TreeSHA:   treeSHA,
		ParentSHA: parent,
		Message:   message,
	}, nil
}

// UpdateRef advances the branch to commit without force, so the
// platform rejects the update with a conflict when the branch head no
// longer matches the commit's parent.
func (x *Client) UpdateRef(ctx context.Context, branch types.BranchName, commit types.CommitSHA) error {
	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + string(branch)),
		Object: &github.GitObject{SHA: github.String(string(commit))},
	}

	_, resp, err := x.client.Git.UpdateRef(ctx, x.owner, x.repo, ref, false)
	if err != nil {
		return wrapAPIError(err, resp, "failed to update branch ref",
			goerr.V("branch", branch), goerr.V("commit", commit))
	}

	logging.From(ctx).Debug("updated branch ref",
		slog.Any("branch", branch), slog.Any("commit", commit))

	return nil
}

// UpdateFile is the single-file shortcut over the contents API. The
// call fails with a conflict when knownSHA no longer matches the
// file's current blob.
func (x *Client) UpdateFile(ctx context.Context, path string, content []byte, knownSHA string, branch types.BranchName, message string) (*model.CommitRecord, error) {
	opt := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		SHA:     github.String(knownSHA),
		Branch:  github.String(string(branch)),
	}

	res, resp, err := x.client.Repositories.UpdateFile(ctx, x.owner, x.repo, path, opt)
	if err != nil {
		return nil, wrapAPIError(err, resp, "failed to update file",
			goerr.V("path", path), goerr.V("branch", branch), goerr.V("knownSHA", knownSHA))
	}

	commit := res.GetSHA()
	record := &model.CommitRecord{
		SHA:     types.CommitSHA(commit),
		TreeSHA: res.Commit.GetTree().GetSHA(),
		Message: message,
	}
	if parents := res.Commit.Parents; len(parents) > 0 {
		record.ParentSHA = types.CommitSHA(parents[0].GetSHA())
	}

	return record, nil
}
