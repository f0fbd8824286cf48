package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubApp RepoClient Workspace

import (
	"context"
	"net/http"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
)

// GitHubApp exchanges the long-lived App identity for short-lived
// installation credentials.
type GitHubApp interface {
	// MintToken returns an installation access token, re-minting when
	// the cached one is expired. Failures carry the auth tag.
	MintToken(ctx context.Context) (*model.InstallationToken, error)

	// HTTPClient returns an http.Client whose transport injects and
	// refreshes installation tokens.
	HTTPClient() (*http.Client, error)
}

// RepoClient is a thin typed capability set over the hosting API's
// content and git-data endpoints. Every returned error carries exactly
// one of the kind tags in types (auth, not_found, conflict, transient).
type RepoClient interface {
	GetBranchHead(ctx context.Context, branch types.BranchName) (*model.BranchRef, error)
	GetFile(ctx context.Context, path, ref string) (content []byte, sha string, err error)
	CreateBlob(ctx context.Context, content []byte) (blobSHA string, err error)
	GetTreeSHA(ctx context.Context, commit types.CommitSHA) (treeSHA string, err error)
	CreateTree(ctx context.Context, baseTreeSHA string, entries []model.TreeEntry) (treeSHA string, err error)
	CreateCommit(ctx context.Context, treeSHA string, parent types.CommitSHA, message string) (*model.CommitRecord, error)
	UpdateRef(ctx context.Context, branch types.BranchName, commit types.CommitSHA) error
	UpdateFile(ctx context.Context, path string, content []byte, knownSHA string, branch types.BranchName, message string) (*model.CommitRecord, error)
}

// Workspace provides a local clone of the target branch and read
// access to its files.
type Workspace interface {
	CloneOrUpdate(ctx context.Context, branch types.BranchName) error
	Read(path string) ([]byte, error)
}
