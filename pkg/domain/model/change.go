package model

import (
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// BranchRef is the observed head of a branch. It is the
// optimistic-concurrency token for a publish cycle: the head sha
// becomes the parent of the next commit, and the ref update fails
// with a conflict if the branch moved in the meantime.
type BranchRef struct {
	Name    types.BranchName
	HeadSHA types.CommitSHA
}

// FileChange is one edited file destined for a commit. KnownSHA is
// the remote blob sha the caller observed; it is required for the
// single-file contents API path and empty for tree-based commits.
type FileChange struct {
	Path       string
	NewContent []byte
	KnownSHA   string
}

// ChangeSet is an ordered set of file changes that must land in
// exactly one commit.
type ChangeSet struct {
	Files []FileChange
}

func (x *ChangeSet) Validate() error {
	if len(x.Files) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "change set is empty")
	}

	seen := make(map[string]struct{}, len(x.Files))
	for _, f := range x.Files {
		if f.Path == "" {
			return goerr.Wrap(types.ErrValidationFailed, "file change has empty path")
		}
		if _, ok := seen[f.Path]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicated path in change set", goerr.V("path", f.Path))
		}
		seen[f.Path] = struct{}{}
	}

	return nil
}

// FileModeBlob is the git mode for a regular file tree entry.
const FileModeBlob = "100644"

// TreeEntry maps a path to a created blob in a new tree.
type TreeEntry struct {
	Path    string
	Mode    string
	BlobSHA string
}

// CommitRecord is the terminal artifact of a successful publish.
type CommitRecord struct {
	SHA       types.CommitSHA
	TreeSHA   string
	ParentSHA types.CommitSHA
	Message   string
}
