package model

import (
	"strings"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Substitution describes the line-oriented text transform applied to
// each target file: the remainder of any line starting with
// "SearchKey:" is replaced by ReplaceValue followed by Suffix.
type Substitution struct {
	SearchKey    string
	ReplaceValue string
	Suffix       string
}

func (x *Substitution) Validate() error {
	if x.SearchKey == "" {
		return goerr.Wrap(types.ErrValidationFailed, "search key is empty")
	}
	if strings.ContainsAny(x.SearchKey, "\r\n") {
		return goerr.Wrap(types.ErrValidationFailed, "search key must be a single line", goerr.V("key", x.SearchKey))
	}
	if x.ReplaceValue == "" {
		return goerr.Wrap(types.ErrValidationFailed, "replace value is empty")
	}
	return nil
}

// UpdateAppInput drives the multi-file atomic strategy: every path is
// transformed and all of them land in exactly one commit.
type UpdateAppInput struct {
	Owner  string
	Repo   string
	Branch types.BranchName
	Paths  []string

	Substitution Substitution
	Message      string

	// AllowEmpty publishes a commit even when no file content changed.
	// When false an all-no-op run succeeds without touching the branch.
	AllowEmpty bool
	// DryRun builds the change set and reports it without publishing.
	DryRun bool
}

func (x *UpdateAppInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	if len(x.Paths) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "no file paths given")
	}
	seen := make(map[string]struct{}, len(x.Paths))
	for _, p := range x.Paths {
		if p == "" {
			return goerr.Wrap(types.ErrValidationFailed, "empty file path")
		}
		if _, ok := seen[p]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicated file path", goerr.V("path", p))
		}
		seen[p] = struct{}{}
	}
	if x.Message == "" {
		return goerr.Wrap(types.ErrValidationFailed, "commit message is empty")
	}

	return x.Substitution.Validate()
}

// UpdateFileInput drives the single-file contents API strategy.
type UpdateFileInput struct {
	Owner  string
	Repo   string
	Branch types.BranchName
	Path   string

	Substitution Substitution
	Message      string

	AllowEmpty bool
	DryRun     bool
}

func (x *UpdateFileInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is empty")
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty")
	}
	if x.Path == "" {
		return goerr.Wrap(types.ErrValidationFailed, "file path is empty")
	}
	if x.Message == "" {
		return goerr.Wrap(types.ErrValidationFailed, "commit message is empty")
	}

	return x.Substitution.Validate()
}
