package usecase

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/champ-oss/action-update-app/pkg/utils/replacer"
)

// UpdateApp runs the multi-file atomic strategy: every target path is
// transformed in the local workspace, then all of them are published
// in exactly one commit via blob/tree/commit construction. Either all
// N files change together or the branch is left untouched.
//
// The retried unit is only the read-head -> build-tree -> publish
// cycle. Cloning the workspace and building the change set happen
// once, before the loop: the substitution is deterministic, so a
// conflict retry only needs fresh remote state, not fresh local bytes.
func (x *UseCase) UpdateApp(ctx context.Context, input *model.UpdateAppInput) (*model.CommitRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("branch", input.Branch),
	)
	ctx = logging.With(ctx, logger)

	if err := x.clients.Workspace().CloneOrUpdate(ctx, input.Branch); err != nil {
		return nil, err
	}

	changes, err := x.buildChangeSet(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.DryRun {
		for _, f := range changes.Files {
			logger.Info("dry run: would update file", slog.String("path", f.Path))
		}
		return nil, nil
	}

	var record *model.CommitRecord
	err = x.retry.Do(ctx, func(ctx context.Context) error {
		rec, err := x.publishTree(ctx, input, changes)
		if err != nil {
			return err
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// buildChangeSet reads each target file from the workspace and applies
// the substitution. Unchanged output is kept in the set; whether it
// results in a commit is decided against remote content at publish
// time.
func (x *UseCase) buildChangeSet(ctx context.Context, input *model.UpdateAppInput) (*model.ChangeSet, error) {
	sub := input.Substitution

	cs := &model.ChangeSet{}
	for _, path := range input.Paths {
		original, err := x.clients.Workspace().Read(path)
		if err != nil {
			return nil, err
		}

		updated := replacer.Apply(original, sub.SearchKey, sub.ReplaceValue, sub.Suffix)
		if bytes.Equal(original, updated) {
			logging.From(ctx).Info("substitution was a no-op", slog.String("path", path))
		}

		cs.Files = append(cs.Files, model.FileChange{
			Path:       path,
			NewContent: updated,
		})
	}

	if err := cs.Validate(); err != nil {
		return nil, err
	}

	return cs, nil
}

// publishTree is one publish attempt. It re-reads the branch head on
// every call so a conflict retry always parents on the current head.
func (x *UseCase) publishTree(ctx context.Context, input *model.UpdateAppInput, changes *model.ChangeSet) (*model.CommitRecord, error) {
	repo := x.clients.RepoClient()
	logger := logging.From(ctx)

	head, err := repo.GetBranchHead(ctx, input.Branch)
	if err != nil {
		return nil, err
	}

	// Verify every path exists at the observed head and detect whether
	// anything actually changed, before the first blob is created. A
	// missing path aborts the whole batch with nothing written.
	dirty := false
	for _, f := range changes.Files {
		remote, _, err := repo.GetFile(ctx, f.Path, string(head.HeadSHA))
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(remote, f.NewContent) {
			dirty = true
		}
	}

	if !dirty && !input.AllowEmpty {
		logger.Info("content already up to date, skipping commit",
			slog.Any("head", head.HeadSHA))
		return nil, nil
	}

	baseTree, err := repo.GetTreeSHA(ctx, head.HeadSHA)
	if err != nil {
		return nil, err
	}

	entries := make([]model.TreeEntry, 0, len(changes.Files))
	for _, f := range changes.Files {
		blobSHA, err := repo.CreateBlob(ctx, f.NewContent)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.TreeEntry{
			Path:    f.Path,
			Mode:    model.FileModeBlob,
			BlobSHA: blobSHA,
		})
	}

	newTree, err := repo.CreateTree(ctx, baseTree, entries)
	if err != nil {
		return nil, err
	}

	record, err := repo.CreateCommit(ctx, newTree, head.HeadSHA, input.Message)
	if err != nil {
		return nil, err
	}

	// A conflict here means another writer advanced the branch after
	// our head read. The commit and tree just created become
	// unreferenced and are left for the platform to garbage collect;
	// the retry rebuilds everything from the new head.
	if err := repo.UpdateRef(ctx, input.Branch, record.SHA); err != nil {
		return nil, err
	}

	logger.Info("published commit",
		slog.Any("commit", record.SHA),
		slog.Any("parent", record.ParentSHA),
		slog.Int("files", len(changes.Files)),
	)

	return record, nil
}
