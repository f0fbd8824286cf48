package usecase

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/champ-oss/action-update-app/pkg/utils/replacer"
)

// UpdateSingleFile runs the single-file strategy over the contents
// API. Each attempt re-reads the remote content and its blob sha,
// re-applies the substitution, and writes with that sha as the
// optimistic-concurrency token. A conflict means the file changed
// under us; the retry re-fetches rather than reusing stale content,
// so a concurrent writer's change to the same line is never clobbered
// blindly.
func (x *UseCase) UpdateSingleFile(ctx context.Context, input *model.UpdateFileInput) (*model.CommitRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	logger := logging.From(ctx).With(
		slog.String("owner", input.Owner),
		slog.String("repo", input.Repo),
		slog.Any("branch", input.Branch),
		slog.String("path", input.Path),
	)
	ctx = logging.With(ctx, logger)

	sub := input.Substitution

	var record *model.CommitRecord
	err := x.retry.Do(ctx, func(ctx context.Context) error {
		content, sha, err := x.clients.RepoClient().GetFile(ctx, input.Path, string(input.Branch))
		if err != nil {
			return err
		}

		updated := replacer.Apply(content, sub.SearchKey, sub.ReplaceValue, sub.Suffix)
		if bytes.Equal(content, updated) && !input.AllowEmpty {
			logger.Info("content already up to date, skipping commit",
				slog.String("sha", sha))
			return nil
		}

		if input.DryRun {
			logger.Info("dry run: would update file", slog.String("sha", sha))
			return nil
		}

		rec, err := x.clients.RepoClient().UpdateFile(ctx, input.Path, updated, sha, input.Branch, input.Message)
		if err != nil {
			return err
		}
		record = rec

		logger.Info("published commit", slog.Any("commit", rec.SHA))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}
