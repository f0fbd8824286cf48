package cli

import (
	"context"
	"log/slog"

	"github.com/champ-oss/action-update-app/pkg/cli/config"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/infra"
	"github.com/champ-oss/action-update-app/pkg/infra/githubrepo"
	"github.com/champ-oss/action-update-app/pkg/usecase"
	"github.com/champ-oss/action-update-app/pkg/utils/errutil"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// updateFileCommand is the single-file strategy over the contents
// API: no local clone, content is read from and written back to the
// remote with its blob sha as the concurrency token.
func updateFileCommand() *cli.Command {
	var (
		app    config.GitHubApp
		target config.Target
		sen    config.Sentry
	)

	return &cli.Command{
		Name:  "update-file",
		Usage: "Apply the substitution to a single file via the contents API",
		Flags: slice.Flatten(app.Flags(), target.Flags(), sen.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sen.Configure(ctx); err != nil {
				return err
			}

			paths := target.Paths()
			if len(paths) != 1 {
				return goerr.Wrap(types.ErrInvalidOption, "update-file takes exactly one file path",
					goerr.V("paths", paths))
			}

			runID, ctx := logging.CtxRunID(ctx)
			logger := logging.Default().With(slog.Any("run_id", runID))
			ctx = logging.With(ctx, logger)

			logger.Info("starting single file update",
				slog.Any("app", app),
				slog.Any("target", target),
			)

			ghClient, err := app.New()
			if err != nil {
				return err
			}

			httpClient, err := ghClient.HTTPClient()
			if err != nil {
				return err
			}

			repoClient, err := githubrepo.New(httpClient, target.Owner(), target.Repo())
			if err != nil {
				return err
			}

			uc := usecase.New(
				infra.New(
					infra.WithGitHubApp(ghClient),
					infra.WithRepoClient(repoClient),
				),
				usecase.WithRetryPolicy(target.RetryPolicy()),
			)

			record, err := uc.UpdateSingleFile(ctx, target.UpdateFileInput(paths[0]))
			if err != nil {
				errutil.HandleError(ctx, "failed to update file", err)
				return err
			}

			if record == nil {
				logger.Info("no commit published")
				return nil
			}

			logger.Info("update finished", slog.Any("commit", record.SHA))
			return nil
		},
	}
}
