package cli

import (
	"context"
	"log/slog"

	"github.com/champ-oss/action-update-app/pkg/cli/config"
	"github.com/champ-oss/action-update-app/pkg/infra"
	"github.com/champ-oss/action-update-app/pkg/infra/githubrepo"
	"github.com/champ-oss/action-update-app/pkg/infra/workspace"
	"github.com/champ-oss/action-update-app/pkg/usecase"
	"github.com/champ-oss/action-update-app/pkg/utils/errutil"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// updateCommand publishes all target files in one commit built from
// blob/tree/commit objects. This is the original action's behavior.
func updateCommand() *cli.Command {
	var (
		app    config.GitHubApp
		target config.Target
		sen    config.Sentry
	)

	return &cli.Command{
		Name:    "update",
		Aliases: []string{"up"},
		Usage:   "Apply the substitution to all files and publish them as one atomic commit",
		Flags:   slice.Flatten(app.Flags(), target.Flags(), sen.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sen.Configure(ctx); err != nil {
				return err
			}

			runID, ctx := logging.CtxRunID(ctx)
			logger := logging.Default().With(slog.Any("run_id", runID))
			ctx = logging.With(ctx, logger)

			logger.Info("starting update",
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

			// The workspace clone authenticates with a freshly minted
			// token; the API client refreshes its own via the transport.
			token, err := ghClient.MintToken(ctx)
			if err != nil {
				errutil.HandleError(ctx, "failed to mint installation token", err)
				return err
			}

			ws, err := workspace.New(target.Owner(), target.Repo(), target.LocalDir(), token.Value)
			if err != nil {
				return err
			}
			logger.Debug("workspace ready", slog.String("dir", ws.Dir()))

			uc := usecase.New(
				infra.New(
					infra.WithGitHubApp(ghClient),
					infra.WithRepoClient(repoClient),
					infra.WithWorkspace(ws),
				),
				usecase.WithRetryPolicy(target.RetryPolicy()),
			)

			record, err := uc.UpdateApp(ctx, target.UpdateAppInput())
			if err != nil {
				errutil.HandleError(ctx, "failed to update files", err)
				ws.Clean()
				return err
			}

			if record == nil {
				logger.Info("no commit published")
				return nil
			}

			logger.Info("update finished",
				slog.Any("commit", record.SHA),
				slog.Any("parent", record.ParentSHA),
			)
			return nil
		},
	}
}
