package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/usecase"
	"github.com/urfave/cli/v3"
	"github.com/valyala/fasttemplate"
)

const defaultCommitMessage = "image update using app bot"

// Target collects everything describing one update run: repository
// coordinates, the files to touch, the substitution, and the retry
// knobs. Environment variable names keep the original action's
// contract so existing workflow definitions keep working.
type Target struct {
	owner    string
	repo     string
	branch   string
	paths    string
	localDir string

	searchKey    string
	replaceValue string
	suffix       string
	message      string

	allowEmpty bool
	dryRun     bool

	retryWait     time.Duration
	retryAttempts int
}

func (x *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Owner of the target repository",
			Category:    "Target",
			Destination: &x.owner,
			Sources:     cli.EnvVars("GITHUB_OWNER"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Name of the target repository",
			Category:    "Target",
			Destination: &x.repo,
			Sources:     cli.EnvVars("GITHUB_REPO_TARGET"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "branch",
			Usage:       "Branch to update",
			Category:    "Target",
			Destination: &x.branch,
			Sources:     cli.EnvVars("BRANCH"),
			Value:       "main",
		},
		&cli.StringFlag{
			Name:        "file-paths",
			Usage:       "Comma separated list of file paths to update",
			Category:    "Target",
			Destination: &x.paths,
			Sources:     cli.EnvVars("FILE_PATH_LIST"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "local-dir",
			Usage:       "Local directory for the workspace clone (default: repository name)",
			Category:    "Target",
			Destination: &x.localDir,
			Sources:     cli.EnvVars("GIT_LOCAL_DIRECTORY"),
		},
		&cli.StringFlag{
			Name:        "search-key",
			Usage:       "Key whose line remainder is replaced (matches lines starting with '<key>:')",
			Category:    "Substitution",
			Destination: &x.searchKey,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "replace-value",
			Usage:       "Replacement value written after the key",
			Category:    "Substitution",
			Destination: &x.replaceValue,
			Sources:     cli.EnvVars("GITHUB_SHA"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "suffix",
			Usage:       "Suffix appended after the replacement value",
			Category:    "Substitution",
			Destination: &x.suffix,
			Sources:     cli.EnvVars("SUFFIX"),
			Value:       `"`,
		},
		&cli.StringFlag{
			Name:        "commit-message",
			Usage:       "Commit message template; {search}, {replace}, {branch} and {files} are expanded",
			Category:    "Commit",
			Destination: &x.message,
			Sources:     cli.EnvVars("COMMIT_MESSAGE"),
			Value:       defaultCommitMessage,
		},
		&cli.BoolFlag{
			Name:        "allow-empty",
			Usage:       "Publish a commit even when no file content changed",
			Category:    "Commit",
			Destination: &x.allowEmpty,
			Sources:     cli.EnvVars("ALLOW_EMPTY_COMMIT"),
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Build the change set and report it without publishing",
			Category:    "Commit",
			Destination: &x.dryRun,
			Sources:     cli.EnvVars("DRY_RUN"),
		},
		&cli.DurationFlag{
			Name:        "retry-wait",
			Usage:       "Wait between retry attempts",
			Category:    "Retry",
			Destination: &x.retryWait,
			Sources:     cli.EnvVars("RETRY_WAIT"),
			Value:       usecase.DefaultRetryPolicy.Wait,
		},
		&cli.IntFlag{
			Name:        "retry-attempts",
			Usage:       "Maximum publish attempts (1 disables retry)",
			Category:    "Retry",
			Destination: &x.retryAttempts,
			Sources:     cli.EnvVars("RETRY_ATTEMPTS"),
			Value:       usecase.DefaultRetryPolicy.MaxAttempts,
		},
	}
}

func (x *Target) Owner() string { return x.owner }
func (x *Target) Repo() string  { return x.repo }

func (x *Target) LocalDir() string {
	if x.localDir != "" {
		return x.localDir
	}
	return x.repo
}

// Paths splits the comma separated file list, dropping empty entries.
func (x *Target) Paths() []string {
	var paths []string
	for _, p := range strings.Split(x.paths, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// Message renders the commit message template.
func (x *Target) Message() string {
	return fasttemplate.ExecuteStringStd(x.message, "{", "}", map[string]interface{}{
		"search":  x.searchKey,
		"replace": x.replaceValue,
		"branch":  x.branch,
		"files":   strings.Join(x.Paths(), ", "),
	})
}

func (x *Target) RetryPolicy() usecase.RetryPolicy {
	return usecase.RetryPolicy{
		Wait:        x.retryWait,
		MaxAttempts: x.retryAttempts,
	}
}

func (x *Target) substitution() model.Substitution {
	return model.Substitution{
		SearchKey:    x.searchKey,
		ReplaceValue: x.replaceValue,
		Suffix:       x.suffix,
	}
}

func (x *Target) UpdateAppInput() *model.UpdateAppInput {
	return &model.UpdateAppInput{
		Owner:        x.owner,
		Repo:         x.repo,
		Branch:       types.BranchName(x.branch),
		Paths:        x.Paths(),
		Substitution: x.substitution(),
		Message:      x.Message(),
		AllowEmpty:   x.allowEmpty,
		DryRun:       x.dryRun,
	}
}

func (x *Target) UpdateFileInput(path string) *model.UpdateFileInput {
	return &model.UpdateFileInput{
		Owner:        x.owner,
		Repo:         x.repo,
		Branch:       types.BranchName(x.branch),
		Path:         path,
		Substitution: x.substitution(),
		Message:      x.Message(),
		AllowEmpty:   x.allowEmpty,
		DryRun:       x.dryRun,
	}
}

func (x Target) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.owner),
		slog.String("repo", x.repo),
		slog.String("branch", x.branch),
		slog.Any("paths", x.Paths()),
		slog.String("searchKey", x.searchKey),
		slog.String("suffix", x.suffix),
		slog.Bool("allowEmpty", x.allowEmpty),
		slog.Bool("dryRun", x.dryRun),
	)
}
