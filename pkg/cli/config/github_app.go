package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/infra/ghapp"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey string `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GITHUB_INSTALLATION_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key: PEM text or a path to a PEM file",
			Category:    "GitHub App",
			Destination: &x.privateKey,
			Sources:     cli.EnvVars("GITHUB_APP_PRIVATE_KEY"),
			Required:    true,
		},
	}
}

// PrivateKey returns the PEM material. The flag accepts either the key
// itself or a path to it, matching how CI systems deliver secrets.
func (x *GitHubApp) PrivateKey() (types.GitHubAppPrivateKey, error) {
	if strings.Contains(x.privateKey, "-----BEGIN") {
		return types.GitHubAppPrivateKey(x.privateKey), nil
	}

	data, err := os.ReadFile(filepath.Clean(x.privateKey))
	if err != nil {
		return "", goerr.Wrap(err, "failed to read private key file", goerr.V("path", x.privateKey))
	}

	return types.GitHubAppPrivateKey(data), nil
}

func (x *GitHubApp) New() (*ghapp.Client, error) {
	pem, err := x.PrivateKey()
	if err != nil {
		return nil, err
	}

	return ghapp.New(x.id, x.installID, pem)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
