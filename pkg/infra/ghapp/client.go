package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/champ-oss/action-update-app/pkg/domain/interfaces"
	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/utils/logging"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
)

// Client turns the long-lived App identity (app ID + private key) into
// short-lived installation credentials. ghinstallation signs the RS256
// app assertion (10 minute expiry) and the Apps API exchanges it for an
// installation token.
type Client struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey

	mu    sync.Mutex
	token *model.InstallationToken
}

var _ interfaces.GitHubApp = (*Client)(nil)

func New(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID:     appID,
		installID: installID,
		pem:       pem,
	}

	return client, nil
}

// HTTPClient returns an http.Client whose transport injects and
// refreshes installation tokens on every request.
func (x *Client) HTTPClient() (*http.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(x.installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport", goerr.T(types.TagAuth))
	}

	return &http.Client{Transport: itr}, nil
}

// MintToken returns a cached installation token, or requests a new one
// when none is held or the held one passed its expiry. An expired
// token is never handed out.
//
// No retry happens here. A failure is usually a credential problem,
// not a transient one; callers apply the shared retry policy, which
// re-attempts only transient-tagged failures.
func (x *Client) MintToken(ctx context.Context) (*model.InstallationToken, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	now := logging.CtxTime(ctx)
	if !x.token.Expired(now) {
		return x.token, nil
	}

	tr := http.DefaultTransport
	atr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport", goerr.T(types.TagAuth))
	}

	client := github.NewClient(&http.Client{Transport: atr})

	tok, resp, err := client.Apps.CreateInstallationToken(ctx, int64(x.installID), nil)
	if err != nil {
		kind := types.TagAuth
		if resp == nil || resp.StatusCode >= http.StatusInternalServerError {
			kind = types.TagTransient
		}
		return nil, goerr.Wrap(err, "failed to create installation token",
			goerr.T(kind),
			goerr.V("appID", x.appID),
			goerr.V("installID", x.installID),
		)
	}

	x.token = &model.InstallationToken{
		Value:     types.GitHubToken(tok.GetToken()),
		ExpiresAt: tok.GetExpiresAt().Time,
	}

	logging.From(ctx).Info("minted installation token",
		slog.Any("appID", x.appID),
		slog.Any("installID", x.installID),
		slog.Time("expiresAt", x.token.ExpiresAt),
	)

	return x.token, nil
}
