package model

import (
	"time"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
)

// expiryMargin keeps a token from being used right at the edge of its
// platform-side lifetime.
const expiryMargin = time.Minute

// InstallationToken is a short-lived credential minted from the App
// identity. Valid for at most one hour.
type InstallationToken struct {
	Value     types.GitHubToken
	ExpiresAt time.Time
}

// Expired reports whether the token must not be used for a new remote
// call at the given time.
func (x *InstallationToken) Expired(now time.Time) bool {
	if x == nil || x.Value == "" {
		return true
	}
	return !now.Add(expiryMargin).Before(x.ExpiresAt)
}
