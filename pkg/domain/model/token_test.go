package model_test

import (
	"testing"
	"time"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestInstallationTokenExpired(t *testing.T) {
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil token is expired", func(t *testing.T) {
		var tok *model.InstallationToken
		gt.True(t, tok.Expired(now))
	})

	t.Run("empty value is expired", func(t *testing.T) {
		tok := &model.InstallationToken{ExpiresAt: now.Add(time.Hour)}
		gt.True(t, tok.Expired(now))
	})

	t.Run("fresh token is not expired", func(t *testing.T) {
		tok := &model.InstallationToken{
			Value:     "ghs_token",
			ExpiresAt: now.Add(time.Hour),
		}
		gt.False(t, tok.Expired(now))
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		tok := &model.InstallationToken{
			Value:     "ghs_token",
			ExpiresAt: now.Add(-time.Minute),
		}
		gt.True(t, tok.Expired(now))
	})

	t.Run("expiring within the margin counts as expired", func(t *testing.T) {
		tok := &model.InstallationToken{
			Value:     "ghs_token",
			ExpiresAt: now.Add(30 * time.Second),
		}
		gt.True(t, tok.Expired(now))
	})
}
