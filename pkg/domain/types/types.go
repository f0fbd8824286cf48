package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	BranchName          string
	CommitSHA           string
	RunID               string
)

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
