package infra

import (
	"github.com/champ-oss/action-update-app/pkg/domain/interfaces"
)

type Clients struct {
	githubApp  interfaces.GitHubApp
	repoClient interfaces.RepoClient
	workspace  interfaces.Workspace
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) RepoClient() interfaces.RepoClient {
	return x.repoClient
}
func (x *Clients) Workspace() interfaces.Workspace {
	return x.workspace
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithRepoClient(client interfaces.RepoClient) Option {
	return func(x *Clients) {
		x.repoClient = client
	}
}

func WithWorkspace(ws interfaces.Workspace) Option {
	return func(x *Clients) {
		x.workspace = ws
	}
}
