package usecase

import (
	"github.com/champ-oss/action-update-app/pkg/domain/interfaces"
	"github.com/champ-oss/action-update-app/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	retry   RetryPolicy
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		retry:   DefaultRetryPolicy,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func WithRetryPolicy(policy RetryPolicy) Option {
	return func(x *UseCase) {
		x.retry = policy
	}
}
