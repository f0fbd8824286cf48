package interfaces

import (
	"context"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
)

// UseCase publishes substitution results as commits. A nil
// CommitRecord with a nil error means the run was a no-op (nothing
// changed and empty commits are not allowed).
type UseCase interface {
	UpdateApp(ctx context.Context, input *model.UpdateAppInput) (*model.CommitRecord, error)
	UpdateSingleFile(ctx context.Context, input *model.UpdateFileInput) (*model.CommitRecord, error)
}
