package usecase_test

import (
	"context"
	"testing"

	"github.com/champ-oss/action-update-app/pkg/domain/mock"
	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/infra"
	"github.com/champ-oss/action-update-app/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newUpdateFileInput() *model.UpdateFileInput {
	return &model.UpdateFileInput{
		Owner:  "champ-oss",
		Repo:   "example",
		Branch: "main",
		Path:   "deploy/app.yaml",
		Substitution: model.Substitution{
			SearchKey:    "image",
			ReplaceValue: "v2",
		},
		Message: "image update using app bot",
	}
}

func TestUpdateSingleFile(t *testing.T) {
	ctx := context.Background()

	t.Run("writes transformed content with the observed sha", func(t *testing.T) {
		repo := &mock.RepoClientMock{
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				gt.V(t, path).Equal("deploy/app.yaml")
				gt.V(t, ref).Equal("main")
				return []byte("image: v1\n"), "sha1", nil
			},
			UpdateFileFunc: func(ctx context.Context, path string, content []byte, sha string, branch types.BranchName, message string) (*model.CommitRecord, error) {
				gt.V(t, string(content)).Equal("image: v2\n")
				gt.V(t, sha).Equal("sha1")
				gt.V(t, message).Equal("image update using app bot")
				return &model.CommitRecord{SHA: "commit1"}, nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateSingleFile(ctx, newUpdateFileInput())
		gt.NoError(t, err)
		gt.V(t, record.SHA).Equal(types.CommitSHA("commit1"))
		gt.V(t, len(repo.UpdateFileCalls())).Equal(1)
	})

	t.Run("stale sha triggers a fresh read before rewriting", func(t *testing.T) {
		reads := 0
		repo := &mock.RepoClientMock{
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				reads++
				if reads == 1 {
					return []byte("image: v1\n"), "sha1", nil
				}
				// Another writer touched an unrelated line in between.
				return []byte("replicas: 3\nimage: v1\n"), "sha2", nil
			},
			UpdateFileFunc: func(ctx context.Context, path string, content []byte, sha string, branch types.BranchName, message string) (*model.CommitRecord, error) {
				if sha == "sha1" {
					return nil, goerr.New("sha mismatch", goerr.T(types.TagConflict))
				}
				gt.V(t, sha).Equal("sha2")
				gt.V(t, string(content)).Equal("replicas: 3\nimage: v2\n")
				return &model.CommitRecord{SHA: "commit2"}, nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateSingleFile(ctx, newUpdateFileInput())
		gt.NoError(t, err)
		gt.V(t, record.SHA).Equal(types.CommitSHA("commit2"))
		gt.V(t, len(repo.GetFileCalls())).Equal(2)
		gt.V(t, len(repo.UpdateFileCalls())).Equal(2)
	})

	t.Run("no content change skips the write", func(t *testing.T) {
		repo := &mock.RepoClientMock{
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return []byte("image: v2\n"), "sha1", nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateSingleFile(ctx, newUpdateFileInput())
		gt.NoError(t, err)
		gt.V(t, record).Equal(nil)
		gt.V(t, len(repo.UpdateFileCalls())).Equal(0)
	})

	t.Run("dry run never writes", func(t *testing.T) {
		repo := &mock.RepoClientMock{
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return []byte("image: v1\n"), "sha1", nil
			},
		}

		input := newUpdateFileInput()
		input.DryRun = true

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateSingleFile(ctx, input)
		gt.NoError(t, err)
		gt.V(t, record).Equal(nil)
		gt.V(t, len(repo.GetFileCalls())).Equal(1)
		gt.V(t, len(repo.UpdateFileCalls())).Equal(0)
	})

	t.Run("auth failure is not retried", func(t *testing.T) {
		repo := &mock.RepoClientMock{
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return nil, "", goerr.New("bad credentials", goerr.T(types.TagAuth))
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateSingleFile(ctx, newUpdateFileInput())
		gt.Error(t, err)
		gt.True(t, types.IsAuth(err))
		gt.V(t, record).Equal(nil)
		gt.V(t, len(repo.GetFileCalls())).Equal(1)
	})

	t.Run("invalid input is rejected before any call", func(t *testing.T) {
		uc := usecase.New(infra.New())

		input := newUpdateFileInput()
		input.Path = ""

		record, err := uc.UpdateSingleFile(ctx, input)
		gt.Error(t, err)
		gt.V(t, record).Equal(nil)
	})
}
