package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/champ-oss/action-update-app/pkg/domain/mock"
	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/infra"
	"github.com/champ-oss/action-update-app/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func newUpdateAppInput(paths ...string) *model.UpdateAppInput {
	return &model.UpdateAppInput{
		Owner:  "champ-oss",
		Repo:   "example",
		Branch: "main",
		Paths:  paths,
		Substitution: model.Substitution{
			SearchKey:    "image",
			ReplaceValue: "v2",
		},
		Message: "image update using app bot",
	}
}

func newWorkspaceMock(files map[string]string) *mock.WorkspaceMock {
	return &mock.WorkspaceMock{
		CloneOrUpdateFunc: func(ctx context.Context, branch types.BranchName) error {
			return nil
		},
		ReadFunc: func(path string) ([]byte, error) {
			content, ok := files[path]
			if !ok {
				return nil, goerr.New("file not found in workspace",
					goerr.T(types.TagNotFound), goerr.V("path", path))
			}
			return []byte(content), nil
		},
	}
}

func TestUpdateApp(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes all files in one commit", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml": "name: app\nimage: v1\n",
			"deploy/job.yaml": "image: v1\n",
		})

		repo := &mock.RepoClientMock{
			GetBranchHeadFunc: func(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
				gt.V(t, branch).Equal(types.BranchName("main"))
				return &model.BranchRef{Name: branch, HeadSHA: "head1"}, nil
			},
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				gt.V(t, ref).Equal("head1")
				return []byte("image: v1\n"), "blob-old", nil
			},
			GetTreeSHAFunc: func(ctx context.Context, commit types.CommitSHA) (string, error) {
				gt.V(t, commit).Equal(types.CommitSHA("head1"))
				return "tree-base", nil
			},
			CreateBlobFunc: func(ctx context.Context, content []byte) (string, error) {
				return fmt.Sprintf("blob-%d", len(content)), nil
			},
			CreateTreeFunc: func(ctx context.Context, baseTreeSHA string, entries []model.TreeEntry) (string, error) {
				gt.V(t, baseTreeSHA).Equal("tree-base")
				gt.V(t, len(entries)).Equal(2)
				gt.V(t, entries[0].Path).Equal("deploy/app.yaml")
				gt.V(t, entries[0].Mode).Equal(model.FileModeBlob)
				gt.V(t, entries[1].Path).Equal("deploy/job.yaml")
				return "tree-new", nil
			},
			CreateCommitFunc: func(ctx context.Context, treeSHA string, parent types.CommitSHA, message string) (*model.CommitRecord, error) {
				gt.V(t, treeSHA).Equal("tree-new")
				gt.V(t, parent).Equal(types.CommitSHA("head1"))
				gt.V(t, message).Equal("image update using app bot")
				return &model.CommitRecord{
					SHA: "commit1", TreeSHA: treeSHA, ParentSHA: parent, Message: message,
				}, nil
			},
			UpdateRefFunc: func(ctx context.Context, branch types.BranchName, commit types.CommitSHA) error {
				gt.V(t, commit).Equal(types.CommitSHA("commit1"))
				return nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateApp(ctx, newUpdateAppInput("deploy/app.yaml", "deploy/job.yaml"))
		gt.NoError(t, err)
		gt.V(t, record.SHA).Equal(types.CommitSHA("commit1"))
		gt.V(t, record.ParentSHA).Equal(types.CommitSHA("head1"))

		// Transformed content went into the blobs.
		blobs := repo.CreateBlobCalls()
		gt.V(t, len(blobs)).Equal(2)
		gt.V(t, string(blobs[0].Content)).Equal("name: app\nimage: v2\n")
		gt.V(t, string(blobs[1].Content)).Equal("image: v2\n")

		gt.V(t, len(repo.UpdateRefCalls())).Equal(1)
	})

	t.Run("conflict retry parents on the second observed head", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml": "image: v1\n",
		})

		heads := []types.CommitSHA{"head1", "head2"}
		commits := 0

		repo := &mock.RepoClientMock{
			GetBranchHeadFunc: func(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
				head := heads[0]
				if len(heads) > 1 {
					heads = heads[1:]
				}
				return &model.BranchRef{Name: branch, HeadSHA: head}, nil
			},
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return []byte("image: v1\n"), "blob-old", nil
			},
			GetTreeSHAFunc: func(ctx context.Context, commit types.CommitSHA) (string, error) {
				return "tree-" + string(commit), nil
			},
			CreateBlobFunc: func(ctx context.Context, content []byte) (string, error) {
				return "blob-new", nil
			},
			CreateTreeFunc: func(ctx context.Context, baseTreeSHA string, entries []model.TreeEntry) (string, error) {
				return "tree-new", nil
			},
			CreateCommitFunc: func(ctx context.Context, treeSHA string, parent types.CommitSHA, message string) (*model.CommitRecord, error) {
				commits++
				return &model.CommitRecord{
					SHA:       types.CommitSHA(fmt.Sprintf("commit%d", commits)),
					TreeSHA:   treeSHA,
					ParentSHA: parent,
					Message:   message,
				}, nil
			},
			UpdateRefFunc: func(ctx context.Context, branch types.BranchName, commit types.CommitSHA) error {
				if commit == "commit1" {
					return goerr.New("not a fast forward", goerr.T(types.TagConflict))
				}
				return nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateApp(ctx, newUpdateAppInput("deploy/app.yaml"))
		gt.NoError(t, err)

		// The branch head was re-read, and the published commit parents
		// on the head observed by the successful attempt.
		gt.V(t, len(repo.GetBranchHeadCalls())).Equal(2)
		gt.V(t, record.SHA).Equal(types.CommitSHA("commit2"))
		gt.V(t, record.ParentSHA).Equal(types.CommitSHA("head2"))
	})

	t.Run("exhausted conflicts leave the branch untouched", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml": "image: v1\n",
		})

		repo := &mock.RepoClientMock{
			GetBranchHeadFunc: func(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
				return &model.BranchRef{Name: branch, HeadSHA: "head1"}, nil
			},
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return []byte("image: v1\n"), "blob-old", nil
			},
			GetTreeSHAFunc: func(ctx context.Context, commit types.CommitSHA) (string, error) {
				return "tree-base", nil
			},
			CreateBlobFunc: func(ctx context.Context, content []byte) (string, error) {
				return "blob-new", nil
			},
			CreateTreeFunc: func(ctx context.Context, baseTreeSHA string, entries []model.TreeEntry) (string, error) {
				return "tree-new", nil
			},
			CreateCommitFunc: func(ctx context.Context, treeSHA string, parent types.CommitSHA, message string) (*model.CommitRecord, error) {
				return &model.CommitRecord{SHA: "commit1", TreeSHA: treeSHA, ParentSHA: parent}, nil
			},
			UpdateRefFunc: func(ctx context.Context, branch types.BranchName, commit types.CommitSHA) error {
				return goerr.New("not a fast forward", goerr.T(types.TagConflict))
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(3)),
		)

		record, err := uc.UpdateApp(ctx, newUpdateAppInput("deploy/app.yaml"))
		gt.Error(t, err)
		gt.V(t, record).Equal(nil)
		gt.V(t, len(repo.UpdateRefCalls())).Equal(3)
	})

	t.Run("missing path aborts the batch before any blob", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml":  "image: v1\n",
			"deploy/gone.yaml": "image: v1\n",
		})

		repo := &mock.RepoClientMock{
			GetBranchHeadFunc: func(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
				return &model.BranchRef{Name: branch, HeadSHA: "head1"}, nil
			},
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				if path == "deploy/gone.yaml" {
					return nil, "", goerr.New("not found", goerr.T(types.TagNotFound), goerr.V("path", path))
				}
				return []byte("image: v1\n"), "blob-old", nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateApp(ctx, newUpdateAppInput("deploy/app.yaml", "deploy/gone.yaml"))
		gt.Error(t, err)
		gt.True(t, types.IsNotFound(err))
		gt.V(t, record).Equal(nil)
		gt.V(t, len(repo.CreateBlobCalls())).Equal(0)
	})

	t.Run("no content change skips the commit", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml": "image: v2\n",
		})

		repo := &mock.RepoClientMock{
			GetBranchHeadFunc: func(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
				return &model.BranchRef{Name: branch, HeadSHA: "head1"}, nil
			},
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return []byte("image: v2\n"), "blob-old", nil
			},
		}

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateApp(ctx, newUpdateAppInput("deploy/app.yaml"))
		gt.NoError(t, err)
		gt.V(t, record).Equal(nil)
		gt.V(t, len(repo.CreateBlobCalls())).Equal(0)
	})

	t.Run("allow-empty publishes even without changes", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml": "image: v2\n",
		})

		repo := &mock.RepoClientMock{
			GetBranchHeadFunc: func(ctx context.Context, branch types.BranchName) (*model.BranchRef, error) {
				return &model.BranchRef{Name: branch, HeadSHA: "head1"}, nil
			},
			GetFileFunc: func(ctx context.Context, path, ref string) ([]byte, string, error) {
				return []byte("image: v2\n"), "blob-old", nil
			},
			GetTreeSHAFunc: func(ctx context.Context, commit types.CommitSHA) (string, error) {
				return "tree-base", nil
			},
			CreateBlobFunc: func(ctx context.Context, content []byte) (string, error) {
				return "blob-new", nil
			},
			CreateTreeFunc: func(ctx context.Context, baseTreeSHA string, entries []model.TreeEntry) (string, error) {
				return "tree-new", nil
			},
			CreateCommitFunc: func(ctx context.Context, treeSHA string, parent types.CommitSHA, message string) (*model.CommitRecord, error) {
				return &model.CommitRecord{SHA: "commit1", TreeSHA: treeSHA, ParentSHA: parent}, nil
			},
			UpdateRefFunc: func(ctx context.Context, branch types.BranchName, commit types.CommitSHA) error {
				return nil
			},
		}

		input := newUpdateAppInput("deploy/app.yaml")
		input.AllowEmpty = true

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateApp(ctx, input)
		gt.NoError(t, err)
		gt.V(t, record.SHA).Equal(types.CommitSHA("commit1"))
		gt.V(t, len(repo.UpdateRefCalls())).Equal(1)
	})

	t.Run("dry run touches nothing remote", func(t *testing.T) {
		ws := newWorkspaceMock(map[string]string{
			"deploy/app.yaml": "image: v1\n",
		})

		// Zero-valued mock: any call would panic the test.
		repo := &mock.RepoClientMock{}

		input := newUpdateAppInput("deploy/app.yaml")
		input.DryRun = true

		uc := usecase.New(
			infra.New(infra.WithRepoClient(repo), infra.WithWorkspace(ws)),
			usecase.WithRetryPolicy(testPolicy(5)),
		)

		record, err := uc.UpdateApp(ctx, input)
		gt.NoError(t, err)
		gt.V(t, record).Equal(nil)
		gt.V(t, len(ws.ReadCalls())).Equal(1)
	})

	t.Run("invalid input is rejected before any call", func(t *testing.T) {
		uc := usecase.New(infra.New())

		input := newUpdateAppInput("deploy/app.yaml")
		input.Substitution.SearchKey = ""

		record, err := uc.UpdateApp(ctx, input)
		gt.Error(t, err)
		gt.V(t, record).Equal(nil)
	})
}
