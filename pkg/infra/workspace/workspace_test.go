package workspace_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/champ-oss/action-update-app/pkg/domain/types"
	"github.com/champ-oss/action-update-app/pkg/infra/workspace"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"
)

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "tester",
		Email: "tester@example.com",
		When:  time.Now(),
	}
}

// newUpstream creates a local repository on the main branch with one
// committed file, usable as a clone source via its filesystem path.
func newUpstream(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	_, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{
			DefaultBranch: plumbing.Main,
		},
	})
	gt.NoError(t, err)

	commitFile(t, dir, "deploy/app.yaml", "image: v1\n")
	return dir
}

func commitFile(t *testing.T, dir, path, content string) {
	t.Helper()

	repo := gt.R1(git.PlainOpen(dir)).NoError(t)
	wt := gt.R1(repo.Worktree()).NoError(t)

	gt.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, path)), 0o755))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, path), []byte(content), 0o644))

	gt.R1(wt.Add(path)).NoError(t)
	gt.R1(wt.Commit("update "+path, &git.CommitOptions{Author: testSignature()})).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("owner and repo are required", func(t *testing.T) {
		_, err := workspace.New("", "example", "dir", "")
		gt.Error(t, err)

		_, err = workspace.New("champ-oss", "", "dir", "")
		gt.Error(t, err)
	})

	t.Run("empty dir falls back to repo name", func(t *testing.T) {
		ws := gt.R1(workspace.New("champ-oss", "example", "", "")).NoError(t)
		gt.V(t, ws.Dir()).Equal("example")
	})

	t.Run("remote URL is required", func(t *testing.T) {
		_, err := workspace.NewFromURL("", "dir", "")
		gt.Error(t, err)
	})
}

func TestCloneFailure(t *testing.T) {
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "clone")
	ws := gt.R1(workspace.NewFromURL(filepath.Join(t.TempDir(), "missing"), dir, "")).NoError(t)

	gt.Error(t, ws.CloneOrUpdate(ctx, "main"))

	// A failed clone must not leave a partial working copy behind.
	_, err := os.Stat(dir)
	gt.True(t, os.IsNotExist(err))
}

func TestCloneOrUpdate(t *testing.T) {
	ctx := context.Background()
	upstream := newUpstream(t)

	cloneDir := filepath.Join(t.TempDir(), "clone")
	ws := gt.R1(workspace.NewFromURL(upstream, cloneDir, "")).NoError(t)

	t.Run("clone brings the committed file", func(t *testing.T) {
		gt.NoError(t, ws.CloneOrUpdate(ctx, "main"))

		content := gt.R1(ws.Read("deploy/app.yaml")).NoError(t)
		gt.V(t, string(content)).Equal("image: v1\n")
	})

	t.Run("second run pulls the new commit", func(t *testing.T) {
		commitFile(t, upstream, "deploy/app.yaml", "image: v2\n")

		gt.NoError(t, ws.CloneOrUpdate(ctx, "main"))

		content := gt.R1(ws.Read("deploy/app.yaml")).NoError(t)
		gt.V(t, string(content)).Equal("image: v2\n")
	})

	t.Run("up to date pull is not an error", func(t *testing.T) {
		gt.NoError(t, ws.CloneOrUpdate(ctx, "main"))
	})

	t.Run("missing file reads as not found", func(t *testing.T) {
		_, err := ws.Read("deploy/missing.yaml")
		gt.Error(t, err)
		gt.True(t, types.IsNotFound(err))
	})

	t.Run("clean removes the working copy", func(t *testing.T) {
		ws.Clean()

		_, err := os.Stat(cloneDir)
		gt.True(t, os.IsNotExist(err))
	})
}
