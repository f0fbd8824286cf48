package model_test

import (
	"testing"

	"github.com/champ-oss/action-update-app/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestChangeSetValidate(t *testing.T) {
	t.Run("valid change set", func(t *testing.T) {
		cs := &model.ChangeSet{
			Files: []model.FileChange{
				{Path: "deploy/app.yaml", NewContent: []byte("image: v2\n")},
				{Path: "deploy/job.yaml", NewContent: []byte("image: v2\n")},
			},
		}
		gt.NoError(t, cs.Validate())
	})

	t.Run("empty change set fails", func(t *testing.T) {
		cs := &model.ChangeSet{}
		gt.Error(t, cs.Validate())
	})

	t.Run("duplicated path fails", func(t *testing.T) {
		cs := &model.ChangeSet{
			Files: []model.FileChange{
				{Path: "deploy/app.yaml"},
				{Path: "deploy/app.yaml"},
			},
		}
		gt.Error(t, cs.Validate())
	})

	t.Run("empty path fails", func(t *testing.T) {
		cs := &model.ChangeSet{
			Files: []model.FileChange{{Path: ""}},
		}
		gt.Error(t, cs.Validate())
	})
}
