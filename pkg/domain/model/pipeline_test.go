package model_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
)

func newRepo(t *testing.T, name string, archived bool, pushedAt string) *model.Repository {
	t.Helper()

	htmlURL, err := url.Parse("https://github.com/pointfreeco/" + name)
	gt.NoError(t, err)

	repo := &model.Repository{
		ID:       model.NewRepoID(htmlURL),
		Name:     name,
		HTMLURL:  htmlURL,
		Archived: archived,
	}

	if pushedAt != "" {
		ts, err := time.Parse(time.RFC3339, pushedAt)
		gt.NoError(t, err)
		repo.PushedAt = &ts
	}

	return repo
}

func TestVisibleRepos_FilterArchived(t *testing.T) {
	input := []*model.Repository{
		newRepo(t, "active-1", false, "2023-01-17T10:00:00+00:00"),
		newRepo(t, "archived-1", true, "2023-06-01T10:00:00+00:00"),
		newRepo(t, "active-2", false, "2022-01-01T00:00:00+00:00"),
		newRepo(t, "archived-2", true, ""),
	}

	visible := model.VisibleRepos(input)

	gt.V(t, len(visible)).Equal(2)
	for _, repo := range visible {
		gt.V(t, repo.Archived).Equal(false)
	}
}

func TestVisibleRepos_SortByPushedAtDescending(t *testing.T) {
	input := []*model.Repository{
		newRepo(t, "oldest", false, "2020-03-01T00:00:00+00:00"),
		newRepo(t, "newest", false, "2024-02-20T12:30:00+00:00"),
		newRepo(t, "middle", false, "2022-11-05T08:00:00+00:00"),
	}

	visible := model.VisibleRepos(input)

	gt.V(t, len(visible)).Equal(3)
	gt.V(t, visible[0].Name).Equal("newest")
	gt.V(t, visible[1].Name).Equal("middle")
	gt.V(t, visible[2].Name).Equal("oldest")

	// Descending order holds for every comparable pair
	for i := 0; i < len(visible)-1; i++ {
		gt.V(t, visible[i].PushedAt.Before(*visible[i+1].PushedAt)).Equal(false)
	}
}

func TestVisibleRepos_MissingPushedAtSinksToTail(t *testing.T) {
	input := []*model.Repository{
		newRepo(t, "no-push-a", false, ""),
		newRepo(t, "pushed", false, "2023-01-17T10:00:00+00:00"),
		newRepo(t, "no-push-b", false, ""),
	}

	visible := model.VisibleRepos(input)

	gt.V(t, len(visible)).Equal(3)
	gt.V(t, visible[0].Name).Equal("pushed")
	// Stable sort keeps the input order of records without a timestamp
	gt.V(t, visible[1].Name).Equal("no-push-a")
	gt.V(t, visible[2].Name).Equal("no-push-b")
}

func TestVisibleRepos_Idempotent(t *testing.T) {
	input := []*model.Repository{
		newRepo(t, "bravo", false, "2021-05-05T05:00:00+00:00"),
		newRepo(t, "alpha", false, "2023-05-05T05:00:00+00:00"),
		newRepo(t, "gone", true, "2024-05-05T05:00:00+00:00"),
	}

	first := model.VisibleRepos(input)
	second := model.VisibleRepos(input)

	gt.V(t, len(first)).Equal(len(second))
	for i := range first {
		gt.V(t, first[i].Name).Equal(second[i].Name)
	}

	// Input order is never modified
	gt.V(t, input[0].Name).Equal("bravo")
	gt.V(t, input[1].Name).Equal("alpha")
	gt.V(t, input[2].Name).Equal("gone")
}

func TestVisibleRepos_ArchivedDropped(t *testing.T) {
	input := []*model.Repository{
		newRepo(t, "Bloblog", false, "2023-01-17T10:00:00+00:00"),
		newRepo(t, "Old", true, "2020-01-01T00:00:00+00:00"),
	}

	visible := model.VisibleRepos(input)

	gt.V(t, len(visible)).Equal(1)
	gt.V(t, visible[0].Name).Equal("Bloblog")
}
