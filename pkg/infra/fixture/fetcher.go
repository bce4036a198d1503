package fixture

import (
	"context"
	"net/url"
	"time"

	"github.com/secmon-lab/repodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
)

// Fetcher returns a fixed repository list without touching the network.
// It is the canonical success preset for demos and tests.
type Fetcher struct {
	repos []*model.Repository
}

var _ interfaces.RepoFetcher = (*Fetcher)(nil)

func NewFetcher(repos ...*model.Repository) *Fetcher {
	return &Fetcher{repos: repos}
}

func (x *Fetcher) ListOrgRepos(ctx context.Context) ([]*model.Repository, error) {
	return x.repos, nil
}

// FailingFetcher always fails with the given error. It is the canonical
// error preset.
type FailingFetcher struct {
	err error
}

var _ interfaces.RepoFetcher = (*FailingFetcher)(nil)

func NewFailingFetcher(err error) *FailingFetcher {
	return &FailingFetcher{err: err}
}

func (x *FailingFetcher) ListOrgRepos(ctx context.Context) ([]*model.Repository, error) {
	return nil, x.err
}

// DefaultRepos is a small literal dataset used by the demo mode.
func DefaultRepos() []*model.Repository {
	return []*model.Repository{
		newRepo("swift-composable-architecture", "A library for building applications in a consistent and understandable way", "2024-06-03T09:15:00+00:00"),
		newRepo("swift-dependencies", "A dependency management library inspired by SwiftUI's environment", "2024-05-28T17:40:00+00:00"),
		newRepo("swift-snapshot-testing", "Delightful Swift snapshot testing", "2024-04-11T08:02:00+00:00"),
	}
}

func newRepo(name, description, pushedAt string) *model.Repository {
	htmlURL, err := url.Parse("https://github.com/pointfreeco/" + name)
	if err != nil {
		panic(err)
	}
	ts, err := time.Parse("2006-01-02T15:04:05Z07:00", pushedAt)
	if err != nil {
		panic(err)
	}

	return &model.Repository{
		ID:          model.NewRepoID(htmlURL),
		Name:        name,
		Description: &description,
		HTMLURL:     htmlURL,
		PushedAt:    &ts,
	}
}
