package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . RepoFetcher Tracker

import (
	"context"
	"time"

	"github.com/secmon-lab/repodeck/pkg/domain/model"
)

// RepoFetcher retrieves the repository list of the configured organization.
// One call is one network round trip.
type RepoFetcher interface {
	ListOrgRepos(ctx context.Context) ([]*model.Repository, error)
}

// Tracker delivers analytics events. Delivery failures are diagnostic only
// and must never be surfaced to the user.
type Tracker interface {
	Track(ctx context.Context, event *model.TrackEvent) error
	Close() error
}

// Clock supplies the current time so relative timestamps are deterministic
// in tests
type Clock func() time.Time

// BrowserOpener opens a URL in the user's browser
type BrowserOpener func(rawURL string) error
