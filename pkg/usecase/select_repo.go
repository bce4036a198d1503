package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
)

// TrackRepoSelection emits the tapped_repo event for the selected
// repository. The tracker is a non-failing capability: delivery errors are
// logged and dropped.
func (x *UseCase) TrackRepoSelection(ctx context.Context, repo *model.Repository) {
	event := model.NewRepoTappedEvent(repo, x.appVersion)

	if err := x.clients.Tracker().Track(ctx, event); err != nil {
		logging.From(ctx).Warn("Failed to track repo selection",
			slog.String("repo", repo.Name),
			slog.Any("error", err),
		)
	}
}

// OpenRepoPage opens the repository page in the user's browser
func (x *UseCase) OpenRepoPage(ctx context.Context, repo *model.Repository) error {
	rawURL := repo.HTMLURL.String()
	if err := x.clients.BrowserOpener()(rawURL); err != nil {
		return goerr.Wrap(err, "failed to open repository page", goerr.V("url", rawURL))
	}

	logging.From(ctx).Debug("Opened repository page", slog.String("url", rawURL))
	return nil
}
