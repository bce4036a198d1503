package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
)

// FetchVisibleRepos performs one fetch and runs the list pipeline over the
// result. Fetch errors are returned as-is so the caller can route them by
// kind.
func (x *UseCase) FetchVisibleRepos(ctx context.Context) ([]*model.Repository, error) {
	if x.clients.Fetcher() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "repo fetcher is not configured")
	}

	raw, err := x.clients.Fetcher().ListOrgRepos(ctx)
	if err != nil {
		return nil, err
	}

	repos := model.VisibleRepos(raw)

	logging.From(ctx).Info("Fetched repositories",
		slog.Int("fetched", len(raw)),
		slog.Int("visible", len(repos)),
	)

	return repos, nil
}
