package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/repodeck/pkg/cli/config"
	"github.com/secmon-lab/repodeck/pkg/controller/tui"
	"github.com/secmon-lab/repodeck/pkg/infra"
	"github.com/secmon-lab/repodeck/pkg/infra/fixture"
	"github.com/secmon-lab/repodeck/pkg/usecase"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
	"github.com/secmon-lab/repodeck/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func viewCommand() *cli.Command {
	var (
		github     config.GitHub
		segmentCfg config.Segment
		sentryCfg  config.Sentry
		demo       bool
	)

	return &cli.Command{
		Name:    "view",
		Aliases: []string{"v"},
		Usage:   "Browse the repository list interactively",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "demo",
				Usage:       "Use bundled fixture data instead of the network",
				Destination: &demo,
			},
		}, github.Flags(), segmentCfg.Flags(), sentryCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(ctx); err != nil {
				return err
			}

			reqID, ctx := logging.CtxRequestID(ctx)
			ctx = logging.With(ctx, logging.Default().With(slog.Any("request_id", reqID)))

			logging.From(ctx).Info("Starting interactive view",
				slog.Any("github", &github),
				slog.Any("segment", &segmentCfg),
				slog.Bool("demo", demo),
			)

			clients, err := buildClients(ctx, &github, &segmentCfg, demo)
			if err != nil {
				return err
			}
			defer safe.Close(clients.Tracker())

			uc := usecase.New(clients, usecase.WithAppVersion(AppVersion))

			return tui.Run(ctx, uc)
		},
	}
}

// buildClients wires the live dependency set, or the fixture set in demo
// mode. The screen code never sees the difference.
func buildClients(ctx context.Context, github *config.GitHub, segmentCfg *config.Segment, demo bool) (*infra.Clients, error) {
	if demo {
		return infra.New(
			infra.WithFetcher(fixture.NewFetcher(fixture.DefaultRepos()...)),
		), nil
	}

	fetcher, err := github.NewFetcher()
	if err != nil {
		return nil, err
	}

	tracker, err := segmentCfg.NewTracker(ctx)
	if err != nil {
		return nil, err
	}

	return infra.New(
		infra.WithFetcher(fetcher),
		infra.WithTracker(tracker),
	), nil
}
