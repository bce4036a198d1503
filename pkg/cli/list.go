package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repodeck/pkg/cli/config"
	"github.com/secmon-lab/repodeck/pkg/infra"
	"github.com/secmon-lab/repodeck/pkg/usecase"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var github config.GitHub

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "Print the repository list and exit",
		Flags:   github.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			reqID, ctx := logging.CtxRequestID(ctx)
			ctx = logging.With(ctx, logging.Default().With(slog.Any("request_id", reqID)))

			fetcher, err := github.NewFetcher()
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithFetcher(fetcher)))

			repos, err := uc.FetchVisibleRepos(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch repositories")
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			for _, repo := range repos {
				pushedAt := "-"
				if repo.PushedAt != nil {
					pushedAt = repo.PushedAt.Format("2006-01-02")
				}
				desc := ""
				if repo.Description != nil {
					desc = *repo.Description
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", repo.Name, pushedAt, desc)
			}

			return w.Flush()
		},
	}
}
