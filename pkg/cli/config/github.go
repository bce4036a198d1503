package config

import (
	"log/slog"

	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	baseURL string
	org     string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL",
			Category:    "GitHub",
			Value:       githubapi.DefaultBaseURL,
			Sources:     cli.EnvVars("REPODECK_GITHUB_BASE_URL"),
			Destination: &x.baseURL,
		},
		&cli.StringFlag{
			Name:        "org",
			Usage:       "GitHub organization to list",
			Category:    "GitHub",
			Value:       "pointfreeco",
			Sources:     cli.EnvVars("REPODECK_GITHUB_ORG"),
			Destination: &x.org,
		},
	}
}

func (x *GitHub) NewFetcher() (*githubapi.Client, error) {
	return githubapi.New(x.baseURL, types.OrgName(x.org))
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("BaseURL", x.baseURL),
		slog.String("Org", x.org),
	)
}
