package githubapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/utils/logging"
	"github.com/secmon-lab/repodeck/pkg/utils/safe"
)

const DefaultBaseURL = "https://api.github.com"

// pushedAtLayout is RFC 3339 without fractional seconds. time.Parse is
// locale and timezone independent, so decoding never depends on the host
// environment.
const pushedAtLayout = "2006-01-02T15:04:05Z07:00"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches the repository list of one organization from the GitHub
// REST API. No auth, no pagination, no retry.
type Client struct {
	baseURL    *url.URL
	org        types.OrgName
	httpClient HTTPClient
}

var _ interfaces.RepoFetcher = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func New(baseURL string, org types.OrgName, options ...Option) (*Client, error) {
	if org == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "org is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid base URL", goerr.V("baseURL", baseURL))
	}

	client := &Client{
		baseURL: u,
		org:     org,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// repoEnvelope is the wire shape of one repository. Pointer fields
// distinguish a missing key from a zero value; archived, html_url and name
// are required.
type repoEnvelope struct {
	Archived    *bool   `json:"archived"`
	Description *string `json:"description"`
	HTMLURL     *string `json:"html_url"`
	Name        *string `json:"name"`
	PushedAt    *string `json:"pushed_at"`
}

func (x *Client) ListOrgRepos(ctx context.Context) ([]*model.Repository, error) {
	endpoint := x.baseURL.JoinPath("orgs", string(x.org), "repos")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", endpoint.String()))
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(types.ErrNonHTTPResponse, "request did not complete",
			goerr.V("url", endpoint.String()),
			goerr.V("cause", err),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.Wrap(types.ErrNonSuccessStatus, "unexpected status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	var envelopes []repoEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelopes); err != nil {
		return nil, goerr.Wrap(types.ErrDecodeFailed, "body is not a JSON array of repositories",
			goerr.V("cause", err),
		)
	}

	repos := make([]*model.Repository, 0, len(envelopes))
	for idx, env := range envelopes {
		repo, err := env.toModel()
		if err != nil {
			return nil, goerr.Wrap(err, "invalid repository record", goerr.V("index", idx))
		}
		repos = append(repos, repo)
	}

	logging.From(ctx).Debug("Listed org repos",
		slog.String("org", string(x.org)),
		slog.Int("count", len(repos)),
	)

	return repos, nil
}

func (x *repoEnvelope) toModel() (*model.Repository, error) {
	if x.Archived == nil || x.HTMLURL == nil || x.Name == nil {
		return nil, goerr.Wrap(types.ErrDecodeFailed, "missing required field",
			goerr.V("has_archived", x.Archived != nil),
			goerr.V("has_html_url", x.HTMLURL != nil),
			goerr.V("has_name", x.Name != nil),
		)
	}

	htmlURL, err := url.Parse(*x.HTMLURL)
	if err != nil || htmlURL.Scheme == "" {
		return nil, goerr.Wrap(types.ErrDecodeFailed, "invalid html_url", goerr.V("html_url", *x.HTMLURL))
	}

	var pushedAt *time.Time
	if x.PushedAt != nil {
		ts, err := time.Parse(pushedAtLayout, *x.PushedAt)
		if err != nil {
			return nil, goerr.Wrap(types.ErrDecodeFailed, "unparseable pushed_at", goerr.V("pushed_at", *x.PushedAt))
		}
		pushedAt = &ts
	}

	return &model.Repository{
		ID:          model.NewRepoID(htmlURL),
		Name:        *x.Name,
		Description: x.Description,
		HTMLURL:     htmlURL,
		PushedAt:    pushedAt,
		Archived:    *x.Archived,
	}, nil
}
