package infra

import (
	"net/http"
	"time"

	"github.com/pkg/browser"
	"github.com/secmon-lab/repodeck/pkg/domain/interfaces"
	"github.com/secmon-lab/repodeck/pkg/infra/segment"
)

// Clients bundles the swappable capabilities of one screen activation.
// It is built once at construction and treated as read-only afterwards.
type Clients struct {
	fetcher    interfaces.RepoFetcher
	tracker    interfaces.Tracker
	clock      interfaces.Clock
	httpClient HTTPClient
	opener     interfaces.BrowserOpener
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		tracker:    segment.NewNull(),
		clock:      time.Now,
		httpClient: http.DefaultClient,
		opener:     browser.OpenURL,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Fetcher() interfaces.RepoFetcher {
	return x.fetcher
}
func (x *Clients) Tracker() interfaces.Tracker {
	return x.tracker
}
func (x *Clients) Clock() interfaces.Clock {
	return x.clock
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) BrowserOpener() interfaces.BrowserOpener {
	return x.opener
}

func WithFetcher(fetcher interfaces.RepoFetcher) Option {
	return func(x *Clients) {
		x.fetcher = fetcher
	}
}

func WithTracker(tracker interfaces.Tracker) Option {
	return func(x *Clients) {
		x.tracker = tracker
	}
}

func WithClock(clock interfaces.Clock) Option {
	return func(x *Clients) {
		x.clock = clock
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithBrowserOpener(opener interfaces.BrowserOpener) Option {
	return func(x *Clients) {
		x.opener = opener
	}
}
