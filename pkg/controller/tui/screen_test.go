package tui_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/repodeck/pkg/controller/tui"
	"github.com/secmon-lab/repodeck/pkg/domain/mock"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/infra"
	"github.com/secmon-lab/repodeck/pkg/usecase"
)

func newTestRepo(t *testing.T, name string, pushedAt string) *model.Repository {
	t.Helper()

	htmlURL, err := url.Parse("https://github.com/pointfreeco/" + name)
	gt.NoError(t, err)

	repo := &model.Repository{
		ID:      model.NewRepoID(htmlURL),
		Name:    name,
		HTMLURL: htmlURL,
	}

	if pushedAt != "" {
		ts, err := time.Parse(time.RFC3339, pushedAt)
		gt.NoError(t, err)
		repo.PushedAt = &ts
	}

	return repo
}

// resolveFetch runs the screen's single fetch command and applies the result
func resolveFetch(t *testing.T, s tui.Screen) tui.Screen {
	t.Helper()

	msg := s.Init()()
	next, _ := s.Update(msg)
	return next.(tui.Screen)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestScreen_FetchSuccessStaysInList(t *testing.T) {
	mockFetcher := &mock.RepoFetcherMock{
		ListOrgReposFunc: func(ctx context.Context) ([]*model.Repository, error) {
			return []*model.Repository{
				newTestRepo(t, "Bloblog", "2023-01-17T10:00:00+00:00"),
			}, nil
		},
	}

	uc := usecase.New(infra.New(infra.WithFetcher(mockFetcher)))
	s := tui.New(context.Background(), uc)

	gt.V(t, s.Phase()).Equal(tui.PhaseList)

	s = resolveFetch(t, s)

	gt.V(t, s.Phase()).Equal(tui.PhaseList)
	gt.V(t, len(mockFetcher.ListOrgReposCalls())).Equal(1)
}

func TestScreen_TypedErrorRouting(t *testing.T) {
	testCases := map[string]error{
		"non-HTTP response":  types.ErrNonHTTPResponse,
		"non-success status": goerr.Wrap(types.ErrNonSuccessStatus, "unexpected status", goerr.V("status", 500)),
	}

	for name, kind := range testCases {
		t.Run(name, func(t *testing.T) {
			mockFetcher := &mock.RepoFetcherMock{
				ListOrgReposFunc: func(ctx context.Context) ([]*model.Repository, error) {
					return nil, kind
				},
			}

			uc := usecase.New(infra.New(infra.WithFetcher(mockFetcher)))
			s := resolveFetch(t, tui.New(context.Background(), uc))

			gt.V(t, s.Phase()).Equal(tui.PhaseError)
			gt.True(t, errors.Is(s.ErrKind(), kind))
		})
	}
}

func TestScreen_UnrecognizedErrorKeepsState(t *testing.T) {
	mockFetcher := &mock.RepoFetcherMock{
		ListOrgReposFunc: func(ctx context.Context) ([]*model.Repository, error) {
			return nil, goerr.Wrap(types.ErrDecodeFailed, "bad body")
		},
	}

	uc := usecase.New(infra.New(infra.WithFetcher(mockFetcher)))
	s := resolveFetch(t, tui.New(context.Background(), uc))

	// Decode failures are reported but do not move the screen
	gt.V(t, s.Phase()).Equal(tui.PhaseList)
	gt.V(t, s.ErrKind()).Equal(nil)
}

func TestScreen_SelectionFlow(t *testing.T) {
	repo := newTestRepo(t, "Bloblog", "2023-01-17T10:00:00+00:00")

	mockFetcher := &mock.RepoFetcherMock{
		ListOrgReposFunc: func(ctx context.Context) ([]*model.Repository, error) {
			return []*model.Repository{repo}, nil
		},
	}
	mockTracker := &mock.TrackerMock{
		TrackFunc: func(ctx context.Context, event *model.TrackEvent) error {
			return nil
		},
	}

	var opened string
	uc := usecase.New(infra.New(
		infra.WithFetcher(mockFetcher),
		infra.WithTracker(mockTracker),
		infra.WithBrowserOpener(func(rawURL string) error {
			opened = rawURL
			return nil
		}),
	))

	s := resolveFetch(t, tui.New(context.Background(), uc))

	// Selecting the single visible repo emits exactly one analytics event
	// and moves to the detail phase
	next, _ := s.Update(keyMsg("enter"))
	s = next.(tui.Screen)

	gt.V(t, s.Phase()).Equal(tui.PhaseDetail)
	gt.V(t, s.Detail().Name).Equal("Bloblog")
	gt.V(t, opened).Equal("https://github.com/pointfreeco/Bloblog")

	calls := mockTracker.TrackCalls()
	gt.V(t, len(calls)).Equal(1)
	gt.V(t, calls[0].Event.Name).Equal(model.EventRepoTapped)
	gt.V(t, calls[0].Event.Properties["repo"]).Equal("Bloblog")

	// Dismissing the detail returns to the list without re-fetching
	next, _ = s.Update(keyMsg("esc"))
	s = next.(tui.Screen)

	gt.V(t, s.Phase()).Equal(tui.PhaseList)
	gt.V(t, s.Detail() == nil).Equal(true)
	gt.V(t, len(mockFetcher.ListOrgReposCalls())).Equal(1)
}

func TestScreen_ResultAfterQuitIsDiscarded(t *testing.T) {
	mockFetcher := &mock.RepoFetcherMock{
		ListOrgReposFunc: func(ctx context.Context) ([]*model.Repository, error) {
			return nil, types.ErrNonHTTPResponse
		},
	}

	uc := usecase.New(infra.New(infra.WithFetcher(mockFetcher)))
	s := tui.New(context.Background(), uc)

	// The screen is torn down before the fetch resolves
	fetchMsg := s.Init()()
	next, cmd := s.Update(keyMsg("q"))
	s = next.(tui.Screen)
	gt.V(t, cmd == nil).Equal(false)

	next, _ = s.Update(fetchMsg)
	s = next.(tui.Screen)

	// The late failure must not transition state
	gt.V(t, s.Phase()).Equal(tui.PhaseList)
	gt.V(t, s.ErrKind()).Equal(nil)
}
