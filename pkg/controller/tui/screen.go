package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repodeck/pkg/domain/model"
	"github.com/secmon-lab/repodeck/pkg/domain/types"
	"github.com/secmon-lab/repodeck/pkg/usecase"
	"github.com/secmon-lab/repodeck/pkg/utils/errutil"
)

// Phase is the navigation state of the screen
type Phase int

const (
	PhaseList Phase = iota
	PhaseDetail
	PhaseError
)

type reposLoadedMsg struct {
	repos []*model.Repository
}

type fetchFailedMsg struct {
	err error
}

// Screen is the single list/detail screen. Exactly one fetch is issued per
// activation (by Init); all later transitions are driven by the fetch
// result and key input.
type Screen struct {
	ctx context.Context
	uc  *usecase.UseCase

	list    list.Model
	phase   Phase
	detail  *model.Repository
	errKind error

	loading  bool
	quitting bool
	width    int
	height   int
}

func New(ctx context.Context, uc *usecase.UseCase) Screen {
	l := list.New(nil, repoDelegate{clock: uc.Now}, 0, 0)
	l.Title = "Repositories"
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("repo", "repos")
	l.FilterInput.Prompt = "/ "

	return Screen{
		ctx:     ctx,
		uc:      uc,
		list:    l,
		phase:   PhaseList,
		loading: true,
	}
}

// Phase returns the current navigation state
func (s Screen) Phase() Phase { return s.phase }

// Detail returns the repository shown by the detail phase, nil otherwise
func (s Screen) Detail() *model.Repository { return s.detail }

// ErrKind returns the failure that drove the screen into the error phase
func (s Screen) ErrKind() error { return s.errKind }

func (s Screen) Init() tea.Cmd {
	return s.fetchCmd
}

// fetchCmd is the single suspension point of the screen: one network call,
// resolved into a message
func (s Screen) fetchCmd() tea.Msg {
	repos, err := s.uc.FetchVisibleRepos(s.ctx)
	if err != nil {
		return fetchFailedMsg{err: err}
	}
	return reposLoadedMsg{repos: repos}
}

func (s Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.SetSize(msg.Width-2, msg.Height-2)
		return s, nil

	case reposLoadedMsg:
		// A result arriving after teardown is discarded
		if s.quitting {
			return s, nil
		}
		s.loading = false
		items := make([]list.Item, 0, len(msg.repos))
		for _, repo := range msg.repos {
			items = append(items, repoItem{repo: repo})
		}
		s.list.SetItems(items)
		return s, nil

	case fetchFailedMsg:
		if s.quitting {
			return s, nil
		}
		s.loading = false
		switch {
		case errors.Is(msg.err, types.ErrNonHTTPResponse), errors.Is(msg.err, types.ErrNonSuccessStatus):
			s.phase = PhaseError
			s.errKind = msg.err
		default:
			// Failure kinds the screen does not recognize are reported
			// but do not move the screen
			errutil.HandleError(s.ctx, "fetch failed with unrecognized error kind", msg.err)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s Screen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		s.quitting = true
		return s, tea.Quit
	}

	switch s.phase {
	case PhaseDetail:
		switch msg.String() {
		case "esc", "enter":
			// Back to the list without re-fetching
			s.phase = PhaseList
			s.detail = nil
		case "q":
			s.quitting = true
			return s, tea.Quit
		}
		return s, nil

	case PhaseError:
		switch msg.String() {
		case "q", "esc", "enter":
			s.quitting = true
			return s, tea.Quit
		}
		return s, nil

	default:
		if s.list.FilterState() == list.Filtering {
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "q":
			s.quitting = true
			return s, tea.Quit
		case "enter":
			item, ok := s.list.SelectedItem().(repoItem)
			if !ok {
				return s, nil
			}
			// Tracking happens synchronously before the transition
			s.uc.TrackRepoSelection(s.ctx, item.repo)
			if err := s.uc.OpenRepoPage(s.ctx, item.repo); err != nil {
				errutil.HandleError(s.ctx, "failed to open repository page", err)
			}
			s.detail = item.repo
			s.phase = PhaseDetail
			return s, nil
		}

		var cmd tea.Cmd
		s.list, cmd = s.list.Update(msg)
		return s, cmd
	}
}

func (s Screen) View() string {
	if s.quitting {
		return ""
	}

	switch s.phase {
	case PhaseDetail:
		return s.detailView()
	case PhaseError:
		return s.errorView()
	default:
		if s.loading {
			return titleStyle.Render("Repositories") + "\n\n" + mutedStyle.Render("Loading…")
		}
		return s.list.View()
	}
}

func (s Screen) detailView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(s.detail.Name) + "\n\n")
	if s.detail.Description != nil {
		b.WriteString(*s.detail.Description + "\n\n")
	}
	b.WriteString(accentStyle.Render(s.detail.HTMLURL.String()) + "\n")
	b.WriteString(mutedStyle.Render(pushAge(s.uc.Now(), s.detail.PushedAt)) + "\n\n")
	b.WriteString(helpStyle.Render("opened in browser · esc: back · q: quit"))
	return b.String()
}

func (s Screen) errorView() string {
	kind := "unknown"
	switch {
	case errors.Is(s.errKind, types.ErrNonHTTPResponse):
		kind = "no HTTP response"
	case errors.Is(s.errKind, types.ErrNonSuccessStatus):
		kind = "unexpected status code"
	}

	return errorStyle.Render("Failed to load repositories: "+kind) + "\n\n" +
		mutedStyle.Render(s.errKind.Error()) + "\n\n" +
		helpStyle.Render("q: quit")
}

// Run starts the interactive program and blocks until the user quits or
// ctx is cancelled
func Run(ctx context.Context, uc *usecase.UseCase) error {
	p := tea.NewProgram(New(ctx, uc), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return goerr.Wrap(err, "failed to run interactive screen")
	}
	return nil
}
