package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/abhisek/rps/internal/clipboard"
	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/logging"
	"github.com/abhisek/rps/internal/router"
	"github.com/abhisek/rps/internal/screen"
	"github.com/abhisek/rps/internal/screens/history"
	"github.com/abhisek/rps/internal/screens/placeholder"
	matchscreen "github.com/abhisek/rps/internal/screens/match"
	"github.com/abhisek/rps/internal/store"
	"github.com/abhisek/rps/internal/ui/components"
	"github.com/abhisek/rps/internal/ui/layout"
)

// Deps holds what the home screen needs to start matches and show history.
type Deps struct {
	Target    int
	Targets   []int
	Source    game.MoveSource
	Repo      store.MatchRepo
	Clipboard clipboard.Writer
	Logger    *log.Logger
	Clock     quartz.Clock

	// Record reports the session tally for the stats bar. Optional.
	Record func() layout.SessionRecord
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Clock == nil {
		deps.Clock = quartz.NewReal()
	}
	if deps.Target <= 0 {
		deps.Target = game.DefaultTarget
	}

	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "PLAY", Action: h.startMatch},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if deps.Repo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History", "The match archive could not be opened.")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Repo, deps.Clipboard)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	h.menuLabels = h.menu.Labels()
	return h
}

// startMatch pushes a fresh match screen racing to the last chosen target.
func (h *HomeScreen) startMatch() tea.Cmd {
	src := h.deps.Source
	if src == nil {
		src = game.NewTimeSeededSource()
	}
	m, err := game.NewMatch(h.deps.Target, src, game.WithClock(h.deps.Clock))
	if err != nil {
		h.deps.Logger.Error("start match", "target", h.deps.Target, "err", err)
		return nil
	}
	h.deps.Logger.Info("match started", "match", m.ID(), "target", m.Target())

	scr := matchscreen.New(m, matchscreen.Options{
		Targets:   h.deps.Targets,
		Repo:      h.deps.Repo,
		Clipboard: h.deps.Clipboard,
		Logger:    h.deps.Logger,
		Clock:     h.deps.Clock,
		OnTarget:  func(target int) { h.deps.Target = target },
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: scr}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 80

	cw := components.ContentWidth(width)

	var rec layout.SessionRecord
	if h.deps.Record != nil {
		rec = h.deps.Record()
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(rec), cw))
	}
	sections = append(sections, renderStatsBar(rec, h.deps.Target, cw, compact))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.menu.DisabledSet(), compact))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
