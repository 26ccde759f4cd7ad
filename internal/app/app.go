package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/abhisek/rps/internal/clipboard"
	"github.com/abhisek/rps/internal/config"
	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/logging"
	"github.com/abhisek/rps/internal/router"
	"github.com/abhisek/rps/internal/screen"
	"github.com/abhisek/rps/internal/screens/home"
	matchscreen "github.com/abhisek/rps/internal/screens/match"
	"github.com/abhisek/rps/internal/screens/welcome"
	"github.com/abhisek/rps/internal/store"
	"github.com/abhisek/rps/internal/ui/layout"
)

// Options holds the dependencies injected into the app.
type Options struct {
	Config    *config.Config
	Repo      store.MatchRepo
	Logger    *log.Logger
	Clipboard clipboard.Writer
	Source    game.MoveSource
	Clock     quartz.Clock

	// Splash shows the welcome countdown before the home screen.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	record *layout.SessionRecord
	logger *log.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	src := opts.Source
	if src == nil {
		src = SourceFor(cfg.Match.Seed)
	}

	record := &layout.SessionRecord{}
	homeScreen := home.New(home.Deps{
		Target:    cfg.Match.Target,
		Targets:   cfg.Match.Targets,
		Source:    src,
		Repo:      opts.Repo,
		Clipboard: opts.Clipboard,
		Logger:    logger,
		Clock:     opts.Clock,
		Record:    func() layout.SessionRecord { return *record },
	})
	var initial screen.Screen = homeScreen
	if opts.Splash {
		initial = welcome.New(func() screen.Screen { return homeScreen })
	}
	return AppModel{
		router: router.New(initial),
		record: record,
		logger: logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case matchscreen.MatchDecidedMsg:
		if msg.Winner == game.Human {
			m.record.Won++
		} else {
			m.record.Lost++
		}
		m.logger.Info("match decided", "match", msg.MatchID, "winner", msg.Winner,
			"won", m.record.Won, "lost", m.record.Lost)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()
		case "esc":
			// Screens never see esc; it always goes back one screen.
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// quit leaves every screen above home so in-flight matches are archived.
func (m AppModel) quit() tea.Cmd {
	cmds := make([]tea.Cmd, 0, m.router.Depth())
	for m.router.Depth() > 1 {
		cmds = append(cmds, m.router.Pop())
	}
	return tea.Sequence(tea.Batch(cmds...), tea.Quit)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, *m.record, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// SourceFor returns a reproducible computer for a non-zero seed and a
// time-seeded one otherwise.
func SourceFor(seed int64) game.MoveSource {
	if seed != 0 {
		return game.NewRandomSource(seed)
	}
	return game.NewTimeSeededSource()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
