package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/router"
	"github.com/abhisek/rps/internal/screen"
	"github.com/abhisek/rps/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	beat         = 500 * time.Millisecond
	shootAt      = 3 * beat
	totalDur     = 2500 * time.Millisecond
)

const tagline = "First to the target wins!"

// sparkle frames flank the hand once it is thrown
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen counts "rock, paper, scissors, shoot" before handing over
// to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// countdown returns the word and hand for the current beat.
func (w *WelcomeScreen) countdown() (string, string) {
	if w.elapsed >= shootAt {
		return "SHOOT!", game.Rock.Icon() + " " + game.Paper.Icon() + " " + game.Scissors.Icon()
	}
	mv := game.AllMoves()[int(w.elapsed/beat)]
	return strings.ToUpper(mv.String()) + "...", mv.Icon()
}

func (w *WelcomeScreen) View(width, height int) string {
	word, hand := w.countdown()

	handStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	rendered := handStyle.Render(hand)
	if w.elapsed >= shootAt {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		rendered = lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle) +
			"  " + rendered + "  " +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)
	}

	sections := []string{
		rendered,
		"",
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(word),
	}

	if w.elapsed >= totalDur {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(tagline),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
