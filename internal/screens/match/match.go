package match

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/abhisek/rps/internal/clipboard"
	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/logging"
	"github.com/abhisek/rps/internal/screen"
	"github.com/abhisek/rps/internal/store"
	"github.com/abhisek/rps/internal/ui/components"
	"github.com/abhisek/rps/internal/ui/layout"
)

const (
	statusRevertDelay = 2 * time.Second

	copiedMessage     = "📋 Game summary copied to clipboard!"
	copyFailedMessage = "❌ Could not copy summary. Try again later."
)

type statusKind int

const (
	statusNeutral statusKind = iota
	statusWin
	statusLose
	statusTie
	statusError
)

// Options carries the collaborators of a MatchScreen. Zero values are
// replaced with working defaults.
type Options struct {
	// Targets are the scores the t key cycles through.
	Targets   []int
	Repo      store.MatchRepo
	Clipboard clipboard.Writer
	Logger    *log.Logger
	Clock     quartz.Clock

	// OnTarget is told about every target chosen with the t key. Optional.
	OnTarget func(target int)
}

// MatchScreen implements screen.Screen for a race-to-target match.
type MatchScreen struct {
	match    *game.Match
	repo     store.MatchRepo
	clip     clipboard.Writer
	logger   *log.Logger
	clock    quartz.Clock
	targets  []int
	onTarget func(int)
	keys     keyMap
	selector components.MoveSelector

	status      string
	statusKind  statusKind
	statusToken int
}

var (
	_ screen.Screen          = (*MatchScreen)(nil)
	_ screen.KeyHintProvider = (*MatchScreen)(nil)
	_ screen.Leaver          = (*MatchScreen)(nil)
)

// New creates a MatchScreen around m.
func New(m *game.Match, opts Options) *MatchScreen {
	s := &MatchScreen{
		match:    m,
		repo:     opts.Repo,
		clip:     opts.Clipboard,
		logger:   opts.Logger,
		clock:    opts.Clock,
		targets:  opts.Targets,
		onTarget: opts.OnTarget,
		keys:     defaultKeyMap(),
		selector: components.NewMoveSelector(),
	}
	if s.clip == nil {
		s.clip = clipboard.System{}
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if len(s.targets) == 0 {
		s.targets = []int{m.Target()}
	}
	s.setStatus(game.ReadyMessage(m.Target()), statusNeutral)
	return s
}

func (s *MatchScreen) Init() tea.Cmd {
	s.archiveStart()
	return nil
}

func (s *MatchScreen) Title() string {
	return "Match"
}

func (s *MatchScreen) KeyHints() []layout.KeyHint {
	if s.match.Complete() {
		return []layout.KeyHint{
			hint(s.keys.NewMatch),
			hint(s.keys.Copy),
			{Key: "Esc", Description: "home"},
		}
	}
	return []layout.KeyHint{
		{Key: "r/p/s", Description: "play"},
		{Key: "←/→", Description: "select"},
		hint(s.keys.Play),
		hint(s.keys.Target),
		hint(s.keys.NewMatch),
		hint(s.keys.Copy),
		{Key: "Esc", Description: "home"},
	}
}

func (s *MatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusExpiredMsg:
		if msg.token == s.statusToken && !s.match.Complete() {
			s.setStatus(game.ReadyMessage(s.match.Target()), statusNeutral)
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// Leave archives the current match as abandoned when it was left mid-race.
func (s *MatchScreen) Leave() tea.Cmd {
	s.archiveAbandon()
	return nil
}

// State returns a copy of the current match state.
func (s *MatchScreen) State() game.MatchState {
	return s.match.State()
}

// Status returns the status line text.
func (s *MatchScreen) Status() string {
	return s.status
}

func (s *MatchScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Copy):
		return s, s.copySummary()
	case key.Matches(msg, s.keys.NewMatch):
		s.reset(s.match.Target())
		return s, nil
	}

	// Everything below drives the race and is disabled once it is decided.
	if s.match.Complete() {
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Rock):
		return s, s.play(game.Rock)
	case key.Matches(msg, s.keys.Paper):
		return s, s.play(game.Paper)
	case key.Matches(msg, s.keys.Scissors):
		return s, s.play(game.Scissors)
	case key.Matches(msg, s.keys.Left):
		s.selector = s.selector.Left()
	case key.Matches(msg, s.keys.Right):
		s.selector = s.selector.Right()
	case key.Matches(msg, s.keys.Play):
		return s, s.play(s.selector.Current())
	case key.Matches(msg, s.keys.Target):
		s.retarget(s.nextTarget())
	}
	return s, nil
}

// play records one round and, if it decides the match, announces the winner.
func (s *MatchScreen) play(mv game.Move) tea.Cmd {
	rec, ok := s.match.RecordRound(mv)
	if !ok {
		return nil
	}
	s.archiveRound(rec)
	s.logger.Debug("round played", "match", s.match.ID(), "round", rec.Number,
		"human", rec.Human, "computer", rec.Computer, "outcome", rec.Outcome)

	if !s.match.Complete() {
		s.setStatus(game.StatusMessage(rec.Outcome), kindFor(rec.Outcome))
		return nil
	}

	winner, _ := s.match.Winner()
	if winner == game.Human {
		s.setStatus(game.MatchOverMessage(winner), statusWin)
	} else {
		s.setStatus(game.MatchOverMessage(winner), statusLose)
	}
	s.selector.Disabled = true
	s.archiveFinish(winner)

	id := s.match.ID()
	return func() tea.Msg {
		return MatchDecidedMsg{MatchID: id, Winner: winner}
	}
}

// reset abandons the current race, if any, and starts a new one.
func (s *MatchScreen) reset(target int) {
	s.archiveAbandon()
	if err := s.match.Reset(target); err != nil {
		s.logger.Error("reset match", "target", target, "err", err)
		return
	}
	s.selector = components.NewMoveSelector()
	s.setStatus(game.ReadyMessage(target), statusNeutral)
	s.archiveStart()
}

// retarget starts a new race to target and remembers the choice.
func (s *MatchScreen) retarget(target int) {
	s.reset(target)
	if s.match.Target() != target {
		return
	}
	s.logger.Info("target changed", "match", s.match.ID(), "target", target)
	if s.onTarget != nil {
		s.onTarget(target)
	}
}

func (s *MatchScreen) nextTarget() int {
	cur := s.match.Target()
	for i, t := range s.targets {
		if t == cur {
			return s.targets[(i+1)%len(s.targets)]
		}
	}
	return s.targets[0]
}

func (s *MatchScreen) copySummary() tea.Cmd {
	text := game.Summary(s.match.State())
	if err := s.clip.WriteAll(text); err != nil {
		s.logger.Warn("copy summary", "err", err)
		s.setStatus(copyFailedMessage, statusError)
		return nil
	}
	s.setStatus(copiedMessage, statusTie)
	if s.match.Complete() {
		return nil
	}

	token := s.statusToken
	timer := s.clock.NewTimer(statusRevertDelay, "status")
	return func() tea.Msg {
		<-timer.C
		return statusExpiredMsg{token: token}
	}
}

// setStatus replaces the status line and invalidates pending reverts.
func (s *MatchScreen) setStatus(text string, kind statusKind) {
	s.status = text
	s.statusKind = kind
	s.statusToken++
}

func kindFor(o game.Outcome) statusKind {
	switch o {
	case game.Win:
		return statusWin
	case game.Lose:
		return statusLose
	default:
		return statusTie
	}
}

func (s *MatchScreen) archiveStart() {
	if s.repo == nil {
		return
	}
	st := s.match.State()
	err := s.repo.AppendMatchEvent(context.Background(), store.MatchEventData{
		MatchID: st.ID,
		Action:  store.ActionStart,
		Target:  st.Target,
	})
	if err != nil {
		s.logger.Error("archive match start", "match", st.ID, "err", err)
	}
}

func (s *MatchScreen) archiveRound(rec game.RoundRecord) {
	if s.repo == nil {
		return
	}
	err := s.repo.AppendRound(context.Background(), store.RoundEventData{
		MatchID:  s.match.ID(),
		Round:    rec.Number,
		Human:    rec.Human.String(),
		Computer: rec.Computer.String(),
		Outcome:  rec.Outcome.String(),
		PlayedAt: rec.PlayedAt,
	})
	if err != nil {
		s.logger.Error("archive round", "match", s.match.ID(), "round", rec.Number, "err", err)
	}
}

func (s *MatchScreen) archiveFinish(winner game.Side) {
	s.appendOutcome(store.ActionFinish, winner.String())
}

// archiveAbandon records a match that was left with rounds played but
// without a winner. Untouched and decided matches are not abandoned.
func (s *MatchScreen) archiveAbandon() {
	st := s.match.State()
	if st.Complete || st.Rounds() == 0 {
		return
	}
	s.appendOutcome(store.ActionAbandon, "")
}

func (s *MatchScreen) appendOutcome(action, winner string) {
	if s.repo == nil {
		return
	}
	st := s.match.State()
	err := s.repo.AppendMatchEvent(context.Background(), store.MatchEventData{
		MatchID:       st.ID,
		Action:        action,
		Target:        st.Target,
		HumanScore:    st.HumanScore,
		ComputerScore: st.ComputerScore,
		Ties:          st.Ties,
		Winner:        winner,
	})
	if err != nil {
		s.logger.Error("archive match "+action, "match", st.ID, "err", err)
	}
	s.logger.Info("match "+action, "match", st.ID, "you", st.HumanScore,
		"computer", st.ComputerScore, "ties", st.Ties)
}
