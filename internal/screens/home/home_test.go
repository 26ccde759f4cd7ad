package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/router"
	"github.com/abhisek/rps/internal/screens/history"
	"github.com/abhisek/rps/internal/screens/placeholder"
	matchscreen "github.com/abhisek/rps/internal/screens/match"
	"github.com/abhisek/rps/internal/store"
	"github.com/abhisek/rps/internal/ui/layout"
)

func openRepo(t *testing.T) store.MatchRepo {
	t.Helper()
	s, err := store.Open(store.InMemoryDSN())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.MatchRepo()
}

func TestPlayPushesMatch(t *testing.T) {
	h := New(Deps{Target: 5, Targets: []int{3, 5}, Source: game.NewSequenceSource(game.Rock)})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	ms, ok := push.Screen.(*matchscreen.MatchScreen)
	if !ok {
		t.Fatalf("expected match screen, got %T", push.Screen)
	}
	if got := ms.State().Target; got != 5 {
		t.Errorf("target = %d, want 5", got)
	}
}

func pushedMatch(t *testing.T, cmd tea.Cmd) *matchscreen.MatchScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	ms, ok := push.Screen.(*matchscreen.MatchScreen)
	if !ok {
		t.Fatalf("expected match screen, got %T", push.Screen)
	}
	return ms
}

func TestPlayKeepsChosenTarget(t *testing.T) {
	h := New(Deps{Target: 5, Targets: []int{3, 5, 7}, Source: game.NewSequenceSource(game.Rock)})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	first := pushedMatch(t, cmd)
	first.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if got := first.State().Target; got != 7 {
		t.Fatalf("target after t = %d, want 7", got)
	}

	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	second := pushedMatch(t, cmd)
	if got := second.State().Target; got != 7 {
		t.Errorf("next match target = %d, want 7", got)
	}
	if !strings.Contains(h.View(100, 40), "FIRST TO 7") {
		t.Error("stats bar should show the chosen target")
	}
}

func TestHistoryWithoutRepoShowsPlaceholder(t *testing.T) {
	h := New(Deps{})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*placeholder.PlaceholderScreen); !ok {
		t.Errorf("expected placeholder screen, got %T", push.Screen)
	}
}

func TestHistoryPushesHistory(t *testing.T) {
	h := New(Deps{Repo: openRepo(t)})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", push.Screen)
	}
}

func TestExitQuits(t *testing.T) {
	h := New(Deps{Repo: openRepo(t)})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestViewShowsRecord(t *testing.T) {
	h := New(Deps{Record: func() layout.SessionRecord { return layout.SessionRecord{Won: 2, Lost: 1} }})

	v := h.View(100, 40)
	if !strings.Contains(v, "2 WON") || !strings.Contains(v, "1 LOST") {
		t.Errorf("view missing record:\n%s", v)
	}
	if !strings.Contains(v, "PLAY") {
		t.Error("view missing menu")
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		rec  layout.SessionRecord
		want MascotVariant
	}{
		{layout.SessionRecord{}, MascotIdle},
		{layout.SessionRecord{Won: 2, Lost: 1}, MascotCelebrating},
		{layout.SessionRecord{Won: 0, Lost: 1}, MascotAlert},
	}
	for _, tt := range tests {
		if got := mascotFor(tt.rec); got != tt.want {
			t.Errorf("mascotFor(%+v) = %d, want %d", tt.rec, got, tt.want)
		}
	}
}
