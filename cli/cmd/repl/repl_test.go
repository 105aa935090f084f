package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
)

func newTestModel(t *testing.T, grid sheet.Grid) model {
	t.Helper()

	s := sheet.New(grid, sheet.WithLogger(log.Discard()))

	return newModel(t.Context(), s, NewHistory(""), makeOptions(
		WithLogger(log.Discard()),
	))
}

func typeText(m model, text string) model {
	for _, r := range text {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	return m
}

func press(m model, k tea.KeyType) model {
	m, _ = m.handleKey(tea.KeyMsg{Type: k})

	return m
}

func TestModel_Evaluate(t *testing.T) {
	m := newTestModel(t, sheet.Grid{{"2", "a1 3 *"}})

	tests := []struct {
		input string
		want  string
	}{
		{"b1 a1 -", "4"},
		{"1 2 /", "0.5"},
		{"a1 0 /", "error (division-by-zero)"},
		{"c9", "error (reference)"},
		{"1 +", "error (parse)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := m.evaluate(tt.input); !strings.Contains(got, tt.want) {
				t.Fatalf("evaluate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestModel_EnterRecordsHistory(t *testing.T) {
	m := newTestModel(t, sheet.Grid{{"1"}})

	m = typeText(m, "1 2 +")
	m = press(m, tea.KeyEnter)

	if m.input.Value() != "" {
		t.Fatalf("input after enter = %q, want empty", m.input.Value())
	}

	if m.history.Len() != 1 {
		t.Fatalf("history.Len() = %d, want 1", m.history.Len())
	}

	m = press(m, tea.KeyUp)
	if m.input.Value() != "1 2 +" {
		t.Fatalf("input after up = %q, want %q", m.input.Value(), "1 2 +")
	}

	m = press(m, tea.KeyDown)
	if m.input.Value() != "" {
		t.Fatalf("input after down = %q, want empty", m.input.Value())
	}
}

func TestModel_EscTogglesModeAndKeepsText(t *testing.T) {
	m := newTestModel(t, sheet.Grid{{"1"}})

	m = typeText(m, "a1")
	m = press(m, tea.KeyEsc)

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("after esc: mode=%d input=%q", m.mode, m.input.Value())
	}

	m = press(m, tea.KeyEsc)

	if m.mode != modeEval || m.input.Value() != "a1" {
		t.Fatalf("after second esc: mode=%d input=%q", m.mode, m.input.Value())
	}
}

func TestModel_HistorySwitchesMode(t *testing.T) {
	m := newTestModel(t, sheet.Grid{{"1"}})

	_ = m.history.Add("list", modeCtrl)
	_ = m.history.Add("a1", modeEval)
	m.historyIdx = m.history.Len()

	m = press(m, tea.KeyUp)
	if m.mode != modeEval || m.input.Value() != "a1" {
		t.Fatalf("first up: mode=%d input=%q", m.mode, m.input.Value())
	}

	m = press(m, tea.KeyUp)
	if m.mode != modeCtrl || m.input.Value() != "list" {
		t.Fatalf("second up: mode=%d input=%q", m.mode, m.input.Value())
	}

	m = press(m, tea.KeyShiftDown)
	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("shift down: mode=%d input=%q", m.mode, m.input.Value())
	}
}

func TestModel_TabCycles(t *testing.T) {
	m := newTestModel(t, sheet.Grid{{"1", "2"}, {"3", "4"}})

	m = typeText(m, "1 b")
	if len(m.matches) != 2 {
		t.Fatalf("matches = %d, want 2", len(m.matches))
	}

	m = press(m, tea.KeyTab)
	first := m.input.Value()

	m = press(m, tea.KeyTab)
	second := m.input.Value()

	if first == second || !strings.HasPrefix(first, "1 b") ||
		!strings.HasPrefix(second, "1 b") {
		t.Fatalf("tab cycle = %q then %q", first, second)
	}

	m = press(m, tea.KeyEsc)
	if m.input.Value() != "1 b" || m.tabActive {
		t.Fatalf("esc during tab = %q (active=%v), want %q",
			m.input.Value(), m.tabActive, "1 b")
	}
}

func TestModel_CtrlCQuitsOnEmptyLine(t *testing.T) {
	m := newTestModel(t, sheet.Grid{})

	m = typeText(m, "1")
	m = press(m, tea.KeyCtrlC)

	if m.quitting || m.input.Value() != "" {
		t.Fatalf("ctrl+c with text: quitting=%v input=%q", m.quitting, m.input.Value())
	}

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Fatal("ctrl+c on empty line did not quit")
	}
}

func TestModel_List(t *testing.T) {
	m := newTestModel(t, sheet.Grid{{"1", "a1 0 /"}})

	got := m.list()
	for _, want := range []string{"a", "b", "1", sheet.DefaultMarker} {
		if !strings.Contains(got, want) {
			t.Fatalf("list() = %q, missing %q", got, want)
		}
	}

	if empty := newTestModel(t, nil).list(); !strings.Contains(empty, "no cells") {
		t.Fatalf("list() on empty sheet = %q", empty)
	}
}

func TestRun_NilSheet(t *testing.T) {
	if err := Run(t.Context(), nil); err != ErrNoSheet {
		t.Fatalf("Run(nil) = %v, want %v", err, ErrNoSheet)
	}
}

func TestModel_HelpCommand(t *testing.T) {
	if strings.HasSuffix(helpMessage, "\n") {
		t.Fatal("help text ends with a newline; tea.Println adds one")
	}

	m := newTestModel(t, sheet.Grid{})
	m.mode = modeCtrl

	m, cmd := m.executeCommand("help")
	if cmd == nil || m.quitting {
		t.Fatalf("help: cmd=%v quitting=%v", cmd, m.quitting)
	}
}
