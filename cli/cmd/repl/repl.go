package repl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
	"github.com/ardnew/rpnsheet/table"
)

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

const helpMessage = `
: Commands (press Esc to toggle mode):

  help     Print this cruft
  list     Evaluate every cell and print the grid
  clear    Clear screen
  quit     Exit REPL

Usage:
  Type a postfix expression to evaluate it, e.g. "a1 b2 + 2 /"
  Cell addresses complete as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Press Esc to toggle between eval and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Press Ctrl+C on empty line or Ctrl+D to exit`

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	sheet        *sheet.Sheet
	addresses    []string // completion candidates for eval mode
	marker       string
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Run starts an interactive session evaluating expressions against s.
func Run(ctx context.Context, s *sheet.Sheet, opts ...Option) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if s == nil {
		return ErrNoSheet
	}

	o := makeOptions(opts...)

	o.logger.TraceContext(
		ctx,
		"repl start",
		slog.String("history", o.history),
		slog.Int("cells", s.Grid().Len()),
	)

	history := NewHistory(o.history)
	if err := history.Load(); err != nil {
		o.logger.WarnContext(
			ctx,
			"could not load history",
			slog.String("path", o.history),
			slog.Any("error", err),
		)
	}

	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.tty {
		popts = append(popts, tea.WithInputTTY())
	}

	_, err = tea.NewProgram(newModel(ctx, s, history, o), popts...).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	s *sheet.Sheet,
	history *History,
	o options,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		sheet:      s,
		addresses:  addressCandidates(s.Grid()),
		marker:     o.marker,
		logger:     o.logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(m.input.Value()) == "":
		hint := "Type a postfix expression or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") +
				" (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width,
		))
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1)

	case tea.KeyShiftTab:
		return m.cycle(-1)

	case tea.KeyUp:
		return m.historyStep(-1, false)

	case tea.KeyDown:
		return m.historyStep(1, false)

	case tea.KeyShiftUp:
		return m.historyStep(-1, true)

	case tea.KeyShiftDown:
		return m.historyStep(1, true)

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil

	case tea.KeyRunes, tea.KeySpace:
		// Space breaks out of tab-cycling, accepting the candidate.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// Any other key (backspace, delete, arrows) edits without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle steps the selected completion candidate forward (dir > 0) or
// backward (dir < 0), wrapping at either end.
func (m model) cycle(dir int) (model, tea.Cmd) {
	n := len(m.matches)
	if n == 0 {
		return m, nil
	}

	// Single candidate: complete and confirm immediately.
	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	switch {
	case m.tabActive:
		m.suggIdx = (m.suggIdx + dir + n) % n
	case dir < 0:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = n - 1
	default:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is true and the typed word already equals the sole
// remaining candidate, the completion is confirmed and the bar cleared.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	candidate := m.matches[0].Str
	if m.input.Value()[m.wordStart:m.wordEnd] == candidate {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	refreshMatches(&m, false)

	if err := m.history.Add(input, m.mode); err != nil {
		m.logger.WarnContext(
			m.ctxFunc(),
			"could not save history",
			slog.Any("error", err),
		)
	}

	m.historyIdx = m.history.Len()

	if m.mode == modeCtrl {
		return m.executeCommand(input)
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval",
		slog.String("input", input),
	)

	echo := tea.Println(promptStyle.Render(evalPrompt) + inputStyle.Render(input))

	return m, tea.Sequence(echo, tea.Println(m.evaluate(input)))
}

// evaluate returns the styled result line for a postfix expression.
func (m model) evaluate(input string) string {
	value, err := m.sheet.EvaluateExpr(m.ctxFunc(), input)
	if err != nil {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl eval result",
			slog.String("kind", sheet.KindOf(err).String()),
			slog.Any("error", err),
		)

		return errorStyle.Render(formatError(err))
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval result",
		slog.Float64("value", value),
	)

	return resultStyle.Render(sheet.Number(value).String())
}

// formatError renders err with its kind for display.
func formatError(err error) string {
	return fmt.Sprintf("error (%s): %v", sheet.KindOf(err), err)
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echo := tea.Println(ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input))

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl command",
		slog.String("command", parts[0]),
		slog.Any("args", parts[1:]),
	)

	switch parts[0] {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage))

	case "l", "list":
		return m, tea.Sequence(echo, tea.Println(m.list()))

	case "c", "clear":
		return m, tea.ClearScreen

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + parts[0] + " (try 'help')"),
		)
	}
}

// list evaluates the whole sheet and renders it as a table.
func (m model) list() string {
	if m.sheet.Grid().Len() == 0 {
		return hintStyle.Render("  (no cells)")
	}

	results := m.sheet.Evaluate(m.ctxFunc())

	return table.NewTable(lipgloss.DefaultRenderer(), results, m.marker).String()
}

// historyStep moves through history by dir. When inMode is set, entries
// from the other mode are skipped; otherwise the mode follows the entry.
func (m model) historyStep(dir int, inMode bool) (model, tea.Cmd) {
	for i := m.historyIdx + dir; i >= 0 && i < m.history.Len(); i += dir {
		entry, err := m.history.Entry(i)
		if err != nil {
			break
		}

		if inMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		refreshMatches(&m, false)

		return m, nil
	}

	// Stepping past the newest entry returns to an empty line.
	if dir > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m, false)
	}

	return m, nil
}

// switchToMode switches to the specified mode, preserving the input of each.
func (m model) switchToMode(mode inputMode) model {
	if m.mode == modeEval {
		m.evalText = m.input.Value()
		m.evalCursor = m.input.Position()
	} else {
		m.ctrlText = m.input.Value()
		m.ctrlCursor = m.input.Position()
	}

	m.mode = mode
	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m
}
