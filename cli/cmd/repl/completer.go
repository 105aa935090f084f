package repl

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/rpnsheet/sheet"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "list", "clear", "quit"}

// wordBounds returns the whitespace-delimited word at the cursor position and
// its byte boundaries within input. The word is empty when the cursor sits
// between spaces or at the start of an empty line.
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if unicode.IsSpace(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if unicode.IsSpace(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// addressCandidates returns the address of every cell in grid in row-major
// order.
func addressCandidates(grid sheet.Grid) []string {
	names := make([]string, 0, grid.Len())

	for c := range grid.Coords() {
		names = append(names, sheet.FormatAddress(c))
	}

	return names
}

// isCompletable reports whether word could begin a cell reference. Operators
// and numeric literals are never completed.
func isCompletable(word string) bool {
	return word != "" && strings.IndexFunc(word, unicode.IsLetter) >= 0
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor. It returns the matches (ranked best-first), the candidate list, and
// the word boundaries.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	candidates []string,
	wordStart, wordEnd int,
) {
	word, wordStart, wordEnd := wordBounds(m.input.Value(), m.input.Position())

	if m.mode == modeCtrl {
		if word == "" {
			return nil, nil, wordStart, wordEnd
		}

		candidates = ctrlCommands
	} else {
		if !isCompletable(word) {
			return nil, nil, wordStart, wordEnd
		}

		candidates = m.addresses
	}

	if len(candidates) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	word = strings.ToLower(word)
	matches = fuzzy.Find(word, candidates)

	// Exact hits first so that "a1" is not buried beneath "a10".."a19".
	slices.SortStableFunc(matches, func(a, b fuzzy.Match) int {
		return boolRank(a.Str == word) - boolRank(b.Str == word)
	})

	return matches, candidates, wordStart, wordEnd
}

func boolRank(b bool) int {
	if b {
		return 0
	}

	return 1
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. The selected candidate (when tabbing) uses
// the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("4")).
		Bold(true)

	if selected {
		baseStyle = selectedStyle
		highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Bold(true)
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	return b.String()
}
