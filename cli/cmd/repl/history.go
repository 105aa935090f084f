package repl

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
)

// HistoryFile is the base name of the history file in the cache directory.
const HistoryFile = "history.utf8"

// History file line prefixes recording the mode an entry was entered in.
const (
	evalPrefix = "E:"
	ctrlPrefix = "C:"
)

// HistoryEntry represents a single history entry with its mode.
type HistoryEntry struct {
	Line string
	Mode inputMode
}

func (e HistoryEntry) String() string {
	if e.Mode == modeCtrl {
		return ctrlPrefix + e.Line
	}

	return evalPrefix + e.Line
}

// History manages input history with optional file persistence.
type History struct {
	path    string
	entries []HistoryEntry
	mu      sync.RWMutex
}

// NewHistory creates a new History persisted at path. An empty path keeps
// entries in memory only.
func NewHistory(path string) *History {
	return &History{path: path}
}

// Load replaces the entries with the contents of the history file. A
// missing file is an empty history.
func (h *History) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil

	if h.path == "" {
		return nil
	}

	file, err := os.Open(h.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		entry := HistoryEntry{Line: line, Mode: modeEval}

		if s, ok := strings.CutPrefix(line, ctrlPrefix); ok {
			entry = HistoryEntry{Line: s, Mode: modeCtrl}
		} else if s, ok := strings.CutPrefix(line, evalPrefix); ok {
			entry.Line = s
		}

		h.entries = append(h.entries, entry)
	}

	return scanner.Err()
}

// Add appends line entered in mode. An earlier identical entry is moved to
// the end rather than duplicated.
func (h *History) Add(line string, mode inputMode) error {
	entry := HistoryEntry{Line: strings.TrimSpace(line), Mode: mode}
	if entry.Line == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return nil
	}

	i := slices.Index(h.entries, entry)
	if i >= 0 {
		h.entries = slices.Delete(h.entries, i, i+1)
	}

	h.entries = append(h.entries, entry)

	if h.path == "" {
		return nil
	}

	if i >= 0 {
		return h.rewrite()
	}

	file, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	_, err = file.WriteString(entry.String() + "\n")

	return errors.Join(err, file.Close())
}

// Entry returns the entry at index i, oldest first.
func (h *History) Entry(i int) (HistoryEntry, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, ErrOutOfBounds
	}

	return h.entries[i], nil
}

// Len returns the number of history entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.entries)
}

// rewrite replaces the history file with the current entries.
// Must be called with h.mu held.
func (h *History) rewrite() error {
	var sb strings.Builder

	for _, entry := range h.entries {
		sb.WriteString(entry.String())
		sb.WriteByte('\n')
	}

	return os.WriteFile(h.path, []byte(sb.String()), 0o600)
}
