package entity

// HistoryEntry is the board after one move. Entry 0 is the empty board.
type HistoryEntry struct {
	Squares Board `json:"squares"`
}

// History is a linear list of snapshots with an overwritable tail.
type History struct {
	entries []HistoryEntry
}

func NewHistory() *History {
	return &History{
		entries: []HistoryEntry{{Squares: Board{}}},
	}
}

func (that *History) Len() int {
	return len(that.entries)
}

// At returns the snapshot stored at step. Callers must pass 0 <= step < Len().
func (that *History) At(step int) HistoryEntry {
	return that.entries[step]
}

// Contains reports whether step indexes a stored snapshot.
func (that *History) Contains(step int) bool {
	return step >= 0 && step < len(that.entries)
}

// TruncateAppend drops every entry after step, appends board and returns the index of the new entry.
func (that *History) TruncateAppend(step int, board Board) int {
	kept := make([]HistoryEntry, step+1, step+2)
	copy(kept, that.entries[:step+1])

	that.entries = append(kept, HistoryEntry{Squares: board})

	return len(that.entries) - 1
}
