package notes

// DefaultHistoryLimit is the number of snapshots kept for undo.
const DefaultHistoryLimit = 50

// HistoryStack is a linear undo history of formatted-HTML snapshots.
// Undo only moves the cursor back; the next Record at a non-tail position
// drops everything after the cursor. There is no redo.
type HistoryStack struct {
	entries []string
	pos     int
	limit   int
}

func NewHistoryStack(limit int) *HistoryStack {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &HistoryStack{limit: limit}
}

// Record appends snapshot unless it equals the snapshot at the cursor.
// It reports whether the history changed.
func (h *HistoryStack) Record(snapshot string) bool {
	if len(h.entries) > 0 {
		if h.entries[h.pos] == snapshot {
			return false
		}
		h.entries = h.entries[:h.pos+1]
	}
	h.entries = append(h.entries, snapshot)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.pos = len(h.entries) - 1
	return true
}

// Undo steps the cursor back one snapshot and returns it. ok is false when
// the cursor is already at the oldest snapshot.
func (h *HistoryStack) Undo() (snapshot string, ok bool) {
	if len(h.entries) == 0 || h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

func (h *HistoryStack) Current() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[h.pos], true
}

func (h *HistoryStack) Len() int      { return len(h.entries) }
func (h *HistoryStack) Position() int { return h.pos }
func (h *HistoryStack) Limit() int    { return h.limit }
