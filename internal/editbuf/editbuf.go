// Package editbuf keeps a bounded undo/redo history of the input text.
package editbuf

// DefaultCapacity is the number of snapshots kept before the oldest is dropped.
const DefaultCapacity = 50

// Buffer is an undo/redo stack over raw input values. It always holds at
// least one entry and the cursor always points at a valid index.
type Buffer struct {
	entries  []string
	cursor   int
	capacity int
}

func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		entries:  []string{""},
		capacity: capacity,
	}
}

// Record snapshots value. Identical consecutive values are ignored; anything
// that could have been redone is discarded.
func (b *Buffer) Record(value string) {
	if b.entries[b.cursor] == value {
		return
	}
	b.entries = append(b.entries[:b.cursor+1], value)
	if len(b.entries) > b.capacity {
		b.entries = b.entries[len(b.entries)-b.capacity:]
	}
	b.cursor = len(b.entries) - 1
}

func (b *Buffer) Undo() (string, bool) {
	if !b.CanUndo() {
		return b.Current(), false
	}
	b.cursor--
	return b.Current(), true
}

func (b *Buffer) Redo() (string, bool) {
	if !b.CanRedo() {
		return b.Current(), false
	}
	b.cursor++
	return b.Current(), true
}

func (b *Buffer) Current() string {
	return b.entries[b.cursor]
}

func (b *Buffer) CanUndo() bool {
	return b.cursor > 0
}

func (b *Buffer) CanRedo() bool {
	return b.cursor < len(b.entries)-1
}

func (b *Buffer) Len() int {
	return len(b.entries)
}
