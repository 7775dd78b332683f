package editbuf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsEmpty(t *testing.T) {
	b := New(0)
	assert.Equal(t, "", b.Current())
	assert.Equal(t, 1, b.Len())
	assert.False(t, b.CanUndo())
	assert.False(t, b.CanRedo())
}

func TestRecord_SkipsDuplicates(t *testing.T) {
	b := New(10)
	b.Record("hello")
	b.Record("hello")
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "hello", b.Current())
}

func TestUndoRedo_RoundTrip(t *testing.T) {
	b := New(10)
	for _, v := range []string{"h", "he", "hel"} {
		b.Record(v)
	}

	before := b.Current()
	v, ok := b.Undo()
	require.True(t, ok)
	assert.Equal(t, "he", v)

	v, ok = b.Redo()
	require.True(t, ok)
	assert.Equal(t, before, v)
}

func TestUndo_AtStartIsNoop(t *testing.T) {
	b := New(10)
	v, ok := b.Undo()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestRedo_AtEndIsNoop(t *testing.T) {
	b := New(10)
	b.Record("a")
	v, ok := b.Redo()
	assert.False(t, ok)
	assert.Equal(t, "a", v)
}

func TestRecord_TruncatesRedo(t *testing.T) {
	b := New(10)
	b.Record("a")
	b.Record("b")
	b.Record("c")
	b.Undo()
	b.Undo()
	require.Equal(t, "a", b.Current())

	b.Record("x")
	assert.False(t, b.CanRedo())
	assert.Equal(t, 3, b.Len()) // "", "a", "x"

	v, _ := b.Undo()
	assert.Equal(t, "a", v)
}

func TestRecord_UndoThenSameValueKeepsRedo(t *testing.T) {
	b := New(10)
	b.Record("a")
	b.Record("b")
	b.Undo()
	b.Record("a")
	assert.True(t, b.CanRedo())
}

func TestRecord_DropsOldestAtCapacity(t *testing.T) {
	b := New(DefaultCapacity)
	for i := 0; i < 120; i++ {
		b.Record(fmt.Sprintf("v%d", i))
	}
	assert.Equal(t, DefaultCapacity, b.Len())
	assert.Equal(t, "v119", b.Current())
	assert.False(t, b.CanRedo())

	for b.CanUndo() {
		b.Undo()
	}
	assert.Equal(t, "v70", b.Current())
}
