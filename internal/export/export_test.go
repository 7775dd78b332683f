package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteText(dir, "", "  नमस्ते \n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DefaultName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "नमस्ते\n", string(data))
}

func TestWriteText_DoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()

	first, err := WriteText(dir, "out.txt", "one")
	require.NoError(t, err)
	second, err := WriteText(dir, "out.txt", "two")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "out.txt"), first)
	assert.Equal(t, filepath.Join(dir, "out-1.txt"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one\n", string(data))
}

func TestWriteText_Empty(t *testing.T) {
	_, err := WriteText(t.TempDir(), "", "   ")
	require.ErrorIs(t, err, ErrEmpty)
}
