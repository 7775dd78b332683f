package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodes_DisplayOrder(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 13)
	assert.Equal(t, Auto, codes[0])
	assert.Equal(t, Code("en"), codes[1])
	assert.Equal(t, Code("ar"), codes[len(codes)-1])

	// callers get a copy
	codes[0] = "xx"
	assert.Equal(t, Auto, Codes()[0])
}

func TestLabel(t *testing.T) {
	l, ok := Label("hi")
	assert.True(t, ok)
	assert.Equal(t, "Hindi", l)

	_, ok = Label("nl")
	assert.False(t, ok)
	assert.Equal(t, Unknown, LabelOrUnknown("nl"))
	assert.Equal(t, "Auto", LabelOrUnknown(Auto))
}

func TestNormalize(t *testing.T) {
	cases := map[string]Code{
		"en":      "en",
		" EN ":    "en",
		"en-US":   "en",
		"zh-Hant": "zh",
		"auto":    Auto,
		"nl":      "",
		"":        "",
		"klingon": "",
	}
	for in, want := range cases {
		got, ok := Normalize(in)
		if want == "" {
			assert.False(t, ok, "Normalize(%q) should be invalid, got %q", in, got)
			continue
		}
		assert.True(t, ok, "Normalize(%q)", in)
		assert.Equal(t, want, got, "Normalize(%q)", in)
	}
}

func TestDetected(t *testing.T) {
	assert.Equal(t, "English (en)", Detected("en"))
	assert.Equal(t, "-", Detected(""))
	assert.Equal(t, "-", Detected(Auto))
	assert.Equal(t, "-", Detected("nl"))
}

func TestNext(t *testing.T) {
	assert.Equal(t, Code("en"), Next(Auto, 1, true))
	assert.Equal(t, Code("ar"), Next(Auto, -1, true))
	assert.Equal(t, Code("en"), Next("ar", 1, false))
	assert.Equal(t, Code("ar"), Next("en", -1, false))
	// unknown starts from the first entry
	assert.Equal(t, Code("hi"), Next("nl", 1, false))
}
