// Package langs is the closed set of language codes the translator supports,
// with their display labels in selector order.
package langs

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Code is a language code from the supported set.
type Code string

const (
	Auto Code = "auto"

	DefaultSource = Auto
	DefaultTarget = Code("hi")

	// Unknown is shown for codes outside the set.
	Unknown = "Unknown"
)

type entry struct {
	code  Code
	label string
}

// Display order matters: selectors cycle through it.
var registry = []entry{
	{Auto, "Auto"},
	{"en", "English"},
	{"hi", "Hindi"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"de", "German"},
	{"it", "Italian"},
	{"pt", "Portuguese"},
	{"ru", "Russian"},
	{"zh", "Chinese"},
	{"ja", "Japanese"},
	{"ko", "Korean"},
	{"ar", "Arabic"},
}

var labels = func() map[Code]string {
	m := make(map[Code]string, len(registry))
	for _, e := range registry {
		m[e.code] = e.label
	}
	return m
}()

// Codes returns every supported code in display order.
func Codes() []Code {
	out := make([]Code, len(registry))
	for i, e := range registry {
		out[i] = e.code
	}
	return out
}

func Valid(code Code) bool {
	_, ok := labels[code]
	return ok
}

// Label returns the display label for code.
func Label(code Code) (string, bool) {
	l, ok := labels[code]
	return l, ok
}

func LabelOrUnknown(code Code) string {
	if l, ok := labels[code]; ok {
		return l
	}
	return Unknown
}

// Normalize maps user or server supplied input onto the supported set.
// "EN" and "en-US" both become "en"; anything whose base language is not
// supported is rejected.
func Normalize(raw string) (Code, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	if Valid(Code(s)) {
		return Code(s), true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	code := Code(base.String())
	if code == Auto || !Valid(code) {
		return "", false
	}
	return code, true
}

// Detected formats a detected source language for the status area.
func Detected(code Code) string {
	if code == "" || code == Auto {
		return "-"
	}
	l, ok := labels[code]
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", l, code)
}

// Next steps through the display order, wrapping at both ends. When
// includeAuto is false the auto entry is skipped, which is what the target
// selector wants.
func Next(code Code, step int, includeAuto bool) Code {
	codes := Codes()
	if !includeAuto {
		codes = codes[1:]
	}
	idx := 0
	for i, c := range codes {
		if c == code {
			idx = i
			break
		}
	}
	n := len(codes)
	idx = ((idx+step)%n + n) % n
	return codes[idx]
}
