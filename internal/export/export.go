// Package export saves translations as plain-text files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const DefaultName = "translation.txt"

var ErrEmpty = errors.New("nothing to export")

// WriteText writes the trimmed value to dir/name and returns the path used.
// An existing file is never overwritten: "translation.txt" becomes
// "translation-1.txt", "translation-2.txt" and so on.
func WriteText(dir, name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrEmpty
	}
	if name == "" {
		name = DefaultName
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 0; i < 1000; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}
		if _, err := f.WriteString(value + "\n"); err != nil {
			f.Close()
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		return path, f.Close()
	}
	return "", fmt.Errorf("too many existing exports named %s in %s", name, dir)
}
