// Package share builds and parses shareable translator links.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Rorical/RoriLingo/internal/langs"
)

const (
	DefaultBase = "http://localhost:5000/"

	qrService = "https://api.qrserver.com/v1/create-qr-code/"
	qrSize    = "220x220"
)

var ErrEmptyText = errors.New("add text before sharing")

// Params are the optional values a link carries. Languages that are absent
// or unsupported are left empty.
type Params struct {
	Text   string
	Source langs.Code
	Target langs.Code
}

// Link returns base with text, source and target set as query parameters.
func Link(base, text string, source, target langs.Code) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if base == "" {
		base = DefaultBase
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid share base %q: %w", base, err)
	}
	q := u.Query()
	q.Set("text", text)
	q.Set("source", string(source))
	q.Set("target", string(target))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func ParseLink(raw string) (Params, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Params{}, fmt.Errorf("invalid link: %w", err)
	}
	return ParamsFromValues(u.Query()), nil
}

func ParamsFromValues(v url.Values) Params {
	p := Params{Text: v.Get("text")}
	if code, ok := langs.Normalize(v.Get("source")); ok {
		p.Source = code
	}
	if code, ok := langs.Normalize(v.Get("target")); ok {
		p.Target = code
	}
	return p
}

// QRCodeURL points at an external renderer for link.
func QRCodeURL(link string) string {
	return qrService + "?size=" + qrSize + "&data=" + url.QueryEscape(link)
}

// Open launches the platform URL handler and does not wait for it.
func Open(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
	return cmd.Start()
}
