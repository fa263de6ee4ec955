// Package platform wraps the system clipboard and link opener.
package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/skratchdot/open-golang/open"
)

// ErrNoLink is returned when asked to open an empty reference
var ErrNoLink = errors.New("no link")

// Clipboard receives exported text
type Clipboard interface {
	WriteClipboard(text string) error
}

// Browser opens item references
type Browser interface {
	// NavigateTo opens ref and waits for the opener to hand it off
	NavigateTo(ref string) error
	// OpenInNewContext opens ref without waiting
	OpenInNewContext(ref string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

func (SystemClipboard) WriteClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// SystemBrowser opens links with the OS default handler, or with App
// when set
type SystemBrowser struct {
	App string
}

func (b SystemBrowser) NavigateTo(ref string) error {
	if ref == "" {
		return ErrNoLink
	}
	var err error
	if b.App != "" {
		err = open.RunWith(ref, b.App)
	} else {
		err = open.Run(ref)
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", ref, err)
	}
	return nil
}

func (b SystemBrowser) OpenInNewContext(ref string) error {
	if ref == "" {
		return ErrNoLink
	}
	var err error
	if b.App != "" {
		err = open.StartWith(ref, b.App)
	} else {
		err = open.Start(ref)
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", ref, err)
	}
	return nil
}

// FileClipboard writes clipboard text to a file. Used on headless hosts
// and by the end-to-end tests.
type FileClipboard struct {
	Path string
}

func (c FileClipboard) WriteClipboard(text string) error {
	if err := os.WriteFile(c.Path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing clipboard file: %w", err)
	}
	return nil
}

// FileBrowser appends every opened reference to a file, one per line
type FileBrowser struct {
	Path string
}

func (b FileBrowser) NavigateTo(ref string) error {
	return b.record("navigate", ref)
}

func (b FileBrowser) OpenInNewContext(ref string) error {
	return b.record("new", ref)
}

func (b FileBrowser) record(kind, ref string) error {
	if ref == "" {
		return ErrNoLink
	}
	f, err := os.OpenFile(b.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening browser log: %w", err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %s\n", kind, strings.TrimSpace(ref))
	return err
}

// FromEnv picks file-backed sinks when SERPNAV_CLIPBOARD_FILE or
// SERPNAV_OPEN_LOG are set, and the system ones otherwise
func FromEnv(browserApp string) (Clipboard, Browser) {
	var cb Clipboard = SystemClipboard{}
	var br Browser = SystemBrowser{App: browserApp}
	if p := os.Getenv("SERPNAV_CLIPBOARD_FILE"); p != "" {
		cb = FileClipboard{Path: p}
	}
	if p := os.Getenv("SERPNAV_OPEN_LOG"); p != "" {
		br = FileBrowser{Path: p}
	}
	return cb, br
}
