// Package clipboard places text on the system clipboard through the terminal
// using the OSC 52 escape sequence, so it works over SSH and without a
// display server.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrEmptyText is returned when there is nothing to copy.
var ErrEmptyText = errors.New("nothing to copy")

// OSC52 writes clipboard sequences to a terminal.
type OSC52 struct {
	out io.Writer
}

// New returns a clipboard that writes to the controlling terminal on stderr.
func New() *OSC52 {
	return &OSC52{out: os.Stderr}
}

// NewWithWriter returns a clipboard writing sequences to w.
func NewWithWriter(w io.Writer) *OSC52 {
	return &OSC52{out: w}
}

// Copy asks the terminal to replace the clipboard contents with text.
func (c *OSC52) Copy(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\a"
	if _, err := io.WriteString(c.out, seq); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}
	return nil
}
