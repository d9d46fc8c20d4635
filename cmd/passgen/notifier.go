package main

import (
	"fmt"
	"io"
)

// terminalNotifier prints user-facing notices, one per line.
type terminalNotifier struct {
	out io.Writer
}

func (n *terminalNotifier) Error(title, message string) {
	_, _ = fmt.Fprintf(n.out, "%s: %s\n", title, message)
}

func (n *terminalNotifier) Warning(title, message string) {
	_, _ = fmt.Fprintf(n.out, "%s: %s\n", title, message)
}
