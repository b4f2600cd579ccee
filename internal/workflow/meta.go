package workflow

import (
	"fmt"
	"strings"
)

// Meta identifies the tool that produced a document and how it was invoked.
// It is supplied by the caller so rendering never reads process state.
type Meta struct {
	Tool    string
	Version string
	// Args is the invocation without the program name.
	Args []string
}

// Command returns the command line that regenerates the document, using the
// tool's canonical name in place of the program name.
func (m Meta) Command() string {
	if len(m.Args) == 0 {
		return m.Tool
	}
	return m.Tool + " " + strings.Join(m.Args, " ")
}

// Header returns the comment block that opens every generated document.
func (m Meta) Header() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# This file is autogenerated by %s v%s\n", m.Tool, m.Version)
	b.WriteString("# To update, run\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "#    %s\n", m.Command())
	b.WriteString("#\n")
	return b.String()
}
