package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/oliverisaac/gcloudctx/internal/app"
)

type printer struct {
	out       io.Writer
	colorize  bool
	highlight *color.Color
}

func newPrinter(out io.Writer, mode string) *printer {
	colorize := !color.NoColor
	switch mode {
	case app.ColorAlways:
		colorize = true
	case app.ColorNever:
		colorize = false
	}
	highlight := color.New(color.FgYellow, color.Bold)
	if colorize {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}
	return &printer{out: out, colorize: colorize, highlight: highlight}
}

// list prints one profile per line. The active profile is coloured, or
// prefixed with "* " when colour is off.
func (p *printer) list(listing app.Listing) {
	for _, name := range listing.Profiles {
		active := name == listing.Active
		switch {
		case p.colorize && active:
			_, _ = fmt.Fprintln(p.out, p.highlight.Sprint(name))
		case p.colorize:
			_, _ = fmt.Fprintln(p.out, name)
		case active:
			_, _ = fmt.Fprintf(p.out, "* %s\n", name)
		default:
			_, _ = fmt.Fprintf(p.out, "  %s\n", name)
		}
	}
}

func (p *printer) name(name string) string {
	return p.highlight.Sprintf("%q", name)
}

func (p *printer) switched(state app.State) {
	_, _ = fmt.Fprintf(p.out, "Switched to context %s.\n", p.name(state.Active))
}

func (p *printer) renamed(oldName, newName string) {
	if oldName == app.CurrentSentinel {
		_, _ = fmt.Fprintf(p.out, "Current context renamed to %s.\n", p.name(newName))
		return
	}
	_, _ = fmt.Fprintf(p.out, "Context %s renamed to %s.\n", p.name(oldName), p.name(newName))
}

func (p *printer) deleted(name string) {
	_, _ = fmt.Fprintf(p.out, "Deleted context %s.\n", p.name(name))
}

func printJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
