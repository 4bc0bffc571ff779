package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/dshills/scout/internal/engine"
	"github.com/dshills/scout/pkg/types"
)

// Renderer writes formatted search output. It owns all presentation
// decisions; the engine hands it structured data only.
type Renderer struct {
	out    io.Writer
	errOut io.Writer

	path    *color.Color
	lineNo  *color.Color
	matched *color.Color
	summary *color.Color
	warn    *color.Color
}

// New creates a renderer for the given streams. Color is enabled only
// when out is a terminal (fatih/color additionally honors NO_COLOR).
func New(out, errOut io.Writer) *Renderer {
	r := &Renderer{
		out:     out,
		errOut:  errOut,
		path:    color.New(color.FgBlue),
		lineNo:  color.New(color.FgYellow),
		matched: color.New(color.FgRed),
		summary: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
	}
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		for _, c := range []*color.Color{r.path, r.lineNo, r.matched, r.summary, r.warn} {
			c.DisableColor()
		}
	}
	return r
}

// Results prints every match with highlighted spans, then a summary.
// Warnings and the skipped count go to the error stream so a piped
// result stream stays clean.
func (r *Renderer) Results(res *engine.Result) {
	if len(res.Matches) == 0 {
		fmt.Fprintln(r.out, r.warn.Sprint("No matches found."))
	} else {
		fmt.Fprintf(r.out, "\n%s %s matches found:\n\n",
			r.summary.Sprint("✓"), r.summary.Sprint(strconv.Itoa(len(res.Matches))))
		for _, m := range res.Matches {
			fmt.Fprintf(r.out, "%s:%s:\n", r.path.Sprint(m.Path), r.lineNo.Sprint(strconv.Itoa(m.Line)))
			fmt.Fprintf(r.out, "    %s\n", r.highlight(m.Text, m.Spans))
		}
	}

	fmt.Fprintf(r.errOut, "searched %d files in %v\n", res.FilesScanned, res.Duration.Round(time.Millisecond))
	if res.FilesSkipped > 0 {
		fmt.Fprintf(r.errOut, "%s\n", r.warn.Sprintf("skipped %d files; results may be partial", res.FilesSkipped))
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(r.errOut, "%s\n", r.warn.Sprintf("warning: %s", w))
	}
}

// highlight rebuilds the line with each span wrapped in the match
// color. Slicing forward over the original text keeps span offsets
// valid, since spans always index the original line.
func (r *Renderer) highlight(text string, spans []types.Span) string {
	var b strings.Builder
	prev := 0
	for _, s := range spans {
		if s.Start < prev || s.End > len(text) || s.Start > s.End {
			continue
		}
		b.WriteString(text[prev:s.Start])
		b.WriteString(r.matched.Sprint(text[s.Start:s.End]))
		prev = s.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// Spinner shows indeterminate progress on the error stream while a
// search runs. Call the returned stop function when the search ends; it
// clears the spinner line. Outside a terminal it renders nothing.
func Spinner(errOut io.Writer, description string) (stop func()) {
	if f, ok := errOut.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(errOut),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				_ = bar.Finish()
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
