package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cmdmatch/pkg/errors"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// Printer writes user-facing output in one format. Messages use the
// markup tags understood by MarkupParser.
type Printer struct {
	out    io.Writer
	format Format
	width  int
}

// NewPrinter creates a printer for out. FormatAuto is resolved against out.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format.Resolve(out)}
}

// Format returns the resolved output format
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.out
}

// SetWidth sets the word wrap width used for markdown. Zero keeps the
// renderer's default.
func (p *Printer) SetWidth(width int) {
	p.width = width
}

// Say prints a markup message followed by a newline. Markup in format is
// rendered or stripped before args are substituted, so args are printed
// verbatim.
func (p *Printer) Say(format string, args ...interface{}) {
	switch p.format {
	case FormatTerminal:
		fmt.Fprintln(p.out, substitute(Render(format), args))
	case FormatJSON:
		p.writeJSON(map[string]string{"message": substitute(Strip(format), args)})
	default:
		fmt.Fprintln(p.out, substitute(Strip(format), args))
	}
}

// Warn prints a warning line
func (p *Printer) Warn(format string, args ...interface{}) {
	msg := substitute(Strip(format), args)
	switch p.format {
	case FormatTerminal:
		fmt.Fprintf(p.out, "%s %s\n", WarningIndicator, WarningStyle.Render(msg))
	case FormatJSON:
		p.writeJSON(map[string]string{"warning": msg})
	default:
		fmt.Fprintf(p.out, "Warning: %s\n", msg)
	}
}

func substitute(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Highlight styles s as the content of a markup tag on terminals and
// returns it unchanged otherwise
func (p *Printer) Highlight(tag, s string) string {
	if p.format != FormatTerminal {
		return s
	}
	style, ok := defaultParser.styles[tag]
	if !ok {
		return s
	}
	return style.Render(s)
}

// Error prints err, including its code when it carries one
func (p *Printer) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(p.out, p.RenderError(err))
}

// RenderError renders an error message
func (p *Printer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	code := errors.GetErrorCode(err)
	switch p.format {
	case FormatTerminal:
		if code != errors.ErrUnknown {
			return fmt.Sprintf("%s Error [%s]: %s",
				pterm.Error.Prefix.Text,
				pterm.Error.MessageStyle.Sprint(string(code)),
				err.Error())
		}
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	case FormatJSON:
		data, _ := json.Marshal(map[string]interface{}{
			"error":   err.Error(),
			"code":    string(code),
			"details": errors.GetErrorDetails(err),
		})
		return string(data)
	default:
		return fmt.Sprintf("Error: %s", err.Error())
	}
}

// Markdown renders markdown with glamour on terminals and prints it as is
// otherwise
func (p *Printer) Markdown(content string) {
	if p.format != FormatTerminal {
		fmt.Fprintln(p.out, strings.TrimRight(content, "\n"))
		return
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if p.width > 0 {
		options = append(options, glamour.WithWordWrap(p.width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		fmt.Fprintln(p.out, content)
		return
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		fmt.Fprintln(p.out, content)
		return
	}
	fmt.Fprint(p.out, rendered)
}

// Table prints rows with the first row as header. JSON output is a list
// of objects keyed by the header.
func (p *Printer) Table(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	if p.format == FormatJSON {
		header := rows[0]
		records := make([]map[string]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			rec := make(map[string]string, len(header))
			for i, col := range header {
				if i < len(row) {
					rec[strings.ToLower(col)] = row[i]
				}
			}
			records = append(records, rec)
		}
		return p.writeJSON(records)
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(rows)).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	if p.format != FormatTerminal {
		rendered = pterm.RemoveColorFromString(rendered)
	}
	_, err = fmt.Fprintln(p.out, rendered)
	return err
}

// JSON writes v as indented JSON
func (p *Printer) JSON(v interface{}) error {
	return p.writeJSON(v)
}

func (p *Printer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON output")
	}
	return nil
}
