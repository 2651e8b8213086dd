package format

import (
	"fmt"
	"io"

	"chat-cli/alias"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var (
	headerStyle = color.New(color.FgYellow, color.OpBold)
	stampStyle  = color.New(color.FgCyan)
	senderStyle = color.New(color.FgGreen, color.OpBold)
	noticeStyle = color.New(color.FgGray, color.OpItalic)
)

// Printer writes rendered output to a terminal or a plain stream.
type Printer struct {
	out     io.Writer
	colours bool
}

func NewPrinter(out io.Writer, colours bool) Printer {
	return Printer{out: out, colours: colours}
}

func (p Printer) paint(style color.Style, s string) string {
	if !p.colours {
		return s
	}
	return style.Render(s)
}

// Message prints one line: "[stamp] sender: body", or "[stamp] body" when
// there is no sender.
func (p Printer) Message(m RenderedMessage) error {
	stampStyled := stampStyle
	if m.DateHeader {
		stampStyled = headerStyle
	}
	stamp := p.paint(stampStyled, "["+m.Stamp()+"]")
	var err error
	if m.Sender == "" {
		_, err = fmt.Fprintf(p.out, "%s %s\n", stamp, p.paint(noticeStyle, m.Body))
	} else {
		_, err = fmt.Fprintf(p.out, "%s %s: %s\n", stamp, p.paint(senderStyle, m.Sender), m.Body)
	}
	return err
}

func (p Printer) Messages(messages []RenderedMessage) error {
	for _, m := range messages {
		if err := p.Message(m); err != nil {
			return err
		}
	}
	return nil
}

// Notice prints a status line such as a send confirmation.
func (p Printer) Notice(format string, args ...any) error {
	_, err := fmt.Fprintln(p.out, p.paint(noticeStyle, fmt.Sprintf(format, args...)))
	return err
}

// AliasTable prints entries as a two-column table in display order.
func (p Printer) AliasTable(title string, entries alias.Entries) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{title, "Identifier"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	for _, e := range alias.Sorted(entries) {
		table.Append([]string{e.Label, e.ID})
	}
	table.Render()
}
