package textab

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Rule positions, in emission order.
const (
	ruleTop = iota
	ruleMid
	ruleBottom
)

// Format renders data as the lines of one table environment, in order:
// preamble, \begin, top rule, header, mid rule, one line per row, bottom
// rule, \end. Every label, column name and cell is sanitized before any
// hook sees it. On error no lines are returned.
//
// The column spec must cover the index column plus every data column, so
// for data with N columns it needs N+1 characters; otherwise Format fails
// with [ErrColumnCount] before rendering anything.
func (f *Formatter) Format(data Data) ([]string, error) {
	columns := data.Columns()
	want := 1 + len(columns)
	if got := utf8.RuneCountInString(f.coltype); got != want {
		return nil, fmt.Errorf("%w: column spec %q covers %d columns, table renders %d (index plus %d data)",
			ErrColumnCount, f.coltype, got, want, len(columns))
	}

	corner := ""
	if n, ok := data.(Named); ok {
		corner = EscapeString(n.Name())
	}
	heads := make([]string, len(columns))
	for i, c := range columns {
		heads[i] = EscapeString(c)
	}

	labels, rows, err := sanitizeRows(data, len(columns))
	if err != nil {
		return nil, err
	}

	if f.padded {
		corner = pad(corner, heads, labels, rows)
	}

	lines := make([]string, 0, len(f.preamble)+len(rows)+6)
	lines = append(lines, f.preamble...)
	lines = append(lines, fmt.Sprintf(`\begin{%s}{%s}`, f.env, f.colspec()))
	lines = append(lines, f.rule(ruleTop))

	header, err := f.renderSection(hookHeader, corner, heads)
	if err != nil {
		return nil, err
	}
	lines = append(lines, header...)
	lines = append(lines, f.rule(ruleMid))

	for i := range rows {
		row, err := f.renderSection(hookRow, labels[i], rows[i])
		if err != nil {
			return nil, err
		}
		lines = append(lines, row...)
	}

	lines = append(lines, f.rule(ruleBottom))
	lines = append(lines, fmt.Sprintf(`\end{%s}`, f.env))
	return lines, nil
}

// sanitizeRows escapes every label and cell up front so a conversion
// failure surfaces before any line is assembled. Rows are normalized to
// ncols cells: short rows gain empty trailing cells, long rows are clamped.
func sanitizeRows(data Data, ncols int) ([]string, [][]string, error) {
	labels := make([]string, data.Len())
	rows := make([][]string, data.Len())
	for i, n := 0, data.Len(); i < n; i++ {
		label, cells := data.Row(i)
		s, err := Escape(label)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d label: %w", i, err)
		}
		labels[i] = s
		row := make([]string, ncols)
		for j := 0; j < ncols && j < len(cells); j++ {
			s, err := Escape(cells[j])
			if err != nil {
				return nil, nil, fmt.Errorf("row %d column %d: %w", i, j, err)
			}
			row[j] = s
		}
		rows[i] = row
	}
	return labels, rows, nil
}

// colspec renders the column spec, inserting a | before each spec position
// requested via [WithVLines]. Positions past the end of the spec have no
// place to attach and are ignored.
func (f *Formatter) colspec() string {
	if len(f.vlines) == 0 {
		return f.coltype
	}
	var b strings.Builder
	for n, ct := range []rune(f.coltype) {
		if f.vlines[n] {
			b.WriteByte('|')
		}
		b.WriteRune(ct)
	}
	return b.String()
}

func (f *Formatter) rule(pos int) string {
	if f.rules == RulesHLines {
		return `\hline`
	}
	switch pos {
	case ruleTop:
		return `\toprule`
	case ruleMid:
		return `\midrule`
	default:
		return `\bottomrule`
	}
}

// pad widens cells in place to the display width of the widest entry in
// their column and returns the padded corner label. The last data column is
// left ragged so lines carry no trailing spaces before the terminator.
func pad(corner string, heads, labels []string, rows [][]string) string {
	width := runewidth.StringWidth(corner)
	for _, l := range labels {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	corner = padCell(corner, width)
	for i, l := range labels {
		labels[i] = padCell(l, width)
	}
	for j := 0; j < len(heads)-1; j++ {
		width := runewidth.StringWidth(heads[j])
		for _, row := range rows {
			if w := runewidth.StringWidth(row[j]); w > width {
				width = w
			}
		}
		heads[j] = padCell(heads[j], width)
		for _, row := range rows {
			row[j] = padCell(row[j], width)
		}
	}
	return corner
}

func padCell(s string, width int) string {
	if n := width - runewidth.StringWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
