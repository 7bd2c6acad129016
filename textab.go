package textab

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrColumnCount = errors.New("column count mismatch")
	ErrHookResult  = errors.New("invalid hook result")
	ErrConvert     = errors.New("unconvertible value")
)

// hook names an extension point of the formatter. The set is closed: one
// hook for the header, one for body rows.
type hook string

const (
	hookHeader hook = "header"
	hookRow    hook = "row"
)

// State is the mutable bag of named values owned by one hook registration.
// The same instance is passed to every invocation of that hook, so a hook
// can accumulate data across rows (a running counter, column totals). The
// map given to [Formatter.OnHeader] or [Formatter.OnRow] is used directly,
// so the caller can read what the hook accumulated afterwards; a nil map
// starts empty. A registration's State lives until the hook is registered
// again.
type State map[string]any

// HeaderFunc renders the header section. It receives the sanitized
// index-column label (often empty) and the sanitized column names, and
// returns the finished header line or lines, which are emitted verbatim.
// Returning no lines without an error is an invalid result.
type HeaderFunc func(label string, columns []string, state State) ([]string, error)

// RowFunc renders one body row. It receives the sanitized index label and
// the sanitized cell values, and returns the complete line, typically built
// with [Line], which is emitted verbatim. Returning an empty line without
// an error is an invalid result. The hook may mutate state in place; the
// mutation is visible to the next row's invocation.
type RowFunc func(label string, cells []string, state State) (string, error)

// --- Core Data Interfaces ---

// Data is the tabular input: ordered unique column names and an ordered
// sequence of rows, each carrying an index label and one value per column.
// The formatter only reads it. Rows shorter than the column count render
// with trailing empty cells; longer rows are clamped.
type Data interface {
	// Columns returns the ordered column names.
	Columns() []string
	// Len returns the number of rows.
	Len() int
	// Row returns the index label and cell values of row i, 0 <= i < Len().
	Row(i int) (label any, cells []any)
}

// Named supplies a label for the index column, rendered as the leftmost
// header cell. Without it that cell is empty.
type Named interface {
	Name() string
}

// --- Value Types ---

// RuleStyle controls the horizontal rules around header and body.
type RuleStyle int

const (
	RulesBooktabs RuleStyle = iota // \toprule, \midrule, \bottomrule
	RulesHLines                    // \hline at every rule position
)

// Formatter renders [Data] as the text lines of one LaTeX table environment.
// Construct with [New]; the zero value is unusable. A Formatter holds one
// table style and may be reused across Format calls, with the caveat that
// hook State persists between calls (see [State]). A single Formatter is not
// safe for concurrent use: hook State is shared, unguarded mutable state.
type Formatter struct {
	coltype  string
	env      string
	rules    RuleStyle
	preamble []string
	vlines   map[int]bool
	padded   bool
	hooks    map[hook]*registration
}

// registration is one hook-registry entry: the callable adapted to a common
// shape, plus the State created when it was registered.
type registration struct {
	render func(label string, values []string, state State) ([]string, error)
	state  State
}

// Option configures a Formatter at construction time.
type Option func(*Formatter)

// WithEnvironment sets the table environment name. Default "tabular".
func WithEnvironment(name string) Option {
	return func(f *Formatter) { f.env = name }
}

// WithRules sets the horizontal rule style. Default [RulesBooktabs]; the
// caller's document then needs \usepackage{booktabs}.
func WithRules(style RuleStyle) Option {
	return func(f *Formatter) { f.rules = style }
}

// WithPreamble prepends literal lines before the \begin line, e.g.
// \renewcommand{\arraystretch}{1.2}.
func WithPreamble(lines ...string) Option {
	return func(f *Formatter) { f.preamble = append(f.preamble, lines...) }
}

// WithVLines inserts a vertical bar into the column spec before each listed
// 0-based spec position. Positions outside the spec are ignored.
func WithVLines(cols ...int) Option {
	return func(f *Formatter) {
		if f.vlines == nil {
			f.vlines = make(map[int]bool, len(cols))
		}
		for _, c := range cols {
			f.vlines[c] = true
		}
	}
}

// WithPadding pads sanitized cells with spaces so the & separators line up
// down the emitted source. Widths are display widths (a full-width rune
// counts as two columns); the final column stays unpadded. Hooks receive
// the padded cells.
func WithPadding() Option {
	return func(f *Formatter) { f.padded = true }
}

// New returns a Formatter for tables whose rendered columns (the index
// column plus each data column) match coltype, one LaTeX column-type
// character per column: "lcS" covers an l index column and two data
// columns. The length is checked against the data at Format time.
func New(coltype string, opts ...Option) *Formatter {
	f := &Formatter{
		coltype: coltype,
		env:     "tabular",
		hooks:   make(map[hook]*registration),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OnHeader registers fn as the header renderer, replacing the built-in one.
// state becomes the hook's [State] (nil starts empty). Registering again
// replaces the callable and discards the previous State. A nil fn removes
// the registration and the default renderer resumes.
func (f *Formatter) OnHeader(fn HeaderFunc, state State) *Formatter {
	if fn == nil {
		delete(f.hooks, hookHeader)
		return f
	}
	f.register(hookHeader, state, fn)
	return f
}

// OnRow registers fn as the row renderer, replacing the built-in one for
// every body row. state becomes the hook's [State] (nil starts empty).
// Registering again replaces the callable and discards the previous State.
// A nil fn removes the registration and the default renderer resumes.
func (f *Formatter) OnRow(fn RowFunc, state State) *Formatter {
	if fn == nil {
		delete(f.hooks, hookRow)
		return f
	}
	f.register(hookRow, state, func(label string, values []string, st State) ([]string, error) {
		line, err := fn(label, values, st)
		if err != nil || line == "" {
			return nil, err
		}
		return []string{line}, nil
	})
	return f
}

func (f *Formatter) register(h hook, state State, render func(string, []string, State) ([]string, error)) {
	if f.hooks == nil {
		f.hooks = make(map[hook]*registration)
	}
	if state == nil {
		state = State{}
	}
	f.hooks[h] = &registration{render: render, state: state}
}

// renderSection dispatches one table section to its registered hook. With no
// registration the default renderer emits one line joining the label and
// values. Hook output is used verbatim; a failing hook aborts with its own
// error, never by falling back to the default.
func (f *Formatter) renderSection(h hook, label string, values []string) ([]string, error) {
	reg := f.hooks[h]
	if reg == nil {
		return []string{Line(label, values...)}, nil
	}
	lines, err := reg.render(label, values, reg.state)
	if err != nil {
		return nil, fmt.Errorf("%s hook: %w", h, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %s hook returned no output", ErrHookResult, h)
	}
	return lines, nil
}

// Write formats data and writes the lines to w, each terminated with a
// newline. Callers that need the lines themselves use [Formatter.Format].
func (f *Formatter) Write(w io.Writer, data Data) error {
	lines, err := f.Format(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
