// Package textab renders tabular data as LaTeX table source.
//
// The central entry points are [Formatter.Format], which returns the table
// as a slice of lines, and [Formatter.Write], which joins them to an
// [io.Writer]. Input is anything implementing [Data]; [Dataset] is a ready
// in-memory implementation, built directly or loaded with [ReadCSV] or
// [ReadYAML].
//
//	f := textab.New("lcS")
//	lines, err := f.Format(data)
//
// # Sanitization
//
// Every value taken from the [Data] (column names, index labels, cells and
// the [Named] corner label) is escaped for LaTeX before rendering: the
// characters \ _ % & # { } $ ^ and ~ are replaced with their escaped forms.
// Escaping is applied exactly once and is not idempotent, so already-escaped
// input gains a second layer. Values that need raw LaTeX (math, macros) go
// through a hook, whose output is emitted verbatim. [Escape] and
// [EscapeString] expose the same transformation, and [Line] joins cells the
// way the default renderers do.
//
// # Hooks
//
// [Formatter.OnHeader] and [Formatter.OnRow] replace the built-in header and
// row renderers. Hooks receive sanitized values and return finished LaTeX
// lines, emitted verbatim:
//
//	f.OnRow(func(label string, cells []string, _ textab.State) (string, error) {
//		return textab.Line(`\emph{`+label+`}`, cells...), nil
//	}, nil)
//
// Each registration owns a [State], a mutable map passed to every
// invocation, so a row hook can number rows or accumulate totals. The State
// lives as long as the registration: it is not reset between Format calls,
// only when the hook is registered again.
//
// # Options
//
// [New] takes the column spec and options:
//
//   - [WithEnvironment] — environment name other than tabular
//   - [WithRules] — \hline rules instead of booktabs
//   - [WithPreamble] — literal lines before \begin
//   - [WithVLines] — vertical bars in the column spec
//   - [WithPadding] — pad cells so the & separators line up
//
// # Datasets
//
// [Dataset] is the bundled [Data] implementation:
//
//	d := textab.NewDataset("col_one", "coltwo")
//	d.Append("foo", 0, 1)
//
// [ReadCSV] and [ReadYAML] load one from serialized form.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrColumnCount] — column spec or row length doesn't match the data
//   - [ErrHookResult] — a hook returned no output without an error
//   - [ErrConvert] — a cell value could not be converted to text
//
// An error returned by a hook itself is wrapped and reaches the caller
// intact for [errors.Is] and [errors.As].
package textab
