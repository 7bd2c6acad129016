package textab

import (
	"encoding"
	"fmt"
	"strings"
)

// latexEscaper rewrites every character LaTeX treats specially inside a
// tabular cell. A Replacer makes one pass and never rescans replacement
// text, so the backslashes it introduces are not escaped again.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`_`, `\_`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`^`, `\textasciicircum{}`,
	`~`, `\textasciitilde{}`,
)

// Escape converts v to its text form and escapes LaTeX-special characters
// (\ _ % & # { } $ ^ ~) so the result is safe inside a tabular cell.
//
// Conversion: nil becomes an empty cell, strings pass through,
// [encoding.TextMarshaler] and [fmt.Stringer] are honored in that order, and
// everything else goes through fmt.Sprint. A failing TextMarshaler surfaces
// as [ErrConvert].
//
// Escaping is not idempotent: already-escaped text gets escaped again. The
// formatter applies it exactly once, before any hook sees the value.
func Escape(v any) (string, error) {
	s, err := stringify(v)
	if err != nil {
		return "", err
	}
	return latexEscaper.Replace(s), nil
}

// EscapeString escapes LaTeX-special characters in s. It is the string-only
// form of [Escape] for hook authors composing extra fragments; it cannot
// fail.
func EscapeString(s string) string {
	return latexEscaper.Replace(s)
}

func stringify(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case encoding.TextMarshaler:
		b, err := t.MarshalText()
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrConvert, err)
		}
		return string(b), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return fmt.Sprint(t), nil
	}
}

// Line joins already-sanitized fragments (or literal LaTeX snippets built by
// a hook) with the column separator and appends the row terminator. It is
// how the default renderers build every header and body line, and is
// exported so hooks can build compliant lines themselves:
//
//	textab.Line("alpha", "1", "2")  // `alpha & 1 & 2 \\`
func Line(first string, rest ...string) string {
	entries := append([]string{first}, rest...)
	return strings.Join(entries, " & ") + ` \\`
}
