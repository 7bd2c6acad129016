package textab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want string
	}{
		"nil":       {in: nil, want: ""},
		"string":    {in: "plain", want: "plain"},
		"int":       {in: 7, want: "7"},
		"float":     {in: 1.25, want: "1.25"},
		"bool":      {in: false, want: "false"},
		"stringer":  {in: strVal("s"), want: "s"},
		"marshaler": {in: textVal("t"), want: "t"},
		// TextMarshaler wins when a value implements both.
		"both": {in: dualVal{}, want: "marshaled"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := stringify(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringifyMarshalerError(t *testing.T) {
	t.Parallel()
	got, err := stringify(badVal{})
	assert.ErrorIs(t, err, ErrConvert)
	assert.Empty(t, got)
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", padCell("ab", 5))
	assert.Equal(t, "ab", padCell("ab", 2))
	assert.Equal(t, "abc", padCell("abc", 2))
	// "你好" occupies four display columns, so one space reaches width 5.
	assert.Equal(t, "你好 ", padCell("你好", 5))
}

func TestPad(t *testing.T) {
	t.Parallel()
	heads := []string{"col", "z"}
	labels := []string{"a", "bbb"}
	rows := [][]string{{"1", "2"}, {"333", "4"}}
	corner := pad("", heads, labels, rows)
	assert.Equal(t, "   ", corner)
	assert.Equal(t, []string{"a  ", "bbb"}, labels)
	// The last column stays ragged.
	assert.Equal(t, []string{"col", "z"}, heads)
	assert.Equal(t, [][]string{{"1  ", "2"}, {"333", "4"}}, rows)
}

func TestColspec(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "lcS", New("lcS").colspec())
	assert.Equal(t, "|lc|S", New("lcS", WithVLines(0, 2)).colspec())
	// Positions past the last spec character have nowhere to attach.
	assert.Equal(t, "lcS", New("lcS", WithVLines(3, 9)).colspec())
}

func TestRule(t *testing.T) {
	t.Parallel()
	f := New("l")
	assert.Equal(t, `\toprule`, f.rule(ruleTop))
	assert.Equal(t, `\midrule`, f.rule(ruleMid))
	assert.Equal(t, `\bottomrule`, f.rule(ruleBottom))

	f = New("l", WithRules(RulesHLines))
	for _, pos := range []int{ruleTop, ruleMid, ruleBottom} {
		assert.Equal(t, `\hline`, f.rule(pos))
	}
}

func TestSanitizeRows(t *testing.T) {
	t.Parallel()
	data := rowsData{
		labels: []any{"r_1", "r2"},
		rows:   [][]any{{"a&b"}, {1, 2, 3}},
	}
	labels, rows, err := sanitizeRows(data, 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{`r\_1`, "r2"}, labels)
	assert.Equal(t, [][]string{{`a\&b`, ""}, {"1", "2"}}, rows)
}

func TestSanitizeRowsLabelError(t *testing.T) {
	t.Parallel()
	_, _, err := sanitizeRows(rowsData{labels: []any{badVal{}}, rows: [][]any{{1}}}, 1)
	assert.ErrorIs(t, err, ErrConvert)
	assert.ErrorContains(t, err, "row 0 label")
}

func TestSanitizeRowsCellError(t *testing.T) {
	t.Parallel()
	_, _, err := sanitizeRows(rowsData{labels: []any{"x"}, rows: [][]any{{0, badVal{}}}}, 2)
	assert.ErrorIs(t, err, ErrConvert)
	assert.ErrorContains(t, err, "row 0 column 1")
}

type strVal string

func (v strVal) String() string { return string(v) }

type textVal string

func (v textVal) MarshalText() ([]byte, error) { return []byte(v), nil }

type dualVal struct{}

func (dualVal) MarshalText() ([]byte, error) { return []byte("marshaled"), nil }
func (dualVal) String() string               { return "stringy" }

type badVal struct{}

func (badVal) MarshalText() ([]byte, error) { return nil, errors.New("no text form") }

type rowsData struct {
	labels []any
	rows   [][]any
}

func (d rowsData) Columns() []string      { return nil }
func (d rowsData) Len() int               { return len(d.rows) }
func (d rowsData) Row(i int) (any, []any) { return d.labels[i], d.rows[i] }
