package textab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Dataset is an in-memory [Data] implementation for callers without their
// own tabular type. It also implements [Named] once a name is set.
type Dataset struct {
	name    string
	columns []string
	labels  []any
	cells   [][]any
}

// NewDataset returns an empty Dataset with the given column names.
func NewDataset(columns ...string) *Dataset {
	return &Dataset{columns: columns}
}

// SetName sets the index-column label and returns d for chaining.
func (d *Dataset) SetName(name string) *Dataset {
	d.name = name
	return d
}

// Append adds one row. The cell count must match the column count.
func (d *Dataset) Append(label any, cells ...any) error {
	if len(cells) != len(d.columns) {
		return fmt.Errorf("%w: row %v has %d cells, dataset has %d columns",
			ErrColumnCount, label, len(cells), len(d.columns))
	}
	d.labels = append(d.labels, label)
	d.cells = append(d.cells, cells)
	return nil
}

// Name returns the dataset name.
func (d *Dataset) Name() string { return d.name }

// Columns returns a copy of the column names.
func (d *Dataset) Columns() []string {
	cols := make([]string, len(d.columns))
	copy(cols, d.columns)
	return cols
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.labels) }

// Row returns the label and cells of row i.
func (d *Dataset) Row(i int) (any, []any) {
	return d.labels[i], d.cells[i]
}

// ReadCSV builds a Dataset from CSV. The first record is the header: its
// first field names the dataset (usually empty) and the rest are the column
// names. In every following record the first field is the row label and the
// rest are the cells.
func ReadCSV(r io.Reader) (*Dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("csv: missing header record")
	}
	d := NewDataset(records[0][1:]...).SetName(records[0][0])
	for _, rec := range records[1:] {
		cells := make([]any, len(rec)-1)
		for i, c := range rec[1:] {
			cells[i] = c
		}
		if err := d.Append(rec[0], cells...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ReadYAML builds a Dataset from a YAML document of the shape
//
//	name: demo
//	columns: [col_one, coltwo]
//	rows:
//	  - label: foo
//	    cells: [0, 1]
//
// name may be omitted. Every row's cell count must match columns.
func ReadYAML(r io.Reader) (*Dataset, error) {
	var doc struct {
		Name    string   `yaml:"name"`
		Columns []string `yaml:"columns"`
		Rows    []struct {
			Label any   `yaml:"label"`
			Cells []any `yaml:"cells"`
		} `yaml:"rows"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	d := NewDataset(doc.Columns...).SetName(doc.Name)
	for _, row := range doc.Rows {
		if err := d.Append(row.Label, row.Cells...); err != nil {
			return nil, err
		}
	}
	return d, nil
}
