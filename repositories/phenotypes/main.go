package phenotypes

import (
	"fmt"
	"io"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the per-sample phenotype and covariate table.
// Columns other than the sample column are numeric, NaN = missing.
type Table struct {
	samples []string
	names   []string
	columns map[string][]float64
}

var missingValues = []string{"", "NA", "NaN", "."}

func ReadCSV(r io.Reader, sampleColumn string) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.NaNValues(missingValues),
		dataframe.WithTypes(map[string]series.Type{
			sampleColumn: series.String,
		}))
	if df.Err != nil {
		return nil, df.Err
	}
	return NewTable(df, sampleColumn)
}

// NewTable takes the sample order from the sample column of df
func NewTable(df dataframe.DataFrame, sampleColumn string) (*Table, error) {
	if df.Err != nil {
		return nil, df.Err
	}

	t := &Table{columns: map[string][]float64{}}
	found := false
	for _, name := range df.Names() {
		if name == sampleColumn {
			found = true
			t.samples = df.Col(name).Records()
			continue
		}
		t.names = append(t.names, name)
		t.columns[name] = df.Col(name).Float()
	}
	if !found {
		return nil, fmt.Errorf("phenotype table: missing sample column %q", sampleColumn)
	}

	seen := map[string]bool{}
	for _, s := range t.samples {
		if seen[s] {
			return nil, fmt.Errorf("phenotype table: duplicate sample %q", s)
		}
		seen[s] = true
	}
	return t, nil
}

// Samples is the full ordered sample list
func (t *Table) Samples() []string {
	return t.samples
}

func (t *Table) Names() []string {
	return t.names
}

func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the values of a column, nil if unknown
func (t *Table) Column(name string) []float64 {
	return t.columns[name]
}

func (t *Table) Value(sample int, name string) (float64, bool) {
	column, ok := t.columns[name]
	if !ok || sample < 0 || sample >= len(column) || math.IsNaN(column[sample]) {
		return 0, false
	}
	return column[sample], true
}
