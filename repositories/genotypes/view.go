package genotypes

import (
	"fmt"
	"math"

	"gwas/api/models/association"
	"gwas/api/models/constants"
	fo "gwas/api/models/constants/filter-operator"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

type (
	Variant struct {
		Chrom string
		Pos   int
		Ref   string
		Alt   string
	}

	// View is a narrowed, read-only slice of a store, materialized
	// column-wise so that rows can be evaluated independently
	View struct {
		Resolution constants.Resolution
		BlockWidth int

		chroms []string
		starts []int
		refs   []string
		alts   []string

		// genotypes[sample][row], NaN for a missing call
		genotypes [][]float64
	}
)

func newView(s *Store, df dataframe.DataFrame) (*View, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	starts, err := df.Col(StartColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", s.Resolution, err)
	}

	v := &View{
		Resolution: s.Resolution,
		BlockWidth: s.BlockWidth,
		chroms:     df.Col(ContigColumn).Records(),
		starts:     starts,
		refs:       df.Col(RefColumn).Records(),
		alts:       df.Col(AltColumn).Records(),
		genotypes:  make([][]float64, len(s.samples)),
	}
	for i, sample := range s.samples {
		v.genotypes[i] = df.Col(sample).Float()
	}
	return v, nil
}

func emptyView(s *Store) *View {
	return &View{
		Resolution: s.Resolution,
		BlockWidth: s.BlockWidth,
		genotypes:  make([][]float64, len(s.samples)),
	}
}

func (v *View) Len() int {
	return len(v.starts)
}

func (v *View) Variant(row int) Variant {
	return Variant{Chrom: v.chroms[row], Pos: v.starts[row], Ref: v.refs[row], Alt: v.alts[row]}
}

// Genotypes returns the row's dosages over the full ordered sample list
func (v *View) Genotypes(row int) []float64 {
	out := make([]float64, len(v.genotypes))
	for i, column := range v.genotypes {
		out[i] = column[row]
	}
	return out
}

/*
Impute restricts a full-length genotype vector to the sample subset,
reindexed through subset.Remap, substituting missing calls with the mean
of the observed ones. It also reports the minor allele count over the
observed calls of included samples. With no observed call at all every
value is NaN.
*/
func Impute(raw []float64, subset association.SampleSubset) (dosages []float64, mac int) {
	dosages = make([]float64, subset.N0)

	var (
		sum      float64
		observed int
	)
	for i, included := range subset.Mask {
		if !included || math.IsNaN(raw[i]) {
			continue
		}
		sum += raw[i]
		observed++
	}

	mean := math.NaN()
	if observed > 0 {
		mean = sum / float64(observed)
	}
	for i, included := range subset.Mask {
		if !included {
			continue
		}
		value := raw[i]
		if math.IsNaN(value) {
			value = mean
		}
		dosages[subset.Remap[i]] = value
	}

	alleleCount := int(math.Round(sum))
	mac = alleleCount
	if other := 2*observed - alleleCount; other < mac {
		mac = other
	}
	return dosages, mac
}

// -- helpers
func comparatorOf(op constants.FilterOperator) series.Comparator {
	switch op {
	case fo.Gt:
		return series.Greater
	case fo.Gte:
		return series.GreaterEq
	case fo.Lt:
		return series.Less
	case fo.Lte:
		return series.LessEq
	default:
		return series.Eq
	}
}

// blockBounds converts a position predicate into an inclusive block range.
// An empty range is returned as (0, -1).
func blockBounds(filter association.PosFilter, blockWidth int) (int, int) {
	maxBlock := int(^uint(0) >> 1)
	v := filter.Value
	switch filter.Operator {
	case fo.Gt:
		return (v + 1) / blockWidth, maxBlock
	case fo.Gte:
		return v / blockWidth, maxBlock
	case fo.Lt:
		if v-1 < 0 {
			return 0, -1
		}
		return 0, (v - 1) / blockWidth
	case fo.Lte:
		if v < 0 {
			return 0, -1
		}
		return 0, v / blockWidth
	default:
		if v < 0 {
			return 0, -1
		}
		return v / blockWidth, v / blockWidth
	}
}
