package association

import (
	"fmt"
	"math"

	"gwas/api/models/constants"
)

/*
	Request-scoped domain model produced by
	compiling an incoming association request.
	Nothing here is mutated after construction.
*/

type Request struct {
	ApiVersion int
	MdVersion  *string
	Passback   *string

	Phenotype  string
	Covariates []Covariate
	Filters    []Filter

	Limit  *int
	Count  bool
	SortBy []constants.SortKey
}

// -- covariates
type Covariate interface {
	isCovariate()
}

type PhenotypeCovariate struct {
	Name string
}

type VariantCovariate struct {
	Chrom string
	Pos   int
	Ref   string
	Alt   string
}

func (PhenotypeCovariate) isCovariate() {}
func (VariantCovariate) isCovariate()   {}

func (v VariantCovariate) String() string {
	return fmt.Sprintf("%s:%d:%s:%s", v.Chrom, v.Pos, v.Ref, v.Alt)
}

// -- variant filters
type Filter interface {
	isFilter()
}

type ChromFilter struct {
	Value string
}

type PosFilter struct {
	Operator constants.FilterOperator
	Value    int
}

type MacFilter struct {
	Operator constants.FilterOperator
	Value    int
}

func (ChromFilter) isFilter() {}
func (PosFilter) isFilter()   {}
func (MacFilter) isFilter()   {}

// Bounds is the folded state of every pos and mac filter.
// MaxPos and MaxMAC are math.MaxInt when unconstrained.
type Bounds struct {
	MinPos          int
	MaxPos          int
	IsSingleVariant bool

	MinMAC        int
	MaxMAC        int
	UseDefaultMAC bool
}

func UnboundedBounds() Bounds {
	return Bounds{
		MinPos:        0,
		MaxPos:        math.MaxInt,
		MinMAC:        0,
		MaxMAC:        math.MaxInt,
		UseDefaultMAC: true,
	}
}

// Width is the chromosomal span the query may touch
func (b Bounds) Width() int {
	if b.IsSingleVariant {
		return 1
	}
	return b.MaxPos - b.MinPos
}

// SampleSubset masks the full ordered sample list.
// Remap[i] is the dense position of sample i within the subset,
// -1 for excluded samples.
type SampleSubset struct {
	Mask  []bool
	Remap []int
	N0    int
}

// DesignMatrix holds N0 rows by len(Columns) columns, column-major.
// A nil *DesignMatrix means the request had no covariates.
type DesignMatrix struct {
	Names   []string
	Columns [][]float64
}

func (m *DesignMatrix) Cols() int {
	if m == nil {
		return 0
	}
	return len(m.Columns)
}

type VariantStat struct {
	Chrom  string
	Pos    int
	Ref    string
	Alt    string
	PValue *float64
}
