package association

import (
	"math"

	am "gwas/api/models/association"
	"gwas/api/models/constants"
	fo "gwas/api/models/constants/filter-operator"
)

// CompiledFilters is the immutable outcome of folding a request's filters
type CompiledFilters struct {
	Bounds am.Bounds

	// chrom and pos filters, in declaration order, to be
	// applied against the selected store
	Predicates []am.Filter
}

/*
CompileFilters folds the filters into position and MAC bounds. Lower
bounds combine by max and upper bounds by min; `gt v` counts as `gte v+1`
and `lt v` as `lte v-1`. A pos `eq` marks a single-variant query. When no
chrom filter is present a `chrom eq defaultChrom` predicate is prepended.
*/
func CompileFilters(filters []am.Filter, defaultChrom string) CompiledFilters {
	compiled := CompiledFilters{
		Bounds:     am.UnboundedBounds(),
		Predicates: make([]am.Filter, 0, len(filters)+1),
	}

	hasChrom := false
	for _, f := range filters {
		if _, ok := f.(am.ChromFilter); ok {
			hasChrom = true
			break
		}
	}
	if !hasChrom {
		compiled.Predicates = append(compiled.Predicates, am.ChromFilter{Value: defaultChrom})
	}

	for _, f := range filters {
		compiled.Bounds = foldFilter(compiled.Bounds, f)

		switch f.(type) {
		case am.ChromFilter, am.PosFilter:
			compiled.Predicates = append(compiled.Predicates, f)
		}
	}

	return compiled
}

// foldFilter returns b narrowed by a single filter
func foldFilter(b am.Bounds, f am.Filter) am.Bounds {
	switch filter := f.(type) {
	case am.PosFilter:
		lo, hi := inclusiveRange(filter.Operator, filter.Value)
		b.MinPos = maxInt(b.MinPos, lo)
		b.MaxPos = minInt(b.MaxPos, hi)
		if filter.Operator == fo.Eq {
			b.IsSingleVariant = true
		}
	case am.MacFilter:
		lo, hi := inclusiveRange(filter.Operator, filter.Value)
		b.MinMAC = maxInt(b.MinMAC, lo)
		b.MaxMAC = minInt(b.MaxMAC, hi)
		b.UseDefaultMAC = false
	}
	return b
}

// inclusiveRange expresses a single comparison as [lo, hi]
func inclusiveRange(op constants.FilterOperator, value int) (int, int) {
	switch op {
	case fo.Gt:
		return value + 1, math.MaxInt
	case fo.Gte:
		return value, math.MaxInt
	case fo.Lt:
		return math.MinInt, value - 1
	case fo.Lte:
		return math.MinInt, value
	default:
		return value, value
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
