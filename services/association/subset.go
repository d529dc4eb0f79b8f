package association

import (
	"math"

	am "gwas/api/models/association"
)

/*
BuildSampleSubset includes sample i iff every column has a value
(non-NaN) at i. Columns are the response phenotype followed by every
phenotype covariate, each of length n. Remap compacts included samples
to 0..N0-1 in original order; excluded positions hold -1.
*/
func BuildSampleSubset(n int, columns ...[]float64) am.SampleSubset {
	subset := am.SampleSubset{
		Mask:  make([]bool, n),
		Remap: make([]int, n),
	}

	for i := 0; i < n; i++ {
		included := true
		for _, column := range columns {
			if i >= len(column) || math.IsNaN(column[i]) {
				included = false
				break
			}
		}

		subset.Mask[i] = included
		if included {
			subset.Remap[i] = subset.N0
			subset.N0++
		} else {
			subset.Remap[i] = -1
		}
	}

	return subset
}

// Restrict selects the included samples of a full-length column, in subset order
func Restrict(column []float64, subset am.SampleSubset) []float64 {
	out := make([]float64, subset.N0)
	for i, included := range subset.Mask {
		if included {
			out[subset.Remap[i]] = column[i]
		}
	}
	return out
}
