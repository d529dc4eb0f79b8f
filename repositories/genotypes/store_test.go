package genotypes_test

import (
	"math"
	"strings"
	"testing"

	"gwas/api/models/association"
	fo "gwas/api/models/constants/filter-operator"
	"gwas/api/models/constants/resolution"
	"gwas/api/repositories/genotypes"
	"gwas/api/tests/common"

	"github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positions(v *genotypes.View) []int {
	out := make([]int, 0, v.Len())
	for row := 0; row < v.Len(); row++ {
		out = append(out, v.Variant(row).Pos)
	}
	return out
}

func TestBuildStores(t *testing.T) {
	stores := common.DemoStores(t)

	for _, res := range resolution.All {
		store, err := stores.Get(res)
		require.NoError(t, err)
		assert.Equal(t, res, store.Resolution)
		assert.Equal(t, common.DemoBlockWidths()[res], store.BlockWidth)
		assert.Equal(t, 6, store.Nrow())
		assert.Equal(t, common.DemoSamples, store.Samples())
	}

	t.Run("should require every resolution", func(t *testing.T) {
		widths := common.DemoBlockWidths()
		delete(widths, resolution.Medium)
		_, err := genotypes.BuildStores(common.DemoGenotypeFrame(), common.DemoSamples, widths)
		assert.Error(t, err)
	})

	t.Run("should require a column per sample", func(t *testing.T) {
		_, err := genotypes.NewStore(common.DemoGenotypeFrame(), append(common.DemoSamples, "s9"), resolution.Fine, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "s9")
	})

	t.Run("should reject a non positive block width", func(t *testing.T) {
		_, err := genotypes.NewStore(common.DemoGenotypeFrame(), common.DemoSamples, resolution.Fine, 0)
		assert.Error(t, err)
	})
}

func TestNarrow(t *testing.T) {
	stores := common.DemoStores(t)

	for _, res := range resolution.All {
		store, err := stores.Get(res)
		require.NoError(t, err)

		t.Run(string(res)+" should narrow by chrom", func(t *testing.T) {
			view, err := store.Narrow([]association.Filter{association.ChromFilter{Value: "1"}})
			require.NoError(t, err)
			assert.Equal(t, []int{5, 5, 120, 700000, 15000000}, positions(view))

			view, err = store.Narrow([]association.Filter{association.ChromFilter{Value: "2"}})
			require.NoError(t, err)
			assert.Equal(t, []int{5}, positions(view))
		})

		t.Run(string(res)+" should apply every pos comparison exactly", func(t *testing.T) {
			chrom := association.ChromFilter{Value: "1"}
			for _, tc := range []struct {
				filters  []association.Filter
				expected []int
			}{
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Eq, Value: 5}}, []int{5, 5}},
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Gt, Value: 5}}, []int{120, 700000, 15000000}},
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Gte, Value: 120}}, []int{120, 700000, 15000000}},
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Lt, Value: 120}}, []int{5, 5}},
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Lte, Value: 700000}}, []int{5, 5, 120, 700000}},
				{[]association.Filter{
					chrom,
					association.PosFilter{Operator: fo.Gt, Value: 5},
					association.PosFilter{Operator: fo.Lt, Value: 700000},
				}, []int{120}},
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Eq, Value: 6}}, []int{}},
				{[]association.Filter{chrom, association.PosFilter{Operator: fo.Lt, Value: 0}}, []int{}},
			} {
				view, err := store.Narrow(tc.filters)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, positions(view), "filters %+v", tc.filters)
			}
		})

		t.Run(string(res)+" should return nothing for conflicting chroms", func(t *testing.T) {
			view, err := store.Narrow([]association.Filter{
				association.ChromFilter{Value: "1"},
				association.ChromFilter{Value: "2"},
			})
			require.NoError(t, err)
			assert.Equal(t, 0, view.Len())
		})
	}

	t.Run("should ignore mac filters", func(t *testing.T) {
		fine, err := stores.Fine()
		require.NoError(t, err)

		view, err := fine.Narrow([]association.Filter{
			association.ChromFilter{Value: "2"},
			association.MacFilter{Operator: fo.Gt, Value: 100},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, view.Len())
	})
}

func TestLocate(t *testing.T) {
	fine, err := common.DemoStores(t).Fine()
	require.NoError(t, err)

	t.Run("should find a locus by its alleles", func(t *testing.T) {
		view, found, err := fine.Locate("1", 5, "A", "T")
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, 1, view.Len())

		assert.Equal(t, genotypes.Variant{Chrom: "1", Pos: 5, Ref: "A", Alt: "T"}, view.Variant(0))
		assert.Equal(t, []float64{0, 0, 1, 0, 0, 0, 0, 1}, view.Genotypes(0))
	})

	t.Run("should report an unknown locus", func(t *testing.T) {
		for _, locus := range []genotypes.Variant{
			{Chrom: "1", Pos: 5, Ref: "A", Alt: "C"},
			{Chrom: "1", Pos: 6, Ref: "A", Alt: "G"},
			{Chrom: "3", Pos: 5, Ref: "A", Alt: "G"},
		} {
			_, found, err := fine.Locate(locus.Chrom, locus.Pos, locus.Ref, locus.Alt)
			require.NoError(t, err)
			assert.False(t, found, "%+v", locus)
		}
	})
}

func TestImpute(t *testing.T) {
	nan := math.NaN()
	subset := association.SampleSubset{
		Mask:  []bool{true, false, true, true, true},
		Remap: []int{0, -1, 1, 2, 3},
		N0:    4,
	}

	t.Run("should mean-impute missing calls of included samples", func(t *testing.T) {
		dosages, mac := genotypes.Impute([]float64{2, 0, nan, 1, 0}, subset)

		assert.Equal(t, []float64{2, 1, 1, 0}, dosages)
		assert.Equal(t, 3, mac)
	})

	t.Run("should count the minor allele", func(t *testing.T) {
		_, mac := genotypes.Impute([]float64{2, 0, 2, 2, 1}, subset)
		assert.Equal(t, 1, mac)
	})

	t.Run("should leave every value missing without an observed call", func(t *testing.T) {
		dosages, mac := genotypes.Impute([]float64{nan, 2, nan, nan, nan}, subset)

		assert.Equal(t, 0, mac)
		assert.True(t, linq.From(dosages).AllT(func(d float64) bool { return math.IsNaN(d) }))
	})
}

func TestReadCSV(t *testing.T) {
	csv := strings.Join([]string{
		"contig,start,ref,alt,s1,s2,s3",
		"chr1,100,A,G,0,1,NA",
		"1,50,C,T,2,.,1",
		"chrX,7,G,A,1,1,0",
	}, "\n")

	df, err := genotypes.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1", "X"}, df.Col(genotypes.ContigColumn).Records())

	store, err := genotypes.NewStore(df, []string{"s1", "s2", "s3"}, resolution.Fine, 10)
	require.NoError(t, err)

	view, err := store.Narrow([]association.Filter{association.ChromFilter{Value: "1"}})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 100}, positions(view))

	g := view.Genotypes(0)
	assert.Equal(t, 2.0, g[0])
	assert.True(t, math.IsNaN(g[1]))
	assert.Equal(t, 1.0, g[2])
}
