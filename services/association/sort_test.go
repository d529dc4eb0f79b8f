package association

import (
	"testing"

	am "gwas/api/models/association"
	"gwas/api/models/constants"
	sk "gwas/api/models/constants/sort-key"

	"github.com/ahmetb/go-linq"
	"github.com/stretchr/testify/assert"
)

func pValue(p float64) *float64 {
	return &p
}

func loci(stats []am.VariantStat) []string {
	var out []string
	linq.From(stats).
		SelectT(func(s am.VariantStat) string {
			return am.VariantCovariate{Chrom: s.Chrom, Pos: s.Pos, Ref: s.Ref, Alt: s.Alt}.String()
		}).
		ToSlice(&out)
	return out
}

func TestSortStats(t *testing.T) {
	t.Run("should apply the default order", func(t *testing.T) {
		stats := []am.VariantStat{
			{Chrom: "1", Pos: 2, Ref: "A"},
			{Chrom: "1", Pos: 1, Ref: "B"},
			{Chrom: "1", Pos: 1, Ref: "A"},
		}
		SortStats(stats, nil)

		assert.Equal(t, []string{"1:1:A:", "1:1:B:", "1:2:A:"}, loci(stats))
	})

	t.Run("should sort missing p-values last", func(t *testing.T) {
		stats := []am.VariantStat{
			{Chrom: "1", Pos: 1, Ref: "A", Alt: "G"},
			{Chrom: "1", Pos: 2, Ref: "A", Alt: "G", PValue: pValue(0.9)},
			{Chrom: "1", Pos: 3, Ref: "A", Alt: "G", PValue: pValue(1)},
			{Chrom: "1", Pos: 4, Ref: "A", Alt: "G", PValue: pValue(0.01)},
		}
		SortStats(stats, []constants.SortKey{sk.PValue})

		assert.Equal(t, []int{4, 2, 3, 1}, []int{stats[0].Pos, stats[1].Pos, stats[2].Pos, stats[3].Pos})
		assert.Nil(t, stats[3].PValue)
	})

	t.Run("should break p-value ties by the default order", func(t *testing.T) {
		stats := []am.VariantStat{
			{Chrom: "1", Pos: 9, Ref: "A", Alt: "G", PValue: pValue(0.5)},
			{Chrom: "1", Pos: 3, Ref: "C", Alt: "T", PValue: pValue(0.5)},
			{Chrom: "1", Pos: 3, Ref: "A", Alt: "T", PValue: pValue(0.1)},
		}
		SortStats(stats, []constants.SortKey{sk.PValue})

		assert.Equal(t, []string{"1:3:A:T", "1:3:C:T", "1:9:A:G"}, loci(stats))
	})

	t.Run("should make the first key primary", func(t *testing.T) {
		stats := []am.VariantStat{
			{Chrom: "1", Pos: 1, Ref: "C", Alt: "T", PValue: pValue(0.2)},
			{Chrom: "1", Pos: 2, Ref: "A", Alt: "T", PValue: pValue(0.3)},
			{Chrom: "1", Pos: 3, Ref: "C", Alt: "G", PValue: pValue(0.1)},
			{Chrom: "1", Pos: 4, Ref: "A", Alt: "G", PValue: pValue(0.4)},
		}
		SortStats(stats, []constants.SortKey{sk.Ref, sk.PValue})

		assert.Equal(t, []string{"1:2:A:T", "1:4:A:G", "1:3:C:G", "1:1:C:T"}, loci(stats))
	})

	t.Run("should skip a leading default prefix", func(t *testing.T) {
		stats := []am.VariantStat{
			{Chrom: "1", Pos: 1, Ref: "A", Alt: "T", PValue: pValue(0.2)},
			{Chrom: "1", Pos: 1, Ref: "A", Alt: "C", PValue: pValue(0.3)},
			{Chrom: "1", Pos: 0, Ref: "G", Alt: "C", PValue: pValue(0.1)},
		}
		SortStats(stats, []constants.SortKey{sk.Pos, sk.Ref, sk.Alt})

		assert.Equal(t, []string{"1:0:G:C", "1:1:A:C", "1:1:A:T"}, loci(stats))
	})

	t.Run("should accept an empty slice", func(t *testing.T) {
		stats := []am.VariantStat{}
		SortStats(stats, []constants.SortKey{sk.Alt, sk.PValue})
		assert.Empty(t, stats)
	})
}
