package association

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	am "gwas/api/models/association"
	"gwas/api/tests/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantEngine answers every fit with the same p-value
type constantEngine struct {
	pValue float64
	ok     bool
	calls  int64
}

func (e *constantEngine) Fit(y []float64, design *am.DesignMatrix, dosages []float64) (float64, bool) {
	atomic.AddInt64(&e.calls, 1)
	return e.pValue, e.ok
}

func TestDispatch(t *testing.T) {
	table := common.DemoPhenotypes(t)
	coarse, err := common.DemoStores(t).Get("coarse")
	require.NoError(t, err)

	chrom1, err := coarse.Narrow([]am.Filter{am.ChromFilter{Value: "1"}})
	require.NoError(t, err)
	require.Equal(t, 5, chrom1.Len())

	full := BuildSampleSubset(len(table.Samples()), table.Column("T2D"))
	input := func(minMAC int, maxMAC int, limit *int) DispatchInput {
		return DispatchInput{
			Y:      Restrict(table.Column("T2D"), full),
			Subset: full,
			MinMAC: minMAC,
			MaxMAC: maxMAC,
			Limit:  limit,
		}
	}

	t.Run("should skip variants outside the mac bounds", func(t *testing.T) {
		engine := &constantEngine{pValue: 0.5, ok: true}
		stats, err := Dispatch(context.Background(), engine, chrom1, input(1, math.MaxInt, nil), 2, 2)

		require.NoError(t, err)
		assert.Len(t, stats, 4)
		assert.EqualValues(t, 4, engine.calls)
		for _, s := range stats {
			assert.NotEqual(t, 15000000, s.Pos)
			require.NotNil(t, s.PValue)
			assert.Equal(t, 0.5, *s.PValue)
		}
	})

	t.Run("should honour an upper mac bound", func(t *testing.T) {
		stats, err := Dispatch(context.Background(), &constantEngine{pValue: 0.5, ok: true}, chrom1, input(0, 6, nil), 4, 10)

		require.NoError(t, err)
		SortStats(stats, nil)
		assert.Equal(t, []string{"1:5:A:T", "1:120:C:T", "1:15000000:T:C"}, loci(stats))
	})

	t.Run("should keep the first results in scan order up to the limit", func(t *testing.T) {
		for _, batchSize := range []int{1, 2, 3, 100} {
			stats, err := Dispatch(context.Background(), &constantEngine{pValue: 0.5, ok: true}, chrom1, input(1, math.MaxInt, common.IntPtr(3)), 3, batchSize)

			require.NoError(t, err)
			require.Len(t, stats, 3)
			assert.Equal(t, []int{5, 5, 120}, []int{stats[0].Pos, stats[1].Pos, stats[2].Pos}, "batch size %d", batchSize)
		}
	})

	t.Run("should return nothing for a zero limit", func(t *testing.T) {
		engine := &constantEngine{pValue: 0.5, ok: true}
		stats, err := Dispatch(context.Background(), engine, chrom1, input(1, math.MaxInt, common.IntPtr(0)), 2, 2)

		require.NoError(t, err)
		assert.NotNil(t, stats)
		assert.Empty(t, stats)
		assert.EqualValues(t, 0, engine.calls)
	})

	t.Run("should keep a variant the engine cannot fit with no p-value", func(t *testing.T) {
		stats, err := Dispatch(context.Background(), &constantEngine{ok: false}, chrom1, input(1, math.MaxInt, nil), 2, 2)

		require.NoError(t, err)
		assert.Len(t, stats, 4)
		for _, s := range stats {
			assert.Nil(t, s.PValue)
		}
	})

	t.Run("should report every variant with no p-value when no sample is left", func(t *testing.T) {
		engine := &constantEngine{pValue: 0.5, ok: true}
		empty := BuildSampleSubset(len(table.Samples()), make([]float64, 0))
		require.Equal(t, 0, empty.N0)

		in := input(1, math.MaxInt, nil)
		in.Subset = empty
		in.Y = nil
		stats, err := Dispatch(context.Background(), engine, chrom1, in, 2, 2)

		require.NoError(t, err)
		assert.Len(t, stats, 5)
		assert.EqualValues(t, 0, engine.calls)
	})

	t.Run("should handle an empty view", func(t *testing.T) {
		none, err := coarse.Narrow([]am.Filter{am.ChromFilter{Value: "7"}})
		require.NoError(t, err)

		stats, err := Dispatch(context.Background(), &constantEngine{}, none, input(1, math.MaxInt, nil), 2, 2)
		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("should stop on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Dispatch(ctx, &constantEngine{}, chrom1, input(1, math.MaxInt, nil), 2, 2)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
