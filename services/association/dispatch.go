package association

import (
	"context"

	am "gwas/api/models/association"
	"gwas/api/repositories/genotypes"
	"gwas/api/services/regression"

	"golang.org/x/sync/errgroup"
)

type DispatchInput struct {
	Y      []float64
	Design *am.DesignMatrix
	Subset am.SampleSubset

	MinMAC int
	MaxMAC int

	// nil means unbounded
	Limit *int
}

/*
Dispatch runs the engine over every row of the view. Rows are evaluated
concurrently in batches; the first `limit` results in scan order are kept
and no further batch is started once the limit is reached. Variants whose
minor allele count is outside [MinMAC, MaxMAC] are skipped. A variant the
engine cannot fit keeps a nil p-value.
*/
func Dispatch(ctx context.Context, engine regression.Engine, view *genotypes.View, in DispatchInput,
	concurrency int, batchSize int) ([]am.VariantStat, error) {

	limit := view.Len()
	if in.Limit != nil && *in.Limit < limit {
		limit = *in.Limit
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if batchSize < 1 {
		batchSize = 1
	}

	stats := make([]am.VariantStat, 0)
	for start := 0; start < view.Len() && len(stats) < limit; start += batchSize {
		end := start + batchSize
		if end > view.Len() {
			end = view.Len()
		}

		batch := make([]*am.VariantStat, end-start)
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for row := start; row < end; row++ {
			row := row
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				batch[row-start] = evaluate(engine, view, row, in)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		for _, stat := range batch {
			if stat != nil && len(stats) < limit {
				stats = append(stats, *stat)
			}
		}
	}

	return stats, nil
}

// evaluate returns nil when the variant is filtered out by MAC
func evaluate(engine regression.Engine, view *genotypes.View, row int, in DispatchInput) *am.VariantStat {
	variant := view.Variant(row)
	stat := &am.VariantStat{
		Chrom: variant.Chrom,
		Pos:   variant.Pos,
		Ref:   variant.Ref,
		Alt:   variant.Alt,
	}

	// no sample left: nothing to fit, nothing to count
	if in.Subset.N0 == 0 {
		return stat
	}

	dosages, mac := genotypes.Impute(view.Genotypes(row), in.Subset)
	if mac < in.MinMAC || mac > in.MaxMAC {
		return nil
	}

	if pValue, ok := engine.Fit(in.Y, in.Design, dosages); ok {
		stat.PValue = &pValue
	}
	return stat
}
