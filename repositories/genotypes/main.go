package genotypes

import (
	"fmt"
	"io"
	"sync"

	"gwas/api/models/constants"
	"gwas/api/models/constants/chromosome"
	"gwas/api/models/constants/resolution"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/sync/errgroup"
)

// Stores holds every resolution of the same logical dataset
type Stores map[constants.Resolution]*Store

func (s Stores) Get(res constants.Resolution) (*Store, error) {
	store, ok := s[res]
	if !ok {
		return nil, fmt.Errorf("no genotype store loaded for resolution %q", res)
	}
	return store, nil
}

// Fine is the store used for point lookups
func (s Stores) Fine() (*Store, error) {
	return s.Get(resolution.Fine)
}

var missingGenotypeValues = []string{"", "NA", "NaN", "."}

/*
ReadCSV reads a base genotype table: contig, start, ref, alt
followed by one dosage column per sample. Contigs are normalized
so that "chr1" and "1" are the same contig.
*/
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.NaNValues(missingGenotypeValues),
		dataframe.WithTypes(map[string]series.Type{
			ContigColumn: series.String,
			StartColumn:  series.Int,
			RefColumn:    series.String,
			AltColumn:    series.String,
		}))
	if df.Err != nil {
		return df, df.Err
	}

	contigs := df.Col(ContigColumn).Records()
	for i, c := range contigs {
		contigs[i] = chromosome.Normalize(c)
	}
	df = df.Mutate(series.New(contigs, series.String, ContigColumn))
	return df, df.Err
}

// BuildStores pre-builds every configured resolution concurrently
func BuildStores(base dataframe.DataFrame, samples []string, blockWidths map[constants.Resolution]int) (Stores, error) {
	var (
		stores   = Stores{}
		storeMux sync.Mutex
		g        errgroup.Group
	)
	for _, res := range resolution.All {
		width, ok := blockWidths[res]
		if !ok {
			return nil, fmt.Errorf("missing block width for resolution %q", res)
		}

		res := res
		g.Go(func() error {
			store, err := NewStore(base, samples, res, width)
			if err != nil {
				return err
			}
			storeMux.Lock()
			stores[res] = store
			storeMux.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stores, nil
}
