package genotypes

import (
	"fmt"
	"sort"

	"gwas/api/models/association"
	"gwas/api/models/constants"
	"gwas/api/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// fixed (non-genotype) columns of every store's tabular view
const (
	ContigColumn = "contig"
	BlockColumn  = "block"
	StartColumn  = "start"
	RefColumn    = "ref"
	AltColumn    = "alt"
)

type (
	// Store is one resolution of the genotype dataset.
	// It is built once and only ever read afterwards,
	// so it is safe to share between concurrent requests.
	Store struct {
		Resolution constants.Resolution
		BlockWidth int

		samples []string
		df      dataframe.DataFrame

		// cached index columns of df, in row order
		contigs []string
		starts  []int
		refs    []string
		alts    []string

		// contig -> contiguous row spans, one per block, ordered by block
		index map[string][]blockSpan
	}

	blockSpan struct {
		block int
		first int // inclusive
		last  int // exclusive
	}
)

/*
NewStore partitions a base genotype table into blocks of `blockWidth`
positions. The base table must hold the contig, start, ref and alt
columns plus one numeric column per sample (NaN = missing call).
*/
func NewStore(base dataframe.DataFrame, samples []string, res constants.Resolution, blockWidth int) (*Store, error) {
	if base.Err != nil {
		return nil, base.Err
	}
	if blockWidth <= 0 {
		return nil, fmt.Errorf("%s store: block width must be positive, got %d", res, blockWidth)
	}

	columns := append([]string{ContigColumn, StartColumn, RefColumn, AltColumn}, samples...)
	names := base.Names()
	for _, c := range columns {
		if !utils.StringInSlice(c, names) {
			return nil, fmt.Errorf("%s store: missing column %q", res, c)
		}
	}

	starts, err := base.Col(StartColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", res, err)
	}
	blocks := make([]int, len(starts))
	for i, start := range starts {
		blocks[i] = start / blockWidth
	}

	df := base.Select(columns).
		Mutate(series.New(blocks, series.Int, BlockColumn)).
		Arrange(dataframe.Sort(ContigColumn), dataframe.Sort(StartColumn))
	if df.Err != nil {
		return nil, fmt.Errorf("%s store: %w", res, df.Err)
	}

	s := &Store{
		Resolution: res,
		BlockWidth: blockWidth,
		samples:    samples,
		df:         df,
		contigs:    df.Col(ContigColumn).Records(),
		refs:       df.Col(RefColumn).Records(),
		alts:       df.Col(AltColumn).Records(),
		index:      map[string][]blockSpan{},
	}
	if s.starts, err = df.Col(StartColumn).Int(); err != nil {
		return nil, fmt.Errorf("%s store: %w", res, err)
	}
	sortedBlocks, err := df.Col(BlockColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("%s store: %w", res, err)
	}

	for row := range s.contigs {
		contig, block := s.contigs[row], sortedBlocks[row]
		spans := s.index[contig]
		if n := len(spans); n > 0 && spans[n-1].block == block {
			spans[n-1].last = row + 1
			continue
		}
		s.index[contig] = append(spans, blockSpan{block: block, first: row, last: row + 1})
	}

	return s, nil
}

func (s *Store) Samples() []string {
	return s.samples
}

func (s *Store) Nrow() int {
	return len(s.contigs)
}

// Frame exposes the full tabular view
func (s *Store) Frame() dataframe.DataFrame {
	return s.df
}

/*
Narrow applies chrom and pos filters, in declaration order, as successive
narrowing predicates. Candidate rows are first bounded through the block
index, then every predicate is applied exactly against the tabular view.
Mac filters are not a property of the store and are ignored here.
*/
func (s *Store) Narrow(filters []association.Filter) (*View, error) {
	rows := s.candidateRows(filters)
	if len(rows) == 0 {
		return emptyView(s), nil
	}

	view := s.df.Subset(rows)
	for _, f := range filters {
		switch filter := f.(type) {
		case association.ChromFilter:
			view = view.Filter(dataframe.F{Colname: ContigColumn, Comparator: series.Eq, Comparando: filter.Value})
		case association.PosFilter:
			view = view.Filter(dataframe.F{Colname: StartColumn, Comparator: comparatorOf(filter.Operator), Comparando: filter.Value})
		}
		if view.Err != nil {
			return nil, fmt.Errorf("%s store: %w", s.Resolution, view.Err)
		}
		if view.Nrow() == 0 {
			return emptyView(s), nil
		}
	}

	return newView(s, view)
}

// Locate finds a single variant by locus; the returned view
// holds exactly one row when found
func (s *Store) Locate(chrom string, pos int, ref string, alt string) (*View, bool, error) {
	block := pos / s.BlockWidth
	for _, span := range s.spans(chrom, block, block) {
		for row := span.first; row < span.last; row++ {
			if s.starts[row] == pos && s.refs[row] == ref && s.alts[row] == alt {
				view, err := newView(s, s.df.Subset([]int{row}))
				return view, err == nil, err
			}
		}
	}
	return nil, false, nil
}

// candidateRows intersects every chrom and pos filter at
// block granularity using the index
func (s *Store) candidateRows(filters []association.Filter) []int {
	var (
		contig    *string
		lowBlock  = 0
		highBlock = int(^uint(0) >> 1)
	)
	for _, f := range filters {
		switch filter := f.(type) {
		case association.ChromFilter:
			if contig != nil && *contig != filter.Value {
				return nil
			}
			value := filter.Value
			contig = &value
		case association.PosFilter:
			lo, hi := blockBounds(filter, s.BlockWidth)
			if lo > lowBlock {
				lowBlock = lo
			}
			if hi < highBlock {
				highBlock = hi
			}
		}
	}
	if lowBlock > highBlock {
		return nil
	}

	var contigs []string
	if contig != nil {
		contigs = []string{*contig}
	} else {
		for c := range s.index {
			contigs = append(contigs, c)
		}
		sort.Strings(contigs)
	}

	rows := []int{}
	for _, c := range contigs {
		for _, span := range s.spans(c, lowBlock, highBlock) {
			for row := span.first; row < span.last; row++ {
				rows = append(rows, row)
			}
		}
	}
	sort.Ints(rows)
	return rows
}

// spans returns the contig's spans whose block lies in [lowBlock, highBlock]
func (s *Store) spans(contig string, lowBlock int, highBlock int) []blockSpan {
	spans := s.index[contig]
	from := sort.Search(len(spans), func(i int) bool { return spans[i].block >= lowBlock })
	to := sort.Search(len(spans), func(i int) bool { return spans[i].block > highBlock })
	if from >= to {
		return nil
	}
	return spans[from:to]
}
