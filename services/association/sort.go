package association

import (
	"sort"

	am "gwas/api/models/association"
	"gwas/api/models/constants"
	sk "gwas/api/models/constants/sort-key"
)

// sorts a missing p-value after every valid one
const missingPValue = 2.0

/*
SortStats orders stats by (pos, ref, alt), then applies the requested
keys as stable passes from last to first so the first key ends up
primary. A leading run of keys equal to the default order is already
satisfied and skipped.
*/
func SortStats(stats []am.VariantStat, keys []constants.SortKey) {
	sort.SliceStable(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}
		if a.Ref != b.Ref {
			return a.Ref < b.Ref
		}
		return a.Alt < b.Alt
	})

	remaining := keys[defaultPrefixLen(keys):]
	for k := len(remaining) - 1; k >= 0; k-- {
		less := lessBy(stats, remaining[k])
		sort.SliceStable(stats, less)
	}
}

func defaultPrefixLen(keys []constants.SortKey) int {
	n := 0
	for n < len(keys) && n < len(sk.DefaultOrder) && keys[n] == sk.DefaultOrder[n] {
		n++
	}
	return n
}

func lessBy(stats []am.VariantStat, key constants.SortKey) func(i, j int) bool {
	switch key {
	case sk.Pos:
		return func(i, j int) bool { return stats[i].Pos < stats[j].Pos }
	case sk.Ref:
		return func(i, j int) bool { return stats[i].Ref < stats[j].Ref }
	case sk.Alt:
		return func(i, j int) bool { return stats[i].Alt < stats[j].Alt }
	default:
		return func(i, j int) bool { return pValueOf(stats[i]) < pValueOf(stats[j]) }
	}
}

func pValueOf(s am.VariantStat) float64 {
	if s.PValue == nil {
		return missingPValue
	}
	return *s.PValue
}
