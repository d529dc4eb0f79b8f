package sortKey

import (
	"gwas/api/models/constants"
)

const (
	Undefined constants.SortKey = ""

	Pos    constants.SortKey = "pos"
	Ref    constants.SortKey = "ref"
	Alt    constants.SortKey = "alt"
	PValue constants.SortKey = "p-value"
)

// DefaultOrder is the order results come back in
// when no (or only a prefix of it) sort_by is given
var DefaultOrder = []constants.SortKey{Pos, Ref, Alt}

// sort keys are matched verbatim, "P-Value" is not a key
func CastToSortKey(text string) constants.SortKey {
	switch text {
	case "pos":
		return Pos
	case "ref":
		return Ref
	case "alt":
		return Alt
	case "p-value":
		return PValue
	default:
		return Undefined
	}
}

func ValidSortKeys() []string {
	return []string{string(Pos), string(Ref), string(Alt), string(PValue)}
}
