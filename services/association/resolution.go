package association

import (
	"gwas/api/models/constants"
	"gwas/api/models/constants/resolution"
)

type Thresholds struct {
	Intermediate int
	Large        int
}

// SelectResolution picks the finest store for narrow queries and
// progressively coarser stores as the queried span grows
func SelectResolution(width int, t Thresholds) constants.Resolution {
	switch {
	case width <= t.Intermediate:
		return resolution.Fine
	case width <= t.Large:
		return resolution.Medium
	default:
		return resolution.Coarse
	}
}
