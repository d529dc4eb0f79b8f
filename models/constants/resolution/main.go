package resolution

import (
	"gwas/api/models/constants"
	"strings"
)

const (
	Unknown constants.Resolution = ""

	Fine   constants.Resolution = "fine"
	Medium constants.Resolution = "medium"
	Coarse constants.Resolution = "coarse"
)

// All lists resolutions from the finest to the coarsest
var All = []constants.Resolution{Fine, Medium, Coarse}

func CastToResolution(text string) constants.Resolution {
	switch strings.ToLower(text) {
	case "fine":
		return Fine
	case "medium":
		return Medium
	case "coarse":
		return Coarse
	default:
		return Unknown
	}
}

func IsKnownResolution(text string) bool {
	return CastToResolution(text) != Unknown
}
