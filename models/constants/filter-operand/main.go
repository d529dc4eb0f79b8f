package filterOperand

import (
	"gwas/api/models/constants"
	"strings"
)

const (
	Unknown constants.FilterOperand = ""

	Chrom constants.FilterOperand = "chrom"
	Pos   constants.FilterOperand = "pos"
	Mac   constants.FilterOperand = "mac"
)

func CastToFilterOperand(text string) constants.FilterOperand {
	switch strings.ToLower(text) {
	case "chrom":
		return Chrom
	case "pos":
		return Pos
	case "mac":
		return Mac
	default:
		return Unknown
	}
}
