package filterOperator

import (
	"gwas/api/models/constants"
	"strings"
)

const (
	Unknown constants.FilterOperator = ""

	Eq  constants.FilterOperator = "eq"
	Gt  constants.FilterOperator = "gt"
	Gte constants.FilterOperator = "gte"
	Lt  constants.FilterOperator = "lt"
	Lte constants.FilterOperator = "lte"
)

func CastToFilterOperator(text string) constants.FilterOperator {
	switch strings.ToLower(text) {
	case "eq":
		return Eq
	case "gt":
		return Gt
	case "gte":
		return Gte
	case "lt":
		return Lt
	case "lte":
		return Lte
	default:
		return Unknown
	}
}
