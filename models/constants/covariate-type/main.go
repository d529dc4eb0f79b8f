package covariateType

import (
	"gwas/api/models/constants"
	"strings"
)

const (
	Unknown constants.CovariateType = ""

	Phenotype constants.CovariateType = "phenotype"
	Variant   constants.CovariateType = "variant"
)

func CastToCovariateType(text string) constants.CovariateType {
	switch strings.ToLower(text) {
	case "phenotype":
		return Phenotype
	case "variant":
		return Variant
	default:
		return Unknown
	}
}
