package operandType

import (
	"gwas/api/models/constants"
	"strings"
)

const (
	Unknown constants.OperandType = ""

	String  constants.OperandType = "string"
	Integer constants.OperandType = "integer"
)

func CastToOperandType(text string) constants.OperandType {
	switch strings.ToLower(text) {
	case "string":
		return String
	case "integer":
		return Integer
	default:
		return Unknown
	}
}
