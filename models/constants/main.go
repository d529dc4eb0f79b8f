package constants

/*
Defines a set of base level
constants and enums to be used
throughout the association service
and it's request compiler.
*/
type FilterOperand string
type FilterOperator string
type OperandType string

type CovariateType string

type SortKey string

type Resolution string
