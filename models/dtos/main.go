package dtos

// ---- requests
type AssociationRequestDto struct {
	Passback       *string            `json:"passback,omitempty"`
	MdVersion      *string            `json:"md_version,omitempty"`
	ApiVersion     int                `json:"api_version"`
	Phenotype      *string            `json:"phenotype,omitempty"`
	Covariates     []CovariateDto     `json:"covariates,omitempty"`
	VariantFilters []VariantFilterDto `json:"variant_filters,omitempty"`
	Limit          *int               `json:"limit,omitempty"`
	Count          *bool              `json:"count,omitempty"`
	SortBy         []string           `json:"sort_by,omitempty"`
}

// CovariateDto is kept loosely typed so that `pos` may
// arrive either as a JSON number or a numeric string
type CovariateDto map[string]interface{}

type VariantFilterDto struct {
	Operand     string `json:"operand" validate:"required"`
	Operator    string `json:"operator" validate:"required,oneof=eq gt gte lt lte"`
	Value       string `json:"value" validate:"required"`
	OperandType string `json:"operand_type" validate:"required,oneof=string integer"`
}

// ---- responses
type AssociationResultDto struct {
	IsError      bool              `json:"is_error"`
	ErrorMessage *string           `json:"error_message,omitempty"`
	Passback     *string           `json:"passback,omitempty"`
	Stats        *[]VariantStatDto `json:"stats,omitempty"`
	Count        *int              `json:"count,omitempty"`
}

type VariantStatDto struct {
	Chrom  string   `json:"chrom"`
	Pos    int      `json:"pos"`
	Ref    string   `json:"ref"`
	Alt    string   `json:"alt"`
	PValue *float64 `json:"pval"`
}
