package association

import (
	"reflect"
	"strconv"
	"strings"

	"gwas/api/models"
	am "gwas/api/models/association"
	"gwas/api/models/constants"
	"gwas/api/models/constants/chromosome"
	ct "gwas/api/models/constants/covariate-type"
	fOperand "gwas/api/models/constants/filter-operand"
	fo "gwas/api/models/constants/filter-operator"
	ot "gwas/api/models/constants/operand-type"
	sk "gwas/api/models/constants/sort-key"
	"gwas/api/models/dtos"

	"github.com/ahmetb/go-linq"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report wire names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// ValidateProtocol rejects requests this service version cannot serve,
// before anything else is looked at
func ValidateProtocol(dto dtos.AssociationRequestDto, cfg *models.Config) error {
	if dto.MdVersion != nil && *dto.MdVersion != cfg.Api.SupportedMdVersion {
		return am.NewProtocolError("unsupported md_version %q, only %q is supported", *dto.MdVersion, cfg.Api.SupportedMdVersion)
	}
	if dto.ApiVersion != cfg.Api.SupportedApiVersion {
		return am.NewProtocolError("unsupported api_version %d, only %d is supported", dto.ApiVersion, cfg.Api.SupportedApiVersion)
	}
	if dto.Limit != nil && *dto.Limit < 0 {
		return am.NewRequestShapeError("invalid limit %d, limit must be zero or greater", *dto.Limit)
	}
	return nil
}

// ParseRequest turns the wire request into its typed form,
// failing on the first malformed covariate, filter or sort key
func ParseRequest(dto dtos.AssociationRequestDto, cfg *models.Config) (am.Request, error) {
	req := am.Request{
		ApiVersion: dto.ApiVersion,
		MdVersion:  dto.MdVersion,
		Passback:   dto.Passback,
		Phenotype:  cfg.Api.DefaultPhenotype,
		Limit:      dto.Limit,
	}
	if dto.Phenotype != nil && *dto.Phenotype != "" {
		req.Phenotype = *dto.Phenotype
	}
	if dto.Count != nil {
		req.Count = *dto.Count
	}

	for i, c := range dto.Covariates {
		covariate, err := parseCovariate(i, c)
		if err != nil {
			return req, err
		}
		req.Covariates = append(req.Covariates, covariate)
	}

	for i, f := range dto.VariantFilters {
		filter, err := parseFilter(i, f)
		if err != nil {
			return req, err
		}
		req.Filters = append(req.Filters, filter)
	}

	sortBy, err := parseSortKeys(dto.SortBy)
	if err != nil {
		return req, err
	}
	req.SortBy = sortBy

	return req, nil
}

type covariateFields struct {
	Type  string  `mapstructure:"type"`
	Name  *string `mapstructure:"name"`
	Chrom *string `mapstructure:"chrom"`
	Pos   *int    `mapstructure:"pos"`
	Ref   *string `mapstructure:"ref"`
	Alt   *string `mapstructure:"alt"`
}

func parseCovariate(i int, raw dtos.CovariateDto) (am.Covariate, error) {
	var fields covariateFields
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &fields,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(map[string]interface{}(raw)); err != nil {
		return nil, am.NewRequestShapeError("covariates[%d]: %v", i, err)
	}

	switch ct.CastToCovariateType(fields.Type) {
	case ct.Phenotype:
		if fields.Name == nil || *fields.Name == "" {
			return nil, am.NewRequestShapeError("covariates[%d]: phenotype covariate requires a 'name'", i)
		}
		return am.PhenotypeCovariate{Name: *fields.Name}, nil
	case ct.Variant:
		if fields.Chrom == nil || fields.Pos == nil || fields.Ref == nil || fields.Alt == nil ||
			*fields.Chrom == "" || *fields.Ref == "" || *fields.Alt == "" {
			return nil, am.NewRequestShapeError("covariates[%d]: variant covariate requires 'chrom', 'pos', 'ref' and 'alt'", i)
		}
		return am.VariantCovariate{Chrom: chromosome.Normalize(*fields.Chrom), Pos: *fields.Pos, Ref: *fields.Ref, Alt: *fields.Alt}, nil
	default:
		return nil, am.NewRequestShapeError("covariates[%d]: unknown covariate type %q, must be one of %q or %q", i, fields.Type, ct.Phenotype, ct.Variant)
	}
}

func parseFilter(i int, f dtos.VariantFilterDto) (am.Filter, error) {
	if err := validate.Struct(f); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "required" {
				return nil, am.NewRequestShapeError("variant_filters[%d]: missing '%s'", i, fe.Field())
			}
			return nil, am.NewRequestShapeError("variant_filters[%d]: invalid %s %q, must be one of [%s]", i, fe.Field(), fe.Value(), fe.Param())
		}
		return nil, am.NewRequestShapeError("variant_filters[%d]: %v", i, err)
	}

	operator := fo.CastToFilterOperator(f.Operator)
	operandType := ot.CastToOperandType(f.OperandType)

	switch fOperand.CastToFilterOperand(f.Operand) {
	case fOperand.Chrom:
		if operator != fo.Eq || operandType != ot.String {
			return nil, am.NewRequestShapeError("variant_filters[%d]: 'chrom' filters only support operator 'eq' with operand_type 'string'", i)
		}
		return am.ChromFilter{Value: chromosome.Normalize(f.Value)}, nil
	case fOperand.Pos:
		value, err := integerOperand(i, f, operandType)
		if err != nil {
			return nil, err
		}
		return am.PosFilter{Operator: operator, Value: value}, nil
	case fOperand.Mac:
		value, err := integerOperand(i, f, operandType)
		if err != nil {
			return nil, err
		}
		return am.MacFilter{Operator: operator, Value: value}, nil
	default:
		return nil, am.NewRequestShapeError("variant_filters[%d]: unknown operand %q, must be one of [chrom pos mac]", i, f.Operand)
	}
}

func integerOperand(i int, f dtos.VariantFilterDto, operandType constants.OperandType) (int, error) {
	if operandType != ot.Integer {
		return 0, am.NewRequestShapeError("variant_filters[%d]: '%s' filters require operand_type 'integer'", i, f.Operand)
	}
	value, err := strconv.Atoi(strings.TrimSpace(f.Value))
	if err != nil {
		return 0, am.NewRequestShapeError("variant_filters[%d]: value %q is not an integer", i, f.Value)
	}
	return value, nil
}

func parseSortKeys(raw []string) ([]constants.SortKey, error) {
	keys := make([]constants.SortKey, 0, len(raw))
	for _, r := range raw {
		key := sk.CastToSortKey(r)
		if key == sk.Undefined {
			return nil, am.NewRequestShapeError("unknown sort_by key %q, must be one of %v", r, sk.ValidSortKeys())
		}
		keys = append(keys, key)
	}

	if linq.From(keys).Distinct().Count() != len(keys) {
		return nil, am.NewRequestShapeError("sort_by keys must be distinct, got %v", raw)
	}
	return keys, nil
}
