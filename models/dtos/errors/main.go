package errors

import (
	"gwas/api/models/dtos"
)

/*
	Utility functions to facillitate returning
	association results to HTTP clients
*/

// -- error with message, passback echoed when it was parsed
func CreateErrorResult(message string, passback *string) dtos.AssociationResultDto {
	return dtos.AssociationResultDto{
		IsError:      true,
		ErrorMessage: &message,
		Passback:     passback,
	}
}

// -- success, stats omitted for count-only requests
func CreateSuccessResult(stats []dtos.VariantStatDto, countOnly bool, passback *string) dtos.AssociationResultDto {
	count := len(stats)
	result := dtos.AssociationResultDto{
		IsError:  false,
		Passback: passback,
		Count:    &count,
	}
	if !countOnly {
		if stats == nil {
			stats = []dtos.VariantStatDto{}
		}
		result.Stats = &stats
	}
	return result
}

// --
