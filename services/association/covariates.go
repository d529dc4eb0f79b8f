package association

import (
	am "gwas/api/models/association"
)

// Covariates is the resolved, de-duplicated covariate set of a request
type Covariates struct {
	PhenotypeNames []string
	Variants       []am.VariantCovariate
}

// KnownNames is the set of columns of the covariate table
type KnownNames interface {
	Has(name string) bool
}

/*
ResolveCovariates partitions the requested covariates into distinct
phenotype-covariate names and ordered variant loci. Both lists keep
request order. The response phenotype must be a known column and may not
also be used as a covariate.
*/
func ResolveCovariates(phenotype string, covariates []am.Covariate, known KnownNames) (Covariates, error) {
	resolved := Covariates{}

	if !known.Has(phenotype) {
		return resolved, am.NewSemanticError("unknown phenotype %q", phenotype)
	}

	seen := map[string]bool{}
	for _, c := range covariates {
		switch covariate := c.(type) {
		case am.PhenotypeCovariate:
			if !known.Has(covariate.Name) {
				return resolved, am.NewSemanticError("unknown covariate %q", covariate.Name)
			}
			if covariate.Name == phenotype {
				return resolved, am.NewSemanticError("phenotype %q cannot also be a covariate", phenotype)
			}
			if seen[covariate.Name] {
				continue
			}
			seen[covariate.Name] = true
			resolved.PhenotypeNames = append(resolved.PhenotypeNames, covariate.Name)
		case am.VariantCovariate:
			resolved.Variants = append(resolved.Variants, covariate)
		}
	}

	return resolved, nil
}

func (c Covariates) Len() int {
	return len(c.PhenotypeNames) + len(c.Variants)
}
