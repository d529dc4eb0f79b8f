package association

import (
	am "gwas/api/models/association"
	"gwas/api/repositories/genotypes"
	"gwas/api/repositories/phenotypes"
)

// VariantLocator finds the genotypes of a single locus
type VariantLocator interface {
	Locate(chrom string, pos int, ref string, alt string) (*genotypes.View, bool, error)
}

/*
BuildDesignMatrix assembles the response vector and the covariate matrix
of the included samples. Phenotype covariates come first, then variant
covariates, each in request order. With no covariates the matrix is nil.
*/
func BuildDesignMatrix(phenotype string, covariates Covariates, table *phenotypes.Table,
	subset am.SampleSubset, locator VariantLocator) ([]float64, *am.DesignMatrix, error) {

	y := Restrict(table.Column(phenotype), subset)
	if covariates.Len() == 0 {
		return y, nil, nil
	}

	design := &am.DesignMatrix{
		Names:   make([]string, 0, covariates.Len()),
		Columns: make([][]float64, 0, covariates.Len()),
	}

	for _, name := range covariates.PhenotypeNames {
		design.Names = append(design.Names, name)
		design.Columns = append(design.Columns, Restrict(table.Column(name), subset))
	}

	for _, locus := range covariates.Variants {
		view, found, err := locator.Locate(locus.Chrom, locus.Pos, locus.Ref, locus.Alt)
		if err != nil {
			return nil, nil, err
		}
		if !found {
			return nil, nil, am.NewSemanticError("variant covariate %s not found in the genotype store", locus)
		}

		dosages, _ := genotypes.Impute(view.Genotypes(0), subset)
		design.Names = append(design.Names, locus.String())
		design.Columns = append(design.Columns, dosages)
	}

	return y, design, nil
}
