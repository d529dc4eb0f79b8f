package dataset

import (
	"fmt"
	"path/filepath"
	"time"

	"gwas/api/repositories/genotypes"
	"gwas/api/repositories/phenotypes"
	"gwas/api/utils"
)

// Dataset is every process-lifetime, read-only input of the service
type Dataset struct {
	Phenotypes *phenotypes.Table
	Stores     genotypes.Stores
}

func Load(manifestPath string, maxElapsed time.Duration) (*Dataset, error) {
	mf, err := utils.OpenWithRetry(manifestPath, maxElapsed)
	if err != nil {
		return nil, err
	}
	defer mf.Close()

	manifest, err := DecodeManifest(mf, filepath.Dir(manifestPath))
	if err != nil {
		return nil, err
	}

	phenoFile, err := utils.OpenWithRetry(manifest.Phenotypes.Path, maxElapsed)
	if err != nil {
		return nil, err
	}
	defer phenoFile.Close()

	table, err := phenotypes.ReadCSV(phenoFile, manifest.Phenotypes.SampleColumn)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifest.Phenotypes.Path, err)
	}

	genoFile, err := utils.OpenWithRetry(manifest.Genotypes.Path, maxElapsed)
	if err != nil {
		return nil, err
	}
	defer genoFile.Close()

	base, err := genotypes.ReadCSV(genoFile)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifest.Genotypes.Path, err)
	}

	stores, err := genotypes.BuildStores(base, table.Samples(), manifest.BlockWidths())
	if err != nil {
		return nil, err
	}

	return &Dataset{Phenotypes: table, Stores: stores}, nil
}
