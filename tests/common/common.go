package common

import (
	"fmt"
	"math"
	"os"
	"path"
	"runtime"
	"testing"

	"gwas/api/models"
	"gwas/api/models/constants"
	"gwas/api/models/constants/resolution"
	"gwas/api/repositories/dataset"
	"gwas/api/repositories/genotypes"
	"gwas/api/repositories/phenotypes"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

/*
	Demo dataset shared by the package tests.

	8 samples; BMI is missing for s5 and Cov1 for s3.
	Minor allele counts over all 8 samples:

		1:5:A:G         7
		1:5:A:T         2
		1:120:C:T       6   (s4 uncalled)
		1:700000:G:A    8
		1:15000000:T:C  0   (monomorphic)
		2:5:A:C         4
*/

var DemoSamples = []string{"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8"}

var nan = math.NaN()

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}

func DemoPhenotypeFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New(DemoSamples, series.String, "sample"),
		series.New([]float64{0, 1, 0, 1, 1, 0, 1, 0}, series.Float, "T2D"),
		series.New([]float64{22.1, 30.4, 25.0, 28.7, nan, 24.3, 31.2, 23.8}, series.Float, "BMI"),
		series.New([]float64{1, 2, nan, 4, 5, 6, 7, 8}, series.Float, "Cov1"),
		series.New([]float64{40, 50, 60, 45, 55, 65, 35, 70}, series.Float, "Age"),
	)
}

func DemoPhenotypes(t *testing.T) *phenotypes.Table {
	table, err := phenotypes.NewTable(DemoPhenotypeFrame(), "sample")
	require.NoError(t, err)
	return table
}

func DemoGenotypeFrame() dataframe.DataFrame {
	rows := [][]float64{
		{0, 1, 2, 1, 0, 1, 2, 0},
		{0, 0, 1, 0, 0, 0, 0, 1},
		{1, 1, 0, nan, 2, 0, 1, 1},
		{2, 1, 1, 0, 0, 1, 2, 1},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{1, 0, 1, 0, 1, 0, 1, 0},
	}

	columns := []series.Series{
		series.New([]string{"1", "1", "1", "1", "1", "2"}, series.String, genotypes.ContigColumn),
		series.New([]int{5, 5, 120, 700000, 15000000, 5}, series.Int, genotypes.StartColumn),
		series.New([]string{"A", "A", "C", "G", "T", "A"}, series.String, genotypes.RefColumn),
		series.New([]string{"G", "T", "T", "A", "C", "C"}, series.String, genotypes.AltColumn),
	}
	for s, sample := range DemoSamples {
		values := make([]float64, len(rows))
		for r := range rows {
			values[r] = rows[r][s]
		}
		columns = append(columns, series.New(values, series.Float, sample))
	}
	return dataframe.New(columns...)
}

func DemoBlockWidths() map[constants.Resolution]int {
	return map[constants.Resolution]int{
		resolution.Fine:   1000,
		resolution.Medium: 100000,
		resolution.Coarse: 1000000,
	}
}

func DemoStores(t *testing.T) genotypes.Stores {
	stores, err := genotypes.BuildStores(DemoGenotypeFrame(), DemoSamples, DemoBlockWidths())
	require.NoError(t, err)
	return stores
}

func DemoDataset(t *testing.T) *dataset.Dataset {
	return &dataset.Dataset{
		Phenotypes: DemoPhenotypes(t),
		Stores:     DemoStores(t),
	}
}

// IntPtr, StringPtr and BoolPtr build optional request fields
func IntPtr(v int) *int {
	return &v
}

func StringPtr(v string) *string {
	return &v
}

func BoolPtr(v bool) *bool {
	return &v
}
